// Package handlers exposes the resolution/validation/encoding pipeline to
// the card-rendering front end. The API is read-only with respect to the
// hierarchy: administrative edits happen out of band and show up on the next
// snapshot reload.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gmfurtado/pixcards/internal/api/middleware"
	"github.com/gmfurtado/pixcards/internal/domain"
	"github.com/gmfurtado/pixcards/internal/pix"
	"github.com/gmfurtado/pixcards/internal/template"
)

// SnapshotFunc returns the current hierarchy snapshot. Indirection lets the
// server swap in a freshly loaded snapshot without restarting.
type SnapshotFunc func() *domain.Snapshot

// CardsHandler serves hierarchy browsing, selection resolution and payload
// generation.
type CardsHandler struct {
	snapshot  SnapshotFunc
	templates []*template.Template
	log       zerolog.Logger
}

// NewCardsHandler creates a handler over a snapshot source and the loaded
// card templates.
func NewCardsHandler(snapshot SnapshotFunc, templates []*template.Template, log zerolog.Logger) *CardsHandler {
	return &CardsHandler{
		snapshot:  snapshot,
		templates: templates,
		log:       log,
	}
}

// Hierarchy handles GET /api/hierarchy.
func (h *CardsHandler) Hierarchy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	snap := h.snapshot()
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"states":        snap.States,
		"banks":         snap.Banks,
		"regionals":     snap.Regionals,
		"cities":        snap.Cities,
		"congregations": snap.Congregations,
		"purposes":      snap.Purposes,
	})
}

// Templates handles GET /api/templates.
func (h *CardsHandler) Templates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	type entry struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Version int    `json:"version"`
	}
	entries := make([]entry, 0, len(h.templates))
	for _, t := range h.templates {
		entries = append(entries, entry{ID: t.ID, Name: t.Name, Version: t.Version})
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"templates": entries,
		"count":     len(entries),
	})
}

type selectionRequest struct {
	StateID        string `json:"state_id"`
	RegionalID     string `json:"regional_id"`
	CityID         string `json:"city_id"`
	CongregationID string `json:"congregation_id"`
	PurposeID      string `json:"purpose_id"`
	Amount         string `json:"amount"`
	TemplateID     string `json:"template_id"`
}

func (req selectionRequest) selection() domain.Selection {
	return domain.Selection{
		StateID:        req.StateID,
		RegionalID:     req.RegionalID,
		CityID:         req.CityID,
		CongregationID: req.CongregationID,
		PurposeID:      req.PurposeID,
	}
}

// Resolve handles POST /api/resolve. An unresolvable selection is a normal
// response ("resolved": false), not an error.
func (h *CardsHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeSelection(w, r)
	if !ok {
		return
	}

	profile := domain.Resolve(h.snapshot(), req.selection())
	if profile == nil {
		middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{"resolved": false})
		return
	}

	data := pix.FromProfile(profile, req.Amount)
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"resolved": true,
		"txid":     profile.TxID,
		"message":  profile.Message,
		"data":     data,
	})
}

// Generate handles POST /api/generate. Validation errors come back with
// status 422 and a field->message map; a payload is only ever produced when
// that map would be empty.
func (h *CardsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeSelection(w, r)
	if !ok {
		return
	}

	tpl := h.template(req.TemplateID)
	if tpl == nil {
		middleware.WriteError(w, http.StatusBadRequest, "Unknown template")
		return
	}

	profile := domain.Resolve(h.snapshot(), req.selection())
	if profile == nil {
		middleware.WriteError(w, http.StatusUnprocessableEntity, "Selection does not resolve")
		return
	}

	amount := pix.NormalizeValue(req.Amount, tpl.SchemaField("amount"))
	data := pix.FromProfile(profile, amount)
	payloadData := template.PayloadData(tpl, data)

	if errs := pix.Validate(payloadData); len(errs) > 0 {
		middleware.WriteJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"errors": errs,
		})
		return
	}

	payload := pix.GeneratePayload(payloadData)
	data.SetField("payload", payload)

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"payload":  payload,
		"data":     data,
		"warnings": template.Warnings(tpl, data),
	})
}

func (h *CardsHandler) decodeSelection(w http.ResponseWriter, r *http.Request) (selectionRequest, bool) {
	var req selectionRequest
	if r.Method != http.MethodPost {
		middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return req, false
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	return req, true
}

func (h *CardsHandler) template(id string) *template.Template {
	if id == "" && len(h.templates) > 0 {
		return h.templates[0]
	}
	for _, t := range h.templates {
		if t.ID == id {
			return t
		}
	}
	return nil
}
