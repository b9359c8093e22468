// Package batch generates payloads for many records in one run, using the
// exact same normalize/validate/encode path as single-card generation.
// Failures are collected into a report instead of surfacing interactively.
package batch

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gmfurtado/pixcards/internal/pix"
	"github.com/gmfurtado/pixcards/internal/template"
)

// Record is one batch input row: an amount and an optional payee-name
// override. Everything else comes from the base field set.
type Record struct {
	Line   int
	Amount string
	Name   string
}

// Result is the outcome for one record. Exactly one of Payload and Errors is
// set.
type Result struct {
	Line    int               `json:"line"`
	TxID    string            `json:"txid"`
	Amount  string            `json:"amount"`
	Payload string            `json:"payload,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Report is the summary of one batch run.
type Report struct {
	RunID      string    `json:"run_id"`
	TemplateID string    `json:"template_id"`
	StartedAt  time.Time `json:"started_at"`
	Generated  int       `json:"generated"`
	Failed     int       `json:"failed"`
	Results    []Result  `json:"results"`
}

// Process runs every record through the template's bindings, the validator
// and the codec, merging each record into the base field set. It never stops
// on a bad record; invalid rows land in the report with their field errors.
func Process(tpl *template.Template, base pix.CardData, records []Record, log zerolog.Logger) *Report {
	report := &Report{
		RunID:      uuid.NewString(),
		TemplateID: tpl.ID,
		StartedAt:  time.Now(),
		Results:    make([]Result, 0, len(records)),
	}

	for _, rec := range records {
		data := base
		data.Amount = pix.NormalizeValue(rec.Amount, tpl.SchemaField("amount"))
		if data.Amount != "" {
			data.DisplayValue = "R$ " + data.Amount
		}
		if rec.Name != "" {
			data.Name = pix.NormalizeValue(rec.Name, tpl.SchemaField("name"))
		}

		payloadData := template.PayloadData(tpl, data)
		result := Result{Line: rec.Line, TxID: payloadData.TxID, Amount: payloadData.Amount}

		if errs := pix.Validate(payloadData); len(errs) > 0 {
			result.Errors = errs
			report.Failed++
		} else {
			result.Payload = pix.GeneratePayload(payloadData)
			report.Generated++
		}
		report.Results = append(report.Results, result)
	}

	log.Info().
		Str("run_id", report.RunID).
		Str("template", report.TemplateID).
		Int("generated", report.Generated).
		Int("failed", report.Failed).
		Msg("Batch run finished")

	return report
}

// CSV renders the report in the relatorio format: one row per record with
// status and either the payload or the joined error messages.
func (r *Report) CSV() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"linha", "txid", "valor", "status", "detalhe"})
	for _, res := range r.Results {
		status := "OK"
		detail := res.Payload
		if len(res.Errors) > 0 {
			status = "ERRO"
			detail = joinErrors(res.Errors)
		}
		_ = w.Write([]string{fmt.Sprintf("%d", res.Line), res.TxID, res.Amount, status, detail})
	}
	w.Flush()

	return buf.Bytes()
}

func joinErrors(errs map[string]string) string {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+errs[f])
	}
	return strings.Join(parts, "; ")
}
