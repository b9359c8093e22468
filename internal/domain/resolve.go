package domain

import "strings"

// TxIDMaxLen is the EMV reference-label limit. A composed transaction id
// longer than this is truncated, not rejected.
const TxIDMaxLen = 25

// Selection is the five-way pick a user makes on the hierarchy selectors.
type Selection struct {
	StateID        string
	RegionalID     string
	CityID         string
	CongregationID string
	PurposeID      string
}

// ResolvedProfile combines one entity from each hierarchy level plus the two
// computed scalars. It is ephemeral: rebuilt wholesale on every selection
// change, never mutated in place.
type ResolvedProfile struct {
	State        State
	Regional     Regional
	City         City
	Congregation Congregation
	Bank         Bank
	Purpose      Purpose

	// TxID is upper(alnum(congregation base + purpose suffix)) truncated to
	// TxIDMaxLen.
	TxID string

	// Message is the purpose's display label, verbatim.
	Message string
}

// Resolve dereferences a selection against a hierarchy snapshot. It returns
// nil when any id fails to dereference or when a later selection no longer
// belongs to an earlier one (a city whose regional changed under it, for
// example). A nil profile means "nothing selected yet", not an error, and
// all misses are reported uniformly.
func Resolve(snap *Snapshot, sel Selection) *ResolvedProfile {
	state, ok := snap.stateByID[sel.StateID]
	if !ok {
		return nil
	}
	regional, ok := snap.regionalByID[sel.RegionalID]
	if !ok || regional.StateID != state.ID {
		return nil
	}
	city, ok := snap.cityByID[sel.CityID]
	if !ok || city.RegionalID != regional.ID {
		return nil
	}
	congregation, ok := snap.congregationByID[sel.CongregationID]
	if !ok || congregation.CityID != city.ID || congregation.RegionalID != regional.ID {
		return nil
	}
	purpose, ok := snap.purposeByID[sel.PurposeID]
	if !ok {
		return nil
	}
	bank, ok := snap.bankByID[regional.BankID]
	if !ok {
		return nil
	}

	txid := composeTxID(congregation.TxIDBase, purpose.TxIDSuffix)

	return &ResolvedProfile{
		State:        *state,
		Regional:     *regional,
		City:         *city,
		Congregation: *congregation,
		Bank:         *bank,
		Purpose:      *purpose,
		TxID:         txid,
		Message:      purpose.DisplayLabel,
	}
}

// composeTxID uppercases base+suffix, drops everything outside [A-Z0-9] and
// truncates to TxIDMaxLen.
func composeTxID(base, suffix string) string {
	raw := strings.ToUpper(base + suffix)
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() == TxIDMaxLen {
			break
		}
	}
	return b.String()
}

// CongregationCode is the short printable identifier for a congregation,
// e.g. "JB" + "0059" = "JB0059".
func CongregationCode(c Congregation) string {
	return c.ShortCode + c.SuffixCode
}
