// Package bigquery reads the hierarchy reference tables. The tables are
// maintained by administrative tooling outside this service; everything here
// is read-only, and edits replace whole tables so a freshly loaded snapshot
// is always internally consistent.
package bigquery

import "cloud.google.com/go/bigquery"

// StateRow mirrors the pix.states table.
type StateRow struct {
	StateID string `bigquery:"state_id"` // REQUIRED
	Name    string `bigquery:"name"`     // REQUIRED
	UF      string `bigquery:"uf"`       // REQUIRED
	Code    string `bigquery:"code"`     // REQUIRED, e.g. "28"
}

// BankRow mirrors the pix.banks table. Banks only carry display masks.
type BankRow struct {
	BankID      string `bigquery:"bank_id"`      // REQUIRED
	Code        string `bigquery:"code"`         // REQUIRED
	Name        string `bigquery:"name"`         // REQUIRED
	BranchMask  string `bigquery:"branch_mask"`  // REQUIRED
	AccountMask string `bigquery:"account_mask"` // REQUIRED
}

// RegionalRow mirrors the pix.regionals table, the owner of the financial
// identity.
type RegionalRow struct {
	RegionalID string `bigquery:"regional_id"` // REQUIRED
	StateID    string `bigquery:"state_id"`    // REQUIRED
	Name       string `bigquery:"name"`        // REQUIRED

	CNPJ        string `bigquery:"cnpj"`         // REQUIRED, digits only
	OwnerName   string `bigquery:"owner_name"`   // REQUIRED
	BankID      string `bigquery:"bank_id"`      // REQUIRED
	BankBranch  string `bigquery:"bank_branch"`  // REQUIRED, digits only
	BankAccount string `bigquery:"bank_account"` // REQUIRED, digits only
	CityName    string `bigquery:"city_name"`    // REQUIRED, payload city

	IsActive      bigquery.NullBool      `bigquery:"is_active"`      // NULLABLE
	ActivatedDate bigquery.NullDate      `bigquery:"activated_date"` // NULLABLE
	RetiredTS     bigquery.NullTimestamp `bigquery:"retired_ts"`     // NULLABLE
}

// CityRow mirrors the pix.cities table.
type CityRow struct {
	CityID     string `bigquery:"city_id"`     // REQUIRED
	RegionalID string `bigquery:"regional_id"` // REQUIRED
	Name       string `bigquery:"name"`        // REQUIRED
}

// CongregationRow mirrors the pix.congregations table, the owner of the
// transaction-identifier base.
type CongregationRow struct {
	CongregationID string `bigquery:"congregation_id"` // REQUIRED
	CityID         string `bigquery:"city_id"`         // REQUIRED
	RegionalID     string `bigquery:"regional_id"`     // REQUIRED
	Name           string `bigquery:"name"`            // REQUIRED

	ShortCode  string `bigquery:"short_code"`  // REQUIRED, e.g. "JB"
	SuffixCode string `bigquery:"suffix_code"` // REQUIRED, e.g. "0059"
	TxIDBase   string `bigquery:"txid_base"`   // REQUIRED, e.g. "BR280059"

	ExtraCents bigquery.NullInt64 `bigquery:"extra_cents"` // NULLABLE, 0-99
	IsActive   bigquery.NullBool  `bigquery:"is_active"`   // NULLABLE
}

// PurposeRow mirrors the pix.purposes table.
type PurposeRow struct {
	PurposeID    string `bigquery:"purpose_id"`    // REQUIRED
	Name         string `bigquery:"name"`          // REQUIRED
	DisplayLabel string `bigquery:"display_label"` // REQUIRED
	TxIDSuffix   string `bigquery:"txid_suffix"`   // REQUIRED, e.g. "G01"

	IsActive bigquery.NullBool `bigquery:"is_active"` // NULLABLE
}
