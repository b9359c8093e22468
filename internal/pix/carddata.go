package pix

import (
	"strings"

	"github.com/gmfurtado/pixcards/internal/domain"
)

// CardData is the field set a card template works with: the payload-bound
// fields plus the display-only fields drawn on the card. Display fields are
// cosmetic and never validated. Extra holds template-specific custom fields
// so any field can still be a placeholder target.
type CardData struct {
	// Payload-bound fields. These must pass through NormalizeValue before
	// Validate sees them.
	Name    string `json:"name,omitempty"`
	Key     string `json:"key,omitempty"`
	City    string `json:"city,omitempty"`
	TxID    string `json:"txid,omitempty"`
	Amount  string `json:"amount,omitempty"` // fixed-point decimal, "10.00"
	Message string `json:"message,omitempty"`

	// Display-only fields.
	DisplayValue string `json:"displayValue,omitempty"` // "R$ ***,00"
	Location     string `json:"location,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	Bank         string `json:"bank,omitempty"`
	Agency       string `json:"agency,omitempty"`
	Account      string `json:"account,omitempty"`

	RegionalName     string `json:"regionalName,omitempty"`
	CongregationCode string `json:"congregationCode,omitempty"`
	PurposeLabel     string `json:"purposeLabel,omitempty"`
	BankDisplay      string `json:"bankDisplay,omitempty"`

	Extra map[string]string `json:"extra,omitempty"`
}

// Field returns the value of a field by its template placeholder name.
// Unknown names fall through to Extra; a missing field reads as "".
func (d CardData) Field(name string) string {
	switch name {
	case "name":
		return d.Name
	case "key":
		return d.Key
	case "city":
		return d.City
	case "txid":
		return d.TxID
	case "amount":
		return d.Amount
	case "message":
		return d.Message
	case "displayValue":
		return d.DisplayValue
	case "location":
		return d.Location
	case "neighborhood":
		return d.Neighborhood
	case "bank":
		return d.Bank
	case "agency":
		return d.Agency
	case "account":
		return d.Account
	case "regionalName":
		return d.RegionalName
	case "congregationCode":
		return d.CongregationCode
	case "purposeLabel":
		return d.PurposeLabel
	case "bankDisplay":
		return d.BankDisplay
	default:
		return d.Extra[name]
	}
}

// SetField sets a field by its template placeholder name. Unknown names land
// in Extra.
func (d *CardData) SetField(name, value string) {
	switch name {
	case "name":
		d.Name = value
	case "key":
		d.Key = value
	case "city":
		d.City = value
	case "txid":
		d.TxID = value
	case "amount":
		d.Amount = value
	case "message":
		d.Message = value
	case "displayValue":
		d.DisplayValue = value
	case "location":
		d.Location = value
	case "neighborhood":
		d.Neighborhood = value
	case "bank":
		d.Bank = value
	case "agency":
		d.Agency = value
	case "account":
		d.Account = value
	case "regionalName":
		d.RegionalName = value
	case "congregationCode":
		d.CongregationCode = value
	case "purposeLabel":
		d.PurposeLabel = value
	case "bankDisplay":
		d.BankDisplay = value
	default:
		if d.Extra == nil {
			d.Extra = make(map[string]string)
		}
		d.Extra[name] = value
	}
}

// FromProfile merges a resolved hierarchy profile with a user-entered amount
// into a full card field set. The financial identity comes exclusively from
// the profile's regional; the congregation contributes locality and codes.
func FromProfile(p *domain.ResolvedProfile, amount string) CardData {
	agency := ApplyMask(p.Regional.BankBranch, p.Bank.BranchMask)
	account := ApplyMask(p.Regional.BankAccount, p.Bank.AccountMask)
	bankDisplay := p.Bank.Name + " - Ag: " + agency + " - CC: " + account

	name := p.Regional.OwnerName
	if name == "" {
		name = p.Regional.Name
	}

	displayValue := "R$ ***,00"
	if amount != "" {
		displayValue = "R$ " + amount
	}

	return CardData{
		Name:    name,
		Key:     FormatCNPJ(p.Regional.CNPJ),
		City:    p.Regional.CityName,
		TxID:    p.TxID,
		Amount:  amount,
		Message: p.Message,

		DisplayValue: displayValue,
		Location:     strings.ToUpper(p.City.Name),
		Neighborhood: strings.ToUpper(p.Congregation.Name),
		Bank:         p.Bank.Name + " - " + p.Bank.Code,
		Agency:       agency,
		Account:      account,

		RegionalName:     strings.ToUpper(p.Regional.Name),
		CongregationCode: domain.CongregationCode(p.Congregation),
		PurposeLabel:     p.Purpose.DisplayLabel,
		BankDisplay:      bankDisplay,
	}
}
