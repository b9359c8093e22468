package pix

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Field types a template form schema can declare.
const (
	FieldTypeText     = "text"
	FieldTypeCurrency = "currency"
	FieldTypeNumber   = "number"
)

// Normalize kinds a template form schema can declare.
const (
	NormalizeUpperNoAccent = "upperNoAccent"
	NormalizeUpper         = "upper"
	NormalizeLower         = "lower"
)

// SchemaField describes one form field of a card template: its type tag,
// length limit and normalization kind. The normalizer is driven entirely by
// this declaration.
type SchemaField struct {
	ID          string `yaml:"id"`
	Label       string `yaml:"label"`
	Type        string `yaml:"type"`
	Required    bool   `yaml:"required,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty"`
	MaxLength   int    `yaml:"maxLength,omitempty"`
	Normalize   string `yaml:"normalize,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// NormalizeValue converts raw user input into its canonical stored form.
// Empty input always normalizes to the empty string, and the function is
// idempotent for every field kind.
func NormalizeValue(value string, field *SchemaField) string {
	if field == nil {
		return value
	}

	if field.Type == FieldTypeCurrency {
		return UnformatCurrency(value)
	}

	// The card's cents box shows only a cents suffix ("R$ ***,05").
	if field.ID == "displayValue" {
		digits := StripNonDigits(value)
		if digits == "" {
			return ""
		}
		return "R$ ***," + digits
	}

	v := value
	switch field.Normalize {
	case NormalizeUpperNoAccent:
		v = strings.ToUpper(StripAccents(v))
	case NormalizeUpper:
		v = strings.ToUpper(v)
	case NormalizeLower:
		v = strings.ToLower(v)
	}

	if field.ID == "txid" {
		var b strings.Builder
		for _, r := range v {
			if isUpperAlnum(r) {
				b.WriteRune(r)
			}
		}
		v = b.String()
	}

	if field.MaxLength > 0 {
		if runes := []rune(v); len(runes) > field.MaxLength {
			v = string(runes[:field.MaxLength])
		}
	}

	return v
}

// FormatValue is the display-side inverse of NormalizeValue. Only currency
// fields have a distinct display form; everything else renders unchanged.
func FormatValue(value string, field *SchemaField) string {
	if field == nil {
		return value
	}
	if field.Type == FieldTypeCurrency {
		return FormatCurrency(value)
	}
	return value
}

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency renders a digit string as Brazilian currency, reading the
// input as integer cents: "1234" -> "R$ 12,34". Empty or digit-less input
// renders as "".
func FormatCurrency(value string) string {
	digits := StripNonDigits(value)
	if digits == "" {
		return ""
	}
	cents, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return ""
	}
	return ptBR.Sprintf("R$ %.2f", float64(cents)/100)
}

// UnformatCurrency strips a currency display string back to the canonical
// fixed-point form stored in the field set: "R$ 12,34" -> "12.34".
func UnformatCurrency(value string) string {
	digits := StripNonDigits(value)
	if digits == "" {
		return ""
	}
	cents, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
