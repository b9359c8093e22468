package template

import (
	"regexp"
	"sort"
	"strings"

	"github.com/gmfurtado/pixcards/internal/pix"
)

var tokenPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Interpolate replaces every {{field}} token in text with the corresponding
// field value; unset fields resolve to the empty string.
func Interpolate(text string, data pix.CardData) string {
	if text == "" {
		return ""
	}
	return tokenPattern.ReplaceAllStringFunc(text, func(m string) string {
		name := strings.Trim(m, "{}")
		return data.Field(name)
	})
}

// Warning flags a template token whose field is empty or absent. Warnings
// are advisory only; they never block payload generation.
type Warning struct {
	Type string `json:"type"`
	Key  string `json:"key"`
}

// WarningPlaceholder marks an unresolved {{field}} token.
const WarningPlaceholder = "placeholder"

// Warnings scans the template's text blocks and asset sources for
// placeholder tokens and reports one warning per occurrence whose field is
// empty, in first-seen order. A token that appears twice warns twice.
func Warnings(t *Template, data pix.CardData) []Warning {
	var parts []string
	for _, b := range t.Blocks {
		if b.Type == "text" {
			parts = append(parts, b.Text)
		}
	}
	assetKeys := make([]string, 0, len(t.Assets))
	for k := range t.Assets {
		assetKeys = append(assetKeys, k)
	}
	sort.Strings(assetKeys)
	for _, k := range assetKeys {
		parts = append(parts, t.Assets[k].Source)
	}

	combined := strings.Join(parts, " ")

	var warns []Warning
	for _, m := range tokenPattern.FindAllStringSubmatch(combined, -1) {
		key := m[1]
		if data.Field(key) == "" {
			warns = append(warns, Warning{Type: WarningPlaceholder, Key: key})
		}
	}
	return warns
}

// PayloadData resolves the template's payload bindings against a field set,
// producing the field set actually handed to the validator and codec. A
// template without bindings yields an empty set.
func PayloadData(t *Template, data pix.CardData) pix.CardData {
	var out pix.CardData
	if t.Binds == nil || t.Binds.Payload == nil {
		return out
	}

	keys := make([]string, 0, len(t.Binds.Payload))
	for k := range t.Binds.Payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		out.SetField(k, Interpolate(t.Binds.Payload[k], data))
	}
	return out
}

// NormalizeForm runs every raw form value through the normalizer using the
// template's field schema. Values without a schema declaration are stored
// verbatim.
func NormalizeForm(t *Template, raw map[string]string) pix.CardData {
	var out pix.CardData
	for id, value := range raw {
		out.SetField(id, pix.NormalizeValue(value, t.SchemaField(id)))
	}
	return out
}
