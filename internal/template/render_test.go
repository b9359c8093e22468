package template

import (
	"reflect"
	"testing"

	"github.com/gmfurtado/pixcards/internal/pix"
)

func textTemplate(texts ...string) *Template {
	t := &Template{ID: "t1"}
	for _, s := range texts {
		t.Blocks = append(t.Blocks, Block{Type: "text", Text: s})
	}
	return t
}

func TestInterpolate(t *testing.T) {
	data := pix.CardData{Name: "JOHN", City: "SAO PAULO"}
	data.SetField("customToken", "X99")

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "single token", text: "Hello {{name}}", want: "Hello JOHN"},
		{name: "two tokens", text: "{{name}} / {{city}}", want: "JOHN / SAO PAULO"},
		{name: "unset token resolves empty", text: "[{{txid}}]", want: "[]"},
		{name: "extra field token", text: "{{customToken}}", want: "X99"},
		{name: "no tokens", text: "plain text", want: "plain text"},
		{name: "empty", text: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Interpolate(tt.text, data); got != tt.want {
				t.Errorf("Interpolate(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestWarnings(t *testing.T) {
	tpl := textTemplate("Hello {{name}} from {{city}}")
	data := pix.CardData{Name: "X"}

	warns := Warnings(tpl, data)
	if len(warns) != 1 {
		t.Fatalf("Warnings() = %v, want exactly one entry", warns)
	}
	if warns[0].Key != "city" || warns[0].Type != WarningPlaceholder {
		t.Errorf("warning = %+v, want placeholder warning for city", warns[0])
	}
}

func TestWarnings_DuplicateTokensWarnTwice(t *testing.T) {
	tpl := textTemplate("{{city}} and again {{city}}")

	warns := Warnings(tpl, pix.CardData{})
	if len(warns) != 2 {
		t.Fatalf("Warnings() = %v, want two entries for a repeated token", warns)
	}
	for _, w := range warns {
		if w.Key != "city" {
			t.Errorf("warning key = %q, want %q", w.Key, "city")
		}
	}
}

func TestWarnings_AssetSources(t *testing.T) {
	tpl := textTemplate("Identificador: {{txid}}")
	tpl.Assets = map[string]Asset{
		"logo":      {Source: "{{logo}}"},
		"watermark": {Source: "static.png"},
	}

	warns := Warnings(tpl, pix.CardData{TxID: "ABC123"})
	if len(warns) != 1 {
		t.Fatalf("Warnings() = %v, want one entry for the logo asset", warns)
	}
	if warns[0].Key != "logo" {
		t.Errorf("warning key = %q, want %q", warns[0].Key, "logo")
	}
}

func TestWarnings_NoneWhenAllSet(t *testing.T) {
	tpl := textTemplate("{{name}} {{city}}")
	data := pix.CardData{Name: "A", City: "B"}

	if warns := Warnings(tpl, data); len(warns) != 0 {
		t.Errorf("Warnings() = %v, want none", warns)
	}
}

func TestPayloadData(t *testing.T) {
	tpl := Default()
	data := pix.CardData{
		Name:   "JOHN DOE",
		Key:    "03.493.231/0001-72",
		City:   "SAO PAULO",
		TxID:   "ABC123",
		Amount: "10.00",
	}

	got := PayloadData(tpl, data)
	if got.Name != "JOHN DOE" || got.Key != "03.493.231/0001-72" || got.City != "SAO PAULO" {
		t.Errorf("payload fields not bound: %+v", got)
	}
	if got.TxID != "ABC123" || got.Amount != "10.00" {
		t.Errorf("txid/amount not bound: %+v", got)
	}
	if got.Location != "" || got.BankDisplay != "" {
		t.Errorf("display-only fields leaked into payload data: %+v", got)
	}
}

func TestPayloadData_NoBindings(t *testing.T) {
	tpl := &Template{ID: "bare"}
	got := PayloadData(tpl, pix.CardData{Name: "JOHN"})
	if !reflect.DeepEqual(got, pix.CardData{}) {
		t.Errorf("PayloadData() = %+v, want zero value without bindings", got)
	}
}

func TestPayloadData_CompositeBinding(t *testing.T) {
	tpl := &Template{
		ID: "composite",
		Binds: &Bindings{Payload: map[string]string{
			"txid": "{{congregationCode}}{{purposeLabel}}",
		}},
	}
	data := pix.CardData{CongregationCode: "JB0059", PurposeLabel: "G01"}

	got := PayloadData(tpl, data)
	if got.TxID != "JB0059G01" {
		t.Errorf("TxID = %q, want %q", got.TxID, "JB0059G01")
	}
}

func TestNormalizeForm(t *testing.T) {
	tpl := Default()
	got := NormalizeForm(tpl, map[string]string{
		"name":   "João da Silva",
		"city":   "São João del-Rei",
		"txid":   "tx-01",
		"amount": "R$ 12,34",
		"other":  "kept verbatim",
	})

	if got.Name != "JOAO DA SILVA" {
		t.Errorf("Name = %q", got.Name)
	}
	if got.City != "SAO JOAO DEL-RE" {
		t.Errorf("City = %q", got.City)
	}
	if got.TxID != "TX01" {
		t.Errorf("TxID = %q", got.TxID)
	}
	if got.Amount != "12.34" {
		t.Errorf("Amount = %q", got.Amount)
	}
	if got.Extra["other"] != "kept verbatim" {
		t.Errorf("unschema'd field = %q, want stored verbatim", got.Extra["other"])
	}
}
