package template

import "github.com/gmfurtado/pixcards/internal/pix"

// Default returns the built-in card template, used when no template
// directory is configured. It carries the same form schema and payload
// bindings as the shipped CCB classic preset, with a minimal block set.
func Default() *Template {
	return &Template{
		ID:      "default-v1",
		Name:    "Padrão",
		Version: 1,
		Canvas:  Canvas{Width: 1240, Height: 1648, DPI: 300, Background: "#FFFFFF"},
		QR:      QR{Payload: "{{payload}}", X: 380, Y: 598, Size: 490},
		Blocks: []Block{
			{Type: "text", ID: "details-name", Text: "{{name}}", X: 177, Y: 1394},
			{Type: "text", ID: "details-location", Text: "{{location}} | {{neighborhood}}", X: 177, Y: 1430},
			{Type: "text", ID: "details-key", Text: "CHAVE PIX CNPJ: {{key}}", X: 177, Y: 1466},
			{Type: "text", ID: "qr-identifier", Text: "Identificador: {{txid}}", X: 620, Y: 1128},
		},
		Schema: []pix.SchemaField{
			{ID: "name", Label: "Nome (recebedor)", Type: pix.FieldTypeText, Required: true, MaxLength: 25, Normalize: pix.NormalizeUpperNoAccent},
			{ID: "key", Label: "Chave PIX (CNPJ)", Type: pix.FieldTypeText, Required: true},
			{ID: "city", Label: "Cidade (payload)", Type: pix.FieldTypeText, Required: true, MaxLength: 15, Normalize: pix.NormalizeUpperNoAccent},
			{ID: "txid", Label: "Identificador (TXID)", Type: pix.FieldTypeText, Required: true, MaxLength: 25, Normalize: pix.NormalizeUpperNoAccent},
			{ID: "amount", Label: "Valor (opcional)", Type: pix.FieldTypeCurrency},
			{ID: "message", Label: "Mensagem (opcional no PIX)", Type: pix.FieldTypeText, MaxLength: 72},
		},
		Binds: &Bindings{Payload: map[string]string{
			"name":    "{{name}}",
			"key":     "{{key}}",
			"city":    "{{city}}",
			"txid":    "{{txid}}",
			"amount":  "{{amount}}",
			"message": "{{message}}",
		}},
	}
}
