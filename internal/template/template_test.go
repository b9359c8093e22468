package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gmfurtado/pixcards/internal/pix"
)

const testDoc = `
id: test-v1
name: Teste
version: 2
canvas:
  width: 1240
  height: 1648
  dpi: 300
  background: "#FFFFFF"
assets:
  logo:
    source: "{{logo}}"
    x: 100
    y: 80
    w: 200
    h: 200
qr:
  payload: "{{payload}}"
  x: 380
  y: 598
  size: 490
blocks:
  - type: text
    id: details-name
    text: "{{name}}"
    x: 177
    y: 1394
  - type: rule
    x: 100
    y: 1350
    w: 1040
formSchema:
  - id: name
    label: Nome
    type: text
    required: true
    maxLength: 25
    normalize: upperNoAccent
  - id: amount
    label: Valor
    type: currency
bindings:
  payload:
    name: "{{name}}"
    amount: "{{amount}}"
`

func TestParse(t *testing.T) {
	tpl, err := Parse([]byte(testDoc))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if tpl.ID != "test-v1" || tpl.Name != "Teste" || tpl.Version != 2 {
		t.Errorf("header = %q/%q/%d", tpl.ID, tpl.Name, tpl.Version)
	}
	if tpl.Canvas.Width != 1240 || tpl.Canvas.Height != 1648 {
		t.Errorf("canvas = %+v", tpl.Canvas)
	}
	if tpl.QR.Payload != "{{payload}}" {
		t.Errorf("QR.Payload = %q", tpl.QR.Payload)
	}
	if len(tpl.Blocks) != 2 || tpl.Blocks[0].Type != "text" || tpl.Blocks[1].Type != "rule" {
		t.Errorf("blocks = %+v", tpl.Blocks)
	}
	if tpl.Assets["logo"].Source != "{{logo}}" {
		t.Errorf("assets = %+v", tpl.Assets)
	}

	nameField := tpl.SchemaField("name")
	if nameField == nil {
		t.Fatal("SchemaField(name) = nil")
	}
	if nameField.MaxLength != 25 || nameField.Normalize != pix.NormalizeUpperNoAccent || !nameField.Required {
		t.Errorf("name schema = %+v", nameField)
	}
	if f := tpl.SchemaField("amount"); f == nil || f.Type != pix.FieldTypeCurrency {
		t.Errorf("amount schema = %+v", f)
	}
	if tpl.SchemaField("missing") != nil {
		t.Error("SchemaField(missing) should be nil")
	}

	if tpl.Binds == nil || tpl.Binds.Payload["name"] != "{{name}}" {
		t.Errorf("bindings = %+v", tpl.Binds)
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := Parse([]byte("id: x\n\tbad yaml")); err == nil {
		t.Error("Parse() accepted malformed YAML")
	}
	if _, err := Parse([]byte("name: no id here")); err == nil {
		t.Error("Parse() accepted a template without an id")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, id string) {
		doc := "id: " + id + "\nname: " + id + "\n"
		if err := os.WriteFile(filepath.Join(dir, name), []byte(doc), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("b-second.yaml", "second")
	write("a-first.yaml", "first")
	write("notes.txt", "ignored")

	templates, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error: %v", err)
	}
	if len(templates) != 2 {
		t.Fatalf("LoadDir() loaded %d templates, want 2", len(templates))
	}
	if templates[0].ID != "first" || templates[1].ID != "second" {
		t.Errorf("load order = %q, %q; want filename order", templates[0].ID, templates[1].ID)
	}
}

func TestLoadDir_Missing(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("LoadDir() on a missing directory should fail")
	}
}

func TestDefault(t *testing.T) {
	tpl := Default()
	if tpl.ID == "" {
		t.Fatal("default template has no id")
	}
	for _, id := range []string{"name", "key", "city", "txid", "amount", "message"} {
		if tpl.SchemaField(id) == nil {
			t.Errorf("default template missing schema for %q", id)
		}
		if tpl.Binds.Payload[id] == "" {
			t.Errorf("default template missing payload binding for %q", id)
		}
	}
}

func TestShippedPreset(t *testing.T) {
	tpl, err := LoadFile(filepath.Join("..", "..", "templates", "ccb-classic.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if tpl.Binds == nil || len(tpl.Binds.Payload) == 0 {
		t.Fatal("shipped preset has no payload bindings")
	}
	for _, id := range []string{"name", "key", "city", "txid", "amount"} {
		if tpl.SchemaField(id) == nil {
			t.Errorf("shipped preset missing schema for %q", id)
		}
	}
}
