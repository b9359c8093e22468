// Package template models the printable card templates: their visual blocks,
// form schema and payload bindings. Templates are declarative YAML documents;
// this package never draws anything, it only resolves data for the rendering
// collaborator.
package template

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gmfurtado/pixcards/internal/pix"
)

// Canvas holds the card's pixel geometry.
type Canvas struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	DPI        int    `yaml:"dpi"`
	Background string `yaml:"background"`
}

// Font names a typeface variant used by text blocks.
type Font struct {
	Family string  `yaml:"family"`
	Weight int     `yaml:"weight"`
	Style  string  `yaml:"style"`
	Size   float64 `yaml:"size,omitempty"`
}

// Asset is an image slot; Source may embed placeholder tokens.
type Asset struct {
	Source  string  `yaml:"source"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	W       float64 `yaml:"w"`
	H       float64 `yaml:"h"`
	Fit     string  `yaml:"fit,omitempty"`
	Opacity float64 `yaml:"opacity,omitempty"`
}

// QR positions the scannable code; Payload is a placeholder token resolved
// to the generated BR Code string.
type QR struct {
	Payload string  `yaml:"payload"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Size    float64 `yaml:"size"`
	Frame   string  `yaml:"frame,omitempty"`
}

// Block is one visual element. Type discriminates which of the optional
// fields apply: "text" uses Text/Font/Align, "rule" and "box" use the
// geometry fields, "kv" uses Rows.
type Block struct {
	Type  string  `yaml:"type"`
	ID    string  `yaml:"id,omitempty"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w,omitempty"`
	H     float64 `yaml:"h,omitempty"`
	Text  string  `yaml:"text,omitempty"`
	Font  *Font   `yaml:"font,omitempty"`
	Align string  `yaml:"align,omitempty"`
	Style string  `yaml:"style,omitempty"`

	Dash        []float64   `yaml:"dash,omitempty"`
	Fill        string      `yaml:"fill,omitempty"`
	Stroke      string      `yaml:"stroke,omitempty"`
	StrokeWidth float64     `yaml:"strokeWidth,omitempty"`
	Rows        [][2]string `yaml:"rows,omitempty"`
	GapY        float64     `yaml:"gapY,omitempty"`
	MaxWidth    float64     `yaml:"maxWidth,omitempty"`
}

// Bindings maps payload field names to placeholder token strings. The
// indirection lets different templates draw the same payload field from
// different underlying field-set keys.
type Bindings struct {
	Payload map[string]string `yaml:"payload"`
}

// Template is a complete card definition.
type Template struct {
	ID      string            `yaml:"id"`
	Name    string            `yaml:"name"`
	Version int               `yaml:"version"`
	Canvas  Canvas            `yaml:"canvas"`
	Fonts   []Font            `yaml:"fonts,omitempty"`
	Assets  map[string]Asset  `yaml:"assets,omitempty"`
	QR      QR                `yaml:"qr"`
	Blocks  []Block           `yaml:"blocks,omitempty"`
	Schema  []pix.SchemaField `yaml:"formSchema,omitempty"`
	Binds   *Bindings         `yaml:"bindings,omitempty"`
}

// SchemaField returns the schema declaration for a field id, or nil when the
// template does not declare it.
func (t *Template) SchemaField(id string) *pix.SchemaField {
	for i := range t.Schema {
		if t.Schema[i].ID == id {
			return &t.Schema[i]
		}
	}
	return nil
}

// Parse decodes one YAML template document.
func Parse(data []byte) (*Template, error) {
	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("Parse: decoding template: %w", err)
	}
	if t.ID == "" {
		return nil, fmt.Errorf("Parse: template has no id")
	}
	return &t, nil
}

// LoadFile reads and parses a single template document.
func LoadFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: reading %q: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %q: %w", path, err)
	}
	return t, nil
}

// LoadDir loads every *.yaml template in a directory, sorted by filename.
func LoadDir(dir string) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadDir: reading %q: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".yaml") || strings.HasSuffix(e.Name(), ".yml") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	templates := make([]*Template, 0, len(names))
	for _, name := range names {
		t, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, nil
}
