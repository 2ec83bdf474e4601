package docstruct

import (
	"bytes"
	"encoding/json"
)

// OutputShape selects the JSON document layout.
type OutputShape string

// Supported output shapes.
const (
	// ShapeStandard is an array of objects with "module", "Description" and
	// "Submodules" keys, submodules as a name → description mapping.
	ShapeStandard OutputShape = "standard"

	// ShapeCustom nests the same data under a "modules" key with lowercase
	// field names.
	ShapeCustom OutputShape = "custom"
)

// DefaultMaxTextLen is the rune ceiling for names and descriptions in output.
const DefaultMaxTextLen = 500

// Formatter serializes a module sequence to UTF-8 JSON. It degrades rather
// than errors: missing descriptions become the placeholder, overlong text is
// truncated with an ellipsis marker, and an empty module sequence yields an
// empty document, never a failure.
type Formatter struct {
	// MaxTextLen is the rune ceiling for text fields.
	// Defaults to DefaultMaxTextLen when zero.
	MaxTextLen int
}

// standardModule is the wire form of a module in the standard shape.
// Key casing matches the published output schema.
type standardModule struct {
	Module      string     `json:"module"`
	Description string     `json:"Description"`
	Submodules  orderedMap `json:"Submodules"`
}

// customModule is the wire form of a module in the custom shape.
type customModule struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Submodules  orderedMap `json:"submodules"`
}

// customDocument is the top-level object of the custom shape.
type customDocument struct {
	Modules []customModule `json:"modules"`
}

// Format serializes modules in the given shape, indented for readability.
func (f *Formatter) Format(modules []*Module, shape OutputShape) ([]byte, error) {
	if shape == ShapeCustom {
		doc := customDocument{Modules: []customModule{}}
		for _, m := range modules {
			doc.Modules = append(doc.Modules, customModule{
				Name:        f.truncate(m.Name),
				Description: f.description(m),
				Submodules:  f.submodules(m),
			})
		}
		return json.MarshalIndent(doc, "", " ")
	}

	out := []standardModule{}
	for _, m := range modules {
		out = append(out, standardModule{
			Module:      f.truncate(m.Name),
			Description: f.description(m),
			Submodules:  f.submodules(m),
		})
	}
	return json.MarshalIndent(out, "", " ")
}

func (f *Formatter) description(m *Module) string {
	if m.Description == "" {
		return DefaultDescription
	}
	return f.truncate(m.Description)
}

func (f *Formatter) submodules(m *Module) orderedMap {
	om := orderedMap{}
	if m.Submodules == nil {
		return om
	}
	for _, sub := range m.Submodules.Items() {
		desc := sub.Description
		if desc == "" {
			desc = DefaultDescription
		}
		om = append(om, [2]string{f.truncate(sub.Name), f.truncate(desc)})
	}
	return om
}

// truncate caps s at the configured rune ceiling, marking cuts with "...".
func (f *Formatter) truncate(s string) string {
	maxLen := f.MaxTextLen
	if maxLen <= 0 {
		maxLen = DefaultMaxTextLen
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}

// orderedMap marshals key/value pairs as a JSON object in insertion order.
// encoding/json map keys would be sorted; detection order is part of the
// output contract, so pairs are written manually.
type orderedMap [][2]string

// MarshalJSON implements json.Marshaler.
func (m orderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, pair := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(pair[0])
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(pair[1])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
