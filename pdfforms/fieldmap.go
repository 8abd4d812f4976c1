package pdfforms

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// FieldMaps translates logical enrollment field names into the PDF form
// field names each carrier's fillable application uses. Like the
// requirements catalog it is configuration data loaded at startup; carriers
// rename form fields between plan years without the code changing.
type FieldMaps struct {
	carriers map[string]map[string]string
}

// Parse decodes field maps from JSON keyed by carrier, then logical field
// name.
func Parse(data []byte) (*FieldMaps, error) {
	carriers := make(map[string]map[string]string)
	if err := json.Unmarshal(data, &carriers); err != nil {
		return nil, fmt.Errorf("failed to parse PDF field maps: %w", err)
	}
	return &FieldMaps{carriers: carriers}, nil
}

// Load reads and decodes field maps from a JSON file.
func Load(path string) (*FieldMaps, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF field maps: %w", err)
	}
	return Parse(data)
}

// Lookup returns the carrier-specific PDF field name for a logical field.
// An unknown carrier or field yields ok=false, never an error.
func (m *FieldMaps) Lookup(carrier, logicalField string) (string, bool) {
	fields, ok := m.carriers[carrier]
	if !ok {
		return "", false
	}
	name, ok := fields[logicalField]
	return name, ok
}

// CarrierFields returns the full logical-to-PDF mapping for a carrier.
func (m *FieldMaps) CarrierFields(carrier string) (map[string]string, bool) {
	fields, ok := m.carriers[carrier]
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out, true
}

// Carriers returns the known carrier names in sorted order.
func (m *FieldMaps) Carriers() []string {
	names := make([]string, 0, len(m.carriers))
	for name := range m.carriers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
