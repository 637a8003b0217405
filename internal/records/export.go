// ABOUTME: Whole-store export and import in JSON or YAML.
// ABOUTME: Every key is carried with its decoded value.
package records

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ExportData is the portable dump of every stored key.
type ExportData struct {
	Version    string         `json:"version" yaml:"version"`
	ExportedAt time.Time      `json:"exported_at" yaml:"exported_at"`
	Tool       string         `json:"tool" yaml:"tool"`
	Entries    map[string]any `json:"entries" yaml:"entries"`
}

// Export reads every key. JSON values are decoded; anything else is
// carried as its text.
func (b *Book) Export() (*ExportData, error) {
	keys, err := b.store.Keys("")
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}

	data := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC(),
		Tool:       "fitdash",
		Entries:    make(map[string]any, len(keys)),
	}
	for _, k := range keys {
		raw, ok := b.raw(k)
		if !ok {
			continue
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			v = string(raw)
		}
		data.Entries[k] = v
	}
	return data, nil
}

// ExportJSON renders the dump as indented JSON.
func (b *Book) ExportJSON() ([]byte, error) {
	data, err := b.Export()
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return out, nil
}

// ExportYAML renders the dump as YAML.
func (b *Book) ExportYAML() ([]byte, error) {
	data, err := b.Export()
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	return out, nil
}

// ParseExport decodes a dump in either format. JSON is tried first.
func ParseExport(raw []byte) (*ExportData, error) {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err == nil {
		return &data, nil
	}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	return &data, nil
}

// Import writes every entry back. Strings are stored as raw text so
// scalar keys round-trip; everything else is stored as JSON.
func (b *Book) Import(data *ExportData) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for k, v := range data.Entries {
		var raw []byte
		switch val := v.(type) {
		case string:
			raw = []byte(val)
		default:
			enc, err := json.Marshal(normalizeYAML(val))
			if err != nil {
				return n, fmt.Errorf("encode %s: %w", k, err)
			}
			raw = enc
		}
		if err := b.store.Set(k, raw); err != nil {
			return n, fmt.Errorf("write %s: %w", k, err)
		}
		n++
	}
	return n, nil
}

// normalizeYAML converts map[any]any values yaml can produce into
// JSON-encodable maps.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, inner := range val {
			m[fmt.Sprint(k)] = normalizeYAML(inner)
		}
		return m
	case map[string]any:
		for k, inner := range val {
			val[k] = normalizeYAML(inner)
		}
		return val
	case []any:
		for i, inner := range val {
			val[i] = normalizeYAML(inner)
		}
		return val
	}
	return v
}
