// Package repository persists the analytics document as a single JSON file.
// Writes are last-write-wins over the whole document; there is no locking
// beyond the atomic rename.
package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"revos/internal/analytics"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/rs/zerolog/log"
)

// JSONRepository reads and writes the whole analytics document at a fixed
// path, validating its shape against a JSON schema on load.
type JSONRepository struct {
	path   string
	schema *jsonschema.Resolved
}

// NewJSON creates a repository for the given file path.
func NewJSON(path string) (*JSONRepository, error) {
	resolved, err := documentSchema().Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("resolve document schema: %w", err)
	}
	return &JSONRepository{path: path, schema: resolved}, nil
}

// Path returns the backing file path.
func (r *JSONRepository) Path() string {
	return r.path
}

// Load reads and validates the analytics document. A missing file is an
// error with a remediation hint, matching the trivial read-whole-file
// contract: there is no partial read.
func (r *JSONRepository) Load() (*analytics.Document, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("analytics database not found at %s (run samplegen or save an import first)", r.path)
		}
		return nil, fmt.Errorf("read analytics database: %w", err)
	}

	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return nil, fmt.Errorf("analytics database is not valid JSON: %w", err)
	}
	if err := r.schema.Validate(instance); err != nil {
		return nil, fmt.Errorf("analytics database failed validation: %w", err)
	}

	var doc analytics.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode analytics database: %w", err)
	}

	log.Debug().
		Str("path", r.path).
		Int("topProblems", len(doc.TopProblems)).
		Int("trend", len(doc.Trend)).
		Msg("Analytics database loaded")
	return &doc, nil
}

// Save writes the whole document via a temp file and atomic rename.
func (r *JSONRepository) Save(doc *analytics.Document) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode analytics database: %w", err)
	}

	tmpPath := r.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0644); err != nil {
		return fmt.Errorf("write analytics database: %w", err)
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace analytics database: %w", err)
	}

	log.Debug().Str("path", r.path).Msg("Analytics database saved")
	return nil
}

// documentSchema describes the document envelope. It checks section types and
// row identities, not every numeric field: the decoder and aggregation code
// default malformed numbers rather than rejecting a whole database over them.
func documentSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Required: []string{
			"ratePlans", "channelMix", "trend", "topProblems", "scatter", "globalStats",
		},
		Properties: map[string]*jsonschema.Schema{
			"ratePlans":  {Type: "array"},
			"channelMix": {Type: "array"},
			"trend": {
				Type: "array",
				Items: &jsonschema.Schema{
					Type:     "object",
					Required: []string{"date"},
				},
			},
			"topProblems": {
				Type: "array",
				Items: &jsonschema.Schema{
					Type:     "object",
					Required: []string{"channel", "ratePlan"},
				},
			},
			"scatter":     {Type: "array"},
			"globalStats": {Type: "object"},
		},
	}
}
