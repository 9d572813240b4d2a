package library

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// Load reads a logbook export file.
func Load(path string) (*Export, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer file.Close()

	return LoadReader(file)
}

// LoadReader parses export JSON from any io.Reader. Entries missing an id
// (seen in hand-edited or truncated backups) get a fresh one so downstream
// id-based duplicate checks stay meaningful.
func LoadReader(reader io.Reader) (*Export, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}

	var export Export
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}

	for i := range export.Entries {
		if export.Entries[i].ID == "" {
			export.Entries[i].ID = uuid.NewString()
		}
	}

	return &export, nil
}

// Save writes an export file with indented JSON, matching what the app
// itself produces.
func Save(path string, export *Export) error {
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
