package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if c.Threshold != 0.7 {
		t.Errorf("default threshold = %v, want 0.7", c.Threshold)
	}

	// a missing file is not an error either
	c, err = Load(filepath.Join(t.TempDir(), "nope.ini"))
	if err != nil {
		t.Fatalf("Load(missing): %v", err)
	}
	if c.Threshold != 0.7 {
		t.Errorf("threshold = %v, want default", c.Threshold)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mirubato-tools.ini")
	content := "[match]\nthreshold = 0.85\n\n[output]\npath = cleaned.json\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Threshold != 0.85 {
		t.Errorf("threshold = %v, want 0.85", c.Threshold)
	}
	if c.OutputPath != "cleaned.json" {
		t.Errorf("output path = %q, want cleaned.json", c.OutputPath)
	}
}
