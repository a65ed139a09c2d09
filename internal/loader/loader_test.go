package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPlayerNames(t *testing.T) {
	names, err := LoadPlayerNames("../../data")
	if err != nil {
		t.Fatalf("Failed to load names: %v", err)
	}

	if len(names) < 10 {
		t.Errorf("Expected a usable name pool, got %d names", len(names))
	}

	t.Logf("Loaded %d player names, first: %s", len(names), names[0])
}

func TestLoadPlayerNamesDropsBlanksAndDuplicates(t *testing.T) {
	dir := t.TempDir()
	content := `["Alpha", "  ", "Beta", "Alpha", " Gamma "]`
	if err := os.WriteFile(filepath.Join(dir, NamesFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	names, err := LoadPlayerNames(dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []string{"Alpha", "Beta", "Gamma"}
	if len(names) != len(want) {
		t.Fatalf("Expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestLoadPlayerNamesErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{nope"},
		{"wrong shape", `{"a": 1}`},
		{"empty list", `[]`},
		{"only blanks", `["", "   "]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, NamesFile), []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadPlayerNames(dir); err == nil {
				t.Error("Expected an error")
			}
		})
	}

	if _, err := LoadPlayerNames(t.TempDir()); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
