package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NamesFile is the player name list inside the data directory
const NamesFile = "names.json"

// LoadPlayerNames loads the player name pool from names.json.
// Blank entries and duplicates are dropped, order is preserved.
func LoadPlayerNames(dataDir string) ([]string, error) {
	filePath := filepath.Join(dataDir, NamesFile)
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", NamesFile, err)
	}

	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", NamesFile, err)
	}

	seen := make(map[string]bool, len(raw))
	names := make([]string, 0, len(raw))
	for _, name := range raw {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%s contains no usable names", NamesFile)
	}

	return names, nil
}
