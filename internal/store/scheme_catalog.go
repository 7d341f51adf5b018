package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/internal/domain"
)

// LoadCatalog reads the scheme catalog from a JSON file. The catalog is loaded
// once at startup and treated as immutable for the lifetime of the process.
func LoadCatalog(path string) ([]domain.Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scheme catalog %s: %w", path, err)
	}

	var schemes []domain.Scheme
	if err := json.Unmarshal(data, &schemes); err != nil {
		return nil, fmt.Errorf("failed to parse scheme catalog %s: %w", path, err)
	}

	for i, s := range schemes {
		if len(s.States) == 0 {
			return nil, fmt.Errorf("scheme catalog %s: entry %d (%q) has no state list", path, i, s.Name)
		}
	}
	return schemes, nil
}
