package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/PulseBoard/internal/model"
)

// DefaultLibraryPath returns the default file path for the layout
// library. This is located at ~/.pulseboard/library.json.
func DefaultLibraryPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pulseboard", "library.json"), nil
}

// SaveLibrary writes the layout library to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveLibrary(path string, lib model.Library) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(lib, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadLibrary reads the layout library from the specified JSON file.
// If the file does not exist, it returns the default library and saves it.
func LoadLibrary(path string) (model.Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lib := model.DefaultLibrary()
			if saveErr := SaveLibrary(path, lib); saveErr != nil {
				return lib, saveErr
			}
			return lib, nil
		}
		return model.Library{}, err
	}
	var lib model.Library
	if err := json.Unmarshal(data, &lib); err != nil {
		return model.Library{}, err
	}
	return lib, nil
}

// LoadOrCreateLibrary loads the layout library from the default path.
// If the file does not exist, it creates one with the default presets.
func LoadOrCreateLibrary() (model.Library, string, error) {
	path, err := DefaultLibraryPath()
	if err != nil {
		return model.DefaultLibrary(), "", err
	}
	lib, err := LoadLibrary(path)
	return lib, path, err
}

// ExportLibrary exports the layout library to a user-specified JSON file.
func ExportLibrary(path string, lib model.Library) error {
	return SaveLibrary(path, lib)
}

// ImportLibrary imports a layout library from a user-specified JSON
// file, merging it with the existing library. Duplicate preset IDs are
// skipped.
func ImportLibrary(path string, existing model.Library) (model.Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.Library
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}

	ids := make(map[string]bool, len(existing.Presets))
	for _, p := range existing.Presets {
		ids[p.ID] = true
	}

	for _, p := range imported.Presets {
		if !ids[p.ID] {
			existing.Presets = append(existing.Presets, p)
			ids[p.ID] = true
		}
	}

	return existing, nil
}
