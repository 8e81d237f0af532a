package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/piwi3910/PulseBoard/internal/model"
)

// DefaultPresetsPath returns the default file path for custom theme
// presets, located next to the app config.
func DefaultPresetsPath() string {
	return filepath.Join(DefaultConfigDir(), "presets.json")
}

// SaveCustomPresets saves user-defined theme presets to a JSON file.
func SaveCustomPresets(path string, presets []model.PanelTheme) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(presets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCustomPresets loads user-defined theme presets from a JSON file.
// Returns an empty slice if the file does not exist. Unnamed presets
// are dropped; they could never be selected.
func LoadCustomPresets(path string) ([]model.PanelTheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.PanelTheme{}, nil
		}
		return nil, err
	}

	var presets []model.PanelTheme
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, err
	}

	kept := presets[:0]
	for _, p := range presets {
		if p.Name != "" {
			kept = append(kept, p)
		}
	}
	return kept, nil
}

// RegisterCustomPresets makes loaded presets selectable in pickers.
func RegisterCustomPresets(presets []model.PanelTheme) {
	for _, p := range presets {
		model.AddCustomPreset(p)
	}
}

// CurrentCustomPresets snapshots the registered custom presets in
// picker order, ready to persist.
func CurrentCustomPresets() []model.PanelTheme {
	presets := make([]model.PanelTheme, 0, len(model.CustomPresets))
	for _, name := range model.GetPresetNames() {
		if t, ok := model.CustomPresets[name]; ok {
			presets = append(presets, t)
		}
	}
	return presets
}

// ExportPreset exports a single theme preset to a JSON file (for sharing).
func ExportPreset(path string, preset model.PanelTheme) error {
	data, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportPreset imports a single theme preset from a JSON file.
func ImportPreset(path string) (model.PanelTheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.PanelTheme{}, err
	}

	var preset model.PanelTheme
	if err := json.Unmarshal(data, &preset); err != nil {
		return model.PanelTheme{}, err
	}

	if preset.Name == "" {
		return model.PanelTheme{}, errors.New("imported preset has no name")
	}
	return preset, nil
}
