package model

import "github.com/google/uuid"

// LayoutPreset is a named, reusable panel layout stored in the user's
// library. The config carries everything Transferable captures, so
// applying a preset restores groups, dividers, theme, and content.
type LayoutPreset struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Config      TransferableConfig `json:"config"`
}

// NewLayoutPreset creates a preset with a generated ID.
func NewLayoutPreset(name, description string, cfg TransferableConfig) LayoutPreset {
	return LayoutPreset{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		Config:      cfg,
	}
}

// Library holds the user's saved layout presets.
type Library struct {
	Presets []LayoutPreset `json:"presets"`
}

// DefaultLibrary returns a library stocked with a few starting points.
func DefaultLibrary() Library {
	single := DefaultStyleConfig()

	split := DefaultStyleConfig()
	split.SetGroupCount(2)
	split.GroupSizeWeights = []float64{1.0, 2.0}

	quad := DefaultStyleConfig()
	quad.SetGroupCount(4)
	quad.LayoutOrientation = OrientationHorizontal
	for i := range quad.GroupItemOrientations {
		quad.GroupItemOrientations[i] = OrientationVertical
	}

	return Library{
		Presets: []LayoutPreset{
			NewLayoutPreset("Single Group", "One group, two stacked items", single.Transferable()),
			NewLayoutPreset("Split 1:2", "Two vertical groups, lower one double height", split.Transferable()),
			NewLayoutPreset("Quad Columns", "Four side-by-side columns", quad.Transferable()),
		},
	}
}

// FindPresetByID returns a pointer to the preset with the given ID, or nil.
func (l *Library) FindPresetByID(id string) *LayoutPreset {
	for i := range l.Presets {
		if l.Presets[i].ID == id {
			return &l.Presets[i]
		}
	}
	return nil
}

// FindPresetByName returns a pointer to the first preset with the given
// name, or nil.
func (l *Library) FindPresetByName(name string) *LayoutPreset {
	for i := range l.Presets {
		if l.Presets[i].Name == name {
			return &l.Presets[i]
		}
	}
	return nil
}

// PresetNames returns the preset names in order, for UI dropdowns.
func (l *Library) PresetNames() []string {
	names := make([]string, len(l.Presets))
	for i, p := range l.Presets {
		names[i] = p.Name
	}
	return names
}

// AddPreset appends a preset to the library.
func (l *Library) AddPreset(p LayoutPreset) {
	l.Presets = append(l.Presets, p)
}

// RemovePreset deletes the preset with the given ID. Returns false
// when no preset matches.
func (l *Library) RemovePreset(id string) bool {
	for i := range l.Presets {
		if l.Presets[i].ID == id {
			l.Presets = append(l.Presets[:i], l.Presets[i+1:]...)
			return true
		}
	}
	return false
}
