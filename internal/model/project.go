package model

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Panel is one dashboard panel: a named pairing of a data-source
// config (what feeds each slot) and a style config (how it is drawn).
type Panel struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Source PanelSourceConfig `json:"source"`
	Style  PanelStyleConfig  `json:"style"`
}

// NewPanel creates a panel with a generated ID and default configs.
func NewPanel(name string) Panel {
	return Panel{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Source: DefaultSourceConfig(),
		Style:  DefaultStyleConfig(),
	}
}

// Normalize migrates and repairs both halves of the panel. Runs on
// every load, before anything else observes the configs.
func (p *Panel) Normalize() {
	p.Source.MigrateLegacy()
	p.Source.Normalize()
	p.Style.MigrateContentKeys()
	p.Style.Normalize()
	p.syncCounts()
}

// syncCounts aligns the style side's per-group vectors with the source
// side's groups. The source groups are authoritative for group count
// and item counts (they decide which slots get sampled); weights live
// on both sides and the source copy wins when they disagree.
func (p *Panel) syncCounts() {
	n := len(p.Source.Groups)
	if n == 0 {
		return
	}
	p.Style.SetGroupCount(n)
	for i, g := range p.Source.Groups {
		p.Style.GroupItemCounts[i] = g.ItemCount
		p.Style.GroupSizeWeights[i] = g.SizeWeight
	}
}

// SetGroupCount resizes both halves together. New source groups start
// with the default item count so the new slots have somewhere to bind.
func (p *Panel) SetGroupCount(n int) {
	if n < 1 {
		n = 1
	}
	for len(p.Source.Groups) < n {
		p.Source.Groups = append(p.Source.Groups, GroupConfig{ItemCount: defaultGroupItemCount, SizeWeight: 1.0})
	}
	p.Source.Groups = p.Source.Groups[:n]
	p.syncCounts()
}

// SetGroupItemCount changes the number of items in group g (0-based),
// clamped into the valid range, on both halves.
func (p *Panel) SetGroupItemCount(g, count int) {
	if g < 0 || g >= len(p.Source.Groups) {
		return
	}
	if count < MinGroupItems {
		count = MinGroupItems
	} else if count > MaxGroupItems {
		count = MaxGroupItems
	}
	p.Source.Groups[g].ItemCount = count
	p.syncCounts()
}

// SetGroupWeight changes the size weight of group g (0-based) on both
// halves. Non-positive weights are ignored.
func (p *Panel) SetGroupWeight(g int, w float64) {
	if g < 0 || g >= len(p.Source.Groups) || w <= 0 {
		return
	}
	p.Source.Groups[g].SizeWeight = w
	p.syncCounts()
}

// Clone returns a deep copy of the panel with the same ID. Both
// halves nest maps and slices, so the copy goes through the JSON form.
func (p Panel) Clone() Panel {
	data, err := json.Marshal(p)
	if err != nil {
		return p
	}
	var out Panel
	if err := json.Unmarshal(data, &out); err != nil {
		return p
	}
	return out
}

// Project is the top-level saved document: a named list of panels.
type Project struct {
	Name   string  `json:"name"`
	Panels []Panel `json:"panels"`
}

// NewProject creates a project with one default panel.
func NewProject() Project {
	return Project{
		Name:   "Untitled Dashboard",
		Panels: []Panel{NewPanel("Panel 1")},
	}
}

// Normalize migrates every panel in place.
func (p *Project) Normalize() {
	for i := range p.Panels {
		p.Panels[i].Normalize()
	}
}

// AddPanel appends a new default panel and returns a pointer to it.
func (p *Project) AddPanel(name string) *Panel {
	p.Panels = append(p.Panels, NewPanel(name))
	return &p.Panels[len(p.Panels)-1]
}

// RemovePanel deletes the panel with the given ID. Returns false when
// no panel matches.
func (p *Project) RemovePanel(id string) bool {
	for i := range p.Panels {
		if p.Panels[i].ID == id {
			p.Panels = append(p.Panels[:i], p.Panels[i+1:]...)
			return true
		}
	}
	return false
}

// FindPanel returns a pointer to the panel with the given ID, or nil.
func (p *Project) FindPanel(id string) *Panel {
	for i := range p.Panels {
		if p.Panels[i].ID == id {
			return &p.Panels[i]
		}
	}
	return nil
}

// PanelNames returns the panel names in order, for UI dropdowns.
func (p Project) PanelNames() []string {
	names := make([]string, len(p.Panels))
	for i, panel := range p.Panels {
		names[i] = panel.Name
	}
	return names
}
