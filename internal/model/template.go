package model

import (
	"time"

	"github.com/google/uuid"
)

// ProjectTemplate is a reusable dashboard starting point: a set of
// panels with their source bindings and styling, ready to instantiate
// as a fresh project.
type ProjectTemplate struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	Panels      []Panel `json:"panels"`
}

// NewProjectTemplate creates a template from the given panels. The
// panels are deep-copied so later edits to the project do not bleed
// into the template.
func NewProjectTemplate(name, description string, panels []Panel) ProjectTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return ProjectTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Panels:      copyPanels(panels),
	}
}

// ToProject creates a new Project from this template. Panels get
// fresh IDs so they are independent of the template.
func (t ProjectTemplate) ToProject(projectName string) Project {
	panels := make([]Panel, len(t.Panels))
	for i, p := range t.Panels {
		panels[i] = p.Clone()
		panels[i].ID = uuid.New().String()[:8]
	}
	return Project{
		Name:   projectName,
		Panels: panels,
	}
}

// TemplateStore holds a collection of project templates.
type TemplateStore struct {
	Templates []ProjectTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []ProjectTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t ProjectTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *ProjectTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names for UI dropdowns.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *ProjectTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// copyPanels creates a deep copy of a panels slice.
func copyPanels(panels []Panel) []Panel {
	cp := make([]Panel, len(panels))
	for i, p := range panels {
		cp[i] = p.Clone()
	}
	return cp
}

// BuiltInTemplates returns the canned dashboards offered on first run.
func BuiltInTemplates() []ProjectTemplate {
	return []ProjectTemplate{
		NewProjectTemplate("System Overview",
			"CPU, memory, disk, and network at a glance",
			[]Panel{overviewPanel()}),
		NewProjectTemplate("CPU Monitor",
			"Usage history plus per-core load",
			[]Panel{cpuPanel()}),
		NewProjectTemplate("Network Monitor",
			"Receive and transmit rates",
			[]Panel{networkPanel()}),
	}
}

func overviewPanel() Panel {
	p := NewPanel("System Overview")
	p.SetGroupCount(2)
	p.SetGroupItemCount(0, 2)
	p.SetGroupItemCount(1, 2)
	p.Source.SetSlot("group1_1", SlotConfig{SourceID: "cpu"})
	p.Source.SetSlot("group1_2", SlotConfig{SourceID: "memory"})
	p.Source.SetSlot("group2_1", SlotConfig{SourceID: "disk"})
	p.Source.SetSlot("group2_2", SlotConfig{SourceID: "network", SourceConfig: map[string]any{"direction": "rx"}})
	p.Style.Style = "lcars"
	p.Style.Theme = GetPreset("lcars")
	return p
}

func cpuPanel() Panel {
	p := NewPanel("CPU Monitor")
	p.SetGroupCount(2)
	p.SetGroupItemCount(0, 1)
	p.SetGroupItemCount(1, 1)
	p.SetGroupWeight(0, 2.0)
	p.Source.SetSlot("group1_1", SlotConfig{SourceID: "cpu"})
	p.Source.SetSlot("group2_1", SlotConfig{SourceID: "cpu"})
	graph := DefaultContentItem()
	graph.DisplayAs = DisplayGraph
	cores := DefaultContentItem()
	cores.DisplayAs = DisplayCoreBars
	p.Style.ContentItems["group1_1"] = &graph
	p.Style.ContentItems["group2_1"] = &cores
	p.Style.Style = "cyberpunk"
	p.Style.Theme = GetPreset("cyberpunk")
	return p
}

func networkPanel() Panel {
	p := NewPanel("Network Monitor")
	p.SetGroupCount(1)
	p.SetGroupItemCount(0, 2)
	p.Source.SetSlot("group1_1", SlotConfig{SourceID: "network", CaptionOverride: "Down", SourceConfig: map[string]any{"direction": "rx"}})
	p.Source.SetSlot("group1_2", SlotConfig{SourceID: "network", CaptionOverride: "Up", SourceConfig: map[string]any{"direction": "tx"}})
	rx := DefaultContentItem()
	rx.DisplayAs = DisplayGraph
	tx := DefaultContentItem()
	tx.DisplayAs = DisplayGraph
	p.Style.ContentItems["group1_1"] = &rx
	p.Style.ContentItems["group1_2"] = &tx
	p.Style.Style = "retro_terminal"
	p.Style.Theme = GetPreset("retro_terminal")
	return p
}
