package model

// AppConfig holds application-wide preferences and the defaults
// applied to newly created panels.
type AppConfig struct {
	// Defaults for new panels
	DefaultUpdateIntervalMS  int64   `json:"default_update_interval_ms"`
	DefaultPreset            string  `json:"default_preset"`
	DefaultAnimationEnabled  bool    `json:"default_animation_enabled"`
	DefaultAnimationSpeed    float64 `json:"default_animation_speed"`
	DefaultLayoutOrientation string  `json:"default_layout_orientation"`

	// Application preferences
	AutoSaveInterval int      `json:"auto_save_interval"` // minutes, 0 = disabled
	RecentProjects   []string `json:"recent_projects"`
	Theme            string   `json:"theme"` // "light", "dark", "system"
}

// maxRecentProjects caps the recent-projects menu length.
const maxRecentProjects = 8

// DefaultAppConfig returns an AppConfig populated with sensible
// defaults matching a fresh panel's values.
func DefaultAppConfig() AppConfig {
	style := DefaultStyleConfig()
	return AppConfig{
		DefaultUpdateIntervalMS:  defaultUpdateIntervalMS,
		DefaultPreset:            style.Style,
		DefaultAnimationEnabled:  style.AnimationEnabled,
		DefaultAnimationSpeed:    style.AnimationSpeed,
		DefaultLayoutOrientation: string(style.LayoutOrientation),
		AutoSaveInterval:         0,
		RecentProjects:           []string{},
		Theme:                    "system",
	}
}

// ApplyToPanel copies the saved defaults into a panel. Used when
// creating a new panel so it inherits the user's preferences.
func (c AppConfig) ApplyToPanel(p *Panel) {
	if c.DefaultUpdateIntervalMS > 0 {
		p.Source.UpdateIntervalMS = c.DefaultUpdateIntervalMS
	}
	if c.DefaultPreset != "" {
		p.Style.Style = c.DefaultPreset
		p.Style.Theme = GetPreset(c.DefaultPreset)
	}
	p.Style.AnimationEnabled = c.DefaultAnimationEnabled
	if c.DefaultAnimationSpeed > 0 {
		p.Style.AnimationSpeed = c.DefaultAnimationSpeed
	}
	if LayoutOrientation(c.DefaultLayoutOrientation) == OrientationHorizontal {
		p.Style.LayoutOrientation = OrientationHorizontal
	}
}

// RememberProject moves a path to the front of the recent list,
// dropping duplicates and trimming to the cap.
func (c *AppConfig) RememberProject(path string) {
	if path == "" {
		return
	}
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentProjects {
		recent = recent[:maxRecentProjects]
	}
	c.RecentProjects = recent
}
