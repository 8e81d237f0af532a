package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/PulseBoard/internal/model"
)

// FileExtension is the suggested extension for saved dashboard files.
const FileExtension = ".pulseboard"

// Save writes a project to the given path as indented JSON, creating
// missing parent directories.
func Save(path string, p model.Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding project: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a project from the given path. Every panel is normalized
// on the way in, so files written by old versions (primary/secondary
// slot naming, missing fields) come back in today's shape without the
// caller ever seeing the legacy form.
func Load(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("reading project file: %w", err)
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("parsing project file: %w", err)
	}
	p.Normalize()
	return p, nil
}
