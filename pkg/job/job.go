package job

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the job file looked up inside a project directory.
const FileName = "job.yaml"

// Load reads a job from a YAML file.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a job from YAML (or JSON, which YAML accepts).
func Parse(data []byte) (*Job, error) {
	var j Job
	if err := yaml.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parsing job YAML: %w", err)
	}
	return &j, nil
}

// LoadProject loads a job from a project directory.
// It looks for job.yaml in the given directory.
func LoadProject(projectDir string) (*Job, error) {
	return Load(filepath.Join(projectDir, FileName))
}
