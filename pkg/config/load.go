package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFile is the config file name looked up by LoadProject.
const ProjectFile = "urbanplan.yaml"

// Load reads a YAML config file and overlays it on Default. Keys absent from
// the file keep their default values; map entries are merged per key.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config YAML: %w", err)
	}
	return cfg, nil
}

// LoadProject loads the config from a project directory. It looks for
// urbanplan.yaml and falls back to Default when the file does not exist.
func LoadProject(projectDir string) (Config, error) {
	path := filepath.Join(projectDir, ProjectFile)
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
