package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/containerkit/waitfor/internal/domain"
)

// targetsFile is the on-disk schema for --targets-file.
type targetsFile struct {
	Targets []string `yaml:"targets"`
}

// loadTargetsFile reads additional HOST:PORT targets from a YAML file.
func loadTargetsFile(path string) ([]domain.Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read targets file: %w", err)
	}

	var file targetsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse targets file %s: %w", path, err)
	}

	targets := make([]domain.Target, 0, len(file.Targets))
	for _, entry := range file.Targets {
		target, err := domain.ParseTarget(entry)
		if err != nil {
			return nil, fmt.Errorf("targets file %s: %w", path, err)
		}
		targets = append(targets, target)
	}
	return targets, nil
}
