package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a schema document from path.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a schema document and validates it.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
