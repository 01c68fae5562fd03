// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package roster loads faculty roster files.
package roster

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/faculty-kb/pkg/types"
)

// Load reads a roster file. Files ending in .yaml or .yml are parsed as
// YAML; everything else as JSON. A missing file yields an error wrapping
// fs.ErrNotExist. A missing faculty key is an empty roster; a faculty value
// that is not a list is an error.
func Load(path string) (*types.RosterFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster %s: %w", path, err)
	}
	defer f.Close()

	var rf *types.RosterFile
	if isYAML(path) {
		rf, err = DecodeYAML(f)
	} else {
		rf, err = DecodeJSON(f)
	}
	if err != nil {
		return nil, fmt.Errorf("loading roster %s: %w", path, err)
	}
	return rf, nil
}

// DecodeJSON parses a JSON roster document.
func DecodeJSON(r io.Reader) (*types.RosterFile, error) {
	var rf types.RosterFile
	if err := json.NewDecoder(r).Decode(&rf); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return &rf, nil
}

// DecodeYAML parses a YAML roster document. An empty document is an empty
// roster.
func DecodeYAML(r io.Reader) (*types.RosterFile, error) {
	var rf types.RosterFile
	if err := yaml.NewDecoder(r).Decode(&rf); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	return &rf, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
