// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the roster, knowledge-base, and configuration types
// shared by the faculty-kb packages.
package types

import (
	"encoding/json"

	"go.yaml.in/yaml/v3"
)

// Category is the programme grouping a faculty member belongs to.
type Category string

const (
	CategoryFoundation          Category = "foundation"
	CategoryBEL                 Category = "bel"
	CategoryELab                Category = "elab"
	CategoryMissionCurators     Category = "mission_curators"
	CategorySoftwareEngineering Category = "software_engineering"
)

// Categories lists the recognized category codes in summary order.
var Categories = []Category{
	CategoryFoundation,
	CategoryBEL,
	CategoryELab,
	CategoryMissionCurators,
	CategorySoftwareEngineering,
}

// Known reports whether c is one of the recognized category codes.
func (c Category) Known() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// FacultyRecord is one person on the roster. Every field is optional and
// defaults to the empty string.
type FacultyRecord struct {
	Name        string `json:"name" yaml:"name"`
	Role        string `json:"role" yaml:"role"`
	Department  string `json:"department" yaml:"department"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
}

// UnmarshalJSON decodes a record leniently. Values that are not JSON
// strings, and records that are not JSON objects, decode to empty fields.
func (r *FacultyRecord) UnmarshalJSON(data []byte) error {
	*r = FacultyRecord{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}

	for key, dst := range r.fieldPointers() {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			*dst = s
		}
	}
	return nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML rosters: only string scalars
// are taken.
func (r *FacultyRecord) UnmarshalYAML(value *yaml.Node) error {
	*r = FacultyRecord{}
	if value.Kind != yaml.MappingNode {
		return nil
	}

	ptrs := r.fieldPointers()
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		dst, ok := ptrs[key.Value]
		if !ok {
			continue
		}
		if val.Kind == yaml.ScalarNode && val.ShortTag() == "!!str" {
			*dst = val.Value
		}
	}
	return nil
}

func (r *FacultyRecord) fieldPointers() map[string]*string {
	return map[string]*string{
		"name":        &r.Name,
		"role":        &r.Role,
		"department":  &r.Department,
		"description": &r.Description,
		"category":    &r.Category,
	}
}

// RosterFile is the input document: the roster plus optional provenance
// fields and a free-form departments structure passed through to the summary.
type RosterFile struct {
	Faculty     []FacultyRecord `json:"faculty" yaml:"faculty"`
	LastUpdated string          `json:"last_updated,omitempty" yaml:"last_updated,omitempty"`
	Source      string          `json:"source,omitempty" yaml:"source,omitempty"`
	Departments map[string]any  `json:"departments,omitempty" yaml:"departments,omitempty"`
}
