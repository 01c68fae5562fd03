// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package roster

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/faculty-kb/pkg/types"
)

func writeRoster(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeRoster(t, "faculty-data.json", `{
		"last_updated": "2025-01-30",
		"source": "https://www.alueducation.com/faculty/",
		"departments": {"bel": {"members": 13}},
		"faculty": [
			{"name": "Ryan Johnson", "role": "Specialisation Lead", "department": "BEL", "category": "bel"},
			{"name": "Dr. Chioma Joy Okonkwo", "extra": "ignored"}
		]
	}`)

	rf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "2025-01-30", rf.LastUpdated)
	assert.Equal(t, "https://www.alueducation.com/faculty/", rf.Source)
	assert.Equal(t, map[string]any{"bel": map[string]any{"members": float64(13)}}, rf.Departments)
	assert.Equal(t, []types.FacultyRecord{
		{Name: "Ryan Johnson", Role: "Specialisation Lead", Department: "BEL", Category: "bel"},
		{Name: "Dr. Chioma Joy Okonkwo"},
	}, rf.Faculty)
}

func TestLoadJSONEdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []types.FacultyRecord
		errMsg  string
	}{
		{
			name:    "missing faculty key is an empty roster",
			content: `{"source": "x"}`,
			want:    nil,
		},
		{
			name:    "null faculty is an empty roster",
			content: `{"faculty": null}`,
			want:    nil,
		},
		{
			name:    "malformed fields default to empty",
			content: `{"faculty": [{"name": 42, "role": ["a"], "department": null, "category": "elab"}]}`,
			want:    []types.FacultyRecord{{Category: "elab"}},
		},
		{
			name:    "non-object records become empty records",
			content: `{"faculty": ["Jane Doe", 7, null, {"name": "Jane Doe"}]}`,
			want:    []types.FacultyRecord{{}, {}, {}, {Name: "Jane Doe"}},
		},
		{
			name:    "faculty that is not a list fails",
			content: `{"faculty": {"name": "Jane Doe"}}`,
			errMsg:  "parsing JSON",
		},
		{
			name:    "top level that is not an object fails",
			content: `[{"name": "Jane Doe"}]`,
			errMsg:  "parsing JSON",
		},
		{
			name:    "syntax error fails",
			content: `{"faculty": [`,
			errMsg:  "parsing JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rf, err := Load(writeRoster(t, "roster.json", tt.content))
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, rf.Faculty)
		})
	}
}

func TestLoadYAML(t *testing.T) {
	rf, err := Load("testdata/roster.yaml")
	require.NoError(t, err)

	assert.Equal(t, "2025-02-14", rf.LastUpdated)
	require.Len(t, rf.Faculty, 3)
	assert.Equal(t, types.FacultyRecord{
		Name:       "Marvin Ogore",
		Role:       "Specialisation Coach (Machine Learning)",
		Department: "Software Engineering",
		Category:   "software_engineering",
	}, rf.Faculty[0])
	assert.Equal(t, "Full-stack web development and instructional design.", rf.Faculty[1].Description)
	assert.Equal(t, types.FacultyRecord{Department: "Software Engineering"}, rf.Faculty[2],
		"non-string values default to empty")
	assert.Contains(t, rf.Departments, "software_engineering")
}

func TestLoadYAMLEmptyDocument(t *testing.T) {
	rf, err := Load(writeRoster(t, "roster.yml", ""))
	require.NoError(t, err)
	assert.Empty(t, rf.Faculty)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "faculty-data.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "opening roster")
}

func TestDecodeJSON(t *testing.T) {
	rf, err := DecodeJSON(strings.NewReader(`{"faculty":[{"name":"Seth Abimana","category":"foundation"}]}`))
	require.NoError(t, err)
	assert.Equal(t, []types.FacultyRecord{{Name: "Seth Abimana", Category: "foundation"}}, rf.Faculty)
}
