// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(t *testing.T) string
		want   map[string]string
		errMsg string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "hf-token", "  hf_abc123  \n")
				writeFile(t, dir, "other-key", "xyz789")
				return dir
			},
			want: map[string]string{
				"hf-token":  "hf_abc123",
				"other-key": "xyz789",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty files",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "hf-token", "valid-key")
				writeFile(t, dir, "empty-key", "")
				writeFile(t, dir, "whitespace-only", "   \n\t  ")
				return dir
			},
			want: map[string]string{
				"hf-token": "valid-key",
			},
		},
		{
			name: "skips dotfiles and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, ".gitkeep", "")
				writeFile(t, dir, ".hidden-key", "secret")
				writeFile(t, dir, "hf-token", "hf_real")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: map[string]string{
				"hf-token": "hf_real",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.setup(t)
			got, err := Load(dir)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHubToken(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		loaded     map[string]string
		wantToken  string
		wantOrigin string
	}{
		{
			name:       "HF_TOKEN wins",
			env:        map[string]string{"HF_TOKEN": "hf_a", "HUGGING_FACE_TOKEN": "hf_b"},
			loaded:     map[string]string{HubTokenFile: "hf_c"},
			wantToken:  "hf_a",
			wantOrigin: "HF_TOKEN",
		},
		{
			name:       "falls back to HUGGING_FACE_TOKEN",
			env:        map[string]string{"HUGGING_FACE_TOKEN": " hf_b "},
			wantToken:  "hf_b",
			wantOrigin: "HUGGING_FACE_TOKEN",
		},
		{
			name:       "falls back to secrets file",
			env:        map[string]string{"HF_TOKEN": "  "},
			loaded:     map[string]string{HubTokenFile: "hf_c"},
			wantToken:  "hf_c",
			wantOrigin: filepath.Join(".secrets", HubTokenFile),
		},
		{
			name: "no token anywhere",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(k string) string { return tt.env[k] }
			token, origin := HubToken(getenv, tt.loaded)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, tt.wantOrigin, origin)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	const key = "FACULTY_KB_DOTENV_TEST"
	t.Cleanup(func() { os.Unsetenv(key) })

	dir := t.TempDir()
	writeFile(t, dir, ".env", key+"=from-dotenv\n")

	require.NoError(t, LoadDotEnv(filepath.Join(dir, ".env")))
	assert.Equal(t, "from-dotenv", os.Getenv(key))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root can read files without permission bits")
	}
	dir := t.TempDir()
	writeFile(t, dir, "good-key", "value123")

	// Create a file then remove read permission.
	badPath := filepath.Join(dir, "bad-key")
	require.NoError(t, os.WriteFile(badPath, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(badPath, 0o644) })

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "value123", got["good-key"])
	_, hasBad := got["bad-key"]
	assert.False(t, hasBad, "unreadable file should not appear in result")
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
