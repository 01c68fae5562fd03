// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads access tokens from the environment, a .env file, and
// a directory of plain-text files. In the directory, each file represents one
// secret: the filename is the key name and the file contents (trimmed) are
// the value.
//
// Supported key files: hf-token.
package secrets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// HubTokenFile is the secrets-directory key holding a Hugging Face token.
const HubTokenFile = "hf-token"

// HubTokenEnv lists the environment variables checked for a Hugging Face
// token, in priority order.
var HubTokenEnv = []string{"HF_TOKEN", "HUGGING_FACE_TOKEN"}

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// LoadDotEnv copies variables from a .env file into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// HubToken returns the Hugging Face token from the environment, falling back
// to the loaded secrets. The second value names where the token came from.
// Both are empty when no token is configured.
func HubToken(getenv func(string) string, loaded map[string]string) (token, origin string) {
	for _, key := range HubTokenEnv {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v, key
		}
	}
	if v, ok := loaded[HubTokenFile]; ok {
		return v, filepath.Join(".secrets", HubTokenFile)
	}
	return "", ""
}
