// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package hub

import (
	"bufio"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pdiddy/faculty-kb/internal/httputil"
	"github.com/pdiddy/faculty-kb/pkg/types"
)

type capturedCommit struct {
	method      string
	path        string
	auth        string
	contentType string
	userAgent   string
	lines       []map[string]json.RawMessage
}

func commitServer(t *testing.T, status int, respBody string, got *capturedCommit) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.auth = r.Header.Get("Authorization")
		got.contentType = r.Header.Get("Content-Type")
		got.userAgent = r.Header.Get("User-Agent")

		sc := bufio.NewScanner(r.Body)
		sc.Buffer(make([]byte, 1<<20), 1<<20)
		for sc.Scan() {
			var line map[string]json.RawMessage
			if err := json.Unmarshal(sc.Bytes(), &line); err != nil {
				t.Errorf("bad NDJSON line %q: %v", sc.Text(), err)
				continue
			}
			got.lines = append(got.lines, line)
		}

		w.WriteHeader(status)
		w.Write([]byte(respBody))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func testConfig(endpoint string) types.HubConfig {
	return types.HubConfig{
		HTTPConfig: types.HTTPConfig{UserAgent: "faculty-kb/test"},
		Endpoint:   endpoint,
		Token:      "hf_secret",
	}
}

func TestPutFile(t *testing.T) {
	var got capturedCommit
	ts := commitServer(t, http.StatusOK,
		`{"commitUrl":"https://hf.example/commit/abc","commitOid":"abc"}`, &got)

	c := NewClient(testConfig(ts.URL), zaptest.NewLogger(t))
	content := []byte(`{"category":"faculty","note":"Ngum — café"}`)

	info, err := c.Commit(context.Background(), content, "alu_brain/faculty.json", "Ngum/alu-chatbot", "Add faculty")
	require.NoError(t, err)
	assert.Equal(t, "abc", info.CommitOID)
	assert.Equal(t, "https://hf.example/commit/abc", info.CommitURL)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api/spaces/Ngum/alu-chatbot/commit/main", got.path)
	assert.Equal(t, "Bearer hf_secret", got.auth)
	assert.Equal(t, "application/x-ndjson", got.contentType)
	assert.Equal(t, "faculty-kb/test", got.userAgent)

	require.Len(t, got.lines, 2)
	assert.JSONEq(t, `"header"`, string(got.lines[0]["key"]))
	assert.JSONEq(t, `{"summary":"Add faculty","description":""}`, string(got.lines[0]["value"]))

	assert.JSONEq(t, `"file"`, string(got.lines[1]["key"]))
	var file commitFile
	require.NoError(t, json.Unmarshal(got.lines[1]["value"], &file))
	assert.Equal(t, "alu_brain/faculty.json", file.Path)
	assert.Equal(t, "base64", file.Encoding)
	decoded, err := base64.StdEncoding.DecodeString(file.Content)
	require.NoError(t, err)
	assert.Equal(t, content, decoded)
}

func TestPutFileRepoTypeAndRevision(t *testing.T) {
	var got capturedCommit
	ts := commitServer(t, http.StatusOK, `{"commitOid":"x"}`, &got)

	cfg := testConfig(ts.URL + "/")
	cfg.RepoType = "dataset"
	cfg.Revision = "refs/pr/1"
	cfg.Token = ""

	c := NewClient(cfg, nil)
	require.NoError(t, c.PutFile(context.Background(), []byte("{}"), "kb.json", "org/data", "msg"))

	assert.Equal(t, "/api/datasets/org/data/commit/refs/pr/1", got.path)
	assert.Empty(t, got.auth)
}

func TestPutFileHTTPError(t *testing.T) {
	var got capturedCommit
	ts := commitServer(t, http.StatusForbidden,
		`{"error":"You don't have the rights to create a commit"}`, &got)

	c := NewClient(testConfig(ts.URL), zaptest.NewLogger(t))
	err := c.PutFile(context.Background(), []byte("{}"), "alu_brain/faculty.json", "Ngum/alu-chatbot", "msg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ngum/alu-chatbot")
	assert.Contains(t, err.Error(), "rights to create a commit")

	var se *httputil.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusForbidden, se.StatusCode)
}

func TestPutFileSingleRequest(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c := NewClient(testConfig(ts.URL), nil)
	err := c.PutFile(context.Background(), []byte("{}"), "a.json", "o/r", "msg")
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestPutFileValidation(t *testing.T) {
	c := NewClient(testConfig("http://127.0.0.1:0"), nil)

	err := c.PutFile(context.Background(), []byte("{}"), "a.json", "", "msg")
	assert.EqualError(t, err, "repository id is required")

	err = c.PutFile(context.Background(), []byte("{}"), "", "o/r", "msg")
	assert.EqualError(t, err, "destination path is required")
}

func TestRepoURL(t *testing.T) {
	tests := []struct {
		repoType string
		want     string
	}{
		{"space", "https://huggingface.co/spaces/Ngum/alu-chatbot"},
		{"dataset", "https://huggingface.co/datasets/Ngum/alu-chatbot"},
		{"model", "https://huggingface.co/Ngum/alu-chatbot"},
	}
	for _, tt := range tests {
		t.Run(tt.repoType, func(t *testing.T) {
			assert.Equal(t, tt.want, RepoURL(DefaultEndpoint+"/", tt.repoType, "Ngum/alu-chatbot"))
		})
	}

	c := NewClient(types.HubConfig{}, nil)
	assert.Equal(t, "https://huggingface.co/spaces/Ngum/alu-chatbot", c.RepoURL("Ngum/alu-chatbot"))
}
