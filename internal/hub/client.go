// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package hub uploads files to a Hugging Face Hub repository through the
// commit API. Each PutFile call is one HTTP request; there is no retry.
package hub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/faculty-kb/internal/httputil"
	"github.com/pdiddy/faculty-kb/pkg/types"
)

const (
	DefaultEndpoint = "https://huggingface.co"
	DefaultRepoType = "space"
	DefaultRevision = "main"
)

// Client talks to the Hub commit endpoint.
type Client struct {
	http *http.Client
	cfg  types.HubConfig
	log  *zap.Logger
}

// NewClient returns a Client for cfg. Empty Endpoint, RepoType, and Revision
// take the package defaults. A nil logger discards output.
func NewClient(cfg types.HubConfig, logger *zap.Logger) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")
	if cfg.RepoType == "" {
		cfg.RepoType = DefaultRepoType
	}
	if cfg.Revision == "" {
		cfg.Revision = DefaultRevision
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http: httputil.NewClient(cfg.HTTPConfig),
		cfg:  cfg,
		log:  logger,
	}
}

// CommitInfo is the Hub's answer to a successful commit.
type CommitInfo struct {
	CommitURL string `json:"commitUrl"`
	CommitOID string `json:"commitOid"`
}

// commitLine is one record of the NDJSON commit payload.
type commitLine struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

type commitHeader struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
}

type commitFile struct {
	Content  string `json:"content"`
	Path     string `json:"path"`
	Encoding string `json:"encoding"`
}

// PutFile commits content to pathInRepo in repoID with commitMessage as the
// commit summary.
func (c *Client) PutFile(ctx context.Context, content []byte, pathInRepo, repoID, commitMessage string) error {
	_, err := c.Commit(ctx, content, pathInRepo, repoID, commitMessage)
	return err
}

// Commit is PutFile returning the commit details.
func (c *Client) Commit(ctx context.Context, content []byte, pathInRepo, repoID, commitMessage string) (*CommitInfo, error) {
	if repoID == "" {
		return nil, fmt.Errorf("repository id is required")
	}
	if pathInRepo == "" {
		return nil, fmt.Errorf("destination path is required")
	}

	body, err := commitPayload(content, pathInRepo, commitMessage)
	if err != nil {
		return nil, err
	}

	endpoint := c.commitURL(repoID)
	req, err := httputil.NewRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(body), c.cfg.HTTPConfig, c.cfg.Token)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-ndjson")

	c.log.Debug("committing file",
		zap.String("url", endpoint),
		zap.String("path", pathInRepo),
		zap.Int("bytes", len(content)),
		zap.Bool("authenticated", c.cfg.Token != ""))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hub commit request: %w", err)
	}
	defer resp.Body.Close()

	if err := httputil.CheckResponse(resp); err != nil {
		return nil, fmt.Errorf("hub commit to %s: %w", repoID, err)
	}

	var info CommitInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("parsing hub commit response: %w", err)
	}
	c.log.Info("committed file",
		zap.String("repo", repoID),
		zap.String("path", pathInRepo),
		zap.String("commit", info.CommitOID))
	return &info, nil
}

// RepoURL returns the browser URL of repoID.
func (c *Client) RepoURL(repoID string) string {
	return RepoURL(c.cfg.Endpoint, c.cfg.RepoType, repoID)
}

// RepoURL returns the browser URL of a repository. Models live at the
// endpoint root; spaces and datasets under their plural prefix.
func RepoURL(endpoint, repoType, repoID string) string {
	endpoint = strings.TrimRight(endpoint, "/")
	if repoType == "model" {
		return endpoint + "/" + repoID
	}
	return endpoint + "/" + repoType + "s/" + repoID
}

func (c *Client) commitURL(repoID string) string {
	return fmt.Sprintf("%s/api/%ss/%s/commit/%s",
		c.cfg.Endpoint, c.cfg.RepoType, repoID, url.PathEscape(c.cfg.Revision))
}

func commitPayload(content []byte, pathInRepo, summary string) ([]byte, error) {
	lines := []commitLine{
		{Key: "header", Value: commitHeader{Summary: summary}},
		{Key: "file", Value: commitFile{
			Content:  base64.StdEncoding.EncodeToString(content),
			Path:     pathInRepo,
			Encoding: "base64",
		}},
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, l := range lines {
		if err := enc.Encode(l); err != nil {
			return nil, fmt.Errorf("encoding commit payload: %w", err)
		}
	}
	return buf.Bytes(), nil
}
