// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package upload publishes a knowledge-base document to a remote store. It
// writes the document locally, makes exactly one PutFile call, and keeps the
// local file when that call fails so the upload can be repeated by hand.
package upload

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/pdiddy/faculty-kb/internal/kb"
	"github.com/pdiddy/faculty-kb/pkg/types"
)

// Store is the remote document store.
type Store interface {
	PutFile(ctx context.Context, content []byte, pathInRepo, repoID, commitMessage string) error
}

// Error reports a failed upload. LocalPath names the preserved document.
type Error struct {
	RepoID    string
	LocalPath string
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("uploading to %s failed (document kept at %s): %v", e.RepoID, e.LocalPath, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Result describes a successful upload.
type Result struct {
	RepoID        string
	PathInRepo    string
	CommitMessage string
	LocalPath     string
	LocalRemoved  bool
	Bytes         int
}

// DefaultCommitMessage names the roster size in the commit summary.
func DefaultCommitMessage(doc *types.KnowledgeBaseDocument) string {
	return fmt.Sprintf("Add complete ALU faculty directory to knowledge base (%d faculty members)", doc.PersonCount())
}

// Publish writes doc to cfg.LocalFile as JSON, then uploads that content to
// cfg.PathInRepo in cfg.RepoID. Progress lines go to w. On failure the
// returned error is an *Error and the local file is left in place.
func Publish(ctx context.Context, store Store, doc *types.KnowledgeBaseDocument, cfg types.UploadConfig, w io.Writer, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	msg := cfg.CommitMessage
	if msg == "" {
		msg = DefaultCommitMessage(doc)
	}
	result := Result{
		RepoID:        cfg.RepoID,
		PathInRepo:    cfg.PathInRepo,
		CommitMessage: msg,
		LocalPath:     cfg.LocalFile,
	}

	if err := kb.WriteFile(doc, cfg.LocalFile, types.FormatJSON); err != nil {
		return result, fmt.Errorf("writing local document: %w", err)
	}
	fmt.Fprintf(w, "wrote    %s (%d entries)\n", cfg.LocalFile, doc.TotalEntries)

	content, err := os.ReadFile(cfg.LocalFile)
	if err != nil {
		return result, fmt.Errorf("reading local document: %w", err)
	}
	result.Bytes = len(content)

	if err := store.PutFile(ctx, content, cfg.PathInRepo, cfg.RepoID, msg); err != nil {
		logger.Warn("upload failed",
			zap.String("repo", cfg.RepoID),
			zap.String("local", cfg.LocalFile),
			zap.Error(err))
		fmt.Fprintf(w, "failed   %s: %v\n", cfg.RepoID, err)
		fmt.Fprintf(w, "kept     %s for manual upload\n", cfg.LocalFile)
		return result, &Error{RepoID: cfg.RepoID, LocalPath: cfg.LocalFile, Err: err}
	}
	fmt.Fprintf(w, "uploaded %s -> %s:%s\n", cfg.LocalFile, cfg.RepoID, cfg.PathInRepo)

	if !cfg.KeepLocal {
		if err := os.Remove(cfg.LocalFile); err != nil {
			logger.Warn("could not remove local document", zap.String("path", cfg.LocalFile), zap.Error(err))
		} else {
			result.LocalRemoved = true
			fmt.Fprintf(w, "removed  %s\n", cfg.LocalFile)
		}
	}
	return result, nil
}
