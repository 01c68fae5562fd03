// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/faculty-kb/internal/kb"
	"github.com/pdiddy/faculty-kb/internal/roster"
	"github.com/pdiddy/faculty-kb/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Convert the faculty roster into a knowledge-base document",
	Long: `Build reads the faculty roster (JSON, or YAML by extension) and writes the
knowledge-base document: one entry per faculty member plus a summary entry
with per-programme counts. Missing record fields default to empty text.`,
	RunE: runBuild,
}

func init() {
	addBuildFlags(buildCmd)
	buildCmd.Flags().String("output", defaultOutput, "path of the knowledge-base document")
	buildCmd.Flags().String("format", string(types.FormatJSON), "output format: json or yaml")

	rootCmd.AddCommand(buildCmd)
}

// addBuildFlags registers the flags shared by build and upload.
func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().String("input", defaultInput, "faculty roster file")
	cmd.Flags().String("last-updated", "", "override the roster's last_updated date")
	cmd.Flags().String("source", "", "override the roster's source URL")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(cmd)
	w := cmd.OutOrStdout()

	doc, err := loadAndBuild(cfg, w)
	if err != nil {
		return err
	}

	if err := kb.WriteFile(doc, cfg.Output, cfg.Format); err != nil {
		return err
	}
	fmt.Fprintf(w, "wrote    %s\n", cfg.Output)
	return nil
}

// loadAndBuild loads the roster named by cfg and builds the document,
// printing a short report to w.
func loadAndBuild(cfg types.BuildConfig, w io.Writer) (*types.KnowledgeBaseDocument, error) {
	rf, err := roster.Load(cfg.Input)
	if err != nil {
		return nil, err
	}

	opts := kb.OptionsFromRoster(rf)
	if cfg.LastUpdated != "" {
		opts.LastUpdated = cfg.LastUpdated
	}
	if cfg.Source != "" {
		opts.Source = cfg.Source
	}
	opts.Contact = cfg.Contact

	doc := kb.Build(rf.Faculty, opts)
	counts := kb.CountByCategory(rf.Faculty)
	logger.Debug("built knowledge base",
		zap.String("input", cfg.Input),
		zap.Int("entries", doc.TotalEntries),
		zap.Int("uncategorized", counts.Uncategorized()))

	fmt.Fprintf(w, "built    %d entries from %s\n", doc.TotalEntries, cfg.Input)
	fmt.Fprintf(w, "   - %d individual faculty members\n", len(rf.Faculty))
	for _, cat := range types.Categories {
		fmt.Fprintf(w, "       %-21s %d\n", cat, counts.Count(cat))
	}
	if n := counts.Uncategorized(); n > 0 {
		fmt.Fprintf(w, "       %-21s %d\n", "(other)", n)
	}
	fmt.Fprintf(w, "   - 1 summary entry\n")
	return doc, nil
}
