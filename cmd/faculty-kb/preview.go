// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdiddy/faculty-kb/internal/roster"
	"github.com/pdiddy/faculty-kb/pkg/types"
)

const unknownLabel = "Unknown"

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "List the roster grouped by department without building or uploading",
	Long: `Preview loads the faculty roster and prints every member's name grouped by
department, departments in sorted order. Members without a department are
listed under "Unknown". Nothing is written or uploaded.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("input", defaultInput, "faculty roster file")

	rootCmd.AddCommand(previewCmd)
}

// departmentGroup is one department and its members in roster order.
type departmentGroup struct {
	Department string
	Members    []string
}

// groupByDepartment groups roster names by department, sorted by department.
func groupByDepartment(recs []types.FacultyRecord) []departmentGroup {
	byDept := make(map[string][]string)
	for _, rec := range recs {
		dept := rec.Department
		if dept == "" {
			dept = unknownLabel
		}
		name := rec.Name
		if name == "" {
			name = unknownLabel
		}
		byDept[dept] = append(byDept[dept], name)
	}

	depts := make([]string, 0, len(byDept))
	for d := range byDept {
		depts = append(depts, d)
	}
	sort.Strings(depts)

	groups := make([]departmentGroup, len(depts))
	for i, d := range depts {
		groups[i] = departmentGroup{Department: d, Members: byDept[d]}
	}
	return groups
}

func runPreview(cmd *cobra.Command, args []string) error {
	input := stringSetting(cmd, "input", "build.input")
	rf, err := roster.Load(input)
	if err != nil {
		return err
	}

	printPreview(cmd.OutOrStdout(), input, rf.Faculty)
	return nil
}

func printPreview(w io.Writer, input string, recs []types.FacultyRecord) {
	fmt.Fprintf(w, "Preview of %s\n", input)
	fmt.Fprintf(w, "Total faculty: %d\n", len(recs))
	for _, g := range groupByDepartment(recs) {
		fmt.Fprintf(w, "\n%s (%d members):\n", g.Department, len(g.Members))
		for _, name := range g.Members {
			fmt.Fprintf(w, "  - %s\n", name)
		}
	}
}
