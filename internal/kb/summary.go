// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package kb

import (
	"fmt"

	"github.com/pdiddy/faculty-kb/pkg/types"
)

const summaryTitle = "ALU Faculty Overview and Complete Directory"

var summaryKeywords = []string{
	"faculty", "overview", "directory", "all faculty", "complete list",
	"staff", "professors", "teachers", "coaches", "total", "statistics",
}

// CategoryCounts holds the number of records per recognized category.
// Records with any other category are counted only in Total.
type CategoryCounts struct {
	Total    int
	ByBucket map[types.Category]int
}

// Count returns the count for c, zero for unrecognized categories.
func (c CategoryCounts) Count(cat types.Category) int {
	return c.ByBucket[cat]
}

// Uncategorized returns the number of records outside every bucket.
func (c CategoryCounts) Uncategorized() int {
	n := c.Total
	for _, v := range c.ByBucket {
		n -= v
	}
	return n
}

// CountByCategory tallies roster by category code.
func CountByCategory(roster []types.FacultyRecord) CategoryCounts {
	counts := CategoryCounts{
		Total:    len(roster),
		ByBucket: make(map[types.Category]int, len(types.Categories)),
	}
	for _, cat := range types.Categories {
		counts.ByBucket[cat] = 0
	}
	for _, rec := range roster {
		cat := types.Category(rec.Category)
		if cat.Known() {
			counts.ByBucket[cat]++
		}
	}
	return counts
}

func summaryEntry(roster []types.FacultyRecord, opts Options) types.KnowledgeEntry {
	counts := CountByCategory(roster)

	keywords := make([]string, len(summaryKeywords))
	copy(keywords, summaryKeywords)

	return types.KnowledgeEntry{
		ID:       types.SummaryEntryID,
		Title:    summaryTitle,
		Content:  summaryContent(counts, opts.Contact),
		Keywords: keywords,
		Metadata: types.EntryMetadata{
			Summary: &types.SummaryMetadata{
				TotalFaculty: len(roster),
				LastUpdated:  opts.LastUpdated,
				Source:       opts.Source,
				Departments:  opts.Departments,
			},
		},
	}
}

func summaryContent(c CategoryCounts, contact types.Contact) string {
	return fmt.Sprintf(`African Leadership University has %d faculty members across different departments:

**Academic Leadership:** Director of Undergraduate Programmes who oversees all undergraduate programmes.

**Foundation Programme (%d members):** Learning coaches and coordinators who support first-year students with foundational learning, self-directed learning skills, and academic development.

**BEL - Bachelor in Entrepreneurial Leadership (%d members):** Programme managers and specialisation coaches covering Business Strategy & Investment, and Policy & Advocacy.

**E-Lab - Entrepreneurial Leaders Action Lab (%d members):** Team managing entrepreneurship experiments, student-led ventures, and innovation labs.

**Mission Curators (%d members):** Faculty who guide students in specific mission areas including Agriculture, Climate Change, Arts & Culture, Entrepreneurship, Governance, Education, Gender Equality, Healthcare, and Urban Infrastructure.

**Software Engineering (%d members):** Programme manager and specialisation coaches covering Machine Learning, Information Systems, Web Development, and DevOps.

All faculty are committed to ALU's mission-driven approach, focusing on experiential learning, ethical leadership, and preparing students to solve Africa's greatest challenges.

To contact any faculty member, reach out to %s or call %s. For specific programme inquiries, contact your respective programme coordinator through help.alueducation.com.`,
		c.Total,
		c.Count(types.CategoryFoundation),
		c.Count(types.CategoryBEL),
		c.Count(types.CategoryELab),
		c.Count(types.CategoryMissionCurators),
		c.Count(types.CategorySoftwareEngineering),
		contact.Email, contact.Phone,
	)
}
