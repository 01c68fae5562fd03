// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package kb turns a faculty roster into a knowledge-base document and
// reads and writes that document.
package kb

import (
	"fmt"
	"strings"

	"github.com/pdiddy/faculty-kb/pkg/types"
)

const (
	DefaultLastUpdated = "2025-01-30"
	DefaultSource      = "https://www.alueducation.com/faculty/"
	DefaultEmail       = "info@alueducation.com"
	DefaultPhone       = "+250 784 650 219"
)

// DefaultContact returns the contact constants used when none are configured.
func DefaultContact() types.Contact {
	return types.Contact{Email: DefaultEmail, Phone: DefaultPhone}
}

// Options carries the caller-supplied context for Build. Zero values fall
// back to the package defaults.
type Options struct {
	LastUpdated string
	Source      string
	Departments map[string]any
	Contact     types.Contact
}

func (o Options) withDefaults() Options {
	if o.LastUpdated == "" {
		o.LastUpdated = DefaultLastUpdated
	}
	if o.Source == "" {
		o.Source = DefaultSource
	}
	if o.Departments == nil {
		o.Departments = map[string]any{}
	}
	if o.Contact.Email == "" {
		o.Contact.Email = DefaultEmail
	}
	if o.Contact.Phone == "" {
		o.Contact.Phone = DefaultPhone
	}
	return o
}

// OptionsFromRoster takes LastUpdated, Source, and Departments from the
// roster file.
func OptionsFromRoster(rf *types.RosterFile) Options {
	return Options{
		LastUpdated: rf.LastUpdated,
		Source:      rf.Source,
		Departments: rf.Departments,
	}
}

// Build converts roster into a knowledge-base document: one entry per
// record in input order, then the summary entry. It never fails; missing
// record fields are already empty strings.
func Build(roster []types.FacultyRecord, opts Options) *types.KnowledgeBaseDocument {
	opts = opts.withDefaults()

	entries := make([]types.KnowledgeEntry, 0, len(roster)+1)
	for i, rec := range roster {
		entries = append(entries, personEntry(i+1, rec, opts.Contact))
	}
	entries = append(entries, summaryEntry(roster, opts))

	return &types.KnowledgeBaseDocument{
		Category:     types.KnowledgeCategory,
		LastUpdated:  opts.LastUpdated,
		Source:       opts.Source,
		TotalEntries: len(entries),
		Entries:      entries,
	}
}

// EntryID returns the id of the seq-th person entry (1-based).
func EntryID(seq int) string {
	return fmt.Sprintf("faculty_%03d", seq)
}

func personEntry(seq int, rec types.FacultyRecord, contact types.Contact) types.KnowledgeEntry {
	return types.KnowledgeEntry{
		ID:    EntryID(seq),
		Title: fmt.Sprintf("%s - %s", rec.Name, rec.Role),
		Content: fmt.Sprintf("%s is the %s at ALU. %s Department: %s. Contact: %s or %s.",
			rec.Name, rec.Role, rec.Description, rec.Department, contact.Email, contact.Phone),
		Keywords: Keywords(rec),
		Metadata: types.EntryMetadata{
			Person: &types.PersonMetadata{
				Name:         rec.Name,
				Role:         rec.Role,
				Department:   rec.Department,
				Category:     rec.Category,
				EmailContact: contact.Email,
				Phone:        contact.Phone,
			},
		},
	}
}

// Keywords derives the search terms for rec: the lowercased name, role and
// department, the category as written, each lowercased name token, and each
// lowercased role token with parentheses removed. The result has no
// duplicates and keeps first-seen order. A missing name, role, department or
// category contributes the empty term once, as part of the union.
func Keywords(rec types.FacultyRecord) []string {
	name := strings.ToLower(rec.Name)
	role := strings.ToLower(rec.Role)

	ks := keywordSet{terms: []string{}}
	ks.add(name, role, strings.ToLower(rec.Department), rec.Category)
	ks.add(strings.Fields(name)...)
	ks.add(strings.Fields(stripParens(role))...)
	return ks.terms
}

var parenStripper = strings.NewReplacer("(", "", ")", "")

func stripParens(s string) string {
	return parenStripper.Replace(s)
}

type keywordSet struct {
	seen  map[string]struct{}
	terms []string
}

func (k *keywordSet) add(terms ...string) {
	if k.seen == nil {
		k.seen = make(map[string]struct{})
	}
	for _, t := range terms {
		if _, dup := k.seen[t]; dup {
			continue
		}
		k.seen[t] = struct{}{}
		k.terms = append(k.terms, t)
	}
}
