// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// KnowledgeCategory is the fixed category of every document this tool emits.
const KnowledgeCategory = "faculty"

// SummaryEntryID is the id of the aggregate entry appended to every document.
const SummaryEntryID = "faculty_summary"

// Contact holds the contact constants written into every person entry.
type Contact struct {
	Email string `json:"email" yaml:"email"`
	Phone string `json:"phone" yaml:"phone"`
}

// PersonMetadata carries a record's raw field values plus the contact constants.
type PersonMetadata struct {
	Name         string `json:"name" yaml:"name"`
	Role         string `json:"role" yaml:"role"`
	Department   string `json:"department" yaml:"department"`
	Category     string `json:"category" yaml:"category"`
	EmailContact string `json:"email_contact" yaml:"email_contact"`
	Phone        string `json:"phone" yaml:"phone"`
}

// SummaryMetadata describes the roster as a whole.
type SummaryMetadata struct {
	TotalFaculty int            `json:"total_faculty" yaml:"total_faculty"`
	LastUpdated  string         `json:"last_updated" yaml:"last_updated"`
	Source       string         `json:"source" yaml:"source"`
	Departments  map[string]any `json:"departments" yaml:"departments"`
}

// EntryMetadata holds exactly one of Person or Summary. It serializes as the
// flat mapping of whichever is set.
type EntryMetadata struct {
	Person  *PersonMetadata
	Summary *SummaryMetadata
}

// MarshalJSON writes the populated variant as a flat object.
func (m EntryMetadata) MarshalJSON() ([]byte, error) {
	switch {
	case m.Summary != nil:
		return marshalUnescaped(m.Summary)
	case m.Person != nil:
		return marshalUnescaped(m.Person)
	default:
		return []byte("{}"), nil
	}
}

// marshalUnescaped encodes v without HTML escaping. The outer encoder's
// SetEscapeHTML does not reach bytes a marshaler has already produced.
func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON picks the variant by the presence of total_faculty.
func (m *EntryMetadata) UnmarshalJSON(data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("decoding entry metadata: %w", err)
	}
	*m = EntryMetadata{}
	if len(probe) == 0 {
		return nil
	}

	if _, ok := probe["total_faculty"]; ok {
		var s SummaryMetadata
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding summary metadata: %w", err)
		}
		m.Summary = &s
		return nil
	}

	var p PersonMetadata
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("decoding person metadata: %w", err)
	}
	m.Person = &p
	return nil
}

// MarshalYAML writes the populated variant as a flat mapping.
func (m EntryMetadata) MarshalYAML() (any, error) {
	switch {
	case m.Summary != nil:
		return m.Summary, nil
	case m.Person != nil:
		return m.Person, nil
	default:
		return map[string]any{}, nil
	}
}

// KnowledgeEntry is one searchable entry in a knowledge-base document.
type KnowledgeEntry struct {
	// ID is faculty_NNN for person entries and SummaryEntryID for the aggregate.
	ID string `json:"id" yaml:"id"`

	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`

	// Keywords is a set: no duplicates, order carries no meaning.
	Keywords []string `json:"keywords" yaml:"keywords"`

	Metadata EntryMetadata `json:"metadata" yaml:"metadata"`
}

// KnowledgeBaseDocument is the artifact handed to the downstream
// question-answering system.
type KnowledgeBaseDocument struct {
	Category     string           `json:"category" yaml:"category"`
	LastUpdated  string           `json:"last_updated" yaml:"last_updated"`
	Source       string           `json:"source" yaml:"source"`
	TotalEntries int              `json:"total_entries" yaml:"total_entries"`
	Entries      []KnowledgeEntry `json:"entries" yaml:"entries"`
}

// Summary returns the aggregate entry, or nil if the document has none.
func (d *KnowledgeBaseDocument) Summary() *KnowledgeEntry {
	for i := len(d.Entries) - 1; i >= 0; i-- {
		if d.Entries[i].ID == SummaryEntryID {
			return &d.Entries[i]
		}
	}
	return nil
}

// PersonCount returns the number of per-person entries.
func (d *KnowledgeBaseDocument) PersonCount() int {
	n := 0
	for _, e := range d.Entries {
		if e.ID != SummaryEntryID {
			n++
		}
	}
	return n
}
