// Package domain contains core business entities and rules.
package domain

import (
	"slices"
	"strings"
)

// QuoteData is a quote that has not been stored yet.
type QuoteData struct {
	Text         string
	AttributedTo string

	// Subjects keeps the order it was given in. Duplicates are allowed.
	Subjects []string
}

// Quote is a stored quote. ID is assigned by the repository on insertion.
type Quote struct {
	ID           int64
	Text         string
	AttributedTo string
	Subjects     []string
}

// NewQuote builds a stored quote from its data and assigned id.
// The subjects slice is copied so the result never aliases the input.
func NewQuote(id int64, data QuoteData) Quote {
	return Quote{
		ID:           id,
		Text:         data.Text,
		AttributedTo: data.AttributedTo,
		Subjects:     CloneSubjects(data.Subjects),
	}
}

// Data returns the quote without its id.
func (q Quote) Data() QuoteData {
	return QuoteData{
		Text:         q.Text,
		AttributedTo: q.AttributedTo,
		Subjects:     CloneSubjects(q.Subjects),
	}
}

// HasSubject reports whether subject is one of the quote's subjects.
// Comparison is exact and case-sensitive.
func (q Quote) HasSubject(subject string) bool {
	return slices.Contains(q.Subjects, subject)
}

// Clone returns a deep copy of the quote.
func (q Quote) Clone() Quote {
	q.Subjects = CloneSubjects(q.Subjects)
	return q
}

// Validate checks the invariants a quote must satisfy before it is stored.
// Stores do not call this; it belongs at the boundary.
func (d QuoteData) Validate() error {
	if strings.TrimSpace(d.Text) == "" {
		return NewValidationError("text", "must not be empty")
	}

	if strings.TrimSpace(d.AttributedTo) == "" {
		return NewValidationError("attributedTo", "must not be empty")
	}

	for i, s := range d.Subjects {
		if s == "" {
			return NewValidationErrorWithValue("subjects", "must not contain empty subjects", i)
		}
	}

	return nil
}

// CloneSubjects copies a subject list. A nil list becomes an empty one so
// callers always see an array.
func CloneSubjects(subjects []string) []string {
	out := make([]string, len(subjects))
	copy(out, subjects)

	return out
}

// FilterBySubject keeps the quotes that carry subject, preserving order.
func FilterBySubject(quotes []Quote, subject string) []Quote {
	return filter(quotes, func(q Quote) bool { return q.HasSubject(subject) })
}

// FilterByAttributedTo keeps the quotes attributed exactly to attributedTo.
func FilterByAttributedTo(quotes []Quote, attributedTo string) []Quote {
	return filter(quotes, func(q Quote) bool { return q.AttributedTo == attributedTo })
}

func filter(quotes []Quote, keep func(Quote) bool) []Quote {
	out := make([]Quote, 0, len(quotes))
	for _, q := range quotes {
		if keep(q) {
			out = append(out, q)
		}
	}

	return out
}
