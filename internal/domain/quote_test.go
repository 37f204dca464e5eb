package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuote_CopiesSubjects(t *testing.T) {
	data := QuoteData{Text: "t", AttributedTo: "a", Subjects: []string{"x", "y"}}

	q := NewQuote(3, data)
	data.Subjects[0] = "changed"

	assert.Equal(t, int64(3), q.ID)
	assert.Equal(t, []string{"x", "y"}, q.Subjects)
}

func TestNewQuote_NilSubjectsBecomeEmpty(t *testing.T) {
	q := NewQuote(1, QuoteData{Text: "t", AttributedTo: "a"})

	require.NotNil(t, q.Subjects)
	assert.Empty(t, q.Subjects)
}

func TestQuote_Data(t *testing.T) {
	q := Quote{ID: 9, Text: "t", AttributedTo: "a", Subjects: []string{"s", "s"}}

	assert.Equal(t, QuoteData{Text: "t", AttributedTo: "a", Subjects: []string{"s", "s"}}, q.Data())
}

func TestQuoteData_Validate(t *testing.T) {
	tests := []struct {
		name      string
		data      QuoteData
		wantField string
	}{
		{
			name: "valid with subjects",
			data: QuoteData{Text: "Genius is patience", AttributedTo: "Isaac Newton", Subjects: []string{"genius"}},
		},
		{
			name: "valid without subjects",
			data: QuoteData{Text: "t", AttributedTo: "a"},
		},
		{
			name:      "blank text",
			data:      QuoteData{Text: "  ", AttributedTo: "a"},
			wantField: "text",
		},
		{
			name:      "empty attribution",
			data:      QuoteData{Text: "t"},
			wantField: "attributedTo",
		},
		{
			name:      "empty subject",
			data:      QuoteData{Text: "t", AttributedTo: "a", Subjects: []string{"ok", ""}},
			wantField: "subjects",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestFilters(t *testing.T) {
	quotes := []Quote{
		{ID: 1, Text: "a", AttributedTo: "Wim Hof", Subjects: []string{"inner strength"}},
		{ID: 2, Text: "b", AttributedTo: "Isaac Newton", Subjects: []string{"genius"}},
		{ID: 3, Text: "c", AttributedTo: "Wim Hof", Subjects: []string{"Inner Strength", "cold"}},
	}

	t.Run("by subject is exact and case-sensitive", func(t *testing.T) {
		got := FilterBySubject(quotes, "inner strength")
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("by attribution keeps order", func(t *testing.T) {
		got := FilterByAttributedTo(quotes, "Wim Hof")
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(3), got[1].ID)
	})

	t.Run("no match returns empty, not nil", func(t *testing.T) {
		got := FilterBySubject(quotes, "nothing")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
