package dto

import "github.com/jsamuelsen/quote-service/internal/domain"

// QuoteRequest is the body of POST /quote.
type QuoteRequest struct {
	Text         string   `json:"text" validate:"notempty"`
	AttributedTo string   `json:"attributedTo" validate:"notempty"`
	Subjects     []string `json:"subjects" validate:"dive,notempty"`
}

// ToDomain converts the request into quote data. A missing subjects list
// becomes an empty one.
func (r *QuoteRequest) ToDomain() domain.QuoteData {
	return domain.QuoteData{
		Text:         r.Text,
		AttributedTo: r.AttributedTo,
		Subjects:     domain.CloneSubjects(r.Subjects),
	}
}

// Validate applies the domain rules after the struct tags pass.
func (r *QuoteRequest) Validate() error {
	return r.ToDomain().Validate()
}

// QuoteResponse is the wire form of a stored quote. Subjects is always a
// JSON array, never null.
type QuoteResponse struct {
	ID           int64    `json:"id"`
	Text         string   `json:"text"`
	AttributedTo string   `json:"attributedTo"`
	Subjects     []string `json:"subjects"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:           q.ID,
		Text:         q.Text,
		AttributedTo: q.AttributedTo,
		Subjects:     domain.CloneSubjects(q.Subjects),
	}
}

// NewQuoteListResponse converts quotes, returning an empty slice for none.
func NewQuoteListResponse(quotes []domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, NewQuoteResponse(q))
	}

	return out
}

// LoadSampleResponse is returned by the sample data loader.
type LoadSampleResponse struct {
	Loaded int `json:"loaded"`
}
