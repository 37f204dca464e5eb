package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/quote-service/internal/adapters/clients"
	"github.com/jsamuelsen/quote-service/internal/domain"
)

// endpoint issues quote API calls. Every failure, whether transport or
// status, comes back as a domain error.
type endpoint struct {
	client  *clients.Client
	service string
}

func (e endpoint) get(ctx context.Context, path, operation string) (io.ReadCloser, error) {
	resp, err := e.client.Get(ctx, path)
	return e.body(resp, err, operation)
}

func (e endpoint) post(ctx context.Context, path string, body io.Reader, operation string) (io.ReadCloser, error) {
	resp, err := e.client.Post(ctx, path, body)
	return e.body(resp, err, operation)
}

func (e endpoint) delete(ctx context.Context, path, operation string) (io.ReadCloser, error) {
	resp, err := e.client.Delete(ctx, path)
	return e.body(resp, err, operation)
}

// discard drains and closes the body of a call whose payload is unused.
func (e endpoint) discard(body io.ReadCloser, err error) error {
	if err != nil {
		return err
	}

	_, _ = io.Copy(io.Discard, body)

	return body.Close()
}

func (e endpoint) body(resp *http.Response, err error, operation string) (io.ReadCloser, error) {
	if err != nil {
		return nil, MapHTTPError(nil, err, e.service, operation)
	}

	if resp.StatusCode < http.StatusBadRequest {
		return resp.Body, nil
	}

	defer func() { _ = resp.Body.Close() }()

	return nil, MapHTTPError(resp, nil, e.service, operation)
}

// undecodable reports a 2xx body that could not be read as the expected
// shape. The service is misbehaving, so callers see it as unavailable.
func (e endpoint) undecodable(err error) error {
	return domain.NewUnavailableError(e.service, err.Error())
}

// DecodeResponse reads and decodes a JSON response body into T, closing
// the body afterwards.
func DecodeResponse[T any](body io.ReadCloser) (*T, error) {
	if body == nil {
		return nil, errors.New("response body is nil")
	}
	defer func() { _ = body.Close() }()

	var result T
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

// ValidateRequired returns a domain.ValidationError if value is empty.
func ValidateRequired(value, fieldName string) error {
	if value == "" {
		return domain.NewValidationError(fieldName, "is required")
	}

	return nil
}

// ValidatePositive returns a domain.ValidationError unless value is positive.
func ValidatePositive[T ~int | ~int64 | ~float64](value T, fieldName string) error {
	if value <= 0 {
		return domain.NewValidationError(fieldName, "must be positive")
	}

	return nil
}

// Translator converts one external DTO into a domain value, rejecting data
// the domain cannot represent.
type Translator[External any, Domain any] func(ext *External) (Domain, error)

// TranslateSlice applies translate to every item, stopping at the first error.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) ([]D, error) {
	result := make([]D, 0, len(items))

	for i := range items {
		translated, err := translate(&items[i])
		if err != nil {
			return nil, fmt.Errorf("translating item %d: %w", i, err)
		}

		result = append(result, translated)
	}

	return result, nil
}
