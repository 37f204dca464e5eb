package acl

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-service/internal/adapters/clients"
	"github.com/jsamuelsen/quote-service/internal/domain"
)

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name      string
		resp      *http.Response
		clientErr error
		checkFn   func(error) bool
	}{
		{name: "not found", resp: response(http.StatusNotFound, ""), checkFn: domain.IsNotFound},
		{name: "bad request", resp: response(http.StatusBadRequest, ""), checkFn: domain.IsValidation},
		{name: "unprocessable", resp: response(http.StatusUnprocessableEntity, ""), checkFn: domain.IsValidation},
		{name: "conflict treated as validation", resp: response(http.StatusConflict, ""), checkFn: domain.IsValidation},
		{name: "rate limited", resp: response(http.StatusTooManyRequests, ""), checkFn: domain.IsUnavailable},
		{name: "internal error", resp: response(http.StatusInternalServerError, ""), checkFn: domain.IsUnavailable},
		{name: "gateway timeout", resp: response(http.StatusGatewayTimeout, ""), checkFn: domain.IsUnavailable},
		{name: "nil response", checkFn: domain.IsUnavailable},
		{name: "circuit open", clientErr: clients.ErrCircuitOpen, checkFn: domain.IsUnavailable},
		{name: "retries exhausted", clientErr: clients.ErrMaxRetriesExceeded, checkFn: domain.IsUnavailable},
		{name: "transport failure", clientErr: errors.New("connection refused"), checkFn: domain.IsUnavailable},
		{
			name:    "timeout code on 4xx body",
			resp:    response(http.StatusRequestTimeout, `{"error":{"code":"TIMEOUT","message":"slow"}}`),
			checkFn: domain.IsUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapHTTPError(tt.resp, tt.clientErr, "quote-service", "list quotes")

			require.Error(t, err)
			assert.True(t, tt.checkFn(err), "unexpected error: %v", err)
		})
	}
}

func TestMapHTTPError_SuccessReturnsNil(t *testing.T) {
	assert.NoError(t, MapHTTPError(response(http.StatusOK, ""), nil, "quote-service", "list quotes"))
}

func TestMapHTTPError_ValidationDetails(t *testing.T) {
	body := `{"error":{"code":"VALIDATION_ERROR","message":"request validation failed",` +
		`"details":{"text":"must not be empty","attributedTo":"must not be empty"}}}`

	err := MapHTTPError(response(http.StatusBadRequest, body), nil, "quote-service", "add quote")

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "attributedTo", validationErr.Field, "first field in sorted order")
	assert.Equal(t, "must not be empty", validationErr.Message)
}

func TestMapHTTPError_UsesEnvelopeMessage(t *testing.T) {
	body := `{"error":{"code":"BAD_REQUEST","message":"quote id must be an integer"}}`

	err := MapHTTPError(response(http.StatusBadRequest, body), nil, "quote-service", "delete quote")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quote id must be an integer")
}

func TestMapExternalCode(t *testing.T) {
	tests := []struct {
		code    string
		checkFn func(error) bool
	}{
		{ExternalCodeNotFound, domain.IsNotFound},
		{ExternalCodeValidation, domain.IsValidation},
		{ExternalCodeBadRequest, domain.IsValidation},
		{ExternalCodeUnavailable, domain.IsUnavailable},
		{ExternalCodeTimeout, domain.IsUnavailable},
		{"SOMETHING_ELSE", domain.IsValidation},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := MapExternalCode(tt.code, "msg", nil, "quote-service")
			assert.True(t, tt.checkFn(err), "unexpected error: %v", err)
		})
	}
}

func TestParseErrorResponse(t *testing.T) {
	tests := []struct {
		name     string
		body     io.Reader
		wantCode string
		wantNil  bool
	}{
		{name: "envelope", body: strings.NewReader(`{"error":{"code":"NOT_FOUND","message":"quote not found"},"traceId":"t1"}`), wantCode: "NOT_FOUND"},
		{name: "invalid json", body: strings.NewReader("<html>"), wantNil: true},
		{name: "empty object", body: strings.NewReader("{}"), wantNil: true},
		{name: "nil body", body: nil, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseErrorResponse(tt.body)

			if tt.wantNil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tt.wantCode, got.Error.Code)
		})
	}
}
