package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"

	"github.com/jsamuelsen/quote-service/internal/adapters/clients"
	"github.com/jsamuelsen/quote-service/internal/domain"
)

// ErrorResponse is the error envelope returned by the quote API.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains error information from the quote API.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Error codes the quote API puts in its envelope.
const (
	ExternalCodeNotFound    = "NOT_FOUND"
	ExternalCodeValidation  = "VALIDATION_ERROR"
	ExternalCodeBadRequest  = "BAD_REQUEST"
	ExternalCodeUnavailable = "SERVICE_UNAVAILABLE"
	ExternalCodeTimeout     = "TIMEOUT"
)

// ParseErrorResponse decodes an error envelope. It returns nil when the
// body is empty, not JSON, or carries neither code nor message.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(body).Decode(&errResp); err != nil {
		return nil
	}

	if errResp.Error.Code == "" && errResp.Error.Message == "" {
		return nil
	}

	return &errResp
}

// MapHTTPError turns a failed call into a domain error. resp may be nil
// when clientErr reports a transport or client-level failure.
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	var errResp *ErrorResponse
	if resp.Body != nil {
		errResp = ParseErrorResponse(resp.Body)
	}

	return mapStatusCode(resp.StatusCode, errResp, serviceName, operation)
}

func mapClientError(err error, serviceName, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("circuit breaker open during %s", operation))

	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("max retries exceeded during %s", operation))

	default:
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("%s failed: %v", operation, err))
	}
}

func mapStatusCode(status int, errResp *ErrorResponse, serviceName, operation string) error {
	message := defaultMessageForStatus(status, operation)
	if errResp != nil && errResp.Error.Message != "" {
		message = errResp.Error.Message
	}

	switch {
	case status == http.StatusNotFound:
		return domain.NewNotFoundError(message)

	case status == http.StatusTooManyRequests, status >= http.StatusInternalServerError:
		return domain.NewUnavailableError(serviceName, message)

	case errResp != nil:
		return MapExternalCode(errResp.Error.Code, message, errResp.Error.Details, serviceName)

	default:
		return domain.NewValidationError("", message)
	}
}

// MapExternalCode maps an envelope code to a domain error. Unknown codes
// on a 4xx response are treated as validation failures.
func MapExternalCode(code, message string, details map[string]string, serviceName string) error {
	switch code {
	case ExternalCodeNotFound:
		return domain.NewNotFoundError(message)
	case ExternalCodeUnavailable, ExternalCodeTimeout:
		return domain.NewUnavailableError(serviceName, message)
	default:
		return validationFromDetails(message, details)
	}
}

// validationFromDetails reports the first offending field by name so the
// result does not depend on map order.
func validationFromDetails(message string, details map[string]string) error {
	if len(details) == 0 {
		return domain.NewValidationError("", message)
	}

	fields := make([]string, 0, len(details))
	for field := range details {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	return domain.NewValidationError(fields[0], details[fields[0]])
}

func defaultMessageForStatus(status int, operation string) string {
	switch status {
	case http.StatusNotFound:
		return "quote not found"
	case http.StatusBadRequest:
		return "invalid request"
	case http.StatusTooManyRequests:
		return "rate limit exceeded"
	case http.StatusServiceUnavailable:
		return "service temporarily unavailable"
	default:
		return fmt.Sprintf("%s failed with status %d", operation, status)
	}
}
