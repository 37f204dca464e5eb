// Package acl is the anti-corruption layer between the quote REST API and
// the domain. Wire DTOs stay unexported inside this package; callers only
// ever see domain.Quote values and domain errors.
//
// Failures translate as follows:
//   - 404 Not Found → [domain.ErrNotFound]
//   - 400/422 and other 4xx → [domain.ErrValidation], keeping field details
//   - 429, 5xx and transport failures → [domain.ErrUnavailable]
//
// Client-level errors ([clients.ErrCircuitOpen], [clients.ErrMaxRetriesExceeded])
// are also reported as [domain.ErrUnavailable].
package acl
