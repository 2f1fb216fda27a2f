// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to Status for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/graphicoglobal/atelier/pkg/auth"
	"github.com/graphicoglobal/atelier/pkg/httpx"
	catalogdomain "github.com/graphicoglobal/atelier/services/catalog/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, Status(err), err.Error())
}

// WriteSafeError is WriteError with 5xx messages hidden when isProduction is set.
func WriteSafeError(w http.ResponseWriter, err error, isProduction bool) {
	status := Status(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, isProduction))
}

// Status returns the HTTP status code for err.
func Status(err error) int {
	switch {
	case errors.Is(err, catalogdomain.ErrItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, catalogdomain.ErrValidation),
		errors.Is(err, catalogdomain.ErrUnknownSettlementMethod):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, auth.ErrAccessDenied):
		return http.StatusUnauthorized // 401
	case errors.Is(err, catalogdomain.ErrEnrichment):
		return http.StatusBadGateway // 502
	default:
		return http.StatusInternalServerError // 500
	}
}
