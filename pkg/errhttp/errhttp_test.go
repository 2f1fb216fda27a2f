package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/graphicoglobal/atelier/pkg/auth"
	catalogdomain "github.com/graphicoglobal/atelier/services/catalog/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrItemNotFound", catalogdomain.ErrItemNotFound, http.StatusNotFound},
		{"ErrValidation", catalogdomain.ErrValidation, http.StatusUnprocessableEntity},
		{"ErrUnknownSettlementMethod", catalogdomain.ErrUnknownSettlementMethod, http.StatusUnprocessableEntity},
		{"ErrAccessDenied", auth.ErrAccessDenied, http.StatusUnauthorized},
		{"ErrEnrichment", catalogdomain.ErrEnrichment, http.StatusBadGateway},
		{"wrapped ErrItemNotFound", fmt.Errorf("get item: %w", catalogdomain.ErrItemNotFound), http.StatusNotFound},
		{"wrapped ErrValidation", fmt.Errorf("%w: title must not be empty", catalogdomain.ErrValidation), http.StatusUnprocessableEntity},
		{"ErrPersistence", catalogdomain.ErrPersistence, http.StatusInternalServerError},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, catalogdomain.ErrItemNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["error"] != "item not found" {
		t.Fatalf("unexpected error message %q", body["error"])
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, catalogdomain.ErrItemNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}

func TestWriteSafeError_HidesInternalDetails(t *testing.T) {
	w := httptest.NewRecorder()
	WriteSafeError(w, errors.New("dial tcp 10.0.0.3:5432: refused"), true)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["error"] != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("internal detail leaked: %q", body["error"])
	}

	w = httptest.NewRecorder()
	WriteSafeError(w, catalogdomain.ErrItemNotFound, true)
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["error"] != "item not found" {
		t.Fatalf("4xx message should pass through, got %q", body["error"])
	}
}
