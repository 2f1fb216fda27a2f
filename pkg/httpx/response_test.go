package httpx_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/graphicoglobal/atelier/pkg/httpx"
)

func TestJSON_setsHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("unexpected Content-Type: %q", ct)
	}
	if xct := w.Header().Get("X-Content-Type-Options"); xct != "nosniff" {
		t.Errorf("expected nosniff, got %q", xct)
	}
}

func TestJSON_encodesBody(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSON(w, http.StatusCreated, map[string]string{"id": "abc"})

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["id"] != "abc" {
		t.Errorf("unexpected body: %v", body)
	}
	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSONError(w, http.StatusBadRequest, "something went wrong")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["error"] != "something went wrong" {
		t.Errorf("unexpected error message: %q", body["error"])
	}
}

func TestSafeError(t *testing.T) {
	err := errors.New("save catalog blob: disk full")
	if got := httpx.SafeError(err, http.StatusInternalServerError, true); got != "Internal Server Error" {
		t.Errorf("production 500: got %q", got)
	}
	if got := httpx.SafeError(err, http.StatusInternalServerError, false); got != err.Error() {
		t.Errorf("development 500: got %q", got)
	}
	if got := httpx.SafeError(err, http.StatusNotFound, true); got != err.Error() {
		t.Errorf("production 404: got %q", got)
	}
}

func TestEventStream_Send(t *testing.T) {
	w := httptest.NewRecorder()
	es, err := httpx.NewEventStream(w)
	if err != nil {
		t.Fatalf("new stream: %v", err)
	}
	if err := es.Send("countdown", map[string]int{"remaining_seconds": 59}); err != nil {
		t.Fatalf("send: %v", err)
	}

	if ct := w.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("unexpected Content-Type: %q", ct)
	}
	if !w.Flushed {
		t.Error("expected stream to be flushed")
	}
	want := "event: countdown\ndata: {\"remaining_seconds\":59}\n\n"
	if w.Body.String() != want {
		t.Errorf("got %q, want %q", w.Body.String(), want)
	}
}

type plainWriter struct{ header http.Header }

func (p *plainWriter) Header() http.Header         { return p.header }
func (p *plainWriter) Write(b []byte) (int, error) { return len(b), nil }
func (p *plainWriter) WriteHeader(int)             {}

func TestEventStream_RequiresFlusher(t *testing.T) {
	_, err := httpx.NewEventStream(&plainWriter{header: http.Header{}})
	if !errors.Is(err, httpx.ErrStreamingUnsupported) {
		t.Fatalf("expected ErrStreamingUnsupported, got %v", err)
	}
}
