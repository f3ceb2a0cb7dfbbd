package middleware

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/kitchenlab/recipebox/internal/logutil"
	"github.com/rs/zerolog"
	"github.com/steinfletcher/apitest"
)

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	wrapped := AccessLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wrapped.ServeHTTP(w, r.WithContext(logutil.WithLogger(r.Context(), logger)))
	})
	apitest.Handler(handler).
		Get("/recipes/99").
		Expect(t).
		Status(http.StatusNotFound).
		End()
	out := buf.String()
	for _, want := range []string{`"request.id"`, `"http.method":"GET"`, `"http.path":"/recipes/99"`, `"http.status":404`} {
		if !strings.Contains(out, want) {
			t.Fatalf("access log entry missing %v, got %v", want, out)
		}
	}
}

func TestAccessLogDefaultsToOK(t *testing.T) {
	handler := AccessLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	apitest.Handler(handler).
		Get("/").
		Expect(t).
		Status(http.StatusOK).
		Body("ok").
		End()
}
