// Package middleware holds http.Handler decorators shared by the public
// and private API surfaces.
package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/kitchenlab/recipebox/internal/logutil"
)

type (
	statusWriter struct {
		http.ResponseWriter
		status int
	}
)

func (s *statusWriter) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// AccessLog tags every request with a fresh request id, pushes a
// request-scoped logger into the context and emits one event per
// request with method, path, status and duration.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.NewString()
		log := logutil.GetOrDefault(r.Context()).With().Str("request.id", reqID).Logger()
		r = r.WithContext(logutil.WithLogger(r.Context(), log))
		sw := statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(&sw, r)
		log.Info().
			Str("http.method", r.Method).
			Str("http.path", r.URL.Path).
			Int("http.status", sw.status).
			Dur("http.duration", time.Since(start)).
			Msg("Request served")
	})
}
