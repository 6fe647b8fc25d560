package middleware

import (
	"log"
	"net/http"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// RequestLogger tags each request with a short id and logs method, path,
// status and duration once the handler returns.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, err := gonanoid.New(8)
		if err != nil {
			requestID = "unknown"
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		log.Printf("%s %s %s -> %d (%s) [%s]", r.Method, r.URL.Path, r.RemoteAddr, rec.status, time.Since(start), requestID)
	})
}
