package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/krisdinakr/belle-catalog/logger"
)

// responseRecorder lets us capture HTTP status codes
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware logs every HTTP request in structured form
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.statusCode),
			zap.String("remoteIP", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)),
		}
		if user, ok := UserFromContext(r.Context()); ok {
			fields = append(fields, zap.String("userID", user.User.ID.Hex()))
		}

		logger.Info("http request", fields...)
	})
}
