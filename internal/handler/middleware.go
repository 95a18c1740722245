package handler

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// AccessLog пишет в zap одну строку на запрос
func AccessLog(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(next, w, r)
			logger.Info("handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", m.Code),
				zap.Duration("duration", m.Duration),
				zap.Int64("bytes", m.Written),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
