package http

import (
	"net/http"

	"github.com/KarimovRD/fullstack-todo/backend/internal/common/constants"
	"github.com/KarimovRD/fullstack-todo/backend/internal/common/httpmetrics"
	"github.com/KarimovRD/fullstack-todo/backend/internal/common/logger"
)

// BuildBaseHandler wires the ambient middleware around the route handler:
// recovery outermost, then trace ids, body-size limits and request metrics.
func BuildBaseHandler(log *logger.Logger, handler http.Handler) http.Handler {
	metrics := httpmetrics.New()
	recovery := RecoveryMiddleware(log)
	traceID := TraceIDMiddleware
	maxRequestSize := MaxRequestSizeMiddleware(constants.DefaultMaxRequestSize)

	return recovery(traceID(maxRequestSize(metrics.Wrap(handler))))
}
