package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/mentortrack/backend/api/transport"
	"github.com/mentortrack/backend/internal/infrastructure/monitor"
	"github.com/mentortrack/backend/pkg/httpcontext"
)

type HealthHandler struct {
	baseHandler
	monitor *monitor.Monitor
}

func NewHealthHandler(mon *monitor.Monitor, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     mon,
	}
}

// Root handles GET /, the public landing probe.
func (h *HealthHandler) Root(ctx *fasthttp.RequestCtx) {
	h.respondJSON(ctx, http.StatusOK, map[string]string{
		"service": "mentortrack",
		"status":  "ok",
	})
}

// Check handles GET /health with live dependency states.
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	status := h.monitor.GetStatus()
	payload := map[string]interface{}{
		"timestamp": time.Now().UTC(),
		"services": map[string]interface{}{
			"postgresql": status.PostgreSQL,
			"redis":      status.Redis,
		},
	}

	if status.PostgreSQL && status.Redis {
		h.respondResult(ctx, http.StatusOK, "", payload)
		return
	}
	h.respondJSON(ctx, http.StatusServiceUnavailable, transport.NewErrorBody("dependencies unhealthy"))
}
