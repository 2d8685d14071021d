package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/mentortrack/backend/api/transport"
	"github.com/mentortrack/backend/pkg/httpcontext"
	resourceUC "github.com/mentortrack/backend/usecase/resource"
)

type ResourceHandler struct {
	baseHandler
	uc *resourceUC.UseCase
}

func NewResourceHandler(uc *resourceUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ResourceHandler {
	return &ResourceHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// Create handles POST /api/resources/create. Mentor-only.
func (h *ResourceHandler) Create(ctx *fasthttp.RequestCtx) {
	actor, ok := h.actor(ctx)
	if !ok {
		return
	}

	var req transport.ResourceCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Add(stdCtx, actor, req.Title, req.URL, req.Type)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.respondResult(ctx, http.StatusOK, "Resource added successfully", map[string]interface{}{
		"resource_id": created.ID,
	})
}
