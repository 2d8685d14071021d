package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/mentortrack/backend/api/transport"
	"github.com/mentortrack/backend/pkg/httpcontext"
	mentorshipUC "github.com/mentortrack/backend/usecase/mentorship"
)

type MentorshipHandler struct {
	baseHandler
	uc *mentorshipUC.UseCase
}

func NewMentorshipHandler(uc *mentorshipUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *MentorshipHandler {
	return &MentorshipHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// Create handles POST /api/mentorships/create. A duplicate active
// relationship is a 400, matching the public contract.
func (h *MentorshipHandler) Create(ctx *fasthttp.RequestCtx) {
	actor, ok := h.actor(ctx)
	if !ok {
		return
	}

	var req transport.MentorshipCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.MentorID <= 0 || req.MenteeID <= 0 {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, actor, req.MentorID, req.MenteeID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.respondResult(ctx, http.StatusOK, "Mentorship created successfully", map[string]interface{}{
		"mentorship_id": created.ID,
	})
}

// UpdateProgress handles POST /api/mentorships/{id}/progress.
func (h *MentorshipHandler) UpdateProgress(ctx *fasthttp.RequestCtx) {
	actor, ok := h.actor(ctx)
	if !ok {
		return
	}

	mentorshipID, ok := pathID(ctx, "id")
	if !ok {
		h.respondInvalid(ctx, "invalid mentorship id")
		return
	}

	var req transport.MentorshipProgressRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.UpdateProgress(stdCtx, actor, mentorshipID, req.Progress); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondResult(ctx, http.StatusOK, "Progress updated", nil)
}

// End handles POST /api/mentorships/{id}/end, the soft close that keeps
// the row as history.
func (h *MentorshipHandler) End(ctx *fasthttp.RequestCtx) {
	actor, ok := h.actor(ctx)
	if !ok {
		return
	}

	mentorshipID, ok := pathID(ctx, "id")
	if !ok {
		h.respondInvalid(ctx, "invalid mentorship id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.End(stdCtx, actor, mentorshipID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondResult(ctx, http.StatusOK, "Mentorship ended", nil)
}
