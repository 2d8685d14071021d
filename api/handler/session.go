package handler

import (
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/mentortrack/backend/pkg/httpcontext"
	scheduleUC "github.com/mentortrack/backend/usecase/schedule"
)

type SessionHandler struct {
	baseHandler
	uc *scheduleUC.UseCase
}

func NewSessionHandler(uc *scheduleUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// ListUpcoming handles GET /api/mentorships/{id}/sessions.
func (h *SessionHandler) ListUpcoming(ctx *fasthttp.RequestCtx) {
	actor, ok := h.actor(ctx)
	if !ok {
		return
	}

	mentorshipID, ok := pathID(ctx, "id")
	if !ok {
		h.respondInvalid(ctx, "invalid mentorship id")
		return
	}

	limit := 0
	if raw := string(ctx.QueryArgs().Peek("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.respondInvalid(ctx, "invalid limit")
			return
		}
		limit = parsed
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	sessions, err := h.uc.ListUpcoming(stdCtx, actor, mentorshipID, limit)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondResult(ctx, http.StatusOK, "", sessions)
}
