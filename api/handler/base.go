package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/mentortrack/backend/api/transport"
	"github.com/mentortrack/backend/domain"
	"github.com/mentortrack/backend/internal/middleware"
	"github.com/mentortrack/backend/pkg/httpcontext"
)

type baseHandler struct {
	adapter *httpcontext.Adapter
	logger  *zap.Logger
}

func newBaseHandler(adapter *httpcontext.Adapter, logger *zap.Logger) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{adapter: adapter, logger: logger}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

func (h baseHandler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload interface{}) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

func (h baseHandler) respondResult(ctx *fasthttp.RequestCtx, status int, message string, data interface{}) {
	h.respondJSON(ctx, status, transport.NewResult(message, data))
}

func (h baseHandler) respondError(ctx *fasthttp.RequestCtx, err error) {
	h.respondJSON(ctx, statusForError(err), transport.NewErrorBody(err.Error()))
}

func (h baseHandler) respondInvalid(ctx *fasthttp.RequestCtx, message string) {
	h.respondJSON(ctx, http.StatusBadRequest, transport.NewErrorBody(message))
}

// actor pulls the authenticated caller placed by the auth middleware.
// Routes behind the middleware always carry one; the guard here covers
// miswiring.
func (h baseHandler) actor(ctx *fasthttp.RequestCtx) (domain.Actor, bool) {
	actor, ok := middleware.ActorFromRequest(ctx)
	if !ok {
		h.respondJSON(ctx, http.StatusUnauthorized, transport.NewErrorBody("authentication required"))
	}
	return actor, ok
}

// statusForError maps the domain error taxonomy onto HTTP statuses in
// one place: client input and duplicates are 400, missing or expired
// credentials 401, authorization failures 403.
func statusForError(err error) int {
	switch {
	case domain.IsDomainError(err, domain.ErrCodeInvalid), domain.IsDomainError(err, domain.ErrCodeConflict):
		return http.StatusBadRequest
	case domain.IsDomainError(err, domain.ErrCodeUnauthorized):
		return http.StatusUnauthorized
	case domain.IsDomainError(err, domain.ErrCodeForbidden):
		return http.StatusForbidden
	case domain.IsDomainError(err, domain.ErrCodeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
