package middleware

import (
	"context"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/mentortrack/backend/domain"
)

const actorKey = "actor"

// ActorResolver turns a session cookie value into the caller identity.
// Implemented by the identity use case.
type ActorResolver interface {
	ActorFromSession(ctx context.Context, sessionID string) (domain.Actor, error)
}

// SessionAuth validates the session cookie on every protected route and
// stores the resolved Actor on the request. Handlers receive identity
// explicitly from here; nothing downstream reads the cookie again.
func SessionAuth(resolver ActorResolver, cookieName string, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			sessionID := string(ctx.Request.Header.Cookie(cookieName))
			if sessionID == "" {
				unauthorized(ctx)
				return
			}

			actor, err := resolver.ActorFromSession(ctx, sessionID)
			if err != nil {
				logger.Debug("session rejected", zap.Error(err))
				unauthorized(ctx)
				return
			}

			ctx.SetUserValue(actorKey, actor)
			next(ctx)
		}
	}
}

// ActorFromRequest returns the Actor stored by SessionAuth.
func ActorFromRequest(ctx *fasthttp.RequestCtx) (domain.Actor, bool) {
	actor, ok := ctx.UserValue(actorKey).(domain.Actor)
	return actor, ok
}

func unauthorized(ctx *fasthttp.RequestCtx) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusUnauthorized)
	ctx.SetBodyString(`{"error":"authentication required"}`)
}
