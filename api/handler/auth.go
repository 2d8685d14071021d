package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/mentortrack/backend/api/transport"
	"github.com/mentortrack/backend/domain"
	"github.com/mentortrack/backend/pkg/httpcontext"
	identityUC "github.com/mentortrack/backend/usecase/identity"
)

const (
	mentorDashboardPath = "/mentor-dashboard"
	menteeDashboardPath = "/mentee-dashboard"
)

type AuthHandler struct {
	baseHandler
	uc         *identityUC.UseCase
	cookieName string
}

func NewAuthHandler(uc *identityUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger, cookieName string) *AuthHandler {
	return &AuthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		cookieName:  cookieName,
	}
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(ctx *fasthttp.RequestCtx) {
	var req transport.SignupRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, err := h.uc.Register(stdCtx, identityUC.RegisterInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            domain.Role(req.Role),
		Domain:          req.Domain,
		Bio:             req.Bio,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.respondResult(ctx, http.StatusCreated, "Account created successfully! Please log in.", map[string]interface{}{
		"user_id": user.ID,
	})
}

// Login handles POST /login. On success the session id is set as an
// HttpOnly cookie and the caller is told which dashboard to load.
func (h *AuthHandler) Login(ctx *fasthttp.RequestCtx) {
	var req transport.LoginRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	session, err := h.uc.Login(stdCtx, req.Email, domain.Role(req.Role), req.Password)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.setSessionCookie(ctx, session)

	redirect := menteeDashboardPath
	if session.Role == domain.RoleMentor {
		redirect = mentorDashboardPath
	}
	h.respondResult(ctx, http.StatusOK, "Login successful", map[string]interface{}{
		"redirect": redirect,
	})
}

// Logout handles GET /logout. The session is revoked server-side and the
// cookie expired regardless of whether one was present.
func (h *AuthHandler) Logout(ctx *fasthttp.RequestCtx) {
	sessionID := string(ctx.Request.Header.Cookie(h.cookieName))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Logout(stdCtx, sessionID); err != nil {
		h.respondError(ctx, err)
		return
	}

	h.clearSessionCookie(ctx)
	h.respondResult(ctx, http.StatusOK, "You have been logged out successfully.", map[string]interface{}{
		"redirect": "/",
	})
}

func (h *AuthHandler) setSessionCookie(ctx *fasthttp.RequestCtx, session *domain.AuthSession) {
	c := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(c)
	c.SetKey(h.cookieName)
	c.SetValue(session.ID)
	c.SetPath("/")
	c.SetHTTPOnly(true)
	c.SetSameSite(fasthttp.CookieSameSiteLaxMode)
	c.SetExpire(session.ExpiresAt)
	ctx.Response.Header.SetCookie(c)
}

func (h *AuthHandler) clearSessionCookie(ctx *fasthttp.RequestCtx) {
	c := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(c)
	c.SetKey(h.cookieName)
	c.SetValue("")
	c.SetPath("/")
	c.SetHTTPOnly(true)
	c.SetExpire(fasthttp.CookieExpireDelete)
	ctx.Response.Header.SetCookie(c)
}
