package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/mentortrack/backend/api/transport"
	"github.com/mentortrack/backend/domain"
	identityUC "github.com/mentortrack/backend/usecase/identity"
)

type memUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]*domain.User)}
}

func (m *memUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := m.byEmail[user.Email]; ok {
		return nil, domain.ErrDuplicateEmail
	}
	m.nextID++
	user.ID = m.nextID
	m.byEmail[user.Email] = user
	return user, nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memUserRepo) GetByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	if u, ok := m.byEmail[email]; ok && u.Role == role {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *memUserRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	return nil, nil
}

type memAuthSessionRepo struct {
	sessions map[string]*domain.AuthSession
}

func newMemAuthSessionRepo() *memAuthSessionRepo {
	return &memAuthSessionRepo{sessions: make(map[string]*domain.AuthSession)}
}

func (m *memAuthSessionRepo) Get(ctx context.Context, id string) (*domain.AuthSession, error) {
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, domain.ErrAuthSessionNotFound
}

func (m *memAuthSessionRepo) Save(ctx context.Context, session *domain.AuthSession) error {
	m.sessions[session.ID] = session
	return nil
}

func (m *memAuthSessionRepo) Delete(ctx context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

const cookieName = "mt_session"

func newAuthHandler(t *testing.T) (*AuthHandler, *memAuthSessionRepo) {
	t.Helper()
	users := newMemUserRepo()
	sessions := newMemAuthSessionRepo()
	uc := identityUC.New(users, sessions, time.Hour, nil)

	if _, err := uc.Register(context.Background(), identityUC.RegisterInput{
		FullName:        "Ada Lovelace",
		Email:           "ada@example.com",
		Password:        "correct horse",
		ConfirmPassword: "correct horse",
		Role:            domain.RoleMentor,
	}); err != nil {
		t.Fatalf("seeding account failed: %v", err)
	}

	return NewAuthHandler(uc, nil, nil, cookieName), sessions
}

func postJSON(ctx *fasthttp.RequestCtx, body string) {
	ctx.Request.Header.SetMethod(fasthttp.MethodPost)
	ctx.Request.Header.SetContentType("application/json")
	ctx.Request.SetBodyString(body)
}

func TestLoginSuccess(t *testing.T) {
	h, sessions := newAuthHandler(t)

	var ctx fasthttp.RequestCtx
	postJSON(&ctx, `{"email":"ada@example.com","role":"mentor","password":"correct horse"}`)
	h.Login(&ctx)

	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	setCookie := string(ctx.Response.Header.PeekCookie(cookieName))
	if setCookie == "" {
		t.Fatal("login must set the session cookie")
	}
	if !strings.Contains(setCookie, "HttpOnly") {
		t.Fatalf("session cookie must be HttpOnly: %q", setCookie)
	}

	var res transport.Result
	if err := json.Unmarshal(ctx.Response.Body(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	data, _ := res.Data.(map[string]interface{})
	if data["redirect"] != "/mentor-dashboard" {
		t.Fatalf("mentor login must redirect to the mentor dashboard: %v", res.Data)
	}

	if len(sessions.sessions) != 1 {
		t.Fatalf("expected one stored session, got %d", len(sessions.sessions))
	}
}

func TestLoginWrongPassword(t *testing.T) {
	h, sessions := newAuthHandler(t)

	var ctx fasthttp.RequestCtx
	postJSON(&ctx, `{"email":"ada@example.com","role":"mentor","password":"wrong"}`)
	h.Login(&ctx)

	if ctx.Response.StatusCode() != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", ctx.Response.StatusCode())
	}
	if len(sessions.sessions) != 0 {
		t.Fatal("no session may be stored for a failed login")
	}
	if c := ctx.Response.Header.PeekCookie(cookieName); len(c) != 0 {
		t.Fatal("no session cookie may be set for a failed login")
	}
}

func TestLoginMalformedBody(t *testing.T) {
	h, _ := newAuthHandler(t)

	var ctx fasthttp.RequestCtx
	postJSON(&ctx, `{not json`)
	h.Login(&ctx)

	if ctx.Response.StatusCode() != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", ctx.Response.StatusCode())
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	h, _ := newAuthHandler(t)

	body := `{"full_name":"Ada Again","email":"ada@example.com","password":"pw","confirm_password":"pw","role":"mentor"}`

	var ctx fasthttp.RequestCtx
	postJSON(&ctx, body)
	h.Signup(&ctx)

	if ctx.Response.StatusCode() != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate email, got %d", ctx.Response.StatusCode())
	}
}

func TestLogoutClearsSession(t *testing.T) {
	h, sessions := newAuthHandler(t)

	sessions.sessions["live"] = &domain.AuthSession{
		ID:        "live",
		UserID:    1,
		Role:      domain.RoleMentor,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetCookie(cookieName, "live")
	h.Logout(&ctx)

	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("expected 200, got %d", ctx.Response.StatusCode())
	}
	if _, ok := sessions.sessions["live"]; ok {
		t.Fatal("logout must revoke the stored session")
	}
}
