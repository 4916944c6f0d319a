package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/brvhprince/planner-api/internal/core/domain"
)

const testSecret = "auth-test-secret"

type stubSessions struct {
	sessions map[string]*domain.AppSession
	deleted  []string
}

func newStubSessions() *stubSessions {
	return &stubSessions{sessions: make(map[string]*domain.AppSession)}
}

func (s *stubSessions) Create(_ context.Context, session *domain.AppSession) (string, error) {
	s.sessions[session.SessionID] = session
	return session.SessionID, nil
}

func (s *stubSessions) Find(_ context.Context, id string) (*domain.AppSession, error) {
	return s.sessions[id], nil
}

func (s *stubSessions) Delete(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	delete(s.sessions, id)
	return nil
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	return token
}

func invoke(sessions *stubSessions, authHeader string) (echo.Context, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/details", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	handler := Auth(testSecret, sessions)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func TestAuth_ValidSession(t *testing.T) {
	sessions := newStubSessions()
	sessions.sessions["sess-1"] = &domain.AppSession{
		SessionID: "sess-1",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	c, err := invoke(sessions, "Bearer "+signedToken(t, jwt.MapClaims{"sid": "sess-1"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Get(CtxUserID) != "user-1" || c.Get(CtxSessionID) != "sess-1" {
		t.Fatalf("context not populated: %v / %v", c.Get(CtxUserID), c.Get(CtxSessionID))
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := invoke(newStubSessions(), "")
	if err == nil || err.Error() != "You are not authorized to access this resource" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Token abc", "Bearer"} {
		_, err := invoke(newStubSessions(), header)
		if err == nil || err.Error() != "You are not authorized to access this resource" {
			t.Fatalf("header %q: unexpected error: %v", header, err)
		}
	}
}

func TestAuth_BadToken(t *testing.T) {
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sid": "sess-1"}).
		SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	for _, token := range []string{"not-a-jwt", forged} {
		_, err := invoke(newStubSessions(), "Bearer "+token)
		if err == nil || err.Error() != "Your session is invalid or has expired. Login again" {
			t.Fatalf("token %q: unexpected error: %v", token, err)
		}
	}
}

func TestAuth_UnknownSession(t *testing.T) {
	_, err := invoke(newStubSessions(), "Bearer "+signedToken(t, jwt.MapClaims{"sid": "missing"}))
	if err == nil || err.Error() != "Your session is invalid or has expired. Login again" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAuth_ExpiredSessionDeleted(t *testing.T) {
	sessions := newStubSessions()
	sessions.sessions["sess-1"] = &domain.AppSession{
		SessionID: "sess-1",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	_, err := invoke(sessions, "Bearer "+signedToken(t, jwt.MapClaims{"sid": "sess-1"}))
	if err == nil || err.Error() != "Your session is invalid or has expired. Login again" {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions.deleted) != 1 || sessions.deleted[0] != "sess-1" {
		t.Fatalf("expired session not revoked: %v", sessions.deleted)
	}
}
