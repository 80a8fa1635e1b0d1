package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-portal/models"
	"clinic-portal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessionStore struct {
	sessions map[string]models.Session
}

func (s *stubSessionStore) Save(_ context.Context, session models.Session, _ time.Duration) error {
	s.sessions[session.ID] = session
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (models.Session, bool) {
	session, ok := s.sessions[id]
	return session, ok
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func authTestRouter(t *testing.T, optional bool) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &stubSessionStore{sessions: map[string]models.Session{
		"sess-1": {ID: "sess-1", UserID: "patient-1", Name: "Asha", AccessToken: "backend-token"},
	}}

	token, err := utils.GenerateToken("sess-1", "patient-1", "Asha", "patient")
	require.NoError(t, err)

	router := gin.New()
	mw := AuthMiddleware(store)
	if optional {
		mw = OptionalAuth(store)
	}
	router.GET("/probe", mw, func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": session.UserID})
	})
	return router, token
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	router, _ := authTestRouter(t, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "login_required")
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	router, token := authTestRouter(t, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", token) // missing "Bearer" prefix
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsUnknownSession(t *testing.T) {
	router, _ := authTestRouter(t, false)

	// Valid signature, but the session was never stored.
	token, err := utils.GenerateToken("sess-gone", "patient-1", "Asha", "patient")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	router, token := authTestRouter(t, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "patient-1")
}

func TestOptionalAuthLetsAnonymousThrough(t *testing.T) {
	router, _ := authTestRouter(t, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "anonymous")
}

func TestOptionalAuthResolvesSessionWhenPresent(t *testing.T) {
	router, token := authTestRouter(t, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "patient-1")
}
