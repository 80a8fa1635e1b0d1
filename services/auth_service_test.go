package services

import (
	"context"
	"testing"
	"time"

	"clinic-portal/clients"
	"clinic-portal/models"
	"clinic-portal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthAPI struct {
	loginErr   error
	registered []models.RegisterRequest
	user       models.User
	pair       clients.TokenPair
}

func (f *fakeAuthAPI) Login(_ context.Context, phone, password string) (clients.TokenPair, models.User, error) {
	if f.loginErr != nil {
		return clients.TokenPair{}, models.User{}, f.loginErr
	}
	return f.pair, f.user, nil
}

func (f *fakeAuthAPI) Register(_ context.Context, req models.RegisterRequest) (models.User, error) {
	f.registered = append(f.registered, req)
	return models.User{ID: "patient-1", Name: req.Name, Phone: req.Phone}, nil
}

func (f *fakeAuthAPI) Me(_ context.Context, token string) (models.User, error) {
	return f.user, nil
}

func TestLoginIssuesPortalToken(t *testing.T) {
	api := &fakeAuthAPI{
		user: models.User{ID: "patient-1", Name: "Asha", Email: "asha@example.com", Role: models.RolePatient},
		pair: clients.TokenPair{Access: "backend-access", Refresh: "backend-refresh"},
	}
	sessions := newMemorySessionStore()
	svc := NewAuthService(api, sessions, nil)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Phone: "9812345678", Password: "pw"})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "patient-1", resp.User.ID)

	// The token must resolve to a stored session holding the backend pair.
	claims, err := utils.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "patient-1", claims.UserID)

	session, ok := sessions.Get(context.Background(), claims.SessionID)
	require.True(t, ok)
	assert.Equal(t, "backend-access", session.AccessToken)
	assert.Equal(t, "backend-refresh", session.RefreshToken)
	assert.Equal(t, "asha@example.com", session.Email)
}

func TestLoginPropagatesBackendError(t *testing.T) {
	api := &fakeAuthAPI{loginErr: clients.ErrUnauthorized}
	svc := NewAuthService(api, newMemorySessionStore(), nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{Phone: "9812345678", Password: "wrong"})

	assert.ErrorIs(t, err, clients.ErrUnauthorized)
}

func TestRegisterNormalizesPhone(t *testing.T) {
	api := &fakeAuthAPI{}
	svc := NewAuthService(api, newMemorySessionStore(), nil)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "Asha",
		Phone:    "98-1234 5678",
		Password: "password123",
	})

	require.NoError(t, err)
	require.Len(t, api.registered, 1)
	assert.Equal(t, "9812345678", api.registered[0].Phone)
}

func TestRegisterRejectsBadPhone(t *testing.T) {
	svc := NewAuthService(&fakeAuthAPI{}, newMemorySessionStore(), nil)

	cases := []string{"12345", "8812345678", "98123456789", ""}
	for _, phone := range cases {
		_, err := svc.Register(context.Background(), models.RegisterRequest{
			Name:     "Asha",
			Phone:    phone,
			Password: "password123",
		})
		assert.Error(t, err, "phone %q should be rejected", phone)
	}
}

func TestLogoutDeletesSession(t *testing.T) {
	sessions := newMemorySessionStore()
	ctx := context.Background()
	require.NoError(t, sessions.Save(ctx, models.Session{ID: "sess-1"}, time.Minute))

	svc := NewAuthService(&fakeAuthAPI{}, sessions, nil)
	require.NoError(t, svc.Logout(ctx, "sess-1"))

	_, ok := sessions.Get(ctx, "sess-1")
	assert.False(t, ok)
}

func TestProfileUsesBackendToken(t *testing.T) {
	api := &fakeAuthAPI{user: models.User{ID: "patient-1", Name: "Asha"}}
	svc := NewAuthService(api, newMemorySessionStore(), nil)

	user, err := svc.Profile(context.Background(), &models.Session{AccessToken: "backend-access"})

	require.NoError(t, err)
	assert.Equal(t, "patient-1", user.ID)
}
