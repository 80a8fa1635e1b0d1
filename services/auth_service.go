package services

import (
	"context"
	"errors"
	"regexp"

	"clinic-portal/clients"
	"clinic-portal/config"
	"clinic-portal/models"
	"clinic-portal/utils"

	"github.com/google/uuid"
)

var nonDigits = regexp.MustCompile(`\D`)

// AuthAPI is the slice of the backend the auth flow uses.
type AuthAPI interface {
	Login(ctx context.Context, phone, password string) (clients.TokenPair, models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Me(ctx context.Context, token string) (models.User, error)
}

type AuthService struct {
	api      AuthAPI
	sessions SessionStore
	mailer   *models.EmailService
}

func NewAuthService(api AuthAPI, sessions SessionStore, mailer *models.EmailService) *AuthService {
	return &AuthService{api: api, sessions: sessions, mailer: mailer}
}

// Login authenticates against the backend, stashes the backend token pair in
// the session store and hands back a portal JWT pointing at that session.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	pair, user, err := s.api.Login(ctx, req.Phone, req.Password)
	if err != nil {
		return models.LoginResponse{}, err
	}

	session := models.Session{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
	}
	if err := s.sessions.Save(ctx, session, utils.TokenExpiry()); err != nil {
		return models.LoginResponse{}, err
	}

	token, err := utils.GenerateToken(session.ID, user.ID, user.Name, user.Role)
	if err != nil {
		return models.LoginResponse{}, err
	}

	config.Log.Info("User logged in", config.Field("user_id", user.ID))
	return models.LoginResponse{Token: token, User: user}, nil
}

// Register cleans the phone number the way the backend expects (10 digits
// starting with 9) before forwarding the registration.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	req.Phone = nonDigits.ReplaceAllString(req.Phone, "")
	if len(req.Phone) != 10 || req.Phone[0] != '9' {
		return models.User{}, errors.New("phone number must be 10 digits starting with 9")
	}

	user, err := s.api.Register(ctx, req)
	if err != nil {
		return models.User{}, err
	}

	if s.mailer != nil && user.Email != "" {
		if err := s.mailer.SendWelcomeEmail(user.Email, user.Name); err != nil {
			config.Log.Warn("Welcome email failed", config.Field("error", err.Error()))
		}
	}
	return user, nil
}

func (s *AuthService) Profile(ctx context.Context, session *models.Session) (models.User, error) {
	return s.api.Me(ctx, session.AccessToken)
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}
