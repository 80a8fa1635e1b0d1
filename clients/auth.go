package clients

import (
	"context"
	"net/http"

	"clinic-portal/models"
)

// TokenPair is the access/refresh pair issued by the backend on login.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type loginResponse struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    models.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, phone, password string) (TokenPair, models.User, error) {
	payload := map[string]string{"phone": phone, "password": password}

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login/", "", nil, payload, &resp); err != nil {
		return TokenPair{}, models.User{}, err
	}
	return TokenPair{Access: resp.Access, Refresh: resp.Refresh}, resp.User, nil
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/auth/register/", "", nil, req, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (c *Client) Me(ctx context.Context, token string) (models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/users/me/", token, nil, nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
