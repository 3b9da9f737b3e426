package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/dentora/backoffice/internal/gateway"
	"github.com/dentora/backoffice/internal/shared"
)

// Gateway is the slice of the upstream client the auth flow needs.
type Gateway interface {
	Post(ctx context.Context, path string, body, out any) error
}

// Service exchanges dashboard credentials for an upstream API token.
type Service struct {
	gw Gateway
}

// NewService constructs a new Service.
func NewService(gw Gateway) *Service {
	return &Service{gw: gw}
}

// Authenticate sends the credentials upstream and returns the issued token.
// A rejected login surfaces as shared.ErrInvalidCredentials so the handler
// never leaks upstream wording to the dashboard.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*Login, error) {
	payload := map[string]string{"email": email, "password": password}
	var login Login
	if err := s.gw.Post(ctx, "/login", payload, &login); err != nil {
		var gwErr *gateway.GatewayError
		if errors.As(err, &gwErr) {
			switch gwErr.Status {
			case http.StatusUnauthorized, http.StatusForbidden, http.StatusUnprocessableEntity:
				return nil, shared.ErrInvalidCredentials
			}
		}
		return nil, err
	}
	if login.Token == "" {
		return nil, shared.ErrInvalidCredentials
	}
	return &login, nil
}
