package backups

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dentora/backoffice/internal/gateway"
	"github.com/dentora/backoffice/internal/shared"
)

// Gateway is the slice of the upstream client the backup screen needs.
type Gateway interface {
	Get(ctx context.Context, path string, out any) (bool, error)
	Download(ctx context.Context, path string) (io.ReadCloser, string, error)
}

// Service lists backups and streams their downloads from the upstream.
type Service struct {
	gw Gateway
}

// NewService constructs a new Service.
func NewService(gw Gateway) *Service {
	return &Service{gw: gw}
}

// List fetches the backup catalog.
func (s *Service) List(ctx context.Context) ([]Backup, error) {
	var items []Backup
	if _, err := s.gw.Get(ctx, "/backups", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Download streams one backup archive. A session without a token aborts
// before any upstream call; the user must re-authenticate.
func (s *Service) Download(ctx context.Context, id int64) (io.ReadCloser, string, error) {
	body, contentType, err := s.gw.Download(ctx, fmt.Sprintf("/backups/%d/download", id))
	if err != nil {
		if errors.Is(err, gateway.ErrNoCredentials) {
			return nil, "", shared.ErrNotAuthenticated
		}
		return nil, "", err
	}
	return body, contentType, nil
}
