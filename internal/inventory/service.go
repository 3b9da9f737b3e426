package inventory

import (
	"context"
	"strings"

	"github.com/dentora/backoffice/internal/shared"
)

// Gateway is the slice of the upstream client the inventory screen needs.
type Gateway interface {
	Get(ctx context.Context, path string, out any) (bool, error)
}

// Service reads the stock movement ledger and derives the in/out totals.
type Service struct {
	gw Gateway
}

// NewService constructs a new Service.
func NewService(gw Gateway) *Service {
	return &Service{gw: gw}
}

// List fetches all stock movements and pages them locally. Totals always
// cover the full ledger, matching the stat cards.
func (s *Service) List(ctx context.Context, page, perPage int) ([]Movement, Totals, shared.Pagination, error) {
	var items []Movement
	// Upstream path is misspelled on the server; it is part of the contract.
	if _, err := s.gw.Get(ctx, "/stockmovments", &items); err != nil {
		return nil, Totals{}, shared.Pagination{}, err
	}

	var totals Totals
	for _, m := range items {
		switch strings.ToLower(m.Direction) {
		case "in", "inbound":
			totals.In += m.Quantity
		case "out", "outbound":
			totals.Out += m.Quantity
		}
	}

	pagination := shared.NewPagination(page, perPage, len(items))
	return shared.PageSlice(items, pagination), totals, pagination, nil
}
