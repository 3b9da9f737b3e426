package procurement

import (
	"context"
	"fmt"

	"github.com/dentora/backoffice/internal/shared"
)

// Gateway is the slice of the upstream client the procurement screens need.
type Gateway interface {
	Get(ctx context.Context, path string, out any) (bool, error)
	Post(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

// Service proxies supplier directory and purchase order operations to the
// upstream API.
type Service struct {
	gw Gateway
}

// NewService constructs a new Service.
func NewService(gw Gateway) *Service {
	return &Service{gw: gw}
}

// ListSuppliers fetches all suppliers and pages them locally.
func (s *Service) ListSuppliers(ctx context.Context, page, perPage int) ([]Supplier, shared.Pagination, error) {
	var items []Supplier
	if _, err := s.gw.Get(ctx, "/suppliers", &items); err != nil {
		return nil, shared.Pagination{}, err
	}
	pagination := shared.NewPagination(page, perPage, len(items))
	return shared.PageSlice(items, pagination), pagination, nil
}

// GetSupplier fetches one supplier.
func (s *Service) GetSupplier(ctx context.Context, id int64) (*Supplier, error) {
	var supplier Supplier
	found, err := s.gw.Get(ctx, fmt.Sprintf("/suppliers/%d", id), &supplier)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, shared.ErrNotFound
	}
	return &supplier, nil
}

// DeleteSupplier removes a supplier from the directory.
func (s *Service) DeleteSupplier(ctx context.Context, id int64) error {
	return s.gw.Delete(ctx, fmt.Sprintf("/deletesupplier/%d", id))
}

// CreateOrder validates line amounts and submits the purchase order.
func (s *Service) CreateOrder(ctx context.Context, order Order) error {
	if order.SupplierID <= 0 {
		return &shared.ValidationError{Reason: "supplier is required"}
	}
	if len(order.Lines) == 0 {
		return &shared.ValidationError{Reason: "at least one order line is required"}
	}
	var total float64
	for _, line := range order.Lines {
		if line.ProductID <= 0 {
			return &shared.ValidationError{Reason: "order line product is required"}
		}
		if line.Quantity <= 0 {
			return &shared.ValidationError{Reason: "order line quantity must be positive"}
		}
		if line.UnitPrice < 0 {
			return &shared.ValidationError{Reason: "order line price must not be negative"}
		}
		total += float64(line.Quantity) * line.UnitPrice
	}
	order.TotalAmount = total
	return s.gw.Post(ctx, "/createsupplierorder", order, nil)
}
