package invoices

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dentora/backoffice/internal/shared"
)

// Gateway is the slice of the upstream client the invoice screens need.
type Gateway interface {
	Get(ctx context.Context, path string, out any) (bool, error)
	Post(ctx context.Context, path string, body, out any) error
}

// Service proxies invoice reads and status transitions to the upstream API.
type Service struct {
	gw Gateway
}

// NewService constructs a new Service.
func NewService(gw Gateway) *Service {
	return &Service{gw: gw}
}

// ListCustomer fetches all customer invoices and pages them locally.
func (s *Service) ListCustomer(ctx context.Context, page, perPage int) ([]CustomerInvoice, shared.Pagination, error) {
	var items []CustomerInvoice
	if _, err := s.gw.Get(ctx, "/invoices", &items); err != nil {
		return nil, shared.Pagination{}, err
	}
	pagination := shared.NewPagination(page, perPage, len(items))
	return shared.PageSlice(items, pagination), pagination, nil
}

// GetCustomer fetches one customer invoice.
func (s *Service) GetCustomer(ctx context.Context, id int64) (*CustomerInvoice, error) {
	var inv CustomerInvoice
	found, err := s.gw.Get(ctx, fmt.Sprintf("/invoices/%d", id), &inv)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, shared.ErrNotFound
	}
	return &inv, nil
}

// ChangeCustomerStatus transitions a customer invoice.
func (s *Service) ChangeCustomerStatus(ctx context.Context, id int64, status string) error {
	body := map[string]string{"status": status}
	return s.gw.Post(ctx, fmt.Sprintf("/changestatusinvoice/%d", id), body, nil)
}

// ListSupplier fetches all supplier invoices and pages them locally.
func (s *Service) ListSupplier(ctx context.Context, page, perPage int) ([]SupplierInvoice, shared.Pagination, error) {
	var items []SupplierInvoice
	if _, err := s.gw.Get(ctx, "/supplierinvoices", &items); err != nil {
		return nil, shared.Pagination{}, err
	}
	pagination := shared.NewPagination(page, perPage, len(items))
	return shared.PageSlice(items, pagination), pagination, nil
}

// GetSupplier fetches one supplier invoice.
func (s *Service) GetSupplier(ctx context.Context, id int64) (*SupplierInvoice, error) {
	var inv SupplierInvoice
	found, err := s.gw.Get(ctx, fmt.Sprintf("/supplierinvoices/%d", id), &inv)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, shared.ErrNotFound
	}
	return &inv, nil
}

// ChangeSupplierStatus transitions a supplier invoice.
func (s *Service) ChangeSupplierStatus(ctx context.Context, id int64, status string) error {
	body := map[string]string{"status": status}
	return s.gw.Post(ctx, fmt.Sprintf("/changesupplierinvoicestatus/%d", id), body, nil)
}

// Backfill creates a supplier invoice by hand for a received order the
// upstream never invoiced automatically.
func (s *Service) Backfill(ctx context.Context, fields map[string]string) error {
	return s.gw.Post(ctx, "/enforcecreatesupplierinvoice", backfillPayload(fields), nil)
}

// backfillPayload converts the string-valued form draft into the typed
// JSON body the upstream expects.
func backfillPayload(fields map[string]string) map[string]any {
	body := make(map[string]any, len(fields))
	for k, v := range fields {
		switch k {
		case "subtotal", "tax_amount", "total_amount":
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				body[k] = f
				continue
			}
		case "supplier_order_id":
			if n, err := strconv.ParseInt(v, 10, 64); err == nil {
				body[k] = n
				continue
			}
		}
		body[k] = v
	}
	return body
}
