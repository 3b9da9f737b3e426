package payments

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dentora/backoffice/internal/shared"
)

// Gateway is the slice of the upstream client the payment screens need.
type Gateway interface {
	Get(ctx context.Context, path string, out any) (bool, error)
	Post(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

// Service proxies payment operations to the upstream API and derives the
// stat-card aggregates the dashboard shows above the table.
type Service struct {
	gw Gateway
}

// NewService constructs a new Service.
func NewService(gw Gateway) *Service {
	return &Service{gw: gw}
}

// List fetches all payments and pages them locally. The upstream endpoint
// has no query parameters, so stats always cover the full collection.
func (s *Service) List(ctx context.Context, page, perPage int) ([]Payment, Stats, shared.Pagination, error) {
	var items []Payment
	if _, err := s.gw.Get(ctx, "/payments", &items); err != nil {
		return nil, Stats{}, shared.Pagination{}, err
	}

	stats := Stats{Total: len(items)}
	var sum float64
	for _, p := range items {
		switch strings.ToLower(p.Status) {
		case "confirmed", "completed":
			stats.Confirmed++
		case "pending":
			stats.Pending++
		}
		sum += p.Amount
	}
	stats.AmountSum = shared.FormatAmount(sum)

	pagination := shared.NewPagination(page, perPage, len(items))
	return shared.PageSlice(items, pagination), stats, pagination, nil
}

// Get fetches a single payment.
func (s *Service) Get(ctx context.Context, id int64) (*Payment, error) {
	var payment Payment
	found, err := s.gw.Get(ctx, fmt.Sprintf("/payments/%d", id), &payment)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, shared.ErrNotFound
	}
	return &payment, nil
}

// Create submits a new payment draft upstream.
func (s *Service) Create(ctx context.Context, fields map[string]string) error {
	return s.gw.Post(ctx, "/createpayment", payload(fields), nil)
}

// Update overwrites an existing payment.
func (s *Service) Update(ctx context.Context, id int64, fields map[string]string) error {
	return s.gw.Post(ctx, fmt.Sprintf("/updatepayment/%d", id), payload(fields), nil)
}

// Delete removes a payment.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.gw.Delete(ctx, fmt.Sprintf("/deletepayment/%d", id))
}

// payload converts the string-valued form draft into the typed JSON body
// the upstream expects.
func payload(fields map[string]string) map[string]any {
	body := make(map[string]any, len(fields))
	for k, v := range fields {
		switch k {
		case "amount":
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				body[k] = f
				continue
			}
		case "invoice_id":
			if n, err := strconv.ParseInt(v, 10, 64); err == nil {
				body[k] = n
				continue
			}
		}
		body[k] = v
	}
	return body
}
