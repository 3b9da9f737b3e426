package invoices

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dentora/backoffice/internal/form"
	"github.com/dentora/backoffice/internal/shared"
	_ "github.com/dentora/backoffice/testing"
)

type stubGateway struct {
	customer  map[string]CustomerInvoice
	supplier  map[string]SupplierInvoice
	postPaths []string
	postBody  any
}

func newStubGateway() *stubGateway {
	return &stubGateway{
		customer: make(map[string]CustomerInvoice),
		supplier: make(map[string]SupplierInvoice),
	}
}

func (s *stubGateway) Get(ctx context.Context, path string, out any) (bool, error) {
	switch target := out.(type) {
	case *CustomerInvoice:
		inv, ok := s.customer[path]
		if ok {
			*target = inv
		}
		return ok, nil
	case *SupplierInvoice:
		inv, ok := s.supplier[path]
		if ok {
			*target = inv
		}
		return ok, nil
	}
	return false, nil
}

func (s *stubGateway) Post(ctx context.Context, path string, body, out any) error {
	s.postPaths = append(s.postPaths, path)
	s.postBody = body
	return nil
}

func TestGetCustomerInvoice(t *testing.T) {
	gw := newStubGateway()
	gw.customer["/invoices/42"] = CustomerInvoice{ID: 42, Number: "INV-42", TotalAmount: 115}
	svc := NewService(gw)

	inv, err := svc.GetCustomer(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, "INV-42", inv.Number)
}

func TestGetCustomerInvoiceNotFound(t *testing.T) {
	svc := NewService(newStubGateway())

	_, err := svc.GetCustomer(context.Background(), 42)
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestChangeStatusesTargetUpstreamPaths(t *testing.T) {
	gw := newStubGateway()
	svc := NewService(gw)

	require.NoError(t, svc.ChangeCustomerStatus(context.Background(), 4, "paid"))
	require.NoError(t, svc.ChangeSupplierStatus(context.Background(), 9, "received"))
	require.Equal(t, []string{"/changestatusinvoice/4", "/changesupplierinvoicestatus/9"}, gw.postPaths)
}

func TestBackfillSendsTypedPayload(t *testing.T) {
	gw := newStubGateway()
	svc := NewService(gw)

	err := svc.Backfill(context.Background(), map[string]string{
		"invoice_number":    "SI-77",
		"subtotal":          "100",
		"tax_amount":        "15",
		"total_amount":      "115",
		"supplier_order_id": "7",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"/enforcecreatesupplierinvoice"}, gw.postPaths)

	body, ok := gw.postBody.(map[string]any)
	require.True(t, ok)
	require.Equal(t, 100.0, body["subtotal"])
	require.Equal(t, 15.0, body["tax_amount"])
	require.Equal(t, 115.0, body["total_amount"])
	require.Equal(t, int64(7), body["supplier_order_id"])
	require.Equal(t, "SI-77", body["invoice_number"])
}

func TestBackfillRulesEnforceSum(t *testing.T) {
	rules := backfillRules()

	draft := form.Draft{
		"invoice_number":    "SI-77",
		"issued_at":         "2026-07-01",
		"subtotal":          "100",
		"tax_amount":        "15",
		"total_amount":      "120",
		"supplier_order_id": "7",
	}
	errs := form.Validate(draft, rules)
	require.Equal(t, "must equal subtotal plus tax_amount", errs["total_amount"])

	draft["total_amount"] = "114.999"
	errs = form.Validate(draft, rules)
	require.Empty(t, errs)
}

func TestBackfillRulesAllowZeroTax(t *testing.T) {
	draft := form.Draft{
		"invoice_number":    "SI-78",
		"issued_at":         "2026-07-01",
		"subtotal":          "100",
		"tax_amount":        "0",
		"total_amount":      "100",
		"supplier_order_id": "7",
	}
	errs := form.Validate(draft, backfillRules())
	require.Empty(t, errs)

	draft["tax_amount"] = "-5"
	errs = form.Validate(draft, backfillRules())
	require.Equal(t, "must not be negative", errs["tax_amount"])
}
