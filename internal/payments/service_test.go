package payments

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dentora/backoffice/internal/shared"
	_ "github.com/dentora/backoffice/testing"
)

type stubGateway struct {
	payments  []Payment
	getErr    error
	postPaths []string
	postBody  any
	deleted   []string
}

func (s *stubGateway) Get(ctx context.Context, path string, out any) (bool, error) {
	if s.getErr != nil {
		return false, s.getErr
	}
	switch target := out.(type) {
	case *[]Payment:
		*target = s.payments
		return true, nil
	case *Payment:
		for _, p := range s.payments {
			if path == fmt.Sprintf("/payments/%d", p.ID) {
				*target = p
				return true, nil
			}
		}
		return false, nil
	}
	return false, nil
}

func (s *stubGateway) Post(ctx context.Context, path string, body, out any) error {
	s.postPaths = append(s.postPaths, path)
	s.postBody = body
	return nil
}

func (s *stubGateway) Delete(ctx context.Context, path string) error {
	s.deleted = append(s.deleted, path)
	return nil
}

func TestListComputesStats(t *testing.T) {
	gw := &stubGateway{payments: []Payment{
		{ID: 1, Amount: 1200.50, Status: "confirmed"},
		{ID: 2, Amount: 99.50, Status: "pending"},
		{ID: 3, Amount: 2200, Status: "Confirmed"},
	}}
	svc := NewService(gw)

	items, stats, pagination, err := svc.List(context.Background(), 1, 20)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, 3, stats.Total)
	require.Equal(t, 2, stats.Confirmed)
	require.Equal(t, 1, stats.Pending)
	require.Equal(t, "3,500.00", stats.AmountSum)
	require.Equal(t, 1, pagination.TotalPages)
}

func TestListPagesLocally(t *testing.T) {
	gw := &stubGateway{}
	for i := 1; i <= 25; i++ {
		gw.payments = append(gw.payments, Payment{ID: int64(i), Amount: 1})
	}
	svc := NewService(gw)

	items, _, pagination, err := svc.List(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, items, 10)
	require.Equal(t, int64(11), items[0].ID)
	require.Equal(t, 3, pagination.TotalPages)
	require.Equal(t, 25, pagination.Total)
}

func TestListPropagatesGatewayError(t *testing.T) {
	gw := &stubGateway{getErr: errors.New("upstream down")}
	svc := NewService(gw)

	_, _, _, err := svc.List(context.Background(), 1, 20)
	require.Error(t, err)
}

func TestGetNotFound(t *testing.T) {
	svc := NewService(&stubGateway{})

	_, err := svc.Get(context.Background(), 9)
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCreateSendsTypedPayload(t *testing.T) {
	gw := &stubGateway{}
	svc := NewService(gw)

	err := svc.Create(context.Background(), map[string]string{
		"amount":         "120.50",
		"currency":       "EUR",
		"payment_method": "transfer",
		"invoice_type":   "customer_invoice",
		"invoice_id":     "42",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"/createpayment"}, gw.postPaths)

	body, ok := gw.postBody.(map[string]any)
	require.True(t, ok)
	require.Equal(t, 120.50, body["amount"])
	require.Equal(t, int64(42), body["invoice_id"])
	require.Equal(t, "EUR", body["currency"])
}

func TestUpdateTargetsUpstreamPath(t *testing.T) {
	gw := &stubGateway{}
	svc := NewService(gw)

	require.NoError(t, svc.Update(context.Background(), 7, map[string]string{"status": "confirmed"}))
	require.Equal(t, []string{"/updatepayment/7"}, gw.postPaths)
}

func TestDeleteTargetsUpstreamPath(t *testing.T) {
	gw := &stubGateway{}
	svc := NewService(gw)

	require.NoError(t, svc.Delete(context.Background(), 7))
	require.Equal(t, []string{"/deletepayment/7"}, gw.deleted)
}

func TestSnapshotDraftRoundTrip(t *testing.T) {
	p := &Payment{
		ID:            1,
		Amount:        88.5,
		Currency:      "EUR",
		PaymentMethod: "card",
		Status:        "confirmed",
		PaymentDate:   "2026-05-10",
		InvoiceType:   "customer_invoice",
		InvoiceID:     42,
	}
	d := snapshotDraft(p)
	require.Equal(t, "88.5", d["amount"])
	require.Equal(t, "42", d["invoice_id"])
	require.Equal(t, "customer_invoice", d["invoice_type"])

	body := payload(d)
	require.Equal(t, 88.5, body["amount"])
	require.Equal(t, int64(42), body["invoice_id"])
}
