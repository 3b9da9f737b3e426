package form

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubGetter struct {
	mu       sync.Mutex
	calls    []string
	entities map[string]map[string]any
	err      error
	block    map[string]chan struct{}
}

func newStubGetter() *stubGetter {
	return &stubGetter{entities: make(map[string]map[string]any)}
}

func (s *stubGetter) Get(ctx context.Context, path string, out any) (bool, error) {
	s.mu.Lock()
	s.calls = append(s.calls, path)
	gate := s.block[path]
	err := s.err
	entity, found := s.entities[path]
	s.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if target, ok := out.(*map[string]any); ok {
		*target = entity
	}
	return true, nil
}

func (s *stubGetter) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

var testResources = map[string]string{
	"customer_invoice": "/invoices/%d",
	"supplier_invoice": "/supplierinvoices/%d",
	"supplier_order":   "/supplierorders/%d",
}

func TestCheckEmptyValueIsNeutral(t *testing.T) {
	gw := newStubGetter()
	checker := NewChecker(gw, testResources)

	v := checker.Check(context.Background(), "invoice_id", "", "customer_invoice")
	require.False(t, v.Checked)
	require.False(t, v.Exists)
	require.Zero(t, gw.callCount())
}

func TestCheckMalformedValuesSkipNetwork(t *testing.T) {
	gw := newStubGetter()
	checker := NewChecker(gw, testResources)

	for _, bad := range []string{"0", "-7", "abc"} {
		v := checker.Check(context.Background(), "invoice_id", bad, "customer_invoice")
		require.True(t, v.Checked, "input %q", bad)
		require.False(t, v.Exists, "input %q", bad)
		require.Equal(t, "must be a positive number", v.Message, "input %q", bad)
	}
	require.Zero(t, gw.callCount())
}

func TestCheckUnsetDiscriminator(t *testing.T) {
	gw := newStubGetter()
	checker := NewChecker(gw, testResources)

	v := checker.Check(context.Background(), "invoice_id", "42", "")
	require.True(t, v.Checked)
	require.False(t, v.Exists)
	require.Equal(t, "select type first", v.Message)
	require.Zero(t, gw.callCount())
}

func TestCheckFoundEntity(t *testing.T) {
	gw := newStubGetter()
	gw.entities["/invoices/42"] = map[string]any{"id": float64(42), "number": "INV-42"}
	checker := NewChecker(gw, testResources)

	v := checker.Check(context.Background(), "invoice_id", "42", "customer_invoice")
	require.True(t, v.Checked)
	require.True(t, v.Exists)
	require.Equal(t, "INV-42", v.Entity["number"])
	require.Equal(t, []string{"/invoices/42"}, gw.calls)
}

func TestCheckNotFound(t *testing.T) {
	gw := newStubGetter()
	checker := NewChecker(gw, testResources)

	v := checker.Check(context.Background(), "invoice_id", "42", "customer_invoice")
	require.True(t, v.Checked)
	require.False(t, v.Exists)
	require.Equal(t, "not found", v.Message)
}

func TestCheckGatewayFailureDowngradesToNegative(t *testing.T) {
	gw := newStubGetter()
	gw.err = errors.New("upstream on fire")
	checker := NewChecker(gw, testResources)

	v := checker.Check(context.Background(), "invoice_id", "42", "customer_invoice")
	require.True(t, v.Checked)
	require.False(t, v.Exists)
	require.Equal(t, "not found", v.Message)
}

func TestCheckDiscriminatorSelectsResource(t *testing.T) {
	gw := newStubGetter()
	gw.entities["/supplierinvoices/7"] = map[string]any{"id": float64(7)}
	checker := NewChecker(gw, testResources)

	v := checker.Check(context.Background(), "invoice_id", "7", "supplier_invoice")
	require.True(t, v.Exists)
	require.Equal(t, []string{"/supplierinvoices/7"}, gw.calls)
}
