package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	_ "github.com/dentora/backoffice/testing"
)

type stubGateway struct {
	movements []Movement
	paths     []string
}

func (s *stubGateway) Get(ctx context.Context, path string, out any) (bool, error) {
	s.paths = append(s.paths, path)
	if target, ok := out.(*[]Movement); ok {
		*target = s.movements
		return true, nil
	}
	return false, nil
}

func TestListComputesDirectionTotals(t *testing.T) {
	gw := &stubGateway{movements: []Movement{
		{ID: 1, Direction: "in", Quantity: 40},
		{ID: 2, Direction: "OUT", Quantity: 15},
		{ID: 3, Direction: "in", Quantity: 5},
		{ID: 4, Direction: "adjustment", Quantity: 99},
	}}
	svc := NewService(gw)

	items, totals, pagination, err := svc.List(context.Background(), 1, 20)
	require.NoError(t, err)
	require.Len(t, items, 4)
	require.Equal(t, 45, totals.In)
	require.Equal(t, 15, totals.Out)
	require.Equal(t, 4, pagination.Total)
}

func TestListUsesUpstreamSpelling(t *testing.T) {
	gw := &stubGateway{}
	svc := NewService(gw)

	_, _, _, err := svc.List(context.Background(), 1, 20)
	require.NoError(t, err)
	require.Equal(t, []string{"/stockmovments"}, gw.paths)
}
