package categories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dentora/backoffice/internal/shared"
	_ "github.com/dentora/backoffice/testing"
)

type stubGateway struct {
	categories []Category
	postPaths  []string
	postBody   any
	deleted    []string
}

func (s *stubGateway) Get(ctx context.Context, path string, out any) (bool, error) {
	if target, ok := out.(*[]Category); ok {
		*target = s.categories
		return true, nil
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

func TestListCategories(t *testing.T) {
	gw := &stubGateway{categories: []Category{{ID: 1, Name: "Implants"}, {ID: 2, Name: "Burs"}}}
	svc := NewService(gw)

	items, pagination, err := svc.List(context.Background(), 1, 20)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, 2, pagination.Total)
}

func TestCreateTrimsAndRejectsEmptyName(t *testing.T) {
	gw := &stubGateway{}
	svc := NewService(gw)

	err := svc.Create(context.Background(), "   ", "whitespace only")
	var vErr *shared.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Empty(t, gw.postPaths)

	require.NoError(t, svc.Create(context.Background(), "  Implants ", "titanium"))
	require.Equal(t, []string{"/createcategory"}, gw.postPaths)
	body, ok := gw.postBody.(map[string]string)
	require.True(t, ok)
	require.Equal(t, "Implants", body["name"])
}

func TestSetActiveTargetsUpstreamPath(t *testing.T) {
	gw := &stubGateway{}
	svc := NewService(gw)

	require.NoError(t, svc.SetActive(context.Background(), 4, false))
	require.Equal(t, []string{"/updatecategorystate/4"}, gw.postPaths)
	body, ok := gw.postBody.(map[string]bool)
	require.True(t, ok)
	require.False(t, body["active"])
}

func TestDeleteTargetsUpstreamPath(t *testing.T) {
	gw := &stubGateway{}
	svc := NewService(gw)

	require.NoError(t, svc.Delete(context.Background(), 4))
	require.Equal(t, []string{"/deletecategory/4"}, gw.deleted)
}
