package categories

import (
	"context"
	"fmt"
	"strings"

	"github.com/dentora/backoffice/internal/shared"
)

// Gateway is the slice of the upstream client the category screens need.
type Gateway interface {
	Get(ctx context.Context, path string, out any) (bool, error)
	Post(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

// Service proxies category CRUD to the upstream API.
type Service struct {
	gw Gateway
}

// NewService constructs a new Service.
func NewService(gw Gateway) *Service {
	return &Service{gw: gw}
}

// List fetches all categories and pages them locally.
func (s *Service) List(ctx context.Context, page, perPage int) ([]Category, shared.Pagination, error) {
	var items []Category
	if _, err := s.gw.Get(ctx, "/categories", &items); err != nil {
		return nil, shared.Pagination{}, err
	}
	pagination := shared.NewPagination(page, perPage, len(items))
	return shared.PageSlice(items, pagination), pagination, nil
}

// Create adds a new category.
func (s *Service) Create(ctx context.Context, name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &shared.ValidationError{Reason: "category name is required"}
	}
	body := map[string]string{"name": name, "description": description}
	return s.gw.Post(ctx, "/createcategory", body, nil)
}

// SetActive toggles a category's visibility in the store.
func (s *Service) SetActive(ctx context.Context, id int64, active bool) error {
	body := map[string]bool{"active": active}
	return s.gw.Post(ctx, fmt.Sprintf("/updatecategorystate/%d", id), body, nil)
}

// Delete removes a category.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.gw.Delete(ctx, fmt.Sprintf("/deletecategory/%d", id))
}
