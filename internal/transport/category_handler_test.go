package transport

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"storefront/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type mockCategoryService struct {
	dtos []service.CategoryDTO
	err  error
}

func (m *mockCategoryService) GetCategories(ctx context.Context) ([]service.CategoryDTO, error) {
	return m.dtos, m.err
}

func (m *mockCategoryService) GetCategoryByID(ctx context.Context, id int) (*service.CategoryDTO, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.dtos {
		if m.dtos[i].ID == id {
			return &m.dtos[i], nil
		}
	}
	return nil, service.ErrCategoryNotFound
}

func newCategoryRouter(svc service.CategoryService) chi.Router {
	router := chi.NewRouter()
	handler := NewCategoryHandler(svc, zap.NewNop())
	handler.RegisterRoutes(router)
	return router
}

func TestListCategories_EmptyArray(t *testing.T) {
	router := newCategoryRouter(&mockCategoryService{dtos: []service.CategoryDTO{}})

	w := doRequest(router, "/api/categories")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("Expected [], got %s", body)
	}
}

func TestGetCategoryByID(t *testing.T) {
	router := newCategoryRouter(&mockCategoryService{dtos: []service.CategoryDTO{{ID: 1, Name: "Snacks"}}})

	if w := doRequest(router, "/api/categories/1"); w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
	if w := doRequest(router, "/api/categories/99"); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
	if w := doRequest(router, "/api/categories/oops"); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestGetCategoryByID_DatabaseError(t *testing.T) {
	router := newCategoryRouter(&mockCategoryService{err: service.ErrDatabase})

	if w := doRequest(router, "/api/categories/1"); w.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", w.Code)
	}
}
