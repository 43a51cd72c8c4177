package service

import (
	"context"

	"storefront/internal/repository"

	"go.uber.org/zap"
)

// CategoryService defines the request-facing contract for category reads
type CategoryService interface {
	GetCategories(ctx context.Context) ([]CategoryDTO, error)
	GetCategoryByID(ctx context.Context, id int) (*CategoryDTO, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *zap.Logger
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(categoryRepo repository.CategoryRepository, logger *zap.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// GetCategories returns all categories
func (s *categoryService) GetCategories(ctx context.Context) ([]CategoryDTO, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch categories", zap.Error(err))
		return nil, ErrDatabase
	}

	dtos := make([]CategoryDTO, 0, len(categories))
	for _, category := range categories {
		dtos = append(dtos, NewCategoryDTO(category))
	}
	return dtos, nil
}

// GetCategoryByID returns a single category or ErrCategoryNotFound
func (s *categoryService) GetCategoryByID(ctx context.Context, id int) (*CategoryDTO, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to fetch category", zap.Int("category_id", id), zap.Error(err))
		return nil, ErrDatabase
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	dto := NewCategoryDTO(category)
	return &dto, nil
}
