package service

import (
	"context"
	"fmt"
	"strings"

	"rentable-backend/internal/domain"
	"rentable-backend/internal/repository"
)

type categoryService struct {
	categoryRepo    repository.CategoryRepository
	subcategoryRepo repository.SubcategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository, subcategoryRepo repository.SubcategoryRepository) CategoryService {
	return &categoryService{
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
	}
}

func requireName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %s name is required", domain.ErrInvalidInput, kind)
	}
	return nil
}

func (s *categoryService) CreateCategory(ctx context.Context, c *domain.Category) error {
	if err := requireName("category", c.Name); err != nil {
		return err
	}
	return s.categoryRepo.Create(ctx, c)
}

func (s *categoryService) GetCategory(ctx context.Context, id int32) (*domain.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *categoryService) UpdateCategory(ctx context.Context, c *domain.Category) error {
	if err := requireName("category", c.Name); err != nil {
		return err
	}
	return s.categoryRepo.Update(ctx, c)
}

// DeleteCategory leaves subcategories and equipment in place with their
// category reference cleared.
func (s *categoryService) DeleteCategory(ctx context.Context, id int32) error {
	return s.categoryRepo.Delete(ctx, id)
}

func (s *categoryService) CreateSubcategory(ctx context.Context, sc *domain.Subcategory) error {
	if err := requireName("subcategory", sc.Name); err != nil {
		return err
	}
	if _, err := s.categoryRepo.GetByID(ctx, sc.CategoryID); err != nil {
		return fmt.Errorf("parent category %d: %w", sc.CategoryID, err)
	}
	return s.subcategoryRepo.Create(ctx, sc)
}

func (s *categoryService) GetSubcategory(ctx context.Context, id int32) (*domain.Subcategory, error) {
	return s.subcategoryRepo.GetByID(ctx, id)
}

func (s *categoryService) ListSubcategories(ctx context.Context) ([]domain.Subcategory, error) {
	return s.subcategoryRepo.List(ctx)
}

func (s *categoryService) ListSubcategoriesByCategory(ctx context.Context, categoryID int32) ([]domain.Subcategory, error) {
	return s.subcategoryRepo.ListByCategory(ctx, categoryID)
}

// UpdateSubcategory accepts category 0 so a subcategory orphaned by a
// category delete can still be edited.
func (s *categoryService) UpdateSubcategory(ctx context.Context, sc *domain.Subcategory) error {
	if err := requireName("subcategory", sc.Name); err != nil {
		return err
	}
	if sc.CategoryID != 0 {
		if _, err := s.categoryRepo.GetByID(ctx, sc.CategoryID); err != nil {
			return fmt.Errorf("parent category %d: %w", sc.CategoryID, err)
		}
	}
	return s.subcategoryRepo.Update(ctx, sc)
}

func (s *categoryService) DeleteSubcategory(ctx context.Context, id int32) error {
	return s.subcategoryRepo.Delete(ctx, id)
}
