package postgres

import (
	"context"
	"database/sql"

	"rentable-backend/internal/domain"
	"rentable-backend/internal/repository"
)

type categoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *domain.Category) error {
	query := `INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING id`
	return mapError("create category", r.db.QueryRowContext(ctx, query, c.Name, c.Description).Scan(&c.ID))
}

func (r *categoryRepository) GetByID(ctx context.Context, id int32) (*domain.Category, error) {
	c := &domain.Category{}
	query := `SELECT id, name, description FROM categories WHERE id = $1`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description); err != nil {
		return nil, mapError("get category", err)
	}
	return c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, description FROM categories ORDER BY id`)
	if err != nil {
		return nil, mapError("list categories", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, mapError("scan category", err)
		}
		categories = append(categories, c)
	}
	return categories, mapError("list categories", rows.Err())
}

func (r *categoryRepository) Update(ctx context.Context, c *domain.Category) error {
	res, err := r.db.ExecContext(ctx, `UPDATE categories SET name=$1, description=$2 WHERE id=$3`, c.Name, c.Description, c.ID)
	if err != nil {
		return mapError("update category", err)
	}
	return requireAffected("update category", res)
}

func (r *categoryRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return mapError("delete category", err)
	}
	return requireAffected("delete category", res)
}

type subcategoryRepository struct {
	db *sql.DB
}

func NewSubcategoryRepository(db *sql.DB) repository.SubcategoryRepository {
	return &subcategoryRepository{db: db}
}

const subcategoryColumns = `id, name, description, COALESCE(category_id, 0)`

func (r *subcategoryRepository) Create(ctx context.Context, s *domain.Subcategory) error {
	query := `INSERT INTO subcategories (name, description, category_id) VALUES ($1, $2, $3) RETURNING id`
	return mapError("create subcategory", r.db.QueryRowContext(ctx, query, s.Name, s.Description, nullID(s.CategoryID)).Scan(&s.ID))
}

func (r *subcategoryRepository) GetByID(ctx context.Context, id int32) (*domain.Subcategory, error) {
	s := &domain.Subcategory{}
	query := `SELECT ` + subcategoryColumns + ` FROM subcategories WHERE id = $1`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.Description, &s.CategoryID); err != nil {
		return nil, mapError("get subcategory", err)
	}
	return s, nil
}

func (r *subcategoryRepository) List(ctx context.Context) ([]domain.Subcategory, error) {
	return r.list(ctx, `SELECT `+subcategoryColumns+` FROM subcategories ORDER BY id`)
}

func (r *subcategoryRepository) ListByCategory(ctx context.Context, categoryID int32) ([]domain.Subcategory, error) {
	return r.list(ctx, `SELECT `+subcategoryColumns+` FROM subcategories WHERE category_id = $1 ORDER BY id`, categoryID)
}

func (r *subcategoryRepository) list(ctx context.Context, query string, args ...any) ([]domain.Subcategory, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError("list subcategories", err)
	}
	defer rows.Close()

	subcategories := []domain.Subcategory{}
	for rows.Next() {
		var s domain.Subcategory
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.CategoryID); err != nil {
			return nil, mapError("scan subcategory", err)
		}
		subcategories = append(subcategories, s)
	}
	return subcategories, mapError("list subcategories", rows.Err())
}

func (r *subcategoryRepository) Update(ctx context.Context, s *domain.Subcategory) error {
	res, err := r.db.ExecContext(ctx, `UPDATE subcategories SET name=$1, description=$2, category_id=$3 WHERE id=$4`, s.Name, s.Description, nullID(s.CategoryID), s.ID)
	if err != nil {
		return mapError("update subcategory", err)
	}
	return requireAffected("update subcategory", res)
}

func (r *subcategoryRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		return mapError("delete subcategory", err)
	}
	return requireAffected("delete subcategory", res)
}
