package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"rentable-backend/internal/domain"
	"rentable-backend/internal/repository"

	"github.com/google/uuid"
)

const equipmentColumns = `id, name, description, COALESCE(category_id, 0), COALESCE(subcategory_id, 0), equipment_owner_id, price_per_day, is_available`

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

func scanEquipment(row rowScanner) (*domain.Equipment, error) {
	e := &domain.Equipment{}
	if err := row.Scan(&e.ID, &e.Name, &e.Description, &e.CategoryID, &e.SubcategoryID, &e.OwnerID, &e.PricePerDay, &e.IsAvailable); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *equipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	query := `INSERT INTO equipment (name, description, category_id, subcategory_id, equipment_owner_id, price_per_day, is_available)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, e.Name, e.Description, nullID(e.CategoryID), nullID(e.SubcategoryID), e.OwnerID, e.PricePerDay, e.IsAvailable).Scan(&e.ID)
	return mapError("create equipment", err)
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`
	e, err := scanEquipment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(fmt.Sprintf("get equipment %d", id), err)
	}
	return e, nil
}

func (r *equipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	return r.list(ctx, `SELECT `+equipmentColumns+` FROM equipment ORDER BY id`)
}

func (r *equipmentRepository) ListByCategory(ctx context.Context, categoryID int32) ([]domain.Equipment, error) {
	return r.list(ctx, `SELECT `+equipmentColumns+` FROM equipment WHERE category_id = $1 ORDER BY id`, categoryID)
}

func (r *equipmentRepository) ListBySubcategory(ctx context.Context, subcategoryID int32) ([]domain.Equipment, error) {
	return r.list(ctx, `SELECT `+equipmentColumns+` FROM equipment WHERE subcategory_id = $1 ORDER BY id`, subcategoryID)
}

func (r *equipmentRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Equipment, error) {
	return r.list(ctx, `SELECT `+equipmentColumns+` FROM equipment WHERE equipment_owner_id = $1 ORDER BY id`, ownerID)
}

func (r *equipmentRepository) list(ctx context.Context, query string, args ...any) ([]domain.Equipment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError("list equipment", err)
	}
	defer rows.Close()

	items := []domain.Equipment{}
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, mapError("scan equipment", err)
		}
		items = append(items, *e)
	}
	return items, mapError("list equipment", rows.Err())
}

func (r *equipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	query := `UPDATE equipment SET name=$1, description=$2, category_id=$3, subcategory_id=$4, price_per_day=$5, is_available=$6 WHERE id=$7`
	res, err := r.db.ExecContext(ctx, query, e.Name, e.Description, nullID(e.CategoryID), nullID(e.SubcategoryID), e.PricePerDay, e.IsAvailable, e.ID)
	if err != nil {
		return mapError("update equipment", err)
	}
	return requireAffected("update equipment", res)
}

func (r *equipmentRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return mapError("delete equipment", err)
	}
	return requireAffected("delete equipment", res)
}
