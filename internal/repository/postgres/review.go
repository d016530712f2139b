package postgres

import (
	"context"
	"database/sql"

	"rentable-backend/internal/domain"
	"rentable-backend/internal/repository"

	"github.com/google/uuid"
)

// averageRating runs an AVG query; SQL NULL (no rows) comes back as nil.
func averageRating(ctx context.Context, db *sql.DB, op, query string, arg any) (*float64, error) {
	var avg sql.NullFloat64
	if err := db.QueryRowContext(ctx, query, arg).Scan(&avg); err != nil {
		return nil, mapError(op, err)
	}
	if !avg.Valid {
		return nil, nil
	}
	v := avg.Float64
	return &v, nil
}

type equipmentReviewRepository struct {
	db *sql.DB
}

func NewEquipmentReviewRepository(db *sql.DB) repository.EquipmentReviewRepository {
	return &equipmentReviewRepository{db: db}
}

const equipmentReviewColumns = `id, reviewer_id, COALESCE(equipment_id, 0), rating, comment`

func (r *equipmentReviewRepository) Create(ctx context.Context, rv *domain.EquipmentReview) error {
	query := `INSERT INTO equipment_reviews (reviewer_id, equipment_id, rating, comment) VALUES ($1, $2, $3, $4) RETURNING id`
	return mapError("create equipment review", r.db.QueryRowContext(ctx, query, rv.ReviewerID, rv.EquipmentID, rv.Rating, rv.Comment).Scan(&rv.ID))
}

func (r *equipmentReviewRepository) GetByID(ctx context.Context, id int32) (*domain.EquipmentReview, error) {
	rv := &domain.EquipmentReview{}
	query := `SELECT ` + equipmentReviewColumns + ` FROM equipment_reviews WHERE id = $1`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&rv.ID, &rv.ReviewerID, &rv.EquipmentID, &rv.Rating, &rv.Comment); err != nil {
		return nil, mapError("get equipment review", err)
	}
	return rv, nil
}

func (r *equipmentReviewRepository) List(ctx context.Context) ([]domain.EquipmentReview, error) {
	return r.list(ctx, `SELECT `+equipmentReviewColumns+` FROM equipment_reviews ORDER BY id`)
}

func (r *equipmentReviewRepository) ListByEquipment(ctx context.Context, equipmentID int32) ([]domain.EquipmentReview, error) {
	return r.list(ctx, `SELECT `+equipmentReviewColumns+` FROM equipment_reviews WHERE equipment_id = $1 ORDER BY id`, equipmentID)
}

func (r *equipmentReviewRepository) ListByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]domain.EquipmentReview, error) {
	return r.list(ctx, `SELECT `+equipmentReviewColumns+` FROM equipment_reviews WHERE reviewer_id = $1 ORDER BY id`, reviewerID)
}

func (r *equipmentReviewRepository) list(ctx context.Context, query string, args ...any) ([]domain.EquipmentReview, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError("list equipment reviews", err)
	}
	defer rows.Close()

	reviews := []domain.EquipmentReview{}
	for rows.Next() {
		var rv domain.EquipmentReview
		if err := rows.Scan(&rv.ID, &rv.ReviewerID, &rv.EquipmentID, &rv.Rating, &rv.Comment); err != nil {
			return nil, mapError("scan equipment review", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, mapError("list equipment reviews", rows.Err())
}

func (r *equipmentReviewRepository) AverageRating(ctx context.Context, equipmentID int32) (*float64, error) {
	return averageRating(ctx, r.db, "average equipment rating",
		`SELECT AVG(rating)::float8 FROM equipment_reviews WHERE equipment_id = $1`, equipmentID)
}

func (r *equipmentReviewRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipment_reviews WHERE id = $1`, id)
	if err != nil {
		return mapError("delete equipment review", err)
	}
	return requireAffected("delete equipment review", res)
}

type userReviewRepository struct {
	db *sql.DB
}

func NewUserReviewRepository(db *sql.DB) repository.UserReviewRepository {
	return &userReviewRepository{db: db}
}

const userReviewColumns = `id, reviewer_id, reviewed_user_id, rating, comment`

func (r *userReviewRepository) Create(ctx context.Context, rv *domain.UserReview) error {
	query := `INSERT INTO user_reviews (reviewer_id, reviewed_user_id, rating, comment) VALUES ($1, $2, $3, $4) RETURNING id`
	return mapError("create user review", r.db.QueryRowContext(ctx, query, rv.ReviewerID, rv.ReviewedUserID, rv.Rating, rv.Comment).Scan(&rv.ID))
}

func (r *userReviewRepository) GetByID(ctx context.Context, id int32) (*domain.UserReview, error) {
	rv := &domain.UserReview{}
	query := `SELECT ` + userReviewColumns + ` FROM user_reviews WHERE id = $1`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&rv.ID, &rv.ReviewerID, &rv.ReviewedUserID, &rv.Rating, &rv.Comment); err != nil {
		return nil, mapError("get user review", err)
	}
	return rv, nil
}

func (r *userReviewRepository) List(ctx context.Context) ([]domain.UserReview, error) {
	return r.list(ctx, `SELECT `+userReviewColumns+` FROM user_reviews ORDER BY id`)
}

func (r *userReviewRepository) ListSent(ctx context.Context, reviewerID uuid.UUID) ([]domain.UserReview, error) {
	return r.list(ctx, `SELECT `+userReviewColumns+` FROM user_reviews WHERE reviewer_id = $1 ORDER BY id`, reviewerID)
}

func (r *userReviewRepository) ListReceived(ctx context.Context, reviewedUserID uuid.UUID) ([]domain.UserReview, error) {
	return r.list(ctx, `SELECT `+userReviewColumns+` FROM user_reviews WHERE reviewed_user_id = $1 ORDER BY id`, reviewedUserID)
}

func (r *userReviewRepository) list(ctx context.Context, query string, args ...any) ([]domain.UserReview, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError("list user reviews", err)
	}
	defer rows.Close()

	reviews := []domain.UserReview{}
	for rows.Next() {
		var rv domain.UserReview
		if err := rows.Scan(&rv.ID, &rv.ReviewerID, &rv.ReviewedUserID, &rv.Rating, &rv.Comment); err != nil {
			return nil, mapError("scan user review", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, mapError("list user reviews", rows.Err())
}

func (r *userReviewRepository) AverageRating(ctx context.Context, userID uuid.UUID) (*float64, error) {
	return averageRating(ctx, r.db, "average user rating",
		`SELECT AVG(rating)::float8 FROM user_reviews WHERE reviewed_user_id = $1`, userID)
}

func (r *userReviewRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM user_reviews WHERE id = $1`, id)
	if err != nil {
		return mapError("delete user review", err)
	}
	return requireAffected("delete user review", res)
}
