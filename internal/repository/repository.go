package repository

import (
	"context"
	"time"

	"rentable-backend/internal/domain"

	"github.com/google/uuid"
)

// Every GetByID/Update/Delete returns domain.ErrNotFound when the row is absent.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id int32) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id int32) error
}

type SubcategoryRepository interface {
	Create(ctx context.Context, subcategory *domain.Subcategory) error
	GetByID(ctx context.Context, id int32) (*domain.Subcategory, error)
	List(ctx context.Context) ([]domain.Subcategory, error)
	ListByCategory(ctx context.Context, categoryID int32) ([]domain.Subcategory, error)
	Update(ctx context.Context, subcategory *domain.Subcategory) error
	Delete(ctx context.Context, id int32) error
}

type EquipmentRepository interface {
	Create(ctx context.Context, equipment *domain.Equipment) error
	GetByID(ctx context.Context, id int32) (*domain.Equipment, error)
	List(ctx context.Context) ([]domain.Equipment, error)
	ListByCategory(ctx context.Context, categoryID int32) ([]domain.Equipment, error)
	ListBySubcategory(ctx context.Context, subcategoryID int32) ([]domain.Equipment, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Equipment, error)
	Update(ctx context.Context, equipment *domain.Equipment) error
	Delete(ctx context.Context, id int32) error
}

type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error)
	Update(ctx context.Context, reservation *domain.Reservation) error
	Delete(ctx context.Context, id int32) error

	// CountFinishedByEquipment groups finished reservations by equipment,
	// count descending then equipment id ascending.
	CountFinishedByEquipment(ctx context.Context, limit int) ([]domain.EquipmentRentalCount, error)
	// FinishElapsed moves confirmed reservations that ended before asOf to finished.
	FinishElapsed(ctx context.Context, asOf time.Time) (int64, error)
}

type EquipmentReviewRepository interface {
	Create(ctx context.Context, review *domain.EquipmentReview) error
	GetByID(ctx context.Context, id int32) (*domain.EquipmentReview, error)
	List(ctx context.Context) ([]domain.EquipmentReview, error)
	ListByEquipment(ctx context.Context, equipmentID int32) ([]domain.EquipmentReview, error)
	ListByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]domain.EquipmentReview, error)
	// AverageRating returns nil when the equipment has no reviews.
	AverageRating(ctx context.Context, equipmentID int32) (*float64, error)
	Delete(ctx context.Context, id int32) error
}

type UserReviewRepository interface {
	Create(ctx context.Context, review *domain.UserReview) error
	GetByID(ctx context.Context, id int32) (*domain.UserReview, error)
	List(ctx context.Context) ([]domain.UserReview, error)
	ListSent(ctx context.Context, reviewerID uuid.UUID) ([]domain.UserReview, error)
	ListReceived(ctx context.Context, reviewedUserID uuid.UUID) ([]domain.UserReview, error)
	// AverageRating returns nil when the user has no reviews.
	AverageRating(ctx context.Context, userID uuid.UUID) (*float64, error)
	Delete(ctx context.Context, id int32) error
}
