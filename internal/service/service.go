package service

import (
	"context"
	"time"

	"rentable-backend/internal/domain"

	"github.com/google/uuid"
)

// Every mutating call takes the acting principal (the token subject). Errors
// are domain sentinels, possibly wrapped.

type ReservationService interface {
	CalculateTotalPrice(ctx context.Context, equipmentID int32, start, end time.Time) (float64, error)
	CreateReservation(ctx context.Context, principal uuid.UUID, in domain.ReservationInput) (*domain.Reservation, error)
	GetReservation(ctx context.Context, id int32) (*domain.Reservation, error)
	ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error)
	UpdateReservation(ctx context.Context, principal uuid.UUID, id int32, in domain.ReservationInput) (*domain.Reservation, error)
	DeleteReservation(ctx context.Context, principal uuid.UUID, id int32) error
	MostRentedEquipment(ctx context.Context, limit int) ([]domain.EquipmentRentalCount, error)
}

type EquipmentService interface {
	CreateEquipment(ctx context.Context, principal uuid.UUID, e *domain.Equipment) error
	GetEquipment(ctx context.Context, id int32) (*domain.Equipment, error)
	ListEquipment(ctx context.Context) ([]domain.Equipment, error)
	ListEquipmentByCategory(ctx context.Context, categoryID int32) ([]domain.Equipment, error)
	ListEquipmentBySubcategory(ctx context.Context, subcategoryID int32) ([]domain.Equipment, error)
	ListEquipmentByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Equipment, error)
	UpdateEquipment(ctx context.Context, principal uuid.UUID, e *domain.Equipment) (*domain.Equipment, error)
	DeleteEquipment(ctx context.Context, principal uuid.UUID, id int32) error
}

type ReviewService interface {
	CreateEquipmentReview(ctx context.Context, principal uuid.UUID, rv *domain.EquipmentReview) error
	GetEquipmentReview(ctx context.Context, id int32) (*domain.EquipmentReview, error)
	ListEquipmentReviews(ctx context.Context) ([]domain.EquipmentReview, error)
	ListEquipmentReviewsByEquipment(ctx context.Context, equipmentID int32) ([]domain.EquipmentReview, error)
	ListEquipmentReviewsByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]domain.EquipmentReview, error)
	DeleteEquipmentReview(ctx context.Context, principal uuid.UUID, id int32) error
	AverageEquipmentRating(ctx context.Context, equipmentID int32) (*float64, error)

	CreateUserReview(ctx context.Context, principal uuid.UUID, rv *domain.UserReview) error
	GetUserReview(ctx context.Context, id int32) (*domain.UserReview, error)
	ListUserReviews(ctx context.Context) ([]domain.UserReview, error)
	ListSentUserReviews(ctx context.Context, reviewerID uuid.UUID) ([]domain.UserReview, error)
	ListReceivedUserReviews(ctx context.Context, reviewedUserID uuid.UUID) ([]domain.UserReview, error)
	DeleteUserReview(ctx context.Context, principal uuid.UUID, id int32) error
	AverageUserRating(ctx context.Context, userID uuid.UUID) (*float64, error)
}

type CategoryService interface {
	CreateCategory(ctx context.Context, c *domain.Category) error
	GetCategory(ctx context.Context, id int32) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, c *domain.Category) error
	DeleteCategory(ctx context.Context, id int32) error

	CreateSubcategory(ctx context.Context, s *domain.Subcategory) error
	GetSubcategory(ctx context.Context, id int32) (*domain.Subcategory, error)
	ListSubcategories(ctx context.Context) ([]domain.Subcategory, error)
	ListSubcategoriesByCategory(ctx context.Context, categoryID int32) ([]domain.Subcategory, error)
	UpdateSubcategory(ctx context.Context, s *domain.Subcategory) error
	DeleteSubcategory(ctx context.Context, id int32) error
}

type UserService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	// Authenticate returns a signed access token.
	Authenticate(ctx context.Context, email, password string) (string, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}
