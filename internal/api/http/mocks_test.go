package http

import (
	"context"
	"time"

	"rentable-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockReservationService
type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) CalculateTotalPrice(ctx context.Context, equipmentID int32, start, end time.Time) (float64, error) {
	args := m.Called(ctx, equipmentID, start, end)
	return args.Get(0).(float64), args.Error(1)
}
func (m *MockReservationService) CreateReservation(ctx context.Context, principal uuid.UUID, in domain.ReservationInput) (*domain.Reservation, error) {
	args := m.Called(ctx, principal, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) GetReservation(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationService) UpdateReservation(ctx context.Context, principal uuid.UUID, id int32, in domain.ReservationInput) (*domain.Reservation, error) {
	args := m.Called(ctx, principal, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) DeleteReservation(ctx context.Context, principal uuid.UUID, id int32) error {
	args := m.Called(ctx, principal, id)
	return args.Error(0)
}
func (m *MockReservationService) MostRentedEquipment(ctx context.Context, limit int) ([]domain.EquipmentRentalCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquipmentRentalCount), args.Error(1)
}

// MockReviewService
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) CreateEquipmentReview(ctx context.Context, principal uuid.UUID, rv *domain.EquipmentReview) error {
	args := m.Called(ctx, principal, rv)
	return args.Error(0)
}
func (m *MockReviewService) GetEquipmentReview(ctx context.Context, id int32) (*domain.EquipmentReview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquipmentReview), args.Error(1)
}
func (m *MockReviewService) ListEquipmentReviews(ctx context.Context) ([]domain.EquipmentReview, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.EquipmentReview), args.Error(1)
}
func (m *MockReviewService) ListEquipmentReviewsByEquipment(ctx context.Context, equipmentID int32) ([]domain.EquipmentReview, error) {
	args := m.Called(ctx, equipmentID)
	return args.Get(0).([]domain.EquipmentReview), args.Error(1)
}
func (m *MockReviewService) ListEquipmentReviewsByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]domain.EquipmentReview, error) {
	args := m.Called(ctx, reviewerID)
	return args.Get(0).([]domain.EquipmentReview), args.Error(1)
}
func (m *MockReviewService) DeleteEquipmentReview(ctx context.Context, principal uuid.UUID, id int32) error {
	args := m.Called(ctx, principal, id)
	return args.Error(0)
}
func (m *MockReviewService) AverageEquipmentRating(ctx context.Context, equipmentID int32) (*float64, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}
func (m *MockReviewService) CreateUserReview(ctx context.Context, principal uuid.UUID, rv *domain.UserReview) error {
	args := m.Called(ctx, principal, rv)
	return args.Error(0)
}
func (m *MockReviewService) GetUserReview(ctx context.Context, id int32) (*domain.UserReview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserReview), args.Error(1)
}
func (m *MockReviewService) ListUserReviews(ctx context.Context) ([]domain.UserReview, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.UserReview), args.Error(1)
}
func (m *MockReviewService) ListSentUserReviews(ctx context.Context, reviewerID uuid.UUID) ([]domain.UserReview, error) {
	args := m.Called(ctx, reviewerID)
	return args.Get(0).([]domain.UserReview), args.Error(1)
}
func (m *MockReviewService) ListReceivedUserReviews(ctx context.Context, reviewedUserID uuid.UUID) ([]domain.UserReview, error) {
	args := m.Called(ctx, reviewedUserID)
	return args.Get(0).([]domain.UserReview), args.Error(1)
}
func (m *MockReviewService) DeleteUserReview(ctx context.Context, principal uuid.UUID, id int32) error {
	args := m.Called(ctx, principal, id)
	return args.Error(0)
}
func (m *MockReviewService) AverageUserRating(ctx context.Context, userID uuid.UUID) (*float64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}

// MockUserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}
func (m *MockUserService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
