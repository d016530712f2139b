package service_test

import (
	"context"
	"time"

	"rentable-backend/internal/domain"
	"rentable-backend/internal/security"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockCategoryRepo
type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCategoryRepo) GetByID(ctx context.Context, id int32) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCategoryRepo) Update(ctx context.Context, c *domain.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCategoryRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSubcategoryRepo
type MockSubcategoryRepo struct {
	mock.Mock
}

func (m *MockSubcategoryRepo) Create(ctx context.Context, s *domain.Subcategory) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSubcategoryRepo) GetByID(ctx context.Context, id int32) (*domain.Subcategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subcategory), args.Error(1)
}
func (m *MockSubcategoryRepo) List(ctx context.Context) ([]domain.Subcategory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Subcategory), args.Error(1)
}
func (m *MockSubcategoryRepo) ListByCategory(ctx context.Context, categoryID int32) ([]domain.Subcategory, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]domain.Subcategory), args.Error(1)
}
func (m *MockSubcategoryRepo) Update(ctx context.Context, s *domain.Subcategory) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSubcategoryRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEquipmentRepo
type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) Create(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEquipmentRepo) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) List(ctx context.Context) ([]domain.Equipment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) ListByCategory(ctx context.Context, categoryID int32) ([]domain.Equipment, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) ListBySubcategory(ctx context.Context, subcategoryID int32) ([]domain.Equipment, error) {
	args := m.Called(ctx, subcategoryID)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Equipment, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) Update(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEquipmentRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReservationRepo) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) List(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) Update(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReservationRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockReservationRepo) CountFinishedByEquipment(ctx context.Context, limit int) ([]domain.EquipmentRentalCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquipmentRentalCount), args.Error(1)
}
func (m *MockReservationRepo) FinishElapsed(ctx context.Context, asOf time.Time) (int64, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).(int64), args.Error(1)
}

// MockEquipmentReviewRepo
type MockEquipmentReviewRepo struct {
	mock.Mock
}

func (m *MockEquipmentReviewRepo) Create(ctx context.Context, rv *domain.EquipmentReview) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}
func (m *MockEquipmentReviewRepo) GetByID(ctx context.Context, id int32) (*domain.EquipmentReview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquipmentReview), args.Error(1)
}
func (m *MockEquipmentReviewRepo) List(ctx context.Context) ([]domain.EquipmentReview, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.EquipmentReview), args.Error(1)
}
func (m *MockEquipmentReviewRepo) ListByEquipment(ctx context.Context, equipmentID int32) ([]domain.EquipmentReview, error) {
	args := m.Called(ctx, equipmentID)
	return args.Get(0).([]domain.EquipmentReview), args.Error(1)
}
func (m *MockEquipmentReviewRepo) ListByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]domain.EquipmentReview, error) {
	args := m.Called(ctx, reviewerID)
	return args.Get(0).([]domain.EquipmentReview), args.Error(1)
}
func (m *MockEquipmentReviewRepo) AverageRating(ctx context.Context, equipmentID int32) (*float64, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}
func (m *MockEquipmentReviewRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserReviewRepo
type MockUserReviewRepo struct {
	mock.Mock
}

func (m *MockUserReviewRepo) Create(ctx context.Context, rv *domain.UserReview) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}
func (m *MockUserReviewRepo) GetByID(ctx context.Context, id int32) (*domain.UserReview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserReview), args.Error(1)
}
func (m *MockUserReviewRepo) List(ctx context.Context) ([]domain.UserReview, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.UserReview), args.Error(1)
}
func (m *MockUserReviewRepo) ListSent(ctx context.Context, reviewerID uuid.UUID) ([]domain.UserReview, error) {
	args := m.Called(ctx, reviewerID)
	return args.Get(0).([]domain.UserReview), args.Error(1)
}
func (m *MockUserReviewRepo) ListReceived(ctx context.Context, reviewedUserID uuid.UUID) ([]domain.UserReview, error) {
	args := m.Called(ctx, reviewedUserID)
	return args.Get(0).([]domain.UserReview), args.Error(1)
}
func (m *MockUserReviewRepo) AverageRating(ctx context.Context, userID uuid.UUID) (*float64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}
func (m *MockUserReviewRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAggregates
type MockAggregates struct {
	mock.Mock
}

func (m *MockAggregates) GetMostRented(ctx context.Context, limit int) ([]domain.EquipmentRentalCount, int64, bool, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Bool(2), args.Error(3)
	}
	return args.Get(0).([]domain.EquipmentRentalCount), args.Get(1).(int64), args.Bool(2), args.Error(3)
}
func (m *MockAggregates) SetMostRented(ctx context.Context, version int64, limit int, counts []domain.EquipmentRentalCount) error {
	args := m.Called(ctx, version, limit, counts)
	return args.Error(0)
}
func (m *MockAggregates) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(userID uuid.UUID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(token string) (*security.UserClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
