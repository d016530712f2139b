package service

import (
	"context"

	"rentable-backend/internal/domain"
	"rentable-backend/internal/repository"

	"github.com/google/uuid"
)

type reviewService struct {
	equipmentReviewRepo repository.EquipmentReviewRepository
	userReviewRepo      repository.UserReviewRepository
	equipmentRepo       repository.EquipmentRepository
	userRepo            repository.UserRepository
}

func NewReviewService(
	equipmentReviewRepo repository.EquipmentReviewRepository,
	userReviewRepo repository.UserReviewRepository,
	equipmentRepo repository.EquipmentRepository,
	userRepo repository.UserRepository,
) ReviewService {
	return &reviewService{
		equipmentReviewRepo: equipmentReviewRepo,
		userReviewRepo:      userReviewRepo,
		equipmentRepo:       equipmentRepo,
		userRepo:            userRepo,
	}
}

func (s *reviewService) CreateEquipmentReview(ctx context.Context, principal uuid.UUID, rv *domain.EquipmentReview) error {
	if err := domain.ValidateRating(rv.Rating); err != nil {
		return err
	}
	if _, err := s.equipmentRepo.GetByID(ctx, rv.EquipmentID); err != nil {
		return err
	}
	rv.ReviewerID = principal
	return s.equipmentReviewRepo.Create(ctx, rv)
}

func (s *reviewService) GetEquipmentReview(ctx context.Context, id int32) (*domain.EquipmentReview, error) {
	return s.equipmentReviewRepo.GetByID(ctx, id)
}

func (s *reviewService) ListEquipmentReviews(ctx context.Context) ([]domain.EquipmentReview, error) {
	return s.equipmentReviewRepo.List(ctx)
}

func (s *reviewService) ListEquipmentReviewsByEquipment(ctx context.Context, equipmentID int32) ([]domain.EquipmentReview, error) {
	return s.equipmentReviewRepo.ListByEquipment(ctx, equipmentID)
}

func (s *reviewService) ListEquipmentReviewsByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]domain.EquipmentReview, error) {
	return s.equipmentReviewRepo.ListByReviewer(ctx, reviewerID)
}

func (s *reviewService) DeleteEquipmentReview(ctx context.Context, principal uuid.UUID, id int32) error {
	rv, err := s.equipmentReviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := AuthorizeMutation(principal, rv.ReviewerID); err != nil {
		return err
	}
	return s.equipmentReviewRepo.Delete(ctx, id)
}

// AverageEquipmentRating returns nil when the equipment has no reviews.
func (s *reviewService) AverageEquipmentRating(ctx context.Context, equipmentID int32) (*float64, error) {
	return s.equipmentReviewRepo.AverageRating(ctx, equipmentID)
}

func (s *reviewService) CreateUserReview(ctx context.Context, principal uuid.UUID, rv *domain.UserReview) error {
	if err := domain.ValidateRating(rv.Rating); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, rv.ReviewedUserID); err != nil {
		return err
	}
	rv.ReviewerID = principal
	return s.userReviewRepo.Create(ctx, rv)
}

func (s *reviewService) GetUserReview(ctx context.Context, id int32) (*domain.UserReview, error) {
	return s.userReviewRepo.GetByID(ctx, id)
}

func (s *reviewService) ListUserReviews(ctx context.Context) ([]domain.UserReview, error) {
	return s.userReviewRepo.List(ctx)
}

func (s *reviewService) ListSentUserReviews(ctx context.Context, reviewerID uuid.UUID) ([]domain.UserReview, error) {
	return s.userReviewRepo.ListSent(ctx, reviewerID)
}

func (s *reviewService) ListReceivedUserReviews(ctx context.Context, reviewedUserID uuid.UUID) ([]domain.UserReview, error) {
	return s.userReviewRepo.ListReceived(ctx, reviewedUserID)
}

func (s *reviewService) DeleteUserReview(ctx context.Context, principal uuid.UUID, id int32) error {
	rv, err := s.userReviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := AuthorizeMutation(principal, rv.ReviewerID); err != nil {
		return err
	}
	return s.userReviewRepo.Delete(ctx, id)
}

// AverageUserRating returns nil when nobody has reviewed the user.
func (s *reviewService) AverageUserRating(ctx context.Context, userID uuid.UUID) (*float64, error) {
	return s.userReviewRepo.AverageRating(ctx, userID)
}
