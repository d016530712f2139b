package service

import (
	"context"
	"fmt"
	"strings"

	"rentable-backend/internal/domain"
	"rentable-backend/internal/logger"
	"rentable-backend/internal/repository"

	"github.com/google/uuid"
)

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
	userRepo      repository.UserRepository
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository, userRepo repository.UserRepository) EquipmentService {
	return &equipmentService{
		equipmentRepo: equipmentRepo,
		userRepo:      userRepo,
	}
}

func validateEquipment(e *domain.Equipment) error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: equipment name is required", domain.ErrInvalidInput)
	}
	if e.PricePerDay <= 0 {
		return fmt.Errorf("%w: price per day must be positive", domain.ErrInvalidInput)
	}
	return nil
}

// CreateEquipment registers equipment owned by principal, who must be a known user.
func (s *equipmentService) CreateEquipment(ctx context.Context, principal uuid.UUID, e *domain.Equipment) error {
	logger.EnterMethod("equipmentService.CreateEquipment", "principal", principal, "name", e.Name)
	if err := validateEquipment(e); err != nil {
		logger.ExitMethodWithError("equipmentService.CreateEquipment", err)
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, principal); err != nil {
		err = fmt.Errorf("equipment owner %s: %w", principal, err)
		logger.ExitMethodWithError("equipmentService.CreateEquipment", err)
		return err
	}

	e.OwnerID = principal
	if err := s.equipmentRepo.Create(ctx, e); err != nil {
		logger.ExitMethodWithError("equipmentService.CreateEquipment", err)
		return err
	}
	logger.ExitMethod("equipmentService.CreateEquipment", "equipmentID", e.ID)
	return nil
}

func (s *equipmentService) GetEquipment(ctx context.Context, id int32) (*domain.Equipment, error) {
	return s.equipmentRepo.GetByID(ctx, id)
}

func (s *equipmentService) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipmentRepo.List(ctx)
}

func (s *equipmentService) ListEquipmentByCategory(ctx context.Context, categoryID int32) ([]domain.Equipment, error) {
	return s.equipmentRepo.ListByCategory(ctx, categoryID)
}

func (s *equipmentService) ListEquipmentBySubcategory(ctx context.Context, subcategoryID int32) ([]domain.Equipment, error) {
	return s.equipmentRepo.ListBySubcategory(ctx, subcategoryID)
}

func (s *equipmentService) ListEquipmentByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Equipment, error) {
	return s.equipmentRepo.ListByOwner(ctx, ownerID)
}

// UpdateEquipment replaces the mutable fields of e.ID. The owner never changes.
func (s *equipmentService) UpdateEquipment(ctx context.Context, principal uuid.UUID, e *domain.Equipment) (*domain.Equipment, error) {
	current, err := s.equipmentRepo.GetByID(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeMutation(principal, current.OwnerID); err != nil {
		return nil, err
	}
	if err := validateEquipment(e); err != nil {
		return nil, err
	}

	e.OwnerID = current.OwnerID
	if err := s.equipmentRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *equipmentService) DeleteEquipment(ctx context.Context, principal uuid.UUID, id int32) error {
	current, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := AuthorizeMutation(principal, current.OwnerID); err != nil {
		return err
	}
	return s.equipmentRepo.Delete(ctx, id)
}
