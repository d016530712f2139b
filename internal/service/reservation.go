package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentable-backend/internal/cache"
	"rentable-backend/internal/domain"
	"rentable-backend/internal/logger"
	"rentable-backend/internal/repository"
	"rentable-backend/internal/utils"

	"github.com/google/uuid"
)

type reservationService struct {
	reservationRepo repository.ReservationRepository
	equipmentRepo   repository.EquipmentRepository
	aggregates      cache.RentalAggregates
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	equipmentRepo repository.EquipmentRepository,
	aggregates cache.RentalAggregates,
) ReservationService {
	if aggregates == nil {
		aggregates = cache.NewNoop()
	}
	return &reservationService{
		reservationRepo: reservationRepo,
		equipmentRepo:   equipmentRepo,
		aggregates:      aggregates,
	}
}

func (s *reservationService) CalculateTotalPrice(ctx context.Context, equipmentID int32, start, end time.Time) (float64, error) {
	equipment, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return 0, err
	}
	return utils.CalculateTotalPrice(equipment.PricePerDay, start, end)
}

func (s *reservationService) CreateReservation(ctx context.Context, principal uuid.UUID, in domain.ReservationInput) (*domain.Reservation, error) {
	logger.EnterMethod("reservationService.CreateReservation", "principal", principal, "equipmentID", in.EquipmentID)

	total, err := s.CalculateTotalPrice(ctx, in.EquipmentID, in.StartDate, in.EndDate)
	if err != nil {
		logger.ExitMethodWithError("reservationService.CreateReservation", err, "equipmentID", in.EquipmentID)
		return nil, err
	}

	r := &domain.Reservation{
		EquipmentID: in.EquipmentID,
		UserID:      principal,
		StartDate:   utils.TruncateToDate(in.StartDate),
		EndDate:     utils.TruncateToDate(in.EndDate),
		TotalPrice:  total,
		Status:      domain.ReservationStatusPending,
	}
	if err := s.reservationRepo.Create(ctx, r); err != nil {
		logger.ExitMethodWithError("reservationService.CreateReservation", err, "equipmentID", in.EquipmentID)
		return nil, err
	}

	logger.ExitMethod("reservationService.CreateReservation", "reservationID", r.ID, "totalPrice", r.TotalPrice)
	return r, nil
}

func (s *reservationService) GetReservation(ctx context.Context, id int32) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *reservationService) ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	if filter.Kind == domain.ReservationFilterStatus && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, filter.Status)
	}
	return s.reservationRepo.List(ctx, filter)
}

// referencedEquipment loads the equipment a reservation points at. A
// reservation orphaned by an equipment delete yields nil.
func (s *reservationService) referencedEquipment(ctx context.Context, r *domain.Reservation) (*domain.Equipment, error) {
	if r.EquipmentID == 0 {
		return nil, nil
	}
	equipment, err := s.equipmentRepo.GetByID(ctx, r.EquipmentID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return equipment, err
}

func (s *reservationService) UpdateReservation(ctx context.Context, principal uuid.UUID, id int32, in domain.ReservationInput) (*domain.Reservation, error) {
	logger.EnterMethod("reservationService.UpdateReservation", "principal", principal, "reservationID", id)

	fail := func(err error) (*domain.Reservation, error) {
		logger.ExitMethodWithError("reservationService.UpdateReservation", err, "reservationID", id)
		return nil, err
	}

	current, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return fail(err)
	}
	equipment, err := s.referencedEquipment(ctx, current)
	if err != nil {
		return fail(err)
	}
	if err := AuthorizeReservationMutation(principal, current, equipment); err != nil {
		return fail(err)
	}

	updated := *current
	if in.EquipmentID != 0 && in.EquipmentID != current.EquipmentID {
		equipment, err = s.equipmentRepo.GetByID(ctx, in.EquipmentID)
		if err != nil {
			return fail(err)
		}
		updated.EquipmentID = in.EquipmentID
	}
	if equipment == nil {
		return fail(fmt.Errorf("reservation %d has no equipment to price against: %w", id, domain.ErrNotFound))
	}
	if !in.StartDate.IsZero() {
		updated.StartDate = utils.TruncateToDate(in.StartDate)
	}
	if !in.EndDate.IsZero() {
		updated.EndDate = utils.TruncateToDate(in.EndDate)
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return fail(fmt.Errorf("%w: %q", domain.ErrInvalidStatus, *in.Status))
		}
		updated.Status = *in.Status
	}

	updated.TotalPrice, err = utils.CalculateTotalPrice(equipment.PricePerDay, updated.StartDate, updated.EndDate)
	if err != nil {
		return fail(err)
	}
	if err := s.reservationRepo.Update(ctx, &updated); err != nil {
		return fail(err)
	}

	if current.Status == domain.ReservationStatusFinished || updated.Status == domain.ReservationStatusFinished {
		s.invalidateAggregates(ctx)
	}
	logger.ExitMethod("reservationService.UpdateReservation", "reservationID", id, "status", updated.Status, "totalPrice", updated.TotalPrice)
	return &updated, nil
}

func (s *reservationService) DeleteReservation(ctx context.Context, principal uuid.UUID, id int32) error {
	logger.EnterMethod("reservationService.DeleteReservation", "principal", principal, "reservationID", id)

	current, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		logger.ExitMethodWithError("reservationService.DeleteReservation", err, "reservationID", id)
		return err
	}
	equipment, err := s.referencedEquipment(ctx, current)
	if err != nil {
		logger.ExitMethodWithError("reservationService.DeleteReservation", err, "reservationID", id)
		return err
	}
	if err := AuthorizeReservationMutation(principal, current, equipment); err != nil {
		logger.ExitMethodWithError("reservationService.DeleteReservation", err, "reservationID", id)
		return err
	}
	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		logger.ExitMethodWithError("reservationService.DeleteReservation", err, "reservationID", id)
		return err
	}

	if current.Status == domain.ReservationStatusFinished {
		s.invalidateAggregates(ctx)
	}
	logger.ExitMethod("reservationService.DeleteReservation", "reservationID", id)
	return nil
}

// MostRentedEquipment ranks equipment by finished reservations. The ranking
// is served from the aggregate cache when present; cache failures only cost
// a database round trip. A ranking read from the database is written back
// with the cache version seen on the miss, so an invalidation that lands in
// between keeps it out of the cache.
func (s *reservationService) MostRentedEquipment(ctx context.Context, limit int) ([]domain.EquipmentRentalCount, error) {
	if limit <= 0 {
		return []domain.EquipmentRentalCount{}, nil
	}

	counts, version, ok, err := s.aggregates.GetMostRented(ctx, limit)
	if err != nil {
		logger.Warn("Most rented cache read failed", "limit", limit, "error", err)
	}
	if ok {
		return counts, nil
	}

	counts, err = s.reservationRepo.CountFinishedByEquipment(ctx, limit)
	if err != nil {
		return nil, err
	}
	if err := s.aggregates.SetMostRented(ctx, version, limit, counts); err != nil {
		logger.Warn("Most rented cache write failed", "limit", limit, "error", err)
	}
	return counts, nil
}

func (s *reservationService) invalidateAggregates(ctx context.Context) {
	if err := s.aggregates.Invalidate(ctx); err != nil {
		logger.Warn("Most rented cache invalidation failed", "error", err)
	}
}
