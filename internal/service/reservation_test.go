package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rentable-backend/internal/cache"
	"rentable-backend/internal/domain"
	"rentable-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestReservationService_CalculateTotalPrice(t *testing.T) {
	equipRepo := new(MockEquipmentRepo)
	svc := service.NewReservationService(new(MockReservationRepo), equipRepo, nil)
	ctx := context.Background()

	equipRepo.On("GetByID", ctx, int32(1)).Return(&domain.Equipment{ID: 1, PricePerDay: 20.0}, nil)
	equipRepo.On("GetByID", ctx, int32(99)).Return(nil, domain.ErrNotFound)

	t.Run("Price times inclusive days", func(t *testing.T) {
		total, err := svc.CalculateTotalPrice(ctx, 1, date("2024-01-01"), date("2024-01-03"))
		require.NoError(t, err)
		assert.Equal(t, 60.0, total)
	})

	t.Run("Same day is one day", func(t *testing.T) {
		total, err := svc.CalculateTotalPrice(ctx, 1, date("2024-01-01"), date("2024-01-01"))
		require.NoError(t, err)
		assert.Equal(t, 20.0, total)
	})

	t.Run("P x N over several spans", func(t *testing.T) {
		start := date("2024-02-20")
		for n := 1; n <= 15; n++ {
			total, err := svc.CalculateTotalPrice(ctx, 1, start, start.AddDate(0, 0, n-1))
			require.NoError(t, err)
			assert.Equal(t, 20.0*float64(n), total, "n=%d", n)
		}
	})

	t.Run("Missing equipment", func(t *testing.T) {
		total, err := svc.CalculateTotalPrice(ctx, 99, date("2024-01-01"), date("2024-01-03"))
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Zero(t, total)
	})

	t.Run("Inverted range", func(t *testing.T) {
		_, err := svc.CalculateTotalPrice(ctx, 1, date("2024-01-03"), date("2024-01-01"))
		assert.ErrorIs(t, err, domain.ErrInvalidRange)
	})
}

func TestReservationService_CreateReservation(t *testing.T) {
	ctx := context.Background()
	renter := uuid.New()

	t.Run("Forces pending and computes price", func(t *testing.T) {
		resRepo := new(MockReservationRepo)
		equipRepo := new(MockEquipmentRepo)
		svc := service.NewReservationService(resRepo, equipRepo, nil)

		equipRepo.On("GetByID", ctx, int32(1)).Return(&domain.Equipment{ID: 1, PricePerDay: 12.5}, nil)
		resRepo.On("Create", ctx, mock.MatchedBy(func(r *domain.Reservation) bool {
			return r.UserID == renter && r.Status == domain.ReservationStatusPending && r.TotalPrice == 50.0
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Reservation).ID = 7
		}).Return(nil)

		confirmed := domain.ReservationStatusConfirmed
		r, err := svc.CreateReservation(ctx, renter, domain.ReservationInput{
			EquipmentID: 1,
			StartDate:   date("2024-05-01"),
			EndDate:     date("2024-05-04"),
			Status:      &confirmed,
		})
		require.NoError(t, err)
		assert.Equal(t, int32(7), r.ID)
		assert.Equal(t, domain.ReservationStatusPending, r.Status)
		resRepo.AssertExpectations(t)
	})

	t.Run("Missing equipment never persists", func(t *testing.T) {
		resRepo := new(MockReservationRepo)
		equipRepo := new(MockEquipmentRepo)
		svc := service.NewReservationService(resRepo, equipRepo, nil)

		equipRepo.On("GetByID", ctx, int32(5)).Return(nil, domain.ErrNotFound)

		_, err := svc.CreateReservation(ctx, renter, domain.ReservationInput{EquipmentID: 5, StartDate: date("2024-05-01"), EndDate: date("2024-05-01")})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		resRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestReservationService_UpdateReservation(t *testing.T) {
	ctx := context.Background()
	renter, owner, stranger := uuid.New(), uuid.New(), uuid.New()
	existing := &domain.Reservation{
		ID: 3, EquipmentID: 1, UserID: renter,
		StartDate: date("2024-06-01"), EndDate: date("2024-06-02"),
		TotalPrice: 20, Status: domain.ReservationStatusPending,
	}
	equipment := &domain.Equipment{ID: 1, OwnerID: owner, PricePerDay: 10}

	setup := func() (*MockReservationRepo, *MockEquipmentRepo, service.ReservationService) {
		resRepo := new(MockReservationRepo)
		equipRepo := new(MockEquipmentRepo)
		copyOf := *existing
		resRepo.On("GetByID", ctx, int32(3)).Return(&copyOf, nil)
		resRepo.On("GetByID", ctx, int32(404)).Return(nil, domain.ErrNotFound)
		equipRepo.On("GetByID", ctx, int32(1)).Return(equipment, nil)
		return resRepo, equipRepo, service.NewReservationService(resRepo, equipRepo, cache.NewNoop())
	}

	t.Run("Owner confirms and reprices", func(t *testing.T) {
		resRepo, _, svc := setup()
		resRepo.On("Update", ctx, mock.AnythingOfType("*domain.Reservation")).Return(nil)

		status := domain.ReservationStatusConfirmed
		r, err := svc.UpdateReservation(ctx, owner, 3, domain.ReservationInput{EndDate: date("2024-06-05"), Status: &status})
		require.NoError(t, err)
		assert.Equal(t, domain.ReservationStatusConfirmed, r.Status)
		assert.Equal(t, 50.0, r.TotalPrice)
		assert.Equal(t, renter, r.UserID)
	})

	t.Run("Renter may update", func(t *testing.T) {
		resRepo, _, svc := setup()
		resRepo.On("Update", ctx, mock.AnythingOfType("*domain.Reservation")).Return(nil)

		r, err := svc.UpdateReservation(ctx, renter, 3, domain.ReservationInput{})
		require.NoError(t, err)
		assert.Equal(t, domain.ReservationStatusPending, r.Status)
	})

	t.Run("Stranger is unauthorized", func(t *testing.T) {
		resRepo, _, svc := setup()
		_, err := svc.UpdateReservation(ctx, stranger, 3, domain.ReservationInput{})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		resRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Not found before authorization", func(t *testing.T) {
		_, equipRepo, svc := setup()
		_, err := svc.UpdateReservation(ctx, stranger, 404, domain.ReservationInput{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.False(t, errors.Is(err, domain.ErrUnauthorized))
		equipRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Inverted range rejected", func(t *testing.T) {
		resRepo, _, svc := setup()
		_, err := svc.UpdateReservation(ctx, renter, 3, domain.ReservationInput{StartDate: date("2024-06-10")})
		assert.ErrorIs(t, err, domain.ErrInvalidRange)
		resRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Unknown status rejected", func(t *testing.T) {
		_, _, svc := setup()
		bogus := domain.ReservationStatus("shipped")
		_, err := svc.UpdateReservation(ctx, renter, 3, domain.ReservationInput{Status: &bogus})
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})

	t.Run("Switching equipment reprices against the new one", func(t *testing.T) {
		resRepo, equipRepo, svc := setup()
		equipRepo.On("GetByID", ctx, int32(2)).Return(&domain.Equipment{ID: 2, OwnerID: uuid.New(), PricePerDay: 30}, nil)
		resRepo.On("Update", ctx, mock.MatchedBy(func(r *domain.Reservation) bool {
			return r.EquipmentID == 2 && r.TotalPrice == 60
		})).Return(nil)

		r, err := svc.UpdateReservation(ctx, renter, 3, domain.ReservationInput{EquipmentID: 2})
		require.NoError(t, err)
		assert.Equal(t, int32(2), r.EquipmentID)
		resRepo.AssertExpectations(t)
	})
}

func TestReservationService_DeleteReservation(t *testing.T) {
	ctx := context.Background()
	renter, owner, stranger := uuid.New(), uuid.New(), uuid.New()

	equipRepo := new(MockEquipmentRepo)
	equipRepo.On("GetByID", mock.Anything, int32(1)).Return(&domain.Equipment{ID: 1, OwnerID: owner, PricePerDay: 10}, nil)
	repo := newMemReservationRepo()
	svc := service.NewReservationService(repo, equipRepo, nil)

	r, err := svc.CreateReservation(ctx, renter, domain.ReservationInput{EquipmentID: 1, StartDate: date("2024-07-01"), EndDate: date("2024-07-01")})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteReservation(ctx, stranger, r.ID), domain.ErrUnauthorized)
	assert.NoError(t, svc.DeleteReservation(ctx, owner, r.ID))
	assert.ErrorIs(t, svc.DeleteReservation(ctx, owner, r.ID), domain.ErrNotFound)
}

func TestReservationService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	renter := uuid.New()

	equipRepo := new(MockEquipmentRepo)
	equipRepo.On("GetByID", mock.Anything, int32(4)).Return(&domain.Equipment{ID: 4, OwnerID: uuid.New(), PricePerDay: 7.5}, nil)
	svc := service.NewReservationService(newMemReservationRepo(), equipRepo, nil)

	in := domain.ReservationInput{EquipmentID: 4, StartDate: date("2024-08-30"), EndDate: date("2024-09-02")}
	created, err := svc.CreateReservation(ctx, renter, in)
	require.NoError(t, err)

	got, err := svc.GetReservation(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)
	assert.Equal(t, in.EquipmentID, got.EquipmentID)
	assert.Equal(t, renter, got.UserID)
	assert.True(t, in.StartDate.Equal(got.StartDate))
	assert.True(t, in.EndDate.Equal(got.EndDate))
	assert.Equal(t, 30.0, got.TotalPrice)
}

func TestReservationService_ListReservations(t *testing.T) {
	ctx := context.Background()
	resRepo := new(MockReservationRepo)
	svc := service.NewReservationService(resRepo, new(MockEquipmentRepo), nil)

	filter := domain.ReservationFilter{Kind: domain.ReservationFilterStatus, Status: domain.ReservationStatusConfirmed}
	resRepo.On("List", ctx, filter).Return([]domain.Reservation{{ID: 1}}, nil)

	list, err := svc.ListReservations(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListReservations(ctx, domain.ReservationFilter{Kind: domain.ReservationFilterStatus, Status: "lost"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestReservationService_MostRentedEquipment(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending reservations never count", func(t *testing.T) {
		equipRepo := new(MockEquipmentRepo)
		owner := uuid.New()
		equipRepo.On("GetByID", mock.Anything, mock.Anything).Return(&domain.Equipment{ID: 1, OwnerID: owner, PricePerDay: 1}, nil)
		repo := newMemReservationRepo()
		svc := service.NewReservationService(repo, equipRepo, nil)

		finished := domain.ReservationStatusFinished
		for i := 0; i < 5; i++ {
			_, err := svc.CreateReservation(ctx, uuid.New(), domain.ReservationInput{EquipmentID: 1, StartDate: date("2024-01-01"), EndDate: date("2024-01-02")})
			require.NoError(t, err)
		}
		r, err := svc.CreateReservation(ctx, uuid.New(), domain.ReservationInput{EquipmentID: 2, StartDate: date("2024-01-01"), EndDate: date("2024-01-02")})
		require.NoError(t, err)
		_, err = svc.UpdateReservation(ctx, owner, r.ID, domain.ReservationInput{Status: &finished})
		require.NoError(t, err)

		counts, err := svc.MostRentedEquipment(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, []domain.EquipmentRentalCount{{EquipmentID: 2, Count: 1}}, counts)
	})

	t.Run("Non-positive limit is empty", func(t *testing.T) {
		resRepo := new(MockReservationRepo)
		svc := service.NewReservationService(resRepo, new(MockEquipmentRepo), nil)

		for _, limit := range []int{0, -3} {
			counts, err := svc.MostRentedEquipment(ctx, limit)
			require.NoError(t, err)
			assert.Empty(t, counts)
		}
		resRepo.AssertNotCalled(t, "CountFinishedByEquipment", mock.Anything, mock.Anything)
	})

	t.Run("Cache hit skips the database", func(t *testing.T) {
		resRepo := new(MockReservationRepo)
		agg := new(MockAggregates)
		svc := service.NewReservationService(resRepo, new(MockEquipmentRepo), agg)

		cached := []domain.EquipmentRentalCount{{EquipmentID: 9, Count: 4}}
		agg.On("GetMostRented", ctx, 3).Return(cached, int64(4), true, nil)

		counts, err := svc.MostRentedEquipment(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, cached, counts)
		resRepo.AssertNotCalled(t, "CountFinishedByEquipment", mock.Anything, mock.Anything)
	})

	t.Run("Cache failure falls back to the database", func(t *testing.T) {
		resRepo := new(MockReservationRepo)
		agg := new(MockAggregates)
		svc := service.NewReservationService(resRepo, new(MockEquipmentRepo), agg)

		fromDB := []domain.EquipmentRentalCount{{EquipmentID: 1, Count: 2}, {EquipmentID: 3, Count: 2}}
		agg.On("GetMostRented", ctx, 2).Return(nil, int64(0), false, errors.New("redis down"))
		resRepo.On("CountFinishedByEquipment", ctx, 2).Return(fromDB, nil)
		agg.On("SetMostRented", ctx, int64(0), 2, fromDB).Return(errors.New("redis down"))

		counts, err := svc.MostRentedEquipment(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, fromDB, counts)
		agg.AssertExpectations(t)
	})

	t.Run("Cache miss writes back with the version it saw", func(t *testing.T) {
		resRepo := new(MockReservationRepo)
		agg := new(MockAggregates)
		svc := service.NewReservationService(resRepo, new(MockEquipmentRepo), agg)

		fromDB := []domain.EquipmentRentalCount{{EquipmentID: 5, Count: 7}}
		agg.On("GetMostRented", ctx, 1).Return(nil, int64(12), false, nil)
		resRepo.On("CountFinishedByEquipment", ctx, 1).Return(fromDB, nil)
		agg.On("SetMostRented", ctx, int64(12), 1, fromDB).Return(nil)

		counts, err := svc.MostRentedEquipment(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, fromDB, counts)
		agg.AssertExpectations(t)
	})

	t.Run("Deleting a finished reservation invalidates the cache", func(t *testing.T) {
		resRepo := new(MockReservationRepo)
		equipRepo := new(MockEquipmentRepo)
		agg := new(MockAggregates)
		svc := service.NewReservationService(resRepo, equipRepo, agg)
		renter := uuid.New()

		resRepo.On("GetByID", ctx, int32(8)).Return(&domain.Reservation{ID: 8, EquipmentID: 1, UserID: renter, Status: domain.ReservationStatusFinished}, nil)
		equipRepo.On("GetByID", ctx, int32(1)).Return(&domain.Equipment{ID: 1, OwnerID: uuid.New()}, nil)
		resRepo.On("Delete", ctx, int32(8)).Return(nil)
		agg.On("Invalidate", ctx).Return(nil)

		require.NoError(t, svc.DeleteReservation(ctx, renter, 8))
		agg.AssertExpectations(t)
	})
}
