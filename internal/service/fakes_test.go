package service_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"rentable-backend/internal/domain"
)

// memReservationRepo is an in-memory reservation store used to check
// properties that span several calls.
type memReservationRepo struct {
	mu     sync.Mutex
	nextID int32
	rows   map[int32]domain.Reservation
}

func newMemReservationRepo() *memReservationRepo {
	return &memReservationRepo{rows: map[int32]domain.Reservation{}}
}

func (m *memReservationRepo) Create(_ context.Context, r *domain.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	r.ID = m.nextID
	m.rows[r.ID] = *r
	return nil
}

func (m *memReservationRepo) GetByID(_ context.Context, id int32) (*domain.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return nil, fmt.Errorf("get reservation: %w", domain.ErrNotFound)
	}
	return &r, nil
}

func (m *memReservationRepo) List(_ context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Reservation{}
	for _, r := range m.rows {
		switch filter.Kind {
		case domain.ReservationFilterStatus:
			if r.Status != filter.Status {
				continue
			}
		case domain.ReservationFilterUser:
			if r.UserID != filter.UserID {
				continue
			}
		case domain.ReservationFilterEquipment:
			if r.EquipmentID != filter.ID {
				continue
			}
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memReservationRepo) Update(_ context.Context, r *domain.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[r.ID]; !ok {
		return fmt.Errorf("update reservation: %w", domain.ErrNotFound)
	}
	m.rows[r.ID] = *r
	return nil
}

func (m *memReservationRepo) Delete(_ context.Context, id int32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return fmt.Errorf("delete reservation: %w", domain.ErrNotFound)
	}
	delete(m.rows, id)
	return nil
}

func (m *memReservationRepo) CountFinishedByEquipment(_ context.Context, limit int) ([]domain.EquipmentRentalCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit <= 0 {
		return []domain.EquipmentRentalCount{}, nil
	}
	counts := map[int32]int64{}
	for _, r := range m.rows {
		if r.Status == domain.ReservationStatusFinished && r.EquipmentID != 0 {
			counts[r.EquipmentID]++
		}
	}
	out := make([]domain.EquipmentRentalCount, 0, len(counts))
	for id, n := range counts {
		out = append(out, domain.EquipmentRentalCount{EquipmentID: id, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].EquipmentID < out[j].EquipmentID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memReservationRepo) FinishElapsed(_ context.Context, asOf time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, r := range m.rows {
		if r.Status == domain.ReservationStatusConfirmed && r.EndDate.Before(asOf) {
			r.Status = domain.ReservationStatusFinished
			m.rows[id] = r
			n++
		}
	}
	return n, nil
}
