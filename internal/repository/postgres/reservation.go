package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rentable-backend/internal/domain"
	"rentable-backend/internal/logger"
	"rentable-backend/internal/repository"
)

const reservationColumns = `r.id, COALESCE(r.equipment_id, 0), r.user_id, r.start_date, r.end_date, r.total_price, r.status`

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	rt := &domain.Reservation{}
	err := row.Scan(&rt.ID, &rt.EquipmentID, &rt.UserID, &rt.StartDate, &rt.EndDate, &rt.TotalPrice, &rt.Status)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *reservationRepository) Create(ctx context.Context, rt *domain.Reservation) error {
	logger.EnterMethod("reservationRepository.Create", "equipmentID", rt.EquipmentID, "userID", rt.UserID)

	query := `INSERT INTO reservations (equipment_id, user_id, start_date, end_date, total_price, status)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, rt.EquipmentID, rt.UserID, rt.StartDate, rt.EndDate, rt.TotalPrice, rt.Status).Scan(&rt.ID)
	if err != nil {
		err = mapError("create reservation", err)
		logger.ExitMethodWithError("reservationRepository.Create", err)
		return err
	}

	logger.ExitMethod("reservationRepository.Create", "reservationID", rt.ID)
	return nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations r WHERE r.id = $1`
	rt, err := scanReservation(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(fmt.Sprintf("get reservation %d", id), err)
	}
	return rt, nil
}

func (r *reservationRepository) List(ctx context.Context, f domain.ReservationFilter) ([]domain.Reservation, error) {
	logger.EnterMethod("reservationRepository.List", "filter", f.Kind)

	query := `SELECT ` + reservationColumns + ` FROM reservations r`
	var args []any
	switch f.Kind {
	case domain.ReservationFilterAll:
	case domain.ReservationFilterEquipment:
		query += ` WHERE r.equipment_id = $1`
		args = append(args, f.ID)
	case domain.ReservationFilterUser:
		query += ` WHERE r.user_id = $1`
		args = append(args, f.UserID)
	case domain.ReservationFilterCategory:
		query += ` JOIN equipment e ON e.id = r.equipment_id WHERE e.category_id = $1`
		args = append(args, f.ID)
	case domain.ReservationFilterSubcategory:
		query += ` JOIN equipment e ON e.id = r.equipment_id WHERE e.subcategory_id = $1`
		args = append(args, f.ID)
	case domain.ReservationFilterStatus:
		if !f.Status.Valid() {
			return nil, fmt.Errorf("list reservations: %w: %q", domain.ErrInvalidStatus, f.Status)
		}
		query += ` WHERE r.status = $1`
		args = append(args, f.Status)
	default:
		return nil, fmt.Errorf("list reservations: %w: unknown filter %q", domain.ErrInvalidInput, f.Kind)
	}
	query += ` ORDER BY r.id`

	logger.DatabaseCall("SELECT", "reservations", "filter", f.Kind)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		return nil, mapError("list reservations", err)
	}
	defer rows.Close()

	reservations := []domain.Reservation{}
	for rows.Next() {
		rt, err := scanReservation(rows)
		if err != nil {
			return nil, mapError("scan reservation", err)
		}
		reservations = append(reservations, *rt)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list reservations", err)
	}

	logger.DatabaseResult("SELECT", int64(len(reservations)), nil)
	logger.ExitMethod("reservationRepository.List", "count", len(reservations))
	return reservations, nil
}

func (r *reservationRepository) Update(ctx context.Context, rt *domain.Reservation) error {
	query := `UPDATE reservations SET equipment_id=$1, start_date=$2, end_date=$3, total_price=$4, status=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, rt.EquipmentID, rt.StartDate, rt.EndDate, rt.TotalPrice, rt.Status, rt.ID)
	if err != nil {
		return mapError("update reservation", err)
	}
	return requireAffected("update reservation", res)
}

func (r *reservationRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return mapError("delete reservation", err)
	}
	return requireAffected("delete reservation", res)
}

func (r *reservationRepository) CountFinishedByEquipment(ctx context.Context, limit int) ([]domain.EquipmentRentalCount, error) {
	counts := []domain.EquipmentRentalCount{}
	if limit <= 0 {
		return counts, nil
	}

	query := `SELECT equipment_id, COUNT(id) AS count
	          FROM reservations
	          WHERE status = $1 AND equipment_id IS NOT NULL
	          GROUP BY equipment_id
	          ORDER BY count DESC, equipment_id ASC
	          LIMIT $2`
	logger.DatabaseCall("SELECT", "reservations GROUP BY equipment_id", "limit", limit)
	rows, err := r.db.QueryContext(ctx, query, domain.ReservationStatusFinished, limit)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		return nil, mapError("count finished reservations", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.EquipmentRentalCount
		if err := rows.Scan(&c.EquipmentID, &c.Count); err != nil {
			return nil, mapError("scan rental count", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("count finished reservations", err)
	}
	logger.DatabaseResult("SELECT", int64(len(counts)), nil)
	return counts, nil
}

func (r *reservationRepository) FinishElapsed(ctx context.Context, asOf time.Time) (int64, error) {
	query := `UPDATE reservations SET status = $1 WHERE status = $2 AND end_date < $3`
	logger.DatabaseCall("UPDATE", query, "asOf", asOf.Format("2006-01-02"))
	res, err := r.db.ExecContext(ctx, query, domain.ReservationStatusFinished, domain.ReservationStatusConfirmed, asOf)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err)
		return 0, mapError("finish elapsed reservations", err)
	}
	n, err := res.RowsAffected()
	logger.DatabaseResult("UPDATE", n, err)
	if err != nil {
		return 0, mapError("finish elapsed reservations", err)
	}
	return n, nil
}
