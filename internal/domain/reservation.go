package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusPending           ReservationStatus = "pending"
	ReservationStatusWaitingForPayment ReservationStatus = "waiting_for_payment"
	ReservationStatusConfirmed         ReservationStatus = "confirmed"
	ReservationStatusCanceled          ReservationStatus = "canceled"
	ReservationStatusFinished          ReservationStatus = "finished"
)

// ReservationStatuses lists every persisted status, in lifecycle order.
var ReservationStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusWaitingForPayment,
	ReservationStatusConfirmed,
	ReservationStatusCanceled,
	ReservationStatusFinished,
}

// ParseReservationStatus rejects anything outside the closed status set.
func ParseReservationStatus(s string) (ReservationStatus, error) {
	for _, st := range ReservationStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func (s ReservationStatus) Valid() bool {
	_, err := ParseReservationStatus(string(s))
	return err == nil
}

type Reservation struct {
	ID          int32             `json:"id"`
	EquipmentID int32             `json:"equipment_id"`
	UserID      uuid.UUID         `json:"user_id"` // renter
	StartDate   time.Time         `json:"start_date"`
	EndDate     time.Time         `json:"end_date"`
	TotalPrice  float64           `json:"total_price"`
	Status      ReservationStatus `json:"status"`
}

// ReservationInput carries the client-controlled fields of a reservation.
// Total price is never part of it.
type ReservationInput struct {
	EquipmentID int32
	StartDate   time.Time
	EndDate     time.Time
	// Status is only honoured on update; nil keeps the current value.
	Status *ReservationStatus
}

// ReservationFilterKind selects the predicate used when listing reservations.
type ReservationFilterKind string

const (
	ReservationFilterAll         ReservationFilterKind = ""
	ReservationFilterEquipment   ReservationFilterKind = "equipment"
	ReservationFilterUser        ReservationFilterKind = "user"
	ReservationFilterCategory    ReservationFilterKind = "category"
	ReservationFilterSubcategory ReservationFilterKind = "subcategory"
	ReservationFilterStatus      ReservationFilterKind = "status"
)

type ReservationFilter struct {
	Kind   ReservationFilterKind
	ID     int32     // equipment, category or subcategory id
	UserID uuid.UUID // renter
	Status ReservationStatus
}

// EquipmentRentalCount is one row of the most-rented aggregate.
type EquipmentRentalCount struct {
	EquipmentID int32 `json:"equipment_id"`
	Count       int64 `json:"count"`
}
