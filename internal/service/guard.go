package service

import (
	"fmt"

	"rentable-backend/internal/domain"

	"github.com/google/uuid"
)

// AuthorizeMutation allows the call iff principal is the resource owner.
// An unset owner (orphaned row) matches nobody.
func AuthorizeMutation(principal, owner uuid.UUID) error {
	if principal == uuid.Nil || principal != owner {
		return fmt.Errorf("%w: principal %s does not own the resource", domain.ErrUnauthorized, principal)
	}
	return nil
}

// AuthorizeReservationMutation allows the renter or the owner of the
// reserved equipment. equipment may be nil when the reservation no longer
// references any.
func AuthorizeReservationMutation(principal uuid.UUID, r *domain.Reservation, equipment *domain.Equipment) error {
	if AuthorizeMutation(principal, r.UserID) == nil {
		return nil
	}
	if equipment != nil && AuthorizeMutation(principal, equipment.OwnerID) == nil {
		return nil
	}
	return fmt.Errorf("%w: principal %s is neither renter nor equipment owner of reservation %d",
		domain.ErrUnauthorized, principal, r.ID)
}
