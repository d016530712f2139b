package domain

import "github.com/google/uuid"

const (
	MinRating = 0
	MaxRating = 10
)

// ValidateRating enforces the inclusive [MinRating, MaxRating] range.
func ValidateRating(rating int32) error {
	if rating < MinRating || rating > MaxRating {
		return ErrInvalidRating
	}
	return nil
}

type EquipmentReview struct {
	ID          int32     `json:"id"`
	ReviewerID  uuid.UUID `json:"reviewer_id"`
	EquipmentID int32     `json:"equipment_id"`
	Rating      int32     `json:"rating"`
	Comment     *string   `json:"comment,omitempty"`
}

type UserReview struct {
	ID             int32     `json:"id"`
	ReviewerID     uuid.UUID `json:"reviewer_id"`
	ReviewedUserID uuid.UUID `json:"reviewed_user_id"`
	Rating         int32     `json:"rating"`
	Comment        *string   `json:"comment,omitempty"`
}
