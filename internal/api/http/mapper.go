package http

import (
	"fmt"
	"time"

	"rentable-backend/internal/domain"
	"rentable-backend/internal/utils"

	"github.com/google/uuid"
)

type reservationRequest struct {
	EquipmentID int32   `json:"equipment_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Status      *string `json:"status,omitempty"`
}

type reservationResponse struct {
	ID          int32                    `json:"id"`
	EquipmentID int32                    `json:"equipment_id"`
	UserID      uuid.UUID                `json:"user_id"`
	StartDate   string                   `json:"start_date"`
	EndDate     string                   `json:"end_date"`
	TotalPrice  float64                  `json:"total_price"`
	Status      domain.ReservationStatus `json:"status"`
}

type quoteResponse struct {
	EquipmentID int32   `json:"equipment_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Days        int     `json:"days"`
	TotalPrice  float64 `json:"total_price"`
}

type equipmentRequest struct {
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	CategoryID    int32   `json:"category_id"`
	SubcategoryID int32   `json:"subcategory_id"`
	PricePerDay   float64 `json:"price_per_day"`
	IsAvailable   *bool   `json:"is_available,omitempty"`
}

type categoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CategoryID  int32   `json:"category_id,omitempty"`
}

type equipmentReviewRequest struct {
	EquipmentID int32   `json:"equipment_id"`
	Rating      int32   `json:"rating"`
	Comment     *string `json:"comment,omitempty"`
}

type userReviewRequest struct {
	ReviewedUserID uuid.UUID `json:"reviewed_user_id"`
	Rating         int32     `json:"rating"`
	Comment        *string   `json:"comment,omitempty"`
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// averageResponse renders a missing average as JSON null.
type averageResponse struct {
	Average *float64 `json:"average"`
}

func mapReservation(r *domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:          r.ID,
		EquipmentID: r.EquipmentID,
		UserID:      r.UserID,
		StartDate:   utils.FormatDate(r.StartDate),
		EndDate:     utils.FormatDate(r.EndDate),
		TotalPrice:  r.TotalPrice,
		Status:      r.Status,
	}
}

func mapReservations(rs []domain.Reservation) []reservationResponse {
	out := make([]reservationResponse, 0, len(rs))
	for i := range rs {
		out = append(out, mapReservation(&rs[i]))
	}
	return out
}

func parseOptionalDate(field, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := utils.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, field, err)
	}
	return t, nil
}

// toInput converts the wire form. Creation needs every field and ignores
// status; updates may leave any of them out.
func (req reservationRequest) toInput(create bool) (domain.ReservationInput, error) {
	var in domain.ReservationInput
	if create && (req.EquipmentID == 0 || req.StartDate == "" || req.EndDate == "") {
		return in, fmt.Errorf("%w: equipment_id, start_date and end_date are required", domain.ErrInvalidInput)
	}

	start, err := parseOptionalDate("start_date", req.StartDate)
	if err != nil {
		return in, err
	}
	end, err := parseOptionalDate("end_date", req.EndDate)
	if err != nil {
		return in, err
	}
	in.EquipmentID = req.EquipmentID
	in.StartDate = start
	in.EndDate = end

	if !create && req.Status != nil {
		st, err := domain.ParseReservationStatus(*req.Status)
		if err != nil {
			return in, err
		}
		in.Status = &st
	}
	return in, nil
}

func (req equipmentRequest) toDomain(id int32) *domain.Equipment {
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	return &domain.Equipment{
		ID:            id,
		Name:          req.Name,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		PricePerDay:   req.PricePerDay,
		IsAvailable:   available,
	}
}
