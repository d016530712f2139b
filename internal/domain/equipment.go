package domain

import "github.com/google/uuid"

type Equipment struct {
	ID            int32     `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	CategoryID    int32     `json:"category_id"`
	SubcategoryID int32     `json:"subcategory_id"`
	OwnerID       uuid.UUID `json:"equipment_owner_id"`
	PricePerDay   float64   `json:"price_per_day"`
	IsAvailable   bool      `json:"is_available"`
}
