package request

import (
	"time"
)

type CreateOfferRequest struct {
	Title      string     `json:"title" binding:"required"`
	Details    string     `json:"details"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	Stock      int32      `json:"stock" binding:"required,gt=0"`
	PriceCents int64      `json:"price_cents" binding:"required,gte=0"`
}
