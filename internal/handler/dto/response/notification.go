package response

import (
	"marketplace-api/internal/usecase/queries"
)

type BadgeResponse struct {
	NewCount     int64 `json:"new_count"`
	PendingCount int64 `json:"pending_count"`
}

func FromBadgeView(view queries.BadgeView) BadgeResponse {
	return BadgeResponse{
		NewCount:     view.NewCount,
		PendingCount: view.PendingCount,
	}
}
