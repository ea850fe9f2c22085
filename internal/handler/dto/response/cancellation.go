package response

import (
	"marketplace-api/internal/domain/cancellation"
	"marketplace-api/internal/usecase/queries"
)

type CancellationGroupListResponse struct {
	Groups []*queries.CancellationGroupView `json:"groups"`
}

type BatchItemResponse struct {
	Type    string `json:"type"`
	ID      int64  `json:"id"`
	Message string `json:"message,omitempty"`
	Success bool   `json:"success"`
}

// BatchResultResponse reports one sequential batch run: the per-unit results
// and, on partial failure, the aggregated message.
type BatchResultResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Items   []BatchItemResponse `json:"items"`
}

func FromBatchOutcome(outcome *cancellation.BatchOutcome) BatchResultResponse {
	resp := BatchResultResponse{
		Success: outcome.AllSucceeded(),
		Items:   make([]BatchItemResponse, len(outcome.Items)),
	}
	if !resp.Success {
		resp.Message = outcome.FailureMessage()
	}
	for i, item := range outcome.Items {
		resp.Items[i] = BatchItemResponse{
			Type:    string(item.Kind),
			ID:      item.ID,
			Message: item.Message,
			Success: item.Succeeded,
		}
	}
	return resp
}
