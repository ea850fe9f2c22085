package api

import (
	"errors"
	"net/http"

	"marketplace-api/internal/handler/httperr"
	"marketplace-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// abortCancellationError maps the cancellation sentinel errors to HTTP
// statuses shared by the client and admin endpoints.
func abortCancellationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrReservationNotFound),
		errors.Is(err, commands.ErrPaymentNotFound),
		errors.Is(err, commands.ErrGroupNotFound),
		errors.Is(err, commands.ErrCancellationRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, commands.ErrNotOwned):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
	case errors.Is(err, commands.ErrAlreadyCancelled):
		httperr.AbortWithError(c, http.StatusConflict, err, "Réservation déjà annulée", nil)
	case errors.Is(err, commands.ErrCancellationAlreadyRequested):
		httperr.AbortWithError(c, http.StatusConflict, err, "Une demande d'annulation est déjà en cours", nil)
	case errors.Is(err, commands.ErrTooCloseToStart):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err,
			"L'offre commence dans moins de 72 heures", nil)
	case errors.Is(err, commands.ErrCancelWindowExpired):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err,
			"Le délai d'annulation de 48 heures est dépassé", nil)
	case errors.Is(err, commands.ErrUnpaidPayment), errors.Is(err, commands.ErrPaidReservation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Annulation impossible par cette voie", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
