package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "marketplace-api/internal/handler/dto/request"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/handler/httperr"
	"marketplace-api/internal/handler/middleware"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	checkout     commands.CheckoutCommands
	cancellation commands.CancellationCommands
	q            queries.ReservationQueries
}

func NewReservationHandler(
	checkout commands.CheckoutCommands,
	cancellation commands.CancellationCommands,
	q queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{checkout: checkout, cancellation: cancellation, q: q}
}

// @Summary Create reservations
// @Description Book one or more offers in a single checkout
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) Checkout(c *gin.Context) {
	clientID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrUserNotFound, "Unauthorized", nil)
		return
	}

	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	items := make([]commands.CheckoutItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = commands.CheckoutItem{OfferID: item.OfferID, Quantity: item.Quantity}
	}

	result, err := h.checkout.CreateReservations(c.Request.Context(), clientID, items)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOfferNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
		case errors.Is(err, commands.ErrInsufficientStock):
			httperr.AbortWithError(c, http.StatusConflict, err, "Stock insuffisant", nil)
		case errors.Is(err, commands.ErrEmptyOrder):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Checkout failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}

// @Summary List own reservations
// @Description List the authenticated client's reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	clientID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrUserNotFound, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reservations", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.ReservationListResponse{Reservations: views})
}

// @Summary List provider reservations
// @Description List reservations on the prestataire's offers, optionally filtered by statut
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param statut query string false "Filter by statut (e.g. annulée)"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 401 {object} map[string]string
// @Router /prop/reservations [get]
func (h *ReservationHandler) ListForProvider(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrUserNotFound, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListByProvider(c.Request.Context(), providerID, c.Query("statut"))
	if err != nil {
		if errors.Is(err, queries.ErrUnknownStatus) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Statut inconnu", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reservations", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.ReservationListResponse{Reservations: views})
}

// @Summary Cancel reservation
// @Description Cancel one unpaid reservation directly
// @Tags cancellations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservation/annuler/{id} [post]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	clientID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrUserNotFound, "Unauthorized", nil)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cancellation.CancelReservation(c.Request.Context(), clientID, id); err != nil {
		abortCancellationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Réservation annulée"})
}

// @Summary Request payment cancellation
// @Description Open a cancellation request on a paid reservation's payment
// @Tags cancellations
// @Produce json
// @Security BearerAuth
// @Param paiementId path int true "Payment ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /demande-annulation/{paiementId} [post]
func (h *ReservationHandler) RequestCancellation(c *gin.Context) {
	clientID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrUserNotFound, "Unauthorized", nil)
		return
	}

	paymentID, err := strconv.ParseInt(c.Param("paiementId"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment id", nil)
		return
	}

	if err := h.cancellation.RequestCancellation(c.Request.Context(), clientID, paymentID); err != nil {
		abortCancellationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Demande d'annulation envoyée"})
}

// @Summary Cancel whole order
// @Description Cancel every reservation sharing a payment reference, one unit at a time
// @Tags cancellations
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Payment reference"
// @Success 200 {object} resdto.BatchResultResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} resdto.BatchResultResponse
// @Failure 422 {object} map[string]string
// @Router /annulations/{reference}/annuler [post]
func (h *ReservationHandler) CancelOrder(c *gin.Context) {
	clientID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrUserNotFound, "Unauthorized", nil)
		return
	}

	outcome, err := h.cancellation.CancelOrder(c.Request.Context(), clientID, c.Param("reference"))
	if err != nil {
		abortCancellationError(c, err)
		return
	}

	resp := resdto.FromBatchOutcome(outcome)
	status := http.StatusOK
	if !resp.Success {
		status = http.StatusConflict
	}
	c.JSON(status, resp)
}
