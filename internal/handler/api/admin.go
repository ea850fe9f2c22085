package api

import (
	"net/http"
	"strconv"

	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/handler/httperr"
	"marketplace-api/internal/handler/middleware"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminCancellationHandler struct {
	cmds  commands.AdminCancellationCommands
	q     queries.CancellationQueries
	badge queries.NotificationQueries
}

func NewAdminCancellationHandler(
	cmds commands.AdminCancellationCommands,
	q queries.CancellationQueries,
	badge queries.NotificationQueries,
) *AdminCancellationHandler {
	return &AdminCancellationHandler{cmds: cmds, q: q, badge: badge}
}

// @Summary List pending cancellation requests
// @Description Pending cancellation requests grouped by payment reference
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CancellationGroupListResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/annulations [get]
func (h *AdminCancellationHandler) ListPending(c *gin.Context) {
	groups, err := h.q.PendingGroups(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list cancellation requests", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.CancellationGroupListResponse{Groups: groups})
}

// @Summary Accept payment cancellation
// @Description Accept the pending cancellation request on one payment
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param paiementId path int true "Payment ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /paiements/{paiementId}/annuler/accepter [post]
func (h *AdminCancellationHandler) AcceptPayment(c *gin.Context) {
	h.settlePayment(c, true, "Annulation acceptée")
}

// @Summary Refuse payment cancellation
// @Description Refuse the pending cancellation request on one payment
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param paiementId path int true "Payment ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /paiements/{paiementId}/annuler/refuser [post]
func (h *AdminCancellationHandler) RefusePayment(c *gin.Context) {
	h.settlePayment(c, false, "Annulation refusée")
}

func (h *AdminCancellationHandler) settlePayment(c *gin.Context, accept bool, message string) {
	paymentID, err := strconv.ParseInt(c.Param("paiementId"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment id", nil)
		return
	}

	if accept {
		err = h.cmds.Accept(c.Request.Context(), paymentID)
	} else {
		err = h.cmds.Refuse(c.Request.Context(), paymentID)
	}
	if err != nil {
		abortCancellationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// @Summary Accept group cancellation
// @Description Accept every pending request sharing a payment reference, one payment at a time
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Payment reference"
// @Success 200 {object} resdto.BatchResultResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} resdto.BatchResultResponse
// @Router /admin/annulations/{reference}/accepter [post]
func (h *AdminCancellationHandler) AcceptGroup(c *gin.Context) {
	h.decideGroup(c, true)
}

// @Summary Refuse group cancellation
// @Description Refuse every pending request sharing a payment reference, one payment at a time
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Payment reference"
// @Success 200 {object} resdto.BatchResultResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} resdto.BatchResultResponse
// @Router /admin/annulations/{reference}/refuser [post]
func (h *AdminCancellationHandler) RefuseGroup(c *gin.Context) {
	h.decideGroup(c, false)
}

func (h *AdminCancellationHandler) decideGroup(c *gin.Context, accept bool) {
	outcome, err := h.cmds.Decide(c.Request.Context(), c.Param("reference"), accept)
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

// @Summary Cancellation badge
// @Description New cancellation requests since the admin last looked
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BadgeResponse
// @Failure 401 {object} map[string]string
// @Router /admin/annulations/badge [get]
func (h *AdminCancellationHandler) Badge(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrUserNotFound, "Unauthorized", nil)
		return
	}

	view, err := h.badge.Badge(c.Request.Context(), adminID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to read badge", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBadgeView(view))
}
