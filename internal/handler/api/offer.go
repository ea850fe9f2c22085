package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "marketplace-api/internal/handler/dto/request"
	"marketplace-api/internal/handler/httperr"
	"marketplace-api/internal/handler/middleware"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	cmds commands.OfferCommands
	q    queries.OfferQueries
}

func NewOfferHandler(cmds commands.OfferCommands, q queries.OfferQueries) *OfferHandler {
	return &OfferHandler{cmds: cmds, q: q}
}

// @Summary List offers
// @Description List published offers
// @Tags offers
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} queries.OfferView
// @Router /offres [get]
func (h *OfferHandler) List(c *gin.Context) {
	limit := parseInt32(c.Query("limit"), 50)
	offset := parseInt32(c.Query("offset"), 0)

	views, err := h.q.List(c.Request.Context(), limit, offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list offers", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get offer
// @Description Get one offer by id
// @Tags offers
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {object} queries.OfferView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offres/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create offer
// @Description Publish a new offer
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOfferRequest true "Create offer request"
// @Success 201 {object} map[string]int64
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /prop/offres [post]
func (h *OfferHandler) Create(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrUserNotFound, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	in := commands.CreateOfferInput{
		Title:      req.Title,
		Details:    req.Details,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Stock:      req.Stock,
		PriceCents: req.PriceCents,
	}

	id, err := h.cmds.CreateOffer(c.Request.Context(), providerID, in)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidOffer) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Offre invalide", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create offer failed", nil)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func parseInt32(raw string, fallback int32) int32 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(v)
}
