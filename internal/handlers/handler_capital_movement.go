package handlers

import (
	"net/http"

	portssvc "github.com/appdotbuilder/finops-audit-app/internal/core/ports/services"
	"github.com/appdotbuilder/finops-audit-app/internal/dto"
	"github.com/gin-gonic/gin"
)

// capitalMovementHandler handles partner contributions and draws.
type capitalMovementHandler struct {
	movementService portssvc.CapitalMovementSvcFacade
}

func registerCapitalMovementRoutes(rg *gin.RouterGroup, movementService portssvc.CapitalMovementSvcFacade) {
	h := &capitalMovementHandler{movementService: movementService}

	movements := rg.Group("/capital-movements")
	{
		movements.POST("", h.createMovement)
		movements.GET("", h.listMovements)
		movements.GET("/:movementID", h.getMovement)
		movements.POST("/:movementID/link", h.linkJournal)
	}
}

// createMovement godoc
// @Summary Record a capital movement
// @Description Records a partner contribution or draw. USD amounts are converted to PKR.
// @Tags capital-movements
// @Accept json
// @Produce json
// @Param movement body dto.CreateCapitalMovementRequest true "Movement details"
// @Success 201 {object} dto.CapitalMovementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Partner not found"
// @Failure 422 {object} dto.ErrorResponse "No FX rate for the date"
// @Security BearerAuth
// @Router /capital-movements [post]
func (h *capitalMovementHandler) createMovement(c *gin.Context) {
	var req dto.CreateCapitalMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	movement, err := h.movementService.CreateMovement(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to record capital movement")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCapitalMovementResponse(movement))
}

// listMovements godoc
// @Summary List capital movements
// @Tags capital-movements
// @Produce json
// @Param partnerID query string false "Partner ID"
// @Param movementType query string false "CONTRIBUTION or DRAW"
// @Param fromDate query string false "From date (YYYY-MM-DD)"
// @Param toDate query string false "To date (YYYY-MM-DD)"
// @Success 200 {array} dto.CapitalMovementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /capital-movements [get]
func (h *capitalMovementHandler) listMovements(c *gin.Context) {
	var params dto.ListCapitalMovementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}
	movements, err := h.movementService.ListMovements(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err, "Failed to list capital movements")
		return
	}
	c.JSON(http.StatusOK, dto.ToCapitalMovementResponses(movements))
}

// getMovement godoc
// @Summary Get a capital movement by ID
// @Tags capital-movements
// @Produce json
// @Param movementID path string true "Movement ID"
// @Success 200 {object} dto.CapitalMovementResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /capital-movements/{movementID} [get]
func (h *capitalMovementHandler) getMovement(c *gin.Context) {
	movementID, ok := pathID(c, "movementID")
	if !ok {
		return
	}
	movement, err := h.movementService.GetMovement(c.Request.Context(), movementID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve capital movement")
		return
	}
	c.JSON(http.StatusOK, dto.ToCapitalMovementResponse(movement))
}

// linkJournal godoc
// @Summary Link a movement to its journal
// @Tags capital-movements
// @Accept json
// @Produce json
// @Param movementID path string true "Movement ID"
// @Param link body dto.LinkJournalRequest true "Journal to link"
// @Success 200 {object} dto.CapitalMovementResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already linked"
// @Security BearerAuth
// @Router /capital-movements/{movementID}/link [post]
func (h *capitalMovementHandler) linkJournal(c *gin.Context) {
	var req dto.LinkJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	movementID, ok := pathID(c, "movementID")
	if !ok {
		return
	}
	movement, err := h.movementService.LinkJournal(c.Request.Context(), movementID, req.JournalID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to link capital movement")
		return
	}
	c.JSON(http.StatusOK, dto.ToCapitalMovementResponse(movement))
}
