package handlers

import (
	"net/http"

	portssvc "github.com/appdotbuilder/finops-audit-app/internal/core/ports/services"
	"github.com/appdotbuilder/finops-audit-app/internal/dto"
	"github.com/gin-gonic/gin"
)

// periodHandler handles accounting period requests.
type periodHandler struct {
	periodService portssvc.PeriodSvcFacade
}

// periodMonthURI binds /periods/by-month/:year/:month.
type periodMonthURI struct {
	Year  int `uri:"year" binding:"required,min=2000,max=2100"`
	Month int `uri:"month" binding:"required,min=1,max=12"`
}

func registerPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodSvcFacade) {
	h := &periodHandler{periodService: periodService}

	periods := rg.Group("/periods")
	{
		periods.POST("", h.createPeriod)
		periods.GET("", h.listPeriods)
		periods.GET("/current", h.getCurrentPeriod)
		periods.GET("/by-month/:year/:month", h.getPeriodByYearMonth)
		periods.GET("/:periodID", h.getPeriod)
		periods.GET("/:periodID/close-validation", h.validateClose)
		periods.POST("/:periodID/lock", h.lockPeriod)
	}
}

// createPeriod godoc
// @Summary Open an accounting period
// @Tags periods
// @Accept json
// @Produce json
// @Param period body dto.CreatePeriodRequest true "Year and month"
// @Success 201 {object} dto.PeriodResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Period already exists"
// @Security BearerAuth
// @Router /periods [post]
func (h *periodHandler) createPeriod(c *gin.Context) {
	var req dto.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	period, err := h.periodService.CreatePeriod(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create period")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPeriodResponse(period))
}

// listPeriods godoc
// @Summary List periods
// @Tags periods
// @Produce json
// @Success 200 {array} dto.PeriodResponse
// @Security BearerAuth
// @Router /periods [get]
func (h *periodHandler) listPeriods(c *gin.Context) {
	periods, err := h.periodService.ListPeriods(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to list periods")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponses(periods))
}

// getCurrentPeriod godoc
// @Summary Get the latest open period
// @Tags periods
// @Produce json
// @Success 200 {object} dto.PeriodResponse
// @Failure 404 {object} dto.ErrorResponse "No open period"
// @Security BearerAuth
// @Router /periods/current [get]
func (h *periodHandler) getCurrentPeriod(c *gin.Context) {
	period, err := h.periodService.GetCurrentPeriod(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to retrieve current period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// getPeriodByYearMonth godoc
// @Summary Get a period by year and month
// @Tags periods
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} dto.PeriodResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /periods/by-month/{year}/{month} [get]
func (h *periodHandler) getPeriodByYearMonth(c *gin.Context) {
	var uri periodMonthURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondWithBindError(c, err)
		return
	}
	period, err := h.periodService.GetPeriodByYearMonth(c.Request.Context(), uri.Year, uri.Month)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// getPeriod godoc
// @Summary Get a period by ID
// @Tags periods
// @Produce json
// @Param periodID path string true "Period ID"
// @Success 200 {object} dto.PeriodResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /periods/{periodID} [get]
func (h *periodHandler) getPeriod(c *gin.Context) {
	periodID, ok := pathID(c, "periodID")
	if !ok {
		return
	}
	period, err := h.periodService.GetPeriodByID(c.Request.Context(), periodID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// validateClose godoc
// @Summary Check whether a period can be locked
// @Tags periods
// @Produce json
// @Param periodID path string true "Period ID"
// @Success 200 {object} domain.CloseValidation
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /periods/{periodID}/close-validation [get]
func (h *periodHandler) validateClose(c *gin.Context) {
	periodID, ok := pathID(c, "periodID")
	if !ok {
		return
	}
	validation, err := h.periodService.ValidateClose(c.Request.Context(), periodID)
	if err != nil {
		respondWithError(c, err, "Failed to validate period close")
		return
	}
	c.JSON(http.StatusOK, validation)
}

// lockPeriod godoc
// @Summary Lock a period
// @Description Closes the period for good. Fails while draft journals remain.
// @Tags periods
// @Produce json
// @Param periodID path string true "Period ID"
// @Success 200 {object} dto.PeriodResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already locked"
// @Failure 422 {object} dto.ErrorResponse "Draft journals remain"
// @Security BearerAuth
// @Router /periods/{periodID}/lock [post]
func (h *periodHandler) lockPeriod(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	periodID, ok := pathID(c, "periodID")
	if !ok {
		return
	}
	period, err := h.periodService.LockPeriod(c.Request.Context(), periodID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to lock period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}
