package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/appdotbuilder/finops-audit-app/internal/core/ports/services"
	"github.com/appdotbuilder/finops-audit-app/internal/dto"
	"github.com/appdotbuilder/finops-audit-app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fxRateHandler handles the USD to PKR rate table.
type fxRateHandler struct {
	fxRateService portssvc.FxRateSvcFacade
}

func registerFxRateRoutes(rg *gin.RouterGroup, fxRateService portssvc.FxRateSvcFacade) {
	h := &fxRateHandler{fxRateService: fxRateService}

	rates := rg.Group("/fx-rates")
	{
		rates.GET("", h.getRatesInRange)
		rates.GET("/current", h.getCurrentRate)
		rates.GET("/date/:date", h.getRate)
		rates.PUT("/:date", h.setRate)
		rates.POST("/:rateID/lock", h.lockRate)
	}
}

// setRate godoc
// @Summary Set the rate of a date
// @Description Creates or replaces the USD to PKR rate of a date. Locked rates cannot change.
// @Tags fx-rates
// @Accept json
// @Produce json
// @Param date path string true "Rate date (YYYY-MM-DD)"
// @Param rate body dto.SetFxRateRequest true "Rate value"
// @Success 200 {object} dto.FxRateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Rate is locked"
// @Security BearerAuth
// @Router /fx-rates/{date} [put]
func (h *fxRateHandler) setRate(c *gin.Context) {
	date, err := dto.ParseDate(c.Param("date"))
	if err != nil {
		respondWithError(c, err, "Invalid date")
		return
	}
	var req dto.SetFxRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	rate, err := h.fxRateService.SetRate(c.Request.Context(), date, req.Rate, userID)
	if err != nil {
		respondWithError(c, err, "Failed to set fx rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToFxRateResponse(rate))
}

// getRate godoc
// @Summary Get the rate in effect on a date
// @Description Returns the rate of the date or, failing that, the most recent earlier rate.
// @Tags fx-rates
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.FxRateResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /fx-rates/date/{date} [get]
func (h *fxRateHandler) getRate(c *gin.Context) {
	date, err := dto.ParseDate(c.Param("date"))
	if err != nil {
		respondWithError(c, err, "Invalid date")
		return
	}
	rate, err := h.fxRateService.GetRate(c.Request.Context(), date)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve fx rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToFxRateResponse(rate))
}

// getRatesInRange godoc
// @Summary List rates in a date range
// @Tags fx-rates
// @Produce json
// @Param from query string true "From date (YYYY-MM-DD)"
// @Param to query string true "To date (YYYY-MM-DD)"
// @Success 200 {array} dto.FxRateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /fx-rates [get]
func (h *fxRateHandler) getRatesInRange(c *gin.Context) {
	var params dto.FxRateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}
	from, err := dto.ParseDate(params.From)
	if err != nil {
		respondWithError(c, err, "Invalid from date")
		return
	}
	to, err := dto.ParseDate(params.To)
	if err != nil {
		respondWithError(c, err, "Invalid to date")
		return
	}

	rates, err := h.fxRateService.GetRatesInRange(c.Request.Context(), from, to)
	if err != nil {
		respondWithError(c, err, "Failed to list fx rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToFxRateResponses(rates))
}

// getCurrentRate godoc
// @Summary Get the current rate
// @Tags fx-rates
// @Produce json
// @Success 200 {object} dto.FxRateResponse
// @Failure 404 {object} dto.ErrorResponse "No rate available"
// @Security BearerAuth
// @Router /fx-rates/current [get]
func (h *fxRateHandler) getCurrentRate(c *gin.Context) {
	rate, err := h.fxRateService.GetCurrentRate(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to retrieve current fx rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToFxRateResponse(rate))
}

// lockRate godoc
// @Summary Lock a rate
// @Description Freezes a rate for good. The body may carry a final rate value.
// @Tags fx-rates
// @Accept json
// @Produce json
// @Param rateID path string true "FX rate ID"
// @Param rate body dto.LockFxRateRequest false "Optional final rate"
// @Success 200 {object} dto.FxRateResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Rate already locked"
// @Security BearerAuth
// @Router /fx-rates/{rateID}/lock [post]
func (h *fxRateHandler) lockRate(c *gin.Context) {
	var req dto.LockFxRateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	rateID, ok := pathID(c, "rateID")
	if !ok {
		return
	}
	rate, err := h.fxRateService.LockRate(c.Request.Context(), rateID, req.Rate, userID)
	if err != nil {
		respondWithError(c, err, "Failed to lock fx rate")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("FX rate locked via API", slog.String("fx_rate_id", rate.FxRateID))
	c.JSON(http.StatusOK, dto.ToFxRateResponse(rate))
}
