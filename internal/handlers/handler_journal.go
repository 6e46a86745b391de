package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/appdotbuilder/finops-audit-app/internal/core/ports/services"
	"github.com/appdotbuilder/finops-audit-app/internal/dto"
	"github.com/appdotbuilder/finops-audit-app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journals.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := &journalHandler{journalService: journalService}

	journals := rg.Group("/journals")
	{
		journals.POST("", h.createJournal)
		journals.GET("", h.listJournals)
		journals.GET("/:journalID", h.getJournal)
		journals.POST("/:journalID/lines", h.addLine)
		journals.GET("/:journalID/validation", h.validateJournal)
		journals.POST("/:journalID/post", h.postJournal)
	}
	rg.DELETE("/journal-lines/:lineID", h.deleteLine)
}

// createJournal godoc
// @Summary Create a draft journal
// @Description Starts a DRAFT journal in an open period. Lines are added separately.
// @Tags journals
// @Accept json
// @Produce json
// @Param journal body dto.CreateJournalRequest true "Journal header"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Period not found"
// @Failure 409 {object} dto.ErrorResponse "Period is locked"
// @Security BearerAuth
// @Router /journals [post]
func (h *journalHandler) createJournal(c *gin.Context) {
	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	journal, err := h.journalService.CreateJournal(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create journal")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Journal created", slog.String("journal_id", journal.JournalID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(journal))
}

// getJournal godoc
// @Summary Get a journal with its lines
// @Tags journals
// @Produce json
// @Param journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	journalID, ok := pathID(c, "journalID")
	if !ok {
		return
	}
	journal, err := h.journalService.GetJournalByID(c.Request.Context(), journalID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// listJournals godoc
// @Summary List journals
// @Description Lists journal headers newest first, with token-based pagination.
// @Tags journals
// @Produce json
// @Param periodID query string false "Period ID"
// @Param status query string false "DRAFT or POSTED"
// @Param fromDate query string false "From transaction date (YYYY-MM-DD)"
// @Param toDate query string false "To transaction date (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}
	resp, err := h.journalService.ListJournals(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err, "Failed to list journals")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// addLine godoc
// @Summary Add a line to a draft journal
// @Description Base amounts are derived from the FX rate of the transaction date unless given.
// @Tags journals
// @Accept json
// @Produce json
// @Param journalID path string true "Journal ID"
// @Param line body dto.AddJournalLineRequest true "Line details"
// @Success 201 {object} dto.JournalLineResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Journal posted or period locked"
// @Failure 422 {object} dto.ErrorResponse "No FX rate for the date"
// @Security BearerAuth
// @Router /journals/{journalID}/lines [post]
func (h *journalHandler) addLine(c *gin.Context) {
	var req dto.AddJournalLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	journalID, ok := pathID(c, "journalID")
	if !ok {
		return
	}
	line, err := h.journalService.AddLine(c.Request.Context(), journalID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to add journal line")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalLineResponse(line))
}

// deleteLine godoc
// @Summary Delete a line of a draft journal
// @Tags journals
// @Param lineID path string true "Line ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Journal posted or period locked"
// @Security BearerAuth
// @Router /journal-lines/{lineID} [delete]
func (h *journalHandler) deleteLine(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	lineID, ok := pathID(c, "lineID")
	if !ok {
		return
	}
	if err := h.journalService.DeleteLine(c.Request.Context(), lineID, userID); err != nil {
		respondWithError(c, err, "Failed to delete journal line")
		return
	}
	c.Status(http.StatusNoContent)
}

// validateJournal godoc
// @Summary Check whether a journal balances
// @Tags journals
// @Produce json
// @Param journalID path string true "Journal ID"
// @Success 200 {object} domain.ValidationResult
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /journals/{journalID}/validation [get]
func (h *journalHandler) validateJournal(c *gin.Context) {
	journalID, ok := pathID(c, "journalID")
	if !ok {
		return
	}
	result, err := h.journalService.ValidateJournal(c.Request.Context(), journalID)
	if err != nil {
		respondWithError(c, err, "Failed to validate journal")
		return
	}
	c.JSON(http.StatusOK, result)
}

// postJournal godoc
// @Summary Post a journal
// @Description Validates and irreversibly posts a DRAFT journal.
// @Tags journals
// @Produce json
// @Param journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 400 {object} dto.ErrorResponse "Journal does not balance"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already posted or period locked"
// @Security BearerAuth
// @Router /journals/{journalID}/post [post]
func (h *journalHandler) postJournal(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	journalID, ok := pathID(c, "journalID")
	if !ok {
		return
	}
	journal, err := h.journalService.PostJournal(c.Request.Context(), journalID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to post journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}
