package handlers

import (
	"net/http"

	portssvc "github.com/appdotbuilder/finops-audit-app/internal/core/ports/services"
	"github.com/appdotbuilder/finops-audit-app/internal/dto"
	"github.com/gin-gonic/gin"
)

type partnerHandler struct {
	partnerService  portssvc.PartnerSvcFacade
	movementService portssvc.CapitalMovementReaderSvc
}

func registerPartnerRoutes(rg *gin.RouterGroup, partnerService portssvc.PartnerSvcFacade, movementService portssvc.CapitalMovementReaderSvc) {
	h := &partnerHandler{partnerService: partnerService, movementService: movementService}

	partners := rg.Group("/partners")
	{
		partners.POST("", h.createPartner)
		partners.GET("", h.listPartners)
		partners.GET("/:partnerID", h.getPartner)
		partners.GET("/:partnerID/balance", h.getBalance)
		partners.GET("/:partnerID/capital-movements", h.listMovements)
	}
}

// createPartner godoc
// @Summary Register a partner
// @Tags partners
// @Accept json
// @Produce json
// @Param partner body dto.CreatePartnerRequest true "Partner details"
// @Success 201 {object} dto.PartnerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /partners [post]
func (h *partnerHandler) createPartner(c *gin.Context) {
	var req dto.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	partner, err := h.partnerService.CreatePartner(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create partner")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPartnerResponse(partner))
}

// listPartners godoc
// @Summary List partners
// @Tags partners
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.PartnerResponse
// @Security BearerAuth
// @Router /partners [get]
func (h *partnerHandler) listPartners(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}
	partners, err := h.partnerService.ListPartners(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, err, "Failed to list partners")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartnerResponses(partners))
}

// getPartner godoc
// @Summary Get a partner by ID
// @Tags partners
// @Produce json
// @Param partnerID path string true "Partner ID"
// @Success 200 {object} dto.PartnerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /partners/{partnerID} [get]
func (h *partnerHandler) getPartner(c *gin.Context) {
	partnerID, ok := pathID(c, "partnerID")
	if !ok {
		return
	}
	partner, err := h.partnerService.GetPartnerByID(c.Request.Context(), partnerID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve partner")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartnerResponse(partner))
}

// getBalance godoc
// @Summary Get a partner's capital balance
// @Description Nets contributions and draws per currency and totals them in PKR.
// @Tags partners
// @Produce json
// @Param partnerID path string true "Partner ID"
// @Param asOf query string false "Balance date (YYYY-MM-DD), inclusive"
// @Success 200 {object} dto.PartnerBalanceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "No FX rate to convert the USD balance"
// @Security BearerAuth
// @Router /partners/{partnerID}/balance [get]
func (h *partnerHandler) getBalance(c *gin.Context) {
	asOf, err := dto.ParseOptionalDate(c.Query("asOf"))
	if err != nil {
		respondWithError(c, err, "Invalid asOf date")
		return
	}
	partnerID, ok := pathID(c, "partnerID")
	if !ok {
		return
	}
	balance, err := h.movementService.GetPartnerBalance(c.Request.Context(), partnerID, asOf)
	if err != nil {
		respondWithError(c, err, "Failed to compute partner balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartnerBalanceResponse(balance))
}

// listMovements godoc
// @Summary List a partner's capital movements
// @Tags partners
// @Produce json
// @Param partnerID path string true "Partner ID"
// @Success 200 {array} dto.CapitalMovementResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /partners/{partnerID}/capital-movements [get]
func (h *partnerHandler) listMovements(c *gin.Context) {
	partnerID, ok := pathID(c, "partnerID")
	if !ok {
		return
	}
	movements, err := h.movementService.ListByPartner(c.Request.Context(), partnerID)
	if err != nil {
		respondWithError(c, err, "Failed to list capital movements")
		return
	}
	c.JSON(http.StatusOK, dto.ToCapitalMovementResponses(movements))
}

type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := &employeeHandler{employeeService: employeeService}

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:employeeID", h.getEmployee)
	}
}

// createEmployee godoc
// @Summary Register an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create employee")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// listEmployees godoc
// @Summary List employees
// @Tags employees
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.EmployeeResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}
	employees, err := h.employeeService.ListEmployees(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponses(employees))
}

// getEmployee godoc
// @Summary Get an employee by ID
// @Tags employees
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	employeeID, ok := pathID(c, "employeeID")
	if !ok {
		return
	}
	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), employeeID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}
