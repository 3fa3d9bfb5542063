package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finsight/revenue-dashboard/internal/api/shared/dto"
	"github.com/finsight/revenue-dashboard/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetCombinedRevenue returns the merged two-source series
	// GET /api/v1/revenue/combined?months=<n>
	GetCombinedRevenue(c *gin.Context)

	// GetRevenueSummary returns the derived summary metrics
	// GET /api/v1/revenue/summary?months=<n>
	GetRevenueSummary(c *gin.Context)

	// GetProfitwellRevenue returns the subscription-analytics series
	// GET /api/v1/revenue/profitwell?months=<n>
	GetProfitwellRevenue(c *gin.Context)

	// GetAtlassianRevenue returns the marketplace-billing series
	// GET /api/v1/revenue/atlassian?months=<n>
	GetAtlassianRevenue(c *gin.Context)

	// GetBankBalances returns current account balances
	// GET /api/v1/banking/balances
	GetBankBalances(c *gin.Context)

	// GetBurnRate returns per-month debit-side spend
	// GET /api/v1/banking/burn-rate?months=<n>
	GetBurnRate(c *gin.Context)

	// ProxyVendor forwards an allowlisted endpoint to a vendor API
	// GET /api/v1/proxy/:vendor?endpoint=<path>
	ProxyVendor(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor       executor.Executor
	defaultMonths  int
	burnRateMonths int
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor, defaultMonths int, burnRateMonths int) Handler {
	return &handler{
		executor:       exec,
		defaultMonths:  defaultMonths,
		burnRateMonths: burnRateMonths,
	}
}

// GetCombinedRevenue returns the merged two-source series
func (h *handler) GetCombinedRevenue(c *gin.Context) {
	months, err := ParseMonthsQuery(c, h.defaultMonths)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetCombinedSeries(c.Request.Context(), months)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetRevenueSummary returns the derived summary metrics
func (h *handler) GetRevenueSummary(c *gin.Context) {
	months, err := ParseMonthsQuery(c, h.defaultMonths)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetSummary(c.Request.Context(), months)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetProfitwellRevenue returns the subscription-analytics series
func (h *handler) GetProfitwellRevenue(c *gin.Context) {
	months, err := ParseMonthsQuery(c, h.defaultMonths)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetProfitwellSeries(c.Request.Context(), months)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetAtlassianRevenue returns the marketplace-billing series
func (h *handler) GetAtlassianRevenue(c *gin.Context) {
	months, err := ParseMonthsQuery(c, h.defaultMonths)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetAtlassianSeries(c.Request.Context(), months)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetBankBalances returns current account balances
func (h *handler) GetBankBalances(c *gin.Context) {
	response, err := h.executor.GetBankBalances(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetBurnRate returns per-month debit-side spend
func (h *handler) GetBurnRate(c *gin.Context) {
	months, err := ParseMonthsQuery(c, h.burnRateMonths)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetBurnRate(c.Request.Context(), months)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// ProxyVendor forwards an allowlisted endpoint to a vendor API
func (h *handler) ProxyVendor(c *gin.Context) {
	vendor := c.Param("vendor")
	if vendor == "" {
		respondBadRequest(c, "Vendor is required")
		return
	}

	params, err := ParseProxyQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	body, err := h.executor.ProxyRequest(c.Request.Context(), vendor, params.Endpoint)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
