package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/budget_engine/internal/core/ports/services"
	"github.com/SscSPs/budget_engine/internal/dto"
	"github.com/SscSPs/budget_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

type budgetHandler struct {
	budgetService portssvc.BudgetTrackerSvc
}

func newBudgetHandler(bs portssvc.BudgetTrackerSvc) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// RegisterBudgetRoutes registers the budget tracking routes.
func RegisterBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetTrackerSvc) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets/:budgetID")
	{
		budgets.GET("/usage", h.getUsage)
		budgets.GET("/percentage", h.getPercentage)
		budgets.GET("/alert", h.getAlert)
		budgets.GET("/status", h.getStatus)
	}
}

func budgetLogger(c *gin.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("budget_id", c.Param("budgetID")))
}

// getUsage godoc
// @Summary Current budget usage
// @Description Sums the expenses a budget covers into the budget's currency
// @Tags budgets
// @Produce  json
// @Param   budgetID path string true "Budget ID"
// @Success 200 {object} dto.BudgetUsageResponse
// @Failure 404 {object} map[string]string "Budget not found"
// @Failure 500 {object} map[string]string "Failed to compute budget usage"
// @Security BearerAuth
// @Router /budgets/{budgetID}/usage [get]
func (h *budgetHandler) getUsage(c *gin.Context) {
	budgetID := c.Param("budgetID")
	usage, err := h.budgetService.CurrentBudgetUsage(c.Request.Context(), budgetID)
	if err != nil {
		respondWithError(c, budgetLogger(c), err, "Failed to compute budget usage")
		return
	}
	c.JSON(http.StatusOK, dto.BudgetUsageResponse{BudgetID: budgetID, Usage: usage})
}

// getPercentage godoc
// @Summary Percentage of a budget consumed
// @Description Usage divided by limit times 100, rounded half away from zero to 2 places. A non-positive limit reports 0. Values above 100 are not clamped.
// @Tags budgets
// @Produce  json
// @Param   budgetID path string true "Budget ID"
// @Success 200 {object} dto.BudgetPercentageResponse
// @Failure 404 {object} map[string]string "Budget not found"
// @Failure 500 {object} map[string]string "Failed to compute budget percentage"
// @Security BearerAuth
// @Router /budgets/{budgetID}/percentage [get]
func (h *budgetHandler) getPercentage(c *gin.Context) {
	budgetID := c.Param("budgetID")
	pct, err := h.budgetService.PercentageConsumed(c.Request.Context(), budgetID)
	if err != nil {
		respondWithError(c, budgetLogger(c), err, "Failed to compute budget percentage")
		return
	}
	c.JSON(http.StatusOK, dto.BudgetPercentageResponse{BudgetID: budgetID, PercentageConsumed: pct})
}

// getAlert godoc
// @Summary Budget alert state
// @Description Reports whether consumption reached the alert threshold. An unknown budget or one without a threshold reports false.
// @Tags budgets
// @Produce  json
// @Param   budgetID path string true "Budget ID"
// @Success 200 {object} dto.BudgetAlertResponse
// @Failure 500 {object} map[string]string "Failed to evaluate budget alert"
// @Security BearerAuth
// @Router /budgets/{budgetID}/alert [get]
func (h *budgetHandler) getAlert(c *gin.Context) {
	budgetID := c.Param("budgetID")
	triggered, err := h.budgetService.IsAlertTriggered(c.Request.Context(), budgetID)
	if err != nil {
		respondWithError(c, budgetLogger(c), err, "Failed to evaluate budget alert")
		return
	}
	c.JSON(http.StatusOK, dto.BudgetAlertResponse{BudgetID: budgetID, AlertTriggered: triggered})
}

// getStatus godoc
// @Summary Budget status
// @Description Usage, remaining amount, percentage and alert state from a single computation
// @Tags budgets
// @Produce  json
// @Param   budgetID path string true "Budget ID"
// @Success 200 {object} dto.BudgetStatusResponse
// @Failure 404 {object} map[string]string "Budget not found"
// @Failure 500 {object} map[string]string "Failed to compute budget status"
// @Security BearerAuth
// @Router /budgets/{budgetID}/status [get]
func (h *budgetHandler) getStatus(c *gin.Context) {
	status, err := h.budgetService.BudgetStatus(c.Request.Context(), c.Param("budgetID"))
	if err != nil {
		respondWithError(c, budgetLogger(c), err, "Failed to compute budget status")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetStatusResponse(status))
}
