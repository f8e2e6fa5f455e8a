package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/budget_engine/internal/core/domain"
	portssvc "github.com/SscSPs/budget_engine/internal/core/ports/services"
	"github.com/SscSPs/budget_engine/internal/dto"
	"github.com/SscSPs/budget_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

type expenseHandler struct {
	aggregationService portssvc.ExpenseAggregatorSvc
}

func newExpenseHandler(as portssvc.ExpenseAggregatorSvc) *expenseHandler {
	return &expenseHandler{aggregationService: as}
}

// RegisterExpenseRoutes registers the expense aggregation routes.
func RegisterExpenseRoutes(rg *gin.RouterGroup, aggregationService portssvc.ExpenseAggregatorSvc) {
	h := newExpenseHandler(aggregationService)

	expenses := rg.Group("/expenses")
	expenses.GET("/total", h.getExpenseTotal)
}

// getExpenseTotal godoc
// @Summary Total the caller's expenses
// @Description Sums the authenticated user's expenses dated within [startDate, endDate] into one currency. Expenses with no direct rate into that currency are listed under skipped and left out of the total.
// @Tags expenses
// @Produce  json
// @Param   currency   query string true  "Target currency ID"
// @Param   startDate  query string true  "Start date (YYYY-MM-DD), inclusive"
// @Param   endDate    query string true  "End date (YYYY-MM-DD), inclusive"
// @Param   categoryID query string false "Restrict to one category"
// @Success 200 {object} dto.ExpenseTotalResponse
// @Failure 400 {object} map[string]string "Invalid dates or missing parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute expense total"
// @Security BearerAuth
// @Router /expenses/total [get]
func (h *expenseHandler) getExpenseTotal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var query dto.ExpenseTotalQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	period, err := domain.ParseDateRange(query.StartDate, query.EndDate)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute expense total")
		return
	}

	logger = logger.With(slog.String("currency_id", query.Currency))
	total, err := h.aggregationService.ExpenseTotals(c.Request.Context(), portssvc.ExpenseQuery{
		UserID:           userID,
		TargetCurrencyID: query.Currency,
		Range:            period,
		CategoryID:       query.CategoryID,
	})
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute expense total")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseTotalResponse(userID, period, query.CategoryID, total))
}
