package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// AnalyticsController handles analytics endpoints.
type AnalyticsController struct {
	monthlyStatsUseCase *dashboard.GetMonthlyStatsUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(monthlyStatsUseCase *dashboard.GetMonthlyStatsUseCase) *AnalyticsController {
	return &AnalyticsController{
		monthlyStatsUseCase: monthlyStatsUseCase,
	}
}

// MonthlyStats handles GET /analytics/monthly-stats requests. Anonymous
// callers get zeroed stats rather than an error.
func (c *AnalyticsController) MonthlyStats(ctx *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	year, month, ok := parseYearMonth(ctx)
	if !ok {
		return
	}

	output, err := c.monthlyStatsUseCase.Execute(ctx.Request.Context(), dashboard.GetMonthlyStatsInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyStatsResponse(output))
}
