package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase      *transaction.CreateTransactionUseCase
	deleteUseCase      *transaction.DeleteTransactionUseCase
	listRecentUseCase  *transaction.ListRecentTransactionsUseCase
	listByMonthUseCase *transaction.ListTransactionsByMonthUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	listRecentUseCase *transaction.ListRecentTransactionsUseCase,
	listByMonthUseCase *transaction.ListTransactionsByMonthUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase:      createUseCase,
		deleteUseCase:      deleteUseCase,
		listRecentUseCase:  listRecentUseCase,
		listByMonthUseCase: listByMonthUseCase,
	}
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		UserID:       userID,
		Amount:       decimal.NewFromFloat(req.Amount),
		Type:         entity.TransactionType(req.Type),
		CategoryName: req.CategoryName,
	})
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		UserID: userID,
		ID:     id,
	}); err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Transaction deleted",
	})
}

// ListRecent handles GET /transactions/recent requests.
func (c *TransactionController) ListRecent(ctx *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	limit := 0
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}

	output, err := c.listRecentUseCase.Execute(ctx.Request.Context(), transaction.ListRecentTransactionsInput{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// ListByMonth handles GET /transactions requests with year/month query parameters.
func (c *TransactionController) ListByMonth(ctx *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	year, month, ok := parseYearMonth(ctx)
	if !ok {
		return
	}

	output, err := c.listByMonthUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsByMonthInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// parseYearMonth extracts required year and 0-based month query parameters.
// Writes the error response and returns ok=false on invalid input.
func parseYearMonth(ctx *gin.Context) (year, month int, ok bool) {
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid or missing year parameter",
		})
		return 0, 0, false
	}

	month, err = strconv.Atoi(ctx.Query("month"))
	if err != nil || month < 0 || month > 11 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Month must be between 0 and 11",
		})
		return 0, 0, false
	}

	return year, month, true
}

// handleTransactionError maps transaction errors to HTTP responses.
func handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		status := http.StatusBadRequest
		if txnErr.Code == domainerror.ErrCodeTransactionNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrTransactionNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Transaction not found",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
