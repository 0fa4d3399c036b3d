package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/fixed"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// FixedController handles recurring template and snapshot endpoints.
// The item type (expense or income) is fixed per route group; read
// endpoints sit behind optional auth and return empty data for
// anonymous callers.
type FixedController struct {
	createUseCase    *fixed.CreateFixedItemUseCase
	deleteUseCase    *fixed.DeleteFixedItemUseCase
	listUseCase      *fixed.ListFixedItemsUseCase
	totalUseCase     *fixed.GetFixedTotalForMonthUseCase
	breakdownUseCase *fixed.GetFixedByCategoryForMonthUseCase
	ensureUseCase    *fixed.EnsurePreviousMonthSnapshotUseCase
}

// NewFixedController creates a new fixed controller instance.
func NewFixedController(
	createUseCase *fixed.CreateFixedItemUseCase,
	deleteUseCase *fixed.DeleteFixedItemUseCase,
	listUseCase *fixed.ListFixedItemsUseCase,
	totalUseCase *fixed.GetFixedTotalForMonthUseCase,
	breakdownUseCase *fixed.GetFixedByCategoryForMonthUseCase,
	ensureUseCase *fixed.EnsurePreviousMonthSnapshotUseCase,
) *FixedController {
	return &FixedController{
		createUseCase:    createUseCase,
		deleteUseCase:    deleteUseCase,
		listUseCase:      listUseCase,
		totalUseCase:     totalUseCase,
		breakdownUseCase: breakdownUseCase,
		ensureUseCase:    ensureUseCase,
	}
}

// Create handles POST /fixed/{expenses,incomes} requests.
func (c *FixedController) Create(itemType entity.FixedItemType) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "User not authenticated",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			return
		}

		var req dto.CreateFixedItemRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		output, err := c.createUseCase.Execute(ctx.Request.Context(), fixed.CreateFixedItemInput{
			UserID:       userID,
			Name:         req.Name,
			Amount:       decimal.NewFromFloat(req.Amount),
			Type:         itemType,
			CategoryName: req.CategoryName,
		})
		if err != nil {
			handleFixedError(ctx, err)
			return
		}

		ctx.JSON(http.StatusCreated, dto.ToFixedItemResponse(output.Item))
	}
}

// Delete handles DELETE /fixed/{expenses,incomes}/:id requests.
func (c *FixedController) Delete(itemType entity.FixedItemType) gin.HandlerFunc {
	return func(ctx *gin.Context) {
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
				Error: "Invalid fixed item ID",
			})
			return
		}

		if err := c.deleteUseCase.Execute(ctx.Request.Context(), fixed.DeleteFixedItemInput{
			UserID: userID,
			ID:     id,
			Type:   itemType,
		}); err != nil {
			handleFixedError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, dto.MessageResponse{
			Message: "Fixed item deleted",
		})
	}
}

// List handles GET /fixed/{expenses,incomes} requests.
func (c *FixedController) List(itemType entity.FixedItemType) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(ctx)

		output, err := c.listUseCase.Execute(ctx.Request.Context(), fixed.ListFixedItemsInput{
			UserID: userID,
			Type:   itemType,
		})
		if err != nil {
			handleFixedError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, dto.ToFixedItemListResponse(output.Items))
	}
}

// Total handles GET /fixed/{expenses,incomes}/total requests.
func (c *FixedController) Total(itemType entity.FixedItemType) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(ctx)

		year, month, ok := parseYearMonth(ctx)
		if !ok {
			return
		}

		output, err := c.totalUseCase.Execute(ctx.Request.Context(), fixed.GetFixedTotalForMonthInput{
			UserID: userID,
			Year:   year,
			Month:  month,
			Type:   itemType,
		})
		if err != nil {
			handleFixedError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, dto.FixedTotalResponse{
			Total: output.Total.InexactFloat64(),
		})
	}
}

// ByCategory handles GET /fixed/{expenses,incomes}/by-category requests.
func (c *FixedController) ByCategory(itemType entity.FixedItemType) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(ctx)

		year, month, ok := parseYearMonth(ctx)
		if !ok {
			return
		}

		output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), fixed.GetFixedByCategoryForMonthInput{
			UserID: userID,
			Year:   year,
			Month:  month,
			Type:   itemType,
		})
		if err != nil {
			handleFixedError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, dto.ToFixedBreakdownResponse(output.Groups))
	}
}

// EnsureSnapshot handles POST /fixed/ensure-snapshot requests. Called on
// every app open; anonymous callers get created=false.
func (c *FixedController) EnsureSnapshot(ctx *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	output, err := c.ensureUseCase.Execute(ctx.Request.Context(), fixed.EnsurePreviousMonthSnapshotInput{
		UserID: userID,
	})
	if err != nil {
		handleFixedError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EnsureSnapshotResponse{
		Created: output.Created,
	})
}

// handleFixedError maps fixed-item errors to HTTP responses.
func handleFixedError(ctx *gin.Context, err error) {
	var fixedErr *domainerror.FixedError
	if errors.As(err, &fixedErr) {
		status := http.StatusBadRequest
		if fixedErr.Code == domainerror.ErrCodeFixedItemNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: fixedErr.Message,
			Code:  string(fixedErr.Code),
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

	if errors.Is(err, domainerror.ErrFixedItemNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Fixed item not found",
			Code:  string(domainerror.ErrCodeFixedItemNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
