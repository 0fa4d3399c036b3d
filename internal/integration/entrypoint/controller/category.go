package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/category"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase         *category.ListCategoriesUseCase
	findOrCreateUseCase *category.FindOrCreateCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	findOrCreateUseCase *category.FindOrCreateCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:         listUseCase,
		findOrCreateUseCase: findOrCreateUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), category.ListCategoriesInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve categories",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// Create handles POST /categories requests. Re-posting an existing name
// returns the existing category rather than a conflict.
func (c *CategoryController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.findOrCreateUseCase.Execute(ctx.Request.Context(), category.FindOrCreateCategoryInput{
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		var catErr *domainerror.CategoryError
		if errors.As(err, &catErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: catErr.Message,
				Code:  string(catErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}
