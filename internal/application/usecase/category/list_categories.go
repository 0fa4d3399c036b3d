package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	UserID uuid.UUID
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles listing a user's categories.
type ListCategoriesUseCase struct {
	categoryRepository adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepository adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepository: categoryRepository,
	}
}

// Execute returns all categories for the user, ordered by name.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	if input.UserID == uuid.Nil {
		return &ListCategoriesOutput{Categories: []*entity.Category{}}, nil
	}

	categories, err := uc.categoryRepository.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &ListCategoriesOutput{Categories: categories}, nil
}
