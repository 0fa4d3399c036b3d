// Package category contains use cases for category management.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

const maxCategoryNameLength = 100

// FindOrCreateCategoryInput represents the input for finding or creating a category.
type FindOrCreateCategoryInput struct {
	UserID uuid.UUID
	Name   string
}

// FindOrCreateCategoryOutput represents the output of finding or creating a category.
type FindOrCreateCategoryOutput struct {
	Category *entity.Category
}

// FindOrCreateCategoryUseCase resolves a category by name, creating it
// when absent. The lookup is case-insensitive so "food" and "Food"
// resolve to the same category; the stored name keeps the casing of
// whoever created it first.
type FindOrCreateCategoryUseCase struct {
	categoryRepository adapter.CategoryRepository
}

// NewFindOrCreateCategoryUseCase creates a new FindOrCreateCategoryUseCase instance.
func NewFindOrCreateCategoryUseCase(categoryRepository adapter.CategoryRepository) *FindOrCreateCategoryUseCase {
	return &FindOrCreateCategoryUseCase{
		categoryRepository: categoryRepository,
	}
}

// Execute finds an existing category by case-insensitive name or creates one.
func (uc *FindOrCreateCategoryUseCase) Execute(ctx context.Context, input FindOrCreateCategoryInput) (*FindOrCreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameEmpty,
			"category name cannot be empty",
			domainerror.ErrCategoryNameEmpty,
		)
	}
	if len(name) > maxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name cannot exceed %d characters", maxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}

	existing, err := uc.categoryRepository.FindByNameInsensitive(ctx, input.UserID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}
	if existing != nil {
		return &FindOrCreateCategoryOutput{Category: existing}, nil
	}

	category := entity.NewCategory(input.UserID, name)
	if err := uc.categoryRepository.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &FindOrCreateCategoryOutput{Category: category}, nil
}
