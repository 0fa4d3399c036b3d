// Package fixed contains use cases for the recurring template and its
// monthly snapshots.
package fixed

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// CreateFixedItemInput represents the input for creating a template line.
type CreateFixedItemInput struct {
	UserID       uuid.UUID
	Name         string
	Amount       decimal.Decimal
	Type         entity.FixedItemType
	CategoryName string
}

// CreateFixedItemOutput represents the output of creating a template line.
type CreateFixedItemOutput struct {
	Item *entity.FixedItem
}

// CreateFixedItemUseCase adds a line to the live recurring template.
// The change affects the current month immediately; frozen months are
// untouched.
type CreateFixedItemUseCase struct {
	fixedRepo    adapter.FixedItemRepository
	findOrCreate *category.FindOrCreateCategoryUseCase
}

// NewCreateFixedItemUseCase creates a new CreateFixedItemUseCase instance.
func NewCreateFixedItemUseCase(
	fixedRepo adapter.FixedItemRepository,
	findOrCreate *category.FindOrCreateCategoryUseCase,
) *CreateFixedItemUseCase {
	return &CreateFixedItemUseCase{
		fixedRepo:    fixedRepo,
		findOrCreate: findOrCreate,
	}
}

// Execute validates and persists a new template line, resolving its
// category by name.
func (uc *CreateFixedItemUseCase) Execute(ctx context.Context, input CreateFixedItemInput) (*CreateFixedItemOutput, error) {
	if input.Type != entity.FixedItemTypeExpense && input.Type != entity.FixedItemTypeIncome {
		return nil, domainerror.NewFixedError(
			domainerror.ErrCodeInvalidFixedItemType,
			"fixed item type must be expense or income",
			domainerror.ErrInvalidFixedItemType,
		)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewFixedError(
			domainerror.ErrCodeFixedItemNameEmpty,
			"fixed item name cannot be empty",
			domainerror.ErrFixedItemNameEmpty,
		)
	}

	categoryOut, err := uc.findOrCreate.Execute(ctx, category.FindOrCreateCategoryInput{
		UserID: input.UserID,
		Name:   input.CategoryName,
	})
	if err != nil {
		return nil, err
	}

	item := entity.NewFixedItem(input.UserID, name, input.Amount, input.Type, categoryOut.Category.ID)
	if err := uc.fixedRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create fixed item: %w", err)
	}

	return &CreateFixedItemOutput{Item: item}, nil
}
