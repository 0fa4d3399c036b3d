package fixed

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ListFixedItemsInput represents the input for listing template lines.
type ListFixedItemsInput struct {
	UserID uuid.UUID
	Type   entity.FixedItemType
}

// ListFixedItemsOutput represents the output of listing template lines.
type ListFixedItemsOutput struct {
	Items []*entity.FixedItemWithCategory
}

// ListFixedItemsUseCase lists the live template lines of one type with
// their category names.
type ListFixedItemsUseCase struct {
	fixedRepo adapter.FixedItemRepository
}

// NewListFixedItemsUseCase creates a new ListFixedItemsUseCase instance.
func NewListFixedItemsUseCase(fixedRepo adapter.FixedItemRepository) *ListFixedItemsUseCase {
	return &ListFixedItemsUseCase{
		fixedRepo: fixedRepo,
	}
}

// Execute returns the user's template lines of the given type.
func (uc *ListFixedItemsUseCase) Execute(ctx context.Context, input ListFixedItemsInput) (*ListFixedItemsOutput, error) {
	if input.UserID == uuid.Nil {
		return &ListFixedItemsOutput{Items: []*entity.FixedItemWithCategory{}}, nil
	}

	items, err := uc.fixedRepo.FindByUserWithCategory(ctx, input.Type, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed items: %w", err)
	}

	return &ListFixedItemsOutput{Items: items}, nil
}
