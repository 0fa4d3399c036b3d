package fixed

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// DeleteFixedItemInput represents the input for deleting a template line.
type DeleteFixedItemInput struct {
	UserID uuid.UUID
	ID     uuid.UUID
	Type   entity.FixedItemType
}

// DeleteFixedItemUseCase removes a line from the live recurring
// template. Snapshots taken before the deletion keep the line; that is
// the point of freezing.
type DeleteFixedItemUseCase struct {
	fixedRepo adapter.FixedItemRepository
}

// NewDeleteFixedItemUseCase creates a new DeleteFixedItemUseCase instance.
func NewDeleteFixedItemUseCase(fixedRepo adapter.FixedItemRepository) *DeleteFixedItemUseCase {
	return &DeleteFixedItemUseCase{
		fixedRepo: fixedRepo,
	}
}

// Execute deletes a template line owned by the user.
func (uc *DeleteFixedItemUseCase) Execute(ctx context.Context, input DeleteFixedItemInput) error {
	if err := uc.fixedRepo.Delete(ctx, input.Type, input.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete fixed item: %w", err)
	}
	return nil
}
