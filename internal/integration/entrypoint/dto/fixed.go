package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/application/usecase/fixed"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateFixedItemRequest represents the request body for creating a template line.
type CreateFixedItemRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=255"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	CategoryName string  `json:"category_name" binding:"required,min=1,max=100"`
}

// FixedItemResponse represents a single template line in API responses.
type FixedItemResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Amount       float64   `json:"amount"`
	CategoryName string    `json:"category_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// FixedItemListResponse represents the response for listing template lines.
type FixedItemListResponse struct {
	Items []FixedItemResponse `json:"items"`
}

// FixedTotalResponse represents the response for the monthly total query.
type FixedTotalResponse struct {
	Total float64 `json:"total"`
}

// FixedItemDetailResponse is one named amount inside a breakdown group.
type FixedItemDetailResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// FixedCategoryGroupResponse is one category group in the breakdown.
type FixedCategoryGroupResponse struct {
	Name  string                    `json:"name"`
	Value float64                   `json:"value"`
	Items []FixedItemDetailResponse `json:"items"`
}

// FixedBreakdownResponse represents the response for the monthly breakdown query.
type FixedBreakdownResponse struct {
	Groups []FixedCategoryGroupResponse `json:"groups"`
}

// EnsureSnapshotResponse represents the response for the ensure-snapshot call.
type EnsureSnapshotResponse struct {
	Created bool `json:"created"`
}

// ToFixedItemResponse converts a domain FixedItem entity to a FixedItemResponse DTO.
func ToFixedItemResponse(item *entity.FixedItem) FixedItemResponse {
	return FixedItemResponse{
		ID:        item.ID.String(),
		Name:      item.Name,
		Amount:    item.Amount.InexactFloat64(),
		CreatedAt: item.CreatedAt,
	}
}

// ToFixedItemListResponse converts joined template lines to a FixedItemListResponse.
func ToFixedItemListResponse(items []*entity.FixedItemWithCategory) FixedItemListResponse {
	responses := make([]FixedItemResponse, len(items))
	for i, it := range items {
		responses[i] = FixedItemResponse{
			ID:           it.Item.ID.String(),
			Name:         it.Item.Name,
			Amount:       it.Item.Amount.InexactFloat64(),
			CategoryName: it.CategoryName,
			CreatedAt:    it.Item.CreatedAt,
		}
	}
	return FixedItemListResponse{Items: responses}
}

// ToFixedBreakdownResponse converts category groups to a FixedBreakdownResponse.
func ToFixedBreakdownResponse(groups []fixed.CategoryGroup) FixedBreakdownResponse {
	responses := make([]FixedCategoryGroupResponse, len(groups))
	for i, g := range groups {
		items := make([]FixedItemDetailResponse, len(g.Items))
		for j, item := range g.Items {
			items[j] = FixedItemDetailResponse{
				Name:  item.Name,
				Value: item.Value.InexactFloat64(),
			}
		}
		responses[i] = FixedCategoryGroupResponse{
			Name:  g.Name,
			Value: g.Value.InexactFloat64(),
			Items: items,
		}
	}
	return FixedBreakdownResponse{Groups: responses}
}
