package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		UserID:    category.UserID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
	}
}
