package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByUser retrieves all categories for a user, ordered by name.
func (r *categoryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// FindByNameInsensitive retrieves a category by case-insensitive name
// match within a user. Returns nil (no error) when absent.
func (r *categoryRepository) FindByNameInsensitive(ctx context.Context, userID uuid.UUID, name string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND LOWER(name) = ?", userID, strings.ToLower(name)).
		First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}
