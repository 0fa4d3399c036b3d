package category

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

type fakeCategoryRepo struct {
	byLowerName map[string]*entity.Category
	created     []*entity.Category
	all         []*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byLowerName: make(map[string]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	r.created = append(r.created, c)
	r.byLowerName[strings.ToLower(c.Name)] = c
	return nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return nil, nil
}

func (r *fakeCategoryRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	return r.all, nil
}

func (r *fakeCategoryRepo) FindByNameInsensitive(ctx context.Context, userID uuid.UUID, name string) (*entity.Category, error) {
	return r.byLowerName[strings.ToLower(name)], nil
}

func TestFindOrCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the existing category on a case-insensitive match", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		existing := entity.NewCategory(uuid.New(), "Food")
		repo.byLowerName["food"] = existing
		uc := NewFindOrCreateCategoryUseCase(repo)

		output, err := uc.Execute(ctx, FindOrCreateCategoryInput{UserID: existing.UserID, Name: "FOOD"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.ID != existing.ID {
			t.Error("expected the existing category to be returned")
		}
		if output.Category.Name != "Food" {
			t.Errorf("expected the stored casing Food, got %s", output.Category.Name)
		}
		if len(repo.created) != 0 {
			t.Errorf("expected no creation, got %d", len(repo.created))
		}
	})

	t.Run("creates the category when absent", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		uc := NewFindOrCreateCategoryUseCase(repo)

		output, err := uc.Execute(ctx, FindOrCreateCategoryInput{UserID: uuid.New(), Name: "  Travel  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.created) != 1 {
			t.Fatalf("expected 1 creation, got %d", len(repo.created))
		}
		if output.Category.Name != "Travel" {
			t.Errorf("expected trimmed name Travel, got %q", output.Category.Name)
		}
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		uc := NewFindOrCreateCategoryUseCase(newFakeCategoryRepo())

		_, err := uc.Execute(ctx, FindOrCreateCategoryInput{UserID: uuid.New(), Name: "   "})
		if err == nil {
			t.Fatal("expected an error for a blank name")
		}
		var catErr *domainerror.CategoryError
		if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeCategoryNameEmpty {
			t.Errorf("expected code %s, got %v", domainerror.ErrCodeCategoryNameEmpty, err)
		}
	})

	t.Run("rejects a name over 100 characters", func(t *testing.T) {
		uc := NewFindOrCreateCategoryUseCase(newFakeCategoryRepo())

		_, err := uc.Execute(ctx, FindOrCreateCategoryInput{UserID: uuid.New(), Name: strings.Repeat("x", 101)})
		if err == nil {
			t.Fatal("expected an error for an overlong name")
		}
		var catErr *domainerror.CategoryError
		if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeCategoryNameTooLong {
			t.Errorf("expected code %s, got %v", domainerror.ErrCodeCategoryNameTooLong, err)
		}
	})
}

func TestListCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("lists the user's categories", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		userID := uuid.New()
		repo.all = []*entity.Category{
			entity.NewCategory(userID, "Food"),
			entity.NewCategory(userID, "Travel"),
		}
		uc := NewListCategoriesUseCase(repo)

		output, err := uc.Execute(ctx, ListCategoriesInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Categories) != 2 {
			t.Errorf("expected 2 categories, got %d", len(output.Categories))
		}
	})

	t.Run("anonymous caller gets an empty list", func(t *testing.T) {
		uc := NewListCategoriesUseCase(newFakeCategoryRepo())

		output, err := uc.Execute(ctx, ListCategoriesInput{UserID: uuid.Nil})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Categories) != 0 {
			t.Errorf("expected empty list, got %d", len(output.Categories))
		}
	})
}
