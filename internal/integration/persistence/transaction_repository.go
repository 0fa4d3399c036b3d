package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// transactionRow is the joined row shape for transaction listings.
type transactionRow struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Amount       decimal.Decimal
	Type         string
	CategoryID   uuid.UUID
	CreatedAt    time.Time
	CategoryName string
}

func (row transactionRow) toEntityWithCategory() *entity.TransactionWithCategory {
	return &entity.TransactionWithCategory{
		Transaction: &entity.Transaction{
			ID:         row.ID,
			UserID:     row.UserID,
			Amount:     row.Amount,
			Type:       entity.TransactionType(row.Type),
			CategoryID: row.CategoryID,
			CreatedAt:  row.CreatedAt,
		},
		CategoryName: row.CategoryName,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindRecentByUser retrieves the most recent transactions for a user,
// joined with category names, newest first.
func (r *transactionRepository) FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.TransactionWithCategory, error) {
	var rows []transactionRow
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("transactions.id, transactions.user_id, transactions.amount, transactions.type, transactions.category_id, transactions.created_at, categories.name AS category_name").
		Joins("INNER JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ?", userID).
		Order("transactions.created_at DESC").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithCategory, len(rows))
	for i, row := range rows {
		transactions[i] = row.toEntityWithCategory()
	}
	return transactions, nil
}

// FindByUserAndRange retrieves transactions with created_at in
// [start, end), joined with category names, newest first.
func (r *transactionRepository) FindByUserAndRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.TransactionWithCategory, error) {
	var rows []transactionRow
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("transactions.id, transactions.user_id, transactions.amount, transactions.type, transactions.category_id, transactions.created_at, categories.name AS category_name").
		Joins("INNER JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.created_at >= ? AND transactions.created_at < ?", userID, start, end).
		Order("transactions.created_at DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithCategory, len(rows))
	for i, row := range rows {
		transactions[i] = row.toEntityWithCategory()
	}
	return transactions, nil
}

// Delete removes a transaction, scoped to the owning user.
func (r *transactionRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.TransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}
