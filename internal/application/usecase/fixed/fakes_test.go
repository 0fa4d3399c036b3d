package fixed

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type fakeFixedRepo struct {
	items       map[entity.FixedItemType][]*entity.FixedItem
	entries     map[entity.FixedItemType][]adapter.FixedEntry
	findErr     error
	entriesErr  error
	createCalls int
}

func newFakeFixedRepo() *fakeFixedRepo {
	return &fakeFixedRepo{
		items:   make(map[entity.FixedItemType][]*entity.FixedItem),
		entries: make(map[entity.FixedItemType][]adapter.FixedEntry),
	}
}

func (r *fakeFixedRepo) Create(ctx context.Context, item *entity.FixedItem) error {
	r.createCalls++
	r.items[item.Type] = append(r.items[item.Type], item)
	return nil
}

func (r *fakeFixedRepo) Delete(ctx context.Context, itemType entity.FixedItemType, id, userID uuid.UUID) error {
	return nil
}

func (r *fakeFixedRepo) FindByUser(ctx context.Context, itemType entity.FixedItemType, userID uuid.UUID) ([]*entity.FixedItem, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.items[itemType], nil
}

func (r *fakeFixedRepo) FindByUserWithCategory(ctx context.Context, itemType entity.FixedItemType, userID uuid.UUID) ([]*entity.FixedItemWithCategory, error) {
	return nil, nil
}

func (r *fakeFixedRepo) FindEntriesByUser(ctx context.Context, itemType entity.FixedItemType, userID uuid.UUID) ([]adapter.FixedEntry, error) {
	if r.entriesErr != nil {
		return nil, r.entriesErr
	}
	return r.entries[itemType], nil
}

type snapshotKey struct {
	userID uuid.UUID
	year   int
	month  int
}

type fakeSnapshotRepo struct {
	stored      map[snapshotKey][]*entity.SnapshotEntry
	existsErr   error
	createErr   error
	createCalls int
}

func newFakeSnapshotRepo() *fakeSnapshotRepo {
	return &fakeSnapshotRepo{stored: make(map[snapshotKey][]*entity.SnapshotEntry)}
}

func (r *fakeSnapshotRepo) ExistsForMonth(ctx context.Context, userID uuid.UUID, year, month int) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	_, ok := r.stored[snapshotKey{userID, year, month}]
	return ok, nil
}

func (r *fakeSnapshotRepo) CreateForMonth(ctx context.Context, userID uuid.UUID, year, month int, entries []*entity.SnapshotEntry) error {
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}
	r.stored[snapshotKey{userID, year, month}] = entries
	return nil
}

func (r *fakeSnapshotRepo) FindEntriesForMonth(ctx context.Context, userID uuid.UUID, year, month int, itemType entity.FixedItemType) ([]adapter.FixedEntry, error) {
	var out []adapter.FixedEntry
	for _, e := range r.stored[snapshotKey{userID, year, month}] {
		if e.Type == itemType {
			out = append(out, adapter.FixedEntry{Name: e.Name, Amount: e.Amount})
		}
	}
	return out, nil
}
