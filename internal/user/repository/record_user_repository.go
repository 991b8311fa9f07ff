// Package repository provides data persistence implementations for user entities.
package repository

import (
	"context"

	"github.com/allisson/crowdfund/internal/records"
	"github.com/allisson/crowdfund/internal/user/domain"
)

// RecordUserRepository persists the whole user set through a records.Store.
type RecordUserRepository struct {
	store *records.Store
}

// NewRecordUserRepository creates a new RecordUserRepository
func NewRecordUserRepository(store *records.Store) *RecordUserRepository {
	return &RecordUserRepository{
		store: store,
	}
}

// LoadAll returns every stored user in stored order. It never fails; unreadable data
// yields an empty set.
func (r *RecordUserRepository) LoadAll(ctx context.Context) []*domain.User {
	return r.store.LoadUsers(ctx)
}

// SaveAll replaces the stored user set.
func (r *RecordUserRepository) SaveAll(ctx context.Context, users []*domain.User) error {
	return r.store.SaveUsers(ctx, users)
}
