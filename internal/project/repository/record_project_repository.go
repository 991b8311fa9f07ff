// Package repository provides data persistence implementations for project entities.
package repository

import (
	"context"

	"github.com/allisson/crowdfund/internal/project/domain"
	"github.com/allisson/crowdfund/internal/records"
)

// RecordProjectRepository persists the whole project set through a records.Store.
type RecordProjectRepository struct {
	store *records.Store
}

// NewRecordProjectRepository creates a new RecordProjectRepository
func NewRecordProjectRepository(store *records.Store) *RecordProjectRepository {
	return &RecordProjectRepository{
		store: store,
	}
}

// LoadAll returns every stored project in stored order. Unreadable data yields an
// empty set.
func (r *RecordProjectRepository) LoadAll(ctx context.Context) []*domain.Project {
	return r.store.LoadProjects(ctx)
}

// SaveAll replaces the stored project set.
func (r *RecordProjectRepository) SaveAll(ctx context.Context, projects []*domain.Project) error {
	return r.store.SaveProjects(ctx, projects)
}
