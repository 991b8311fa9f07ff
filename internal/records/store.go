package records

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	apperrors "github.com/allisson/crowdfund/internal/errors"
	projectDomain "github.com/allisson/crowdfund/internal/project/domain"
	userDomain "github.com/allisson/crowdfund/internal/user/domain"
)

// Store encodes record sets and persists them through a Backend.
type Store struct {
	backend Backend
	logger  *slog.Logger
}

// NewStore creates a Store on top of backend.
func NewStore(backend Backend, logger *slog.Logger) *Store {
	return &Store{backend: backend, logger: logger}
}

// LoadUsers returns the persisted user directory, or an empty one when nothing
// readable is stored.
func (s *Store) LoadUsers(ctx context.Context) []*userDomain.User {
	recs := load[UserRecord](ctx, s, KindUsers)
	users := make([]*userDomain.User, 0, len(recs))
	for _, rec := range recs {
		users = append(users, rec.ToDomain())
	}
	return users
}

// SaveUsers replaces the persisted user directory with users, passwords included.
func (s *Store) SaveUsers(ctx context.Context, users []*userDomain.User) error {
	recs := make([]UserRecord, 0, len(users))
	for _, user := range users {
		recs = append(recs, NewUserRecord(user, ProfileAuthoritative))
	}
	return save(ctx, s, KindUsers, recs)
}

// LoadProjects returns the persisted project ledger, or an empty one when nothing
// readable is stored.
func (s *Store) LoadProjects(ctx context.Context) []*projectDomain.Project {
	recs := load[ProjectRecord](ctx, s, KindProjects)
	projects := make([]*projectDomain.Project, 0, len(recs))
	for i, rec := range recs {
		projects = append(projects, rec.ToDomain(i))
	}
	return projects
}

// SaveProjects replaces the persisted project ledger with projects.
func (s *Store) SaveProjects(ctx context.Context, projects []*projectDomain.Project) error {
	recs := make([]ProjectRecord, 0, len(projects))
	for _, project := range projects {
		recs = append(recs, NewProjectRecord(project))
	}
	return save(ctx, s, KindProjects, recs)
}

func load[T any](ctx context.Context, s *Store, kind Kind) []T {
	data, err := s.backend.Read(ctx, kind)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			s.logger.Debug("record set not found, starting empty", slog.String("kind", string(kind)))
		} else {
			s.logger.Warn("failed to read record set, starting empty",
				slog.String("kind", string(kind)),
				slog.Any("error", err),
			)
		}
		return []T{}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}
	}

	var recs []T
	if err := json.Unmarshal(data, &recs); err != nil {
		s.logger.Warn("failed to decode record set, starting empty",
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
		return []T{}
	}
	if recs == nil {
		return []T{}
	}
	return recs
}

func save[T any](ctx context.Context, s *Store, kind Kind, recs []T) error {
	data, err := json.MarshalIndent(recs, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: failed to encode %s: %w", apperrors.ErrPersistence, kind, err)
	}

	if err := s.backend.Write(ctx, kind, data); err != nil {
		return fmt.Errorf("%w: failed to save %s: %w", apperrors.ErrPersistence, kind, err)
	}

	s.logger.Debug("record set saved",
		slog.String("kind", string(kind)),
		slog.Int("records", len(recs)),
	)
	return nil
}
