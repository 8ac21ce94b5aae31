package repository

import (
	"context"
	"time"

	"github.com/nlohrer/practice-tracker/internal/domain"
)

// SessionFilter narrows a session list query. All predicates are combined
// with AND; a zero-value filter matches every session.
//
// The username predicate is tri-state: when Unassigned is true only
// sessions without a username match; otherwise, when Username is non-nil
// only sessions with exactly that username match; when both are unset no
// username constraint applies. A non-nil Username never matches
// unassigned sessions.
type SessionFilter struct {
	Username     *string
	Unassigned   bool
	TaskContains *string
	DateFrom     *time.Time
	DateTo       *time.Time
}

type SessionRepo interface {
	// Insert persists a new session and returns its store-assigned id.
	Insert(ctx context.Context, s *domain.Session) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
	// Update replaces the mutable fields of the session with the given id.
	// Returns ErrNotFound when the row no longer exists, which an update
	// racing a concurrent delete must treat as the record vanishing.
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter SessionFilter) ([]*domain.Session, error)
}

type UserRepo interface {
	Insert(ctx context.Context, u *domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
