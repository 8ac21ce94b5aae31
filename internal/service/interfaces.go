package service

import (
	"context"
	"errors"

	"github.com/nlohrer/practice-tracker/internal/contract"
)

// ErrMissingUsername is returned when a use case that requires a username
// is called without one. It is a caller error distinct from not-found.
var ErrMissingUsername = errors.New("username is required")

type SessionService interface {
	// List returns the sessions owned by the given username, or the
	// unassigned sessions when username is nil. A nil username is not a
	// wildcard.
	List(ctx context.Context, username *string) ([]contract.SessionResponse, error)
	Get(ctx context.Context, id int64) (*contract.SessionResponse, error)
	// Create validates the representation, assigns the optional username
	// and persists the session, returning it with its assigned id.
	Create(ctx context.Context, req contract.Session, username *string) (*contract.SessionResponse, error)
	// Update replaces task, duration, date and time of the session with
	// the given id. The username and id are never modified.
	Update(ctx context.Context, id int64, req contract.Session) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, req contract.SessionSearch) ([]contract.Session, error)
	// Summarize aggregates the named user's sessions. An unknown username
	// yields the zero summary, indistinguishable from a known user with no
	// sessions.
	Summarize(ctx context.Context, username string) (contract.SessionSummary, error)
}

type UserService interface {
	Create(ctx context.Context, req contract.User) (*contract.User, error)
	GetByID(ctx context.Context, id int64) (*contract.User, error)
	List(ctx context.Context) ([]contract.User, error)
	Delete(ctx context.Context, id int64) error
}
