package service

import (
	"context"
	"time"

	"github.com/nlohrer/practice-tracker/internal/contract"
	"github.com/nlohrer/practice-tracker/internal/repository"
	"github.com/nlohrer/practice-tracker/internal/summary"
)

type sessionService struct {
	sessions repository.SessionRepo
	observer UseCaseObserver
}

// NewSessionService creates the session use cases on top of the given
// repository. An optional observer receives execution telemetry.
func NewSessionService(sessions repository.SessionRepo, observers ...UseCaseObserver) SessionService {
	return &sessionService{
		sessions: sessions,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *sessionService) observe(ctx context.Context, name string, start time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     name,
		Duration: time.Since(start),
		Err:      err,
		Fields:   fields,
	})
}

func (s *sessionService) List(ctx context.Context, username *string) (result []contract.SessionResponse, err error) {
	start := time.Now()
	defer func() { s.observe(ctx, "session.list", start, err, nil) }()

	// Absence of the username parameter selects the unassigned bucket,
	// never every session.
	filter := repository.SessionFilter{Username: username, Unassigned: username == nil}
	sessions, err := s.sessions.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result = make([]contract.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, contract.ResponseFromDomain(session))
	}
	return result, nil
}

func (s *sessionService) Get(ctx context.Context, id int64) (*contract.SessionResponse, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := contract.ResponseFromDomain(session)
	return &resp, nil
}

func (s *sessionService) Create(ctx context.Context, req contract.Session, username *string) (result *contract.SessionResponse, err error) {
	start := time.Now()
	defer func() { s.observe(ctx, "session.create", start, err, nil) }()

	session, verr := req.ToDomain(username)
	if verr != nil {
		return nil, verr
	}
	if _, err = s.sessions.Insert(ctx, session); err != nil {
		return nil, err
	}
	resp := contract.ResponseFromDomain(session)
	return &resp, nil
}

func (s *sessionService) Update(ctx context.Context, id int64, req contract.Session) (err error) {
	start := time.Now()
	defer func() { s.observe(ctx, "session.update", start, err, map[string]any{"id": id}) }()

	existing, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return err
	}

	replacement, verr := req.ToDomain(nil)
	if verr != nil {
		return verr
	}
	// Only task, duration, date and time are replaceable; identity and
	// ownership stay as read.
	replacement.ID = existing.ID
	replacement.Username = existing.Username

	// The row may have vanished between the read above and this write;
	// the repository reports that as ErrNotFound.
	return s.sessions.Update(ctx, replacement)
}

func (s *sessionService) Delete(ctx context.Context, id int64) (err error) {
	start := time.Now()
	defer func() { s.observe(ctx, "session.delete", start, err, map[string]any{"id": id}) }()

	return s.sessions.Delete(ctx, id)
}

func (s *sessionService) Search(ctx context.Context, req contract.SessionSearch) (result []contract.Session, err error) {
	start := time.Now()
	defer func() { s.observe(ctx, "session.search", start, err, nil) }()

	search, verr := req.ToDomain()
	if verr != nil {
		return nil, verr
	}

	filter := repository.SessionFilter{
		TaskContains: search.Task,
		DateFrom:     search.DateFrom,
		DateTo:       search.DateTo,
	}
	sessions, err := s.sessions.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result = make([]contract.Session, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, contract.SessionFromDomain(session))
	}
	return result, nil
}

func (s *sessionService) Summarize(ctx context.Context, username string) (result contract.SessionSummary, err error) {
	start := time.Now()
	defer func() { s.observe(ctx, "session.summarize", start, err, map[string]any{"username": username}) }()

	if username == "" {
		return contract.SessionSummary{}, ErrMissingUsername
	}

	sessions, err := s.sessions.List(ctx, repository.SessionFilter{Username: &username})
	if err != nil {
		return contract.SessionSummary{}, err
	}
	return contract.SummaryFromDomain(summary.Summarize(sessions)), nil
}
