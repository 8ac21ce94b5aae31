package service

import (
	"context"
	"time"

	"github.com/nlohrer/practice-tracker/internal/contract"
	"github.com/nlohrer/practice-tracker/internal/repository"
)

type userService struct {
	users    repository.UserRepo
	observer UseCaseObserver
}

// NewUserService creates the user-account use cases on top of the given
// repository. An optional observer receives execution telemetry.
func NewUserService(users repository.UserRepo, observers ...UseCaseObserver) UserService {
	return &userService{
		users:    users,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *userService) observe(ctx context.Context, name string, start time.Time, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     name,
		Duration: time.Since(start),
		Err:      err,
	})
}

func (s *userService) Create(ctx context.Context, req contract.User) (result *contract.User, err error) {
	start := time.Now()
	defer func() { s.observe(ctx, "user.create", start, err) }()

	user, verr := req.ToDomain()
	if verr != nil {
		return nil, verr
	}
	if _, err = s.users.Insert(ctx, user); err != nil {
		return nil, err
	}
	resp := contract.UserFromDomain(user)
	return &resp, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*contract.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := contract.UserFromDomain(user)
	return &resp, nil
}

func (s *userService) List(ctx context.Context) ([]contract.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]contract.User, 0, len(users))
	for _, user := range users {
		result = append(result, contract.UserFromDomain(user))
	}
	return result, nil
}

func (s *userService) Delete(ctx context.Context, id int64) (err error) {
	start := time.Now()
	defer func() { s.observe(ctx, "user.delete", start, err) }()

	return s.users.Delete(ctx, id)
}
