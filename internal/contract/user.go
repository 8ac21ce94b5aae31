package contract

import (
	"fmt"

	"github.com/nlohrer/practice-tracker/internal/domain"
)

// User is the wire representation of a user account.
type User struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Group    *string `json:"group,omitempty"`
}

// ToDomain validates the representation and maps it to a domain user. The
// id field is ignored on input.
func (u User) ToDomain() (*domain.User, *ValidationError) {
	verr := newValidationError()

	if u.Username == "" {
		verr.add("username", "username is required")
	} else if len(u.Username) > domain.MaxUsernameLen {
		verr.add("username", fmt.Sprintf("must be at most %d characters", domain.MaxUsernameLen))
	}
	if u.Group != nil && len(*u.Group) > domain.MaxUsernameLen {
		verr.add("group", fmt.Sprintf("must be at most %d characters", domain.MaxUsernameLen))
	}

	if v := verr.orNil(); v != nil {
		return nil, v
	}
	return &domain.User{Username: u.Username, Group: u.Group}, nil
}

// UserFromDomain maps a domain user to its wire representation.
func UserFromDomain(u *domain.User) User {
	return User{ID: u.ID, Username: u.Username, Group: u.Group}
}
