package domain

import "fmt"

// User is a bare account record: a name plus an optional primary group.
type User struct {
	ID       int64
	Username string
	Group    *string
}

// Validate checks the username is present and both strings are within length.
func (u *User) Validate() error {
	if u.Username == "" {
		return fmt.Errorf("username is required")
	}
	if len(u.Username) > MaxUsernameLen {
		return fmt.Errorf("username must be at most %d characters, got %d", MaxUsernameLen, len(u.Username))
	}
	if u.Group != nil && len(*u.Group) > MaxUsernameLen {
		return fmt.Errorf("group must be at most %d characters, got %d", MaxUsernameLen, len(*u.Group))
	}
	return nil
}
