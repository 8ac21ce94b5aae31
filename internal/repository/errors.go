package repository

import "errors"

// ErrNotFound is returned when a lookup, update or delete targets a record
// that does not exist. Callers test for it with errors.Is; repositories wrap
// it with the entity name for context.
var ErrNotFound = errors.New("not found")
