package contract

import (
	"fmt"

	"github.com/nlohrer/practice-tracker/internal/domain"
)

// SessionSearch carries the parameters for searching sessions. All fields
// are optional; an absent field imposes no constraint.
type SessionSearch struct {
	Task     *string `json:"task,omitempty"`
	DateFrom *string `json:"dateFrom,omitempty"`
	DateTo   *string `json:"dateTo,omitempty"`
}

// ToDomain validates the search parameters and maps them to the domain
// search shape.
func (s SessionSearch) ToDomain() (*domain.SessionSearch, *ValidationError) {
	verr := newValidationError()

	if s.Task != nil && len(*s.Task) > domain.MaxTaskLen {
		verr.add("task", fmt.Sprintf("must be at most %d characters", domain.MaxTaskLen))
	}
	dateFrom := parseOptional(s.DateFrom, domain.DateLayout, "dateFrom", verr)
	dateTo := parseOptional(s.DateTo, domain.DateLayout, "dateTo", verr)

	if v := verr.orNil(); v != nil {
		return nil, v
	}
	return &domain.SessionSearch{Task: s.Task, DateFrom: dateFrom, DateTo: dateTo}, nil
}
