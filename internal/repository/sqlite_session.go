package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/nlohrer/practice-tracker/internal/db"
	"github.com/nlohrer/practice-tracker/internal/domain"
)

// sessionColumns is the canonical SELECT column list for sessions.
const sessionColumns = `id, username, task, duration_min, date, time`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Insert(ctx context.Context, s *domain.Session) (int64, error) {
	query := `INSERT INTO sessions (username, task, duration_min, date, time)
		VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		nullableString(s.Username),
		s.Task,
		s.Duration.TotalMinutes(),
		nullableTimeToString(s.Date, domain.DateLayout),
		nullableTimeToString(s.TimeOfDay, domain.TimeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted session id: %w", err)
	}
	s.ID = id
	return id, nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSession(row)
}

// Update replaces task, duration, date and time of the session with the
// given id. Username and id are never touched by this path. A zero
// rows-affected result means the row vanished, typically because a
// concurrent delete won the race; that is reported as ErrNotFound while
// any other write failure propagates as-is.
func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.Session) error {
	query := `UPDATE sessions SET task = ?, duration_min = ?, date = ?, time = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Task,
		s.Duration.TotalMinutes(),
		nullableTimeToString(s.Date, domain.DateLayout),
		nullableTimeToString(s.TimeOfDay, domain.TimeLayout),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("session %d: %w", s.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("session %d: %w", id, ErrNotFound)
	}
	return nil
}

// List returns the sessions matching the filter. Predicates are
// conjunctive; date bounds are inclusive and exclude undated sessions once
// either bound is set. The task substring match is case-insensitive.
func (r *SQLiteSessionRepo) List(ctx context.Context, filter SessionFilter) ([]*domain.Session, error) {
	var where []string
	var args []any

	switch {
	case filter.Unassigned:
		where = append(where, `username IS NULL`)
	case filter.Username != nil:
		where = append(where, `username = ?`)
		args = append(args, *filter.Username)
	}
	if filter.TaskContains != nil {
		// instr instead of LIKE so % and _ in the search string match
		// literally; lower() gives locale-independent case folding.
		where = append(where, `instr(lower(task), lower(?)) > 0`)
		args = append(args, *filter.TaskContains)
	}
	if filter.DateFrom != nil {
		where = append(where, `date IS NOT NULL AND date >= ?`)
		args = append(args, filter.DateFrom.Format(domain.DateLayout))
	}
	if filter.DateTo != nil {
		where = append(where, `date IS NOT NULL AND date <= ?`)
		args = append(args, filter.DateTo.Format(domain.DateLayout))
	}

	query := `SELECT ` + sessionColumns + ` FROM sessions`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.Session, error) {
	var s domain.Session
	var username, dateStr, timeStr sql.NullString
	var totalMinutes int

	err := row.Scan(&s.ID, &username, &s.Task, &totalMinutes, &dateStr, &timeStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	r.populateSession(&s, username, totalMinutes, dateStr, timeStr)
	return &s, nil
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for rows.Next() {
		var s domain.Session
		var username, dateStr, timeStr sql.NullString
		var totalMinutes int

		if err := rows.Scan(&s.ID, &username, &s.Task, &totalMinutes, &dateStr, &timeStr); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}

		r.populateSession(&s, username, totalMinutes, dateStr, timeStr)
		sessions = append(sessions, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields on a Session after scanning raw
// column values.
func (r *SQLiteSessionRepo) populateSession(s *domain.Session, username sql.NullString, totalMinutes int, dateStr, timeStr sql.NullString) {
	s.Username = stringPtrFromNull(username)
	s.Duration = domain.DurationFromMinutes(totalMinutes)
	s.Date = parseNullableTime(dateStr, domain.DateLayout)
	s.TimeOfDay = parseNullableTime(timeStr, domain.TimeLayout)
}
