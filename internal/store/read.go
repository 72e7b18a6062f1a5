package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ReadCheck returns one check by ID.
func (s *Store) ReadCheck(ctx context.Context, id string) (Check, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seq, source, filter, started_at
		FROM checks
		WHERE id = ?
	`, id)

	var (
		c       Check
		started string
	)
	if err := row.Scan(&c.ID, &c.Seq, &c.Source, &c.Filter, &started); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Check{}, fmt.Errorf("check %s: %w", id, ErrNotFound)
		}
		return Check{}, fmt.Errorf("read check: %w", err)
	}
	t, err := parseTime(started)
	if err != nil {
		return Check{}, err
	}
	c.StartedAt = t
	return c, nil
}

// ListChecks returns checks with their pass/fail counts, most recent first.
// limit <= 0 returns all checks.
//
// Returns an empty slice (not nil) if the journal is empty.
func (s *Store) ListChecks(ctx context.Context, limit int) ([]CheckSummary, error) {
	query := `
		SELECT c.id, c.seq, c.source, c.filter, c.started_at,
			COALESCE(SUM(r.pass), 0),
			COALESCE(SUM(1 - r.pass), 0)
		FROM checks c
		LEFT JOIN runs r ON r.check_id = c.id
		GROUP BY c.id
		ORDER BY c.seq DESC, c.id COLLATE BINARY ASC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query checks: %w", err)
	}
	defer rows.Close()

	checks := []CheckSummary{}
	for rows.Next() {
		var (
			cs      CheckSummary
			started string
		)
		if err := rows.Scan(&cs.ID, &cs.Seq, &cs.Source, &cs.Filter, &started, &cs.Passed, &cs.Failed); err != nil {
			return nil, fmt.Errorf("scan check: %w", err)
		}
		if cs.StartedAt, err = parseTime(started); err != nil {
			return nil, err
		}
		checks = append(checks, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checks: %w", err)
	}
	return checks, nil
}

// ListRuns returns runs matching f.
// Results are ordered deterministically: ORDER BY seq ASC, id ASC COLLATE BINARY.
//
// Returns an empty slice (not nil) if nothing matches.
func (s *Store) ListRuns(ctx context.Context, f RunFilter) ([]Run, error) {
	var (
		where []string
		args  []any
	)
	if f.CheckID != "" {
		where = append(where, "check_id = ?")
		args = append(args, f.CheckID)
	}
	if f.Suite != "" {
		where = append(where, "suite = ?")
		args = append(args, f.Suite)
	}
	if f.InputHash != "" {
		where = append(where, "input_hash = ?")
		args = append(args, f.InputHash)
	}
	if f.FailedOnly {
		where = append(where, "pass = 0")
	}

	query := `
		SELECT id, check_id, seq, suite, case_name, kind, input_hash, input, output, error_kind, pass, message
		FROM runs`
	if len(where) > 0 {
		query += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	query += "\n\t\tORDER BY seq ASC, id COLLATE BINARY ASC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

func scanRun(rows *sql.Rows) (Run, error) {
	var (
		r             Run
		input, output string
		pass          int
	)
	err := rows.Scan(
		&r.ID, &r.CheckID, &r.Seq, &r.Suite, &r.Case, &r.Kind,
		&r.InputHash, &input, &output, &r.ErrorKind, &pass, &r.Message,
	)
	if err != nil {
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	r.Input = json.RawMessage(input)
	r.Output = json.RawMessage(output)
	r.Pass = pass == 1
	return r, nil
}
