package store

import (
	"context"
	"database/sql"
	"fmt"
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// WriteCheck inserts a check record.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - duplicate IDs are silently ignored.
func (s *Store) WriteCheck(ctx context.Context, c Check) error {
	return writeCheck(ctx, s.db, c)
}

// WriteRun inserts a run record.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - duplicate IDs are silently ignored.
// Other constraint violations (unknown check, reused seq) still return errors.
func (s *Store) WriteRun(ctx context.Context, r Run) error {
	return writeRun(ctx, s.db, r)
}

// WriteCheckWithRuns inserts a check and all of its runs in one transaction.
// Either every row is committed or none is.
func (s *Store) WriteCheckWithRuns(ctx context.Context, c Check, runs []Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write check %s: begin tx: %w", c.ID, err)
	}
	defer tx.Rollback() // No-op if committed

	if err := writeCheck(ctx, tx, c); err != nil {
		return err
	}
	for _, r := range runs {
		if err := writeRun(ctx, tx, r); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write check %s: commit: %w", c.ID, err)
	}
	return nil
}

func writeCheck(ctx context.Context, ex execer, c Check) error {
	_, err := ex.ExecContext(ctx, `
		INSERT INTO checks (id, seq, source, filter, started_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		c.ID,
		c.Seq,
		c.Source,
		c.Filter,
		formatTime(c.StartedAt),
	)
	if err != nil {
		return fmt.Errorf("write check: %w", err)
	}
	return nil
}

func writeRun(ctx context.Context, ex execer, r Run) error {
	if len(r.Input) == 0 {
		return fmt.Errorf("write run %s: input is required", r.ID)
	}

	pass := 0
	if r.Pass {
		pass = 1
	}

	_, err := ex.ExecContext(ctx, `
		INSERT INTO runs
		(id, check_id, seq, suite, case_name, kind, input_hash, input, output, error_kind, pass, message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		r.ID,
		r.CheckID,
		r.Seq,
		r.Suite,
		r.Case,
		r.Kind,
		r.InputHash,
		string(r.Input),
		rawOrNull(r.Output),
		r.ErrorKind,
		pass,
		r.Message,
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}
