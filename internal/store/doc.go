// Package store provides a SQLite-backed journal of kata check runs.
//
// The journal is append-only:
//   - Checks: one row per `katas check` invocation
//   - Runs: one row per evaluated case, linked to its check
//
// # Ordering
//
// Every row carries a seq from a logical clock. Queries order by
// seq ASC, id ASC COLLATE BINARY so listings are identical across
// machines regardless of wall time.
//
// # Content Addressing
//
// Case inputs are stored as canonical JSON together with a domain-separated
// SHA-256 hash (see internal/canon), so the same input always produces the
// same input_hash and runs of one case can be compared across checks.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Runs must reference an existing check
package store
