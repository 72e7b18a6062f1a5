// Package harness evaluates kata case suites and reports which cases match
// their expectations.
//
// A Runner takes suites loaded by internal/casefile, evaluates every case
// against the selector, domino and zigzag katas, and compares the outcome
// with the case's expect block. Failures are reported per case; a failing
// case never stops the suite.
//
// # Journal
//
// When a journal store is attached, Check records one check row and one run
// row per case, stamped from a logical clock resumed at the journal's last
// seq. Inputs are stored as canonical JSON with a content hash so results
// for the same input can be compared across checks.
//
// # Golden Files
//
// RunWithGolden and AssertGolden snapshot a suite result as canonical JSON
// under testdata/golden/<name>.golden. To regenerate golden files, run:
//
//	go test ./internal/harness -update
package harness
