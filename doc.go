// Package kassa provides the core types and operations for running a small
// single-location food stand: a point of sale, an expense tracker and the
// shift accounting that ties them together. It is designed to be
// local-first and auditable, so the operator keeps full control over the
// business data.
//
// The core functionalities include:
//   - Ledger Management: Recording sales and expenses in append-only
//     collections where corrections are soft-deletes, never edits, so the
//     full history stays reviewable.
//   - Shift Accounting: A stateless engine that derives revenue, expenses,
//     profit, category breakdowns and inventory movement for the open
//     shift, and archives an immutable Z-report snapshot when the shift is
//     closed.
//   - Command Intent Resolution: Turning untrusted, loosely structured
//     assistant replies into fully normalized ledger actions that are held
//     for explicit confirmation before anything is applied.
//   - Data Persistence: Encoding and decoding the business data to and
//     from human-readable JSONL records that degrade independently.
//
// This package serves as the foundational logic for the `kass`
// command-line tool, ensuring that all operations are consistent and based
// on a single source of truth.
package kassa
