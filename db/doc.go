// Package db provides the database layer for folio.
// It encapsulates all interactions with the underlying SQLite database, persisting
// projects, contact submissions, hire requests, quick links and notification attempts.
//
// This package is responsible for:
//   - Establishing the database connection and applying migrations (`db.go`, `migrations/`).
//   - Defining database-specific structs that map to the SQL table schemas.
//   - Implementing the repository interfaces declared in the `domain` package.
//   - Converting between domain structs and database structs, including the use of
//     `sql.Null*` types for nullable columns.
package db
