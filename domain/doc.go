// Package domain defines the records served by the folio portfolio backend.
// It contains the primary models, such as Project, ContactSubmission and HireRequest,
// as well as the repository interfaces that define the contracts for persistence.
//
// The package has no knowledge of SQL, HTTP or mail delivery. Validation of untrusted
// input happens before a value of these types is built, so a record handed to a
// repository is always complete and consistent.
package domain
