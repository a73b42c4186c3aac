// Package document holds the pure operations on a version document:
// schema validation, filtering, pagination, record mutations and export.
//
// Every mutation returns a new Document and leaves its input untouched, so
// callers can keep the previous value when an operation fails.
package document
