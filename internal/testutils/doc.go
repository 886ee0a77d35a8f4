// Package testutils provides shared helpers for tests, most notably
// in-memory implementations of the persistence interfaces so service and
// handler tests run without a database.
package testutils
