// Package postgres provides PostgreSQL implementations of the persistence
// interfaces defined in the store package. It uses the pgx driver through
// database/sql and translates driver-level errors (unique and foreign key
// violations, missing rows) into the store package's error taxonomy.
package postgres
