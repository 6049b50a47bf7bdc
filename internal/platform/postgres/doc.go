// Package postgres implements the store interfaces against PostgreSQL,
// accessed through database/sql with the pgx driver.
package postgres
