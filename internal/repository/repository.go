// Package repository handles all interactions with the database.
//
// It contains the SQL for every directory table and the methods to fetch,
// persist or delete rows, abstracting SQL away from the service layer.
//
// Queries are built with goqu using the postgres dialect in prepared mode,
// so every value travels as a $n argument to pgx rather than being
// interpolated into the SQL text.
//
// Lookups that find nothing return (nil, nil). Writes that target a row
// that is gone return an error wrapping pgx.ErrNoRows with a "table:<name>:"
// prefix, which sqlerr.HandleError turns into a 404.
package repository

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5"
)

var psql = goqu.Dialect("postgres")

// sqlBuilder is implemented by every goqu dataset.
type sqlBuilder interface {
	ToSQL() (string, []any, error)
}

// build renders a goqu dataset, naming the operation on failure.
func build(op string, b sqlBuilder) (string, []any, error) {
	query, args, err := b.ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build %s query: %w", op, err)
	}
	return query, args, nil
}

// notFound is returned by writes whose target row does not exist.
func notFound(table string) error {
	return fmt.Errorf("table:%s: %w", table, pgx.ErrNoRows)
}
