package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// sqlxIn expands an IN (?) query and rebinds it for the active driver.
func sqlxIn(query string, args ...interface{}) (string, []interface{}, error) {
	q, a, err := sqlx.In(query, args...)
	if err != nil {
		return "", nil, fmt.Errorf("failed to expand query: %v", err)
	}
	return DB.Rebind(q), a, nil
}

// insertReturningID runs an INSERT and reports the new row id. lib/pq does
// not implement LastInsertId, so the postgres path asks for the id back with
// RETURNING instead. query must already be rebound for the active driver.
func insertReturningID(ctx context.Context, query string, args ...interface{}) (int64, error) {
	if DB.DriverName() == "postgres" {
		var id int64
		err := DB.QueryRowContext(ctx, query+" RETURNING id", args...).Scan(&id)
		return id, err
	}
	result, err := DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}
