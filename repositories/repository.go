// Package repositories translates domain operations into Postgres queries.
// "Not found" is a return-value condition here: Get-style methods return
// (nil, nil) for a missing row and the service layer decides what that means.
package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/lib/pq"
)

// querier is satisfied by both *sql.DB and *sql.Tx so single-row helpers can
// run inside or outside a transaction.
type querier interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// buildUpdate renders a partial-field UPDATE statement over a whitelisted
// field map. Columns are emitted in sorted order so the statement is
// deterministic. extraSet is appended verbatim (e.g. an updated_at touch).
func buildUpdate(table string, fields map[string]interface{}, id int, extraSet string) (string, []interface{}) {
	cols := make([]string, 0, len(fields))
	for col := range fields {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	query := "UPDATE " + table + " SET "
	args := make([]interface{}, 0, len(cols)+1)
	argID := 1
	for i, col := range cols {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("%s = $%d", col, argID)
		args = append(args, fields[col])
		argID++
	}
	if extraSet != "" {
		if len(cols) > 0 {
			query += ", "
		}
		query += extraSet
	}
	query += fmt.Sprintf(" WHERE id = $%d", argID)
	args = append(args, id)
	return query, args
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. The store-level constraint is the authoritative guard against
// duplicate signups; service-level pre-checks only exist for friendlier
// messages.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

func distinctStrings(q querier, query string, args ...interface{}) ([]string, error) {
	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
