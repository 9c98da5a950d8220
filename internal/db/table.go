package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Table is a materialized result set: ordered columns, ordered rows.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// Queryer is satisfied by *sql.Conn, *sql.Tx and *sql.DB.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Execer is satisfied by *sql.Conn, *sql.Tx and *sql.DB.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// QueryTable runs a query and reads every row into a Table.
func QueryTable(ctx context.Context, q Queryer, query string, args ...any) (*Table, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return ScanTable(rows)
}

// ScanTable drains rows into a Table. Byte slices are converted to strings
// so results render the same way regardless of driver.
func ScanTable(rows *sql.Rows) (*Table, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("error reading result columns: %w", err)
	}

	table := &Table{Columns: columns, Rows: make([][]any, 0)}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		table.Rows = append(table.Rows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return table, nil
}

// StringRows renders every cell with fmt, NULL for nil.
func (t *Table) StringRows() [][]string {
	out := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			if v == nil {
				cells[i] = "NULL"
				continue
			}
			cells[i] = fmt.Sprint(v)
		}
		out = append(out, cells)
	}
	return out
}

// DBTX is the statement surface shared by *sql.Conn and *sql.Tx, so
// repositories run on whatever scope the caller acquired.
type DBTX interface {
	Queryer
	Execer
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
