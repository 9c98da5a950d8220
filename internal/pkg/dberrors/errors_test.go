package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresViolations(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		foreignKey bool
		unique     bool
	}{
		{"foreign key", &pgconn.PgError{Code: "23503"}, true, false},
		{"unique", &pgconn.PgError{Code: "23505"}, false, true},
		{"wrapped foreign key", fmt.Errorf("error deleting student: %w", &pgconn.PgError{Code: "23503"}), true, false},
		{"wrapped unique", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), false, true},
		{"not null", &pgconn.PgError{Code: "23502"}, false, false},
		{"plain error", errors.New("connection refused"), false, false},
		{"nil", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.foreignKey, IsForeignKeyViolation(tt.err))
			assert.Equal(t, tt.unique, IsUniqueViolation(tt.err))
		})
	}
}
