package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/uniadmin/internal/app/catalog"
	"github.com/yigit/uniadmin/internal/db"
	"github.com/yigit/uniadmin/internal/testutil"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		statement string
		want      StatementKind
	}{
		{"SELECT 1", KindRead},
		{"select * from STUDENT", KindRead},
		{"   \n\tSeLeCt StudentID FROM STUDENT", KindRead},
		{"UPDATE STUDENT SET Phone = NULL", KindWrite},
		{"DELETE FROM REGISTRATION", KindWrite},
		{"WITH s AS (SELECT 1) SELECT * FROM s", KindWrite},
		{"-- comment\nSELECT 1", KindWrite},
		{"", KindWrite},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.statement), tt.statement)
	}
}

func TestDispatch_Read(t *testing.T) {
	c := testutil.NewConnector(t)
	d := NewDispatcher(c, zerolog.Nop())

	out := d.Dispatch(context.Background(), "SELECT StudentID FROM STUDENT ORDER BY StudentID")

	require.False(t, out.Failed, out.Message)
	assert.Equal(t, KindRead, out.Kind)
	assert.Equal(t, 3, out.RowCount)
	assert.Equal(t, "Execution Successful. Records found: 3", out.Message)
	require.NotNil(t, out.Result)
	assert.Equal(t, []string{"StudentID"}, out.Result.Columns)
	assert.Equal(t, [][]string{{"1"}, {"2"}, {"3"}}, out.Result.StringRows())
	assert.Equal(t, 0, c.Stats().OpenConnections)
}

func TestDispatch_ReadNoRows(t *testing.T) {
	c := testutil.NewConnector(t)
	d := NewDispatcher(c, zerolog.Nop())

	out := d.Dispatch(context.Background(), "select * from COURSE where Credits > 10")

	require.False(t, out.Failed, out.Message)
	assert.Zero(t, out.RowCount)
	assert.Equal(t, "Execution Successful. Records found: 0", out.Message)
	assert.NotEmpty(t, out.Result.Columns)
}

func TestDispatch_WriteCommits(t *testing.T) {
	c := testutil.NewConnector(t)
	d := NewDispatcher(c, zerolog.Nop())

	out := d.Dispatch(context.Background(), "UPDATE REGISTRATION SET Grade = 'A' WHERE CourseCode = '022400202'")

	require.False(t, out.Failed, out.Message)
	assert.Equal(t, KindWrite, out.Kind)
	assert.EqualValues(t, 2, out.RowsAffected)
	assert.Equal(t, "Action executed successfully. Rows affected: 2", out.Message)
	assert.Nil(t, out.Result)

	check := d.Dispatch(context.Background(), "SELECT Grade FROM REGISTRATION WHERE Grade = 'A'")
	assert.Equal(t, 2, check.RowCount)
	assert.Equal(t, 0, c.Stats().OpenConnections)
}

func TestDispatch_WriteNoMatch(t *testing.T) {
	c := testutil.NewConnector(t)
	d := NewDispatcher(c, zerolog.Nop())

	out := d.Dispatch(context.Background(), "DELETE FROM REGISTRATION WHERE RegistrationID = 9999")

	require.False(t, out.Failed, out.Message)
	assert.Zero(t, out.RowsAffected)
	assert.Equal(t, "Action executed successfully. Rows affected: 0", out.Message)
	assert.Equal(t, 2, testutil.Count(t, c, "REGISTRATION"))
}

func TestDispatch_SyntaxError(t *testing.T) {
	c := testutil.NewConnector(t)
	d := NewDispatcher(c, zerolog.Nop())

	out := d.Dispatch(context.Background(), "SELEC * FROM STUDENT")

	assert.True(t, out.Failed)
	assert.Equal(t, KindWrite, out.Kind)
	assert.NotEmpty(t, out.Error)
	assert.Equal(t, "Database execution error: "+out.Error, out.Message)
	assert.Nil(t, out.Result)
	assert.Equal(t, 0, c.Stats().OpenConnections)
}

func TestDispatch_FailedWriteLeavesNoTrace(t *testing.T) {
	c := testutil.NewConnector(t)
	d := NewDispatcher(c, zerolog.Nop())

	out := d.Dispatch(context.Background(),
		"INSERT INTO REGISTRATION (Semester, StudentID, CourseCode) VALUES ('Spring 2025', 999, 'NOPE')")

	assert.True(t, out.Failed)
	assert.True(t, strings.HasPrefix(out.Message, "Database execution error: "))
	assert.Contains(t, strings.ToUpper(out.Error), "FOREIGN KEY")
	assert.Zero(t, out.RowsAffected)
	assert.Equal(t, 2, testutil.Count(t, c, "REGISTRATION"))
	assert.Equal(t, 0, c.Stats().OpenConnections)
}

func TestDispatch_ReadErrorOnUnknownTable(t *testing.T) {
	c := testutil.NewConnector(t)
	d := NewDispatcher(c, zerolog.Nop())

	out := d.Dispatch(context.Background(), "SELECT * FROM PROFESSOR")

	assert.True(t, out.Failed)
	assert.Equal(t, KindRead, out.Kind)
	assert.Contains(t, out.Error, "PROFESSOR")
	assert.Zero(t, out.RowCount)
}

func TestDispatch_EmptyStatement(t *testing.T) {
	c := testutil.NewConnector(t)
	d := NewDispatcher(c, zerolog.Nop())

	for _, stmt := range []string{"", "   \n\t"} {
		out := d.Dispatch(context.Background(), stmt)
		assert.True(t, out.Failed)
		assert.Equal(t, "Database execution error: statement is empty", out.Message)
	}
	assert.Equal(t, 0, c.Stats().OpenConnections)
}

func TestDispatch_Unreachable(t *testing.T) {
	cfg := testutil.Config(t)
	cfg.Database.Path = filepath.Join(t.TempDir(), "missing", "university.db")
	c, err := db.Open(cfg)
	require.NoError(t, err)
	defer c.Close()

	out := NewDispatcher(c, zerolog.Nop()).Dispatch(context.Background(), "SELECT 1")

	assert.True(t, out.Failed)
	assert.True(t, strings.HasPrefix(out.Message, "Database Connection Error: "), out.Message)
	assert.NotEmpty(t, out.Error)
	assert.Nil(t, out.Result)
}

type panickingAcquirer struct{}

func (panickingAcquirer) Acquire(context.Context) (*sql.Conn, error) {
	panic("driver exploded")
}

func TestDispatch_RecoversPanic(t *testing.T) {
	d := NewDispatcher(panickingAcquirer{}, zerolog.Nop())

	out := d.Dispatch(context.Background(), "SELECT 1")

	assert.True(t, out.Failed)
	assert.Equal(t, "An unexpected error occurred: driver exploded", out.Message)
}

func TestDispatch_EveryCatalogTemplateRuns(t *testing.T) {
	for _, e := range catalog.Entries() {
		if e.Label == catalog.CustomLabel {
			continue
		}
		t.Run(e.Label, func(t *testing.T) {
			c := testutil.NewConnector(t)
			out := NewDispatcher(c, zerolog.Nop()).Dispatch(context.Background(), e.SQL)

			require.False(t, out.Failed, out.Message)
			assert.Equal(t, Classify(e.SQL), out.Kind)
			if out.Kind == KindWrite {
				assert.EqualValues(t, 1, out.RowsAffected)
			}
			assert.Equal(t, 0, c.Stats().OpenConnections)
		})
	}
}
