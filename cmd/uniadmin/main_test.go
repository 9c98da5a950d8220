package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/uniadmin/internal/app/catalog"
	"github.com/yigit/uniadmin/internal/app/services"
	"github.com/yigit/uniadmin/internal/db"
)

func TestResolveStatement(t *testing.T) {
	sql, err := resolveStatement([]string{"SELECT 1"}, "")
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", sql)

	sql, err = resolveStatement(nil, "9. Student Count per Department")
	require.NoError(t, err)
	want, _ := catalog.Lookup("9. Student Count per Department")
	assert.Equal(t, want, sql)

	_, err = resolveStatement(nil, "nope")
	assert.ErrorContains(t, err, "unknown template")

	_, err = resolveStatement([]string{"SELECT 1"}, "9. Student Count per Department")
	assert.Error(t, err)

	_, err = resolveStatement(nil, "")
	assert.Error(t, err)
}

func TestRenderTable(t *testing.T) {
	out := renderTable(&db.Table{
		Columns: []string{"DeptID", "NumberOfStudents"},
		Rows:    [][]any{{"01", int64(2)}, {"02", nil}},
	})

	assert.Contains(t, out, "DeptID")
	assert.Contains(t, out, "NumberOfStudents")
	assert.Contains(t, out, "01")
	assert.Contains(t, out, "NULL")
}

func TestRenderOutcome(t *testing.T) {
	ok := renderOutcome(&services.Outcome{
		Message: "Execution Successful. Records found: 1",
		Result:  &db.Table{Columns: []string{"StudentID"}, Rows: [][]any{{int64(1)}}},
	})
	assert.Contains(t, ok, "StudentID")
	assert.Contains(t, ok, "Records found: 1")

	failed := renderOutcome(&services.Outcome{Failed: true, Message: "Database execution error: no such table: X"})
	assert.Contains(t, failed, "no such table: X")
	assert.NotContains(t, failed, "StudentID")
}

func TestTemplatesCommand(t *testing.T) {
	var out bytes.Buffer
	templatesCmd.SetOut(&out)
	t.Cleanup(func() { templatesCmd.SetOut(nil) })

	require.NoError(t, templatesCmd.RunE(templatesCmd, nil))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, catalog.Labels(), lines)

	out.Reset()
	require.NoError(t, templatesCmd.RunE(templatesCmd, []string{"10. Delete Student Registration (Delete Registration ID 2)"}))
	assert.Equal(t, "DELETE FROM REGISTRATION\nWHERE RegistrationID = 2;\n", out.String())

	assert.Error(t, templatesCmd.RunE(templatesCmd, []string{"nope"}))
}
