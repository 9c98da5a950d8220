package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Sentinel(t *testing.T) {
	sql, ok := Lookup(CustomLabel)
	assert.True(t, ok)
	assert.Empty(t, sql)
}

func TestLookup_Unknown(t *testing.T) {
	sql, ok := Lookup("11. Drop Everything")
	assert.False(t, ok)
	assert.Empty(t, sql)
}

func TestLookup_EveryTemplateMatchesItsEntry(t *testing.T) {
	for _, e := range Entries() {
		if e.Label == CustomLabel {
			continue
		}
		t.Run(e.Label, func(t *testing.T) {
			sql, ok := Lookup(e.Label)
			require.True(t, ok)
			assert.NotEmpty(t, strings.TrimSpace(sql))
			assert.Equal(t, e.SQL, sql)
		})
	}
}

func TestLookup_ExactLiterals(t *testing.T) {
	sql, _ := Lookup("9. Student Count per Department")
	assert.Equal(t, "SELECT DeptID, COUNT(*) AS NumberOfStudents\nFROM STUDENT\nGROUP BY DeptID;", sql)

	sql, _ = Lookup("10. Delete Student Registration (Delete Registration ID 2)")
	assert.Equal(t, "DELETE FROM REGISTRATION\nWHERE RegistrationID = 2;", sql)
}

func TestLabels_Order(t *testing.T) {
	labels := Labels()
	require.Len(t, labels, 11)
	assert.Equal(t, CustomLabel, labels[0])
	assert.Equal(t, "1. View Student Records", labels[1])
	assert.Equal(t, "10. Delete Student Registration (Delete Registration ID 2)", labels[10])
}

func TestEntries_ReturnsCopy(t *testing.T) {
	got := Entries()
	got[1].SQL = "DROP TABLE STUDENT"

	sql, _ := Lookup("1. View Student Records")
	assert.True(t, strings.HasPrefix(sql, "SELECT StudentID"))
	assert.Equal(t, sql, Entries()[1].SQL)
}
