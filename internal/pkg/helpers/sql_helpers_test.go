package helpers

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetNullString(t *testing.T) {
	blank := "  "
	value := "grace@uni.edu"

	assert.False(t, GetNullString(nil).Valid)
	assert.False(t, GetNullString(&blank).Valid)
	assert.Equal(t, sql.NullString{String: value, Valid: true}, GetNullString(&value))
}

func TestGetNullTime(t *testing.T) {
	dob := time.Date(2003, 5, 1, 0, 0, 0, 0, time.UTC)

	assert.False(t, GetNullTime(nil).Valid)
	assert.Equal(t, sql.NullTime{Time: dob, Valid: true}, GetNullTime(&dob))
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr(sql.NullString{}))

	got := StringPtr(sql.NullString{String: "555-0101", Valid: true})
	if assert.NotNil(t, got) {
		assert.Equal(t, "555-0101", *got)
	}
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, OptionalString("   "))
	assert.Equal(t, "x", *OptionalString(" x "))
}
