package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringValidation(t *testing.T) {
	tests := []struct {
		name string
		v    *StringValidation
		want bool
	}{
		{"required present", NewStringValidation("Grace"), true},
		{"required blank", NewStringValidation("   "), false},
		{"optional blank", NewStringValidation("").WithRequired(false), true},
		{"too long", NewStringValidation(strings.Repeat("a", 51)).WithMaxLength(NameMaxLength), false},
		{"too short", NewStringValidation("a").WithMinLength(2), false},
		{"code token", NewStringValidation(" 022400202 ").WithPattern(CompiledPatterns.CourseCode), true},
		{"code with space", NewStringValidation("CS 101").WithPattern(CompiledPatterns.CourseCode), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Validate())
		})
	}
}

func TestNumericValidation(t *testing.T) {
	assert.True(t, NewNumericValidation(3).WithMin(1).WithMax(6).Validate())
	assert.False(t, NewNumericValidation(7).WithMin(1).WithMax(6).Validate())
	assert.False(t, NewNumericValidation(int64(0)).WithMin(1).Validate())
	assert.True(t, NewNumericValidation(-5).Validate())
}
