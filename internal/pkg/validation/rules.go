package validation

import (
	"regexp"
	"strings"
)

// Field limits of the university schema
var (
	NameMaxLength       = 50
	EmailMaxLength      = 100
	PhoneMaxLength      = 20
	DeptIDMaxLength     = 10
	CourseCodeMaxLength = 20
	TitleMaxLength      = 100
	SemesterMaxLength   = 20

	// Course codes are a single token
	CourseCodePattern = `^\S+$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	CourseCode *regexp.Regexp
}{
	CourseCode: regexp.MustCompile(CourseCodePattern),
}

// StringValidation checks one string value. The value is trimmed first.
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new required string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    strings.TrimSpace(value),
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return !v.Required
	}
	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}
	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}
	return true
}

// NumericValidation checks an integer against an inclusive range
type NumericValidation struct {
	Value int64
	Min   int64
	Max   int64
}

// NewNumericValidation creates a new numeric validation
func NewNumericValidation[T ~int | ~int64](value T) *NumericValidation {
	return &NumericValidation{Value: int64(value)}
}

// WithMin sets minimum value
func (v *NumericValidation) WithMin(min int64) *NumericValidation {
	v.Min = min
	return v
}

// WithMax sets maximum value
func (v *NumericValidation) WithMax(max int64) *NumericValidation {
	v.Max = max
	return v
}

// Validate performs validation. A zero bound is not checked.
func (v *NumericValidation) Validate() bool {
	if v.Min != 0 && v.Value < v.Min {
		return false
	}
	if v.Max != 0 && v.Value > v.Max {
		return false
	}
	return true
}
