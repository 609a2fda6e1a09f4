package validator

import (
	"strings"
	"unicode/utf8"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/date"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Add appends a field error.
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, ValidationError{Field: field, Message: message})
}

// Err returns v as an error, or nil when no field failed.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// Has reports whether field already failed.
func (v ValidationErrors) Has(field string) bool {
	for _, err := range v {
		if err.Field == field {
			return true
		}
	}
	return false
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// MinLength reports whether s has at least n characters. Surrounding
// whitespace counts.
func MinLength(s string, n int) bool {
	return utf8.RuneCountInString(s) >= n
}

// Date validation
func IsValidDate(dateStr string) (date.Date, bool) {
	d, err := date.Parse(dateStr)
	return d, err == nil
}

// RequiredDate parses a mandatory date field, recording a field error when it
// is missing or malformed.
func RequiredDate(errs *ValidationErrors, field, value string) (date.Date, bool) {
	if IsEmpty(value) {
		errs.Add(field, field+" is required")
		return date.Date{}, false
	}
	d, ok := IsValidDate(value)
	if !ok {
		errs.Add(field, field+" must be a date in YYYY-MM-DD format")
		return date.Date{}, false
	}
	return d, true
}

// OptionalDate parses a nullable date field. Empty input yields nil.
func OptionalDate(errs *ValidationErrors, field string, value *string) (*date.Date, bool) {
	if value == nil || IsEmpty(*value) {
		return nil, true
	}
	d, ok := IsValidDate(*value)
	if !ok {
		errs.Add(field, field+" must be a date in YYYY-MM-DD format")
		return nil, false
	}
	return &d, true
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
