// Package validator collects field errors for request DTOs.
package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors is returned by DTO Validate methods and mapped to 422.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v))
	for _, err := range v {
		if _, seen := result[err.Field]; !seen {
			result[err.Field] = err.Message
		}
	}
	return result
}

// Err returns v as an error, or nil when nothing was collected.
func (v ValidationErrors) Err() error {
	if len(v) > 0 {
		return v
	}
	return nil
}

func (v *ValidationErrors) add(field, message string) {
	*v = append(*v, ValidationError{Field: field, Message: message})
}

// Required appends a "<field> is required" error when value is blank.
func (v *ValidationErrors) Required(field, value string) {
	if IsEmpty(value) {
		v.add(field, field+" is required")
	}
}

func (v *ValidationErrors) MaxLength(field, value string, max int) {
	if len(value) > max {
		v.add(field, fmt.Sprintf("%s must not exceed %d characters", field, max))
	}
}

// The checks below skip blank values; pair them with Required.

func (v *ValidationErrors) Email(field, value string) {
	if !IsEmpty(value) && !IsValidEmail(value) {
		v.add(field, field+" must be a valid email address")
	}
}

func (v *ValidationErrors) UUID(field, value string) {
	if !IsEmpty(value) && !IsValidUUID(value) {
		v.add(field, field+" must be a valid id")
	}
}

func (v *ValidationErrors) Date(field, value string) {
	if IsEmpty(value) {
		return
	}
	if _, ok := IsValidDate(value); !ok {
		v.add(field, field+" must be in YYYY-MM-DD format")
	}
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Ids are UUIDv7: the version nibble must be 7.
var uuidv7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func IsValidUUID(uuid string) bool {
	return uuidv7Regex.MatchString(strings.ToLower(uuid))
}

// IsValidDate parses a calendar date in YYYY-MM-DD form.
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse(time.DateOnly, dateStr)
	return date, err == nil
}

// IsOneOf reports whether value equals one of allowed.
func IsOneOf(value string, allowed ...string) bool {
	for _, item := range allowed {
		if item == value {
			return true
		}
	}
	return false
}
