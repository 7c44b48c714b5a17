package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	// ErrRequired marks a submission with an empty required field. Callers
	// abort silently without writing.
	ErrRequired = errors.New("required field is empty")
	ErrInvalid  = errors.New("invalid value")
)

const maxTextLength = 2000

// Required trims value and rejects it when empty or too long.
func Required(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		return "", fmt.Errorf("%w: %s", ErrRequired, field)
	}

	if utf8.RuneCountInString(trimmed) > maxTextLength {
		return "", fmt.Errorf("%w: %s is too long (max %d characters)", ErrInvalid, field, maxTextLength)
	}

	return trimmed, nil
}

// Optional trims value; an empty result is allowed.
func Optional(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)

	if utf8.RuneCountInString(trimmed) > maxTextLength {
		return "", fmt.Errorf("%w: %s is too long (max %d characters)", ErrInvalid, field, maxTextLength)
	}

	return trimmed, nil
}

// Score checks a pulse score. Zero counts as missing.
func Score(score, min, max int) error {
	if score == 0 {
		return fmt.Errorf("%w: score", ErrRequired)
	}

	if score < min || score > max {
		return fmt.Errorf("%w: score must be between %d and %d", ErrInvalid, min, max)
	}

	return nil
}

// Date checks a YYYY-MM-DD calendar date.
func Date(field, value string) error {
	_, err := time.Parse("2006-01-02", value)
	if err != nil {
		return fmt.Errorf("%w: %s must be a date (YYYY-MM-DD)", ErrInvalid, field)
	}

	return nil
}
