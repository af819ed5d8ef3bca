package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrQuotaExceeded signals that the recipe catalog rejected a call because
// the API quota is exhausted. The enrichment loop treats it as a stop
// condition, not a failure.
var ErrQuotaExceeded = errors.New("recipe catalog quota exceeded")

// ValidationError reports missing or invalid required profile fields. It is
// returned before any external call is made.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid required fields: %s", strings.Join(e.Fields, ", "))
}

// GenerationError reports that the text-generation service failed. There is
// no fallback for generation: without text the feature has no output.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate nutrition plan: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
