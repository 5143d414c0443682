package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ionut-t/stamper/core"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes every entry to errors.Is and errors.As.
func (e ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(e))
	for i := range e {
		errs = append(errs, &e[i])
	}
	return errs
}

var validLogLevels = []string{"debug", "info", "warn", "warning", "error"}

// Validate checks the configuration for errors. All problems are reported
// together as ValidationErrors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Version < 1 || c.Version > Version {
		errs = append(errs, ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (current: %d)", c.Version, Version),
		})
	}

	if c.LogLevel != "" && !slices.Contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		errs = append(errs, ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("unknown level %q", c.LogLevel),
		})
	}

	if len(c.Bindings) == 0 {
		errs = append(errs, ValidationError{
			Field:   "bindings",
			Message: "at least one binding is required",
		})
	}

	names := make(map[string]int, len(c.Bindings))
	chords := make(map[string]int, len(c.Bindings))
	for i, b := range c.Bindings {
		field := fmt.Sprintf("bindings[%d]", i)

		if b.Name == "" {
			errs = append(errs, ValidationError{Field: field + ".name", Message: "must not be empty"})
		} else if j, dup := names[b.Name]; dup {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("duplicate of bindings[%d]", j),
			})
		} else {
			names[b.Name] = i
		}

		chord, err := core.ParseChord(b.Chord)
		if err != nil {
			errs = append(errs, ValidationError{Field: field + ".chord", Message: err.Error(), Err: err})
		} else if j, dup := chords[chord.String()]; dup {
			errs = append(errs, ValidationError{
				Field:   field + ".chord",
				Message: fmt.Sprintf("%s is already bound by bindings[%d]", chord, j),
			})
		} else {
			chords[chord.String()] = i
		}

		if _, err := b.Stamp(); err != nil {
			field := field + ".format"
			if errors.Is(err, core.ErrInvalidVariant) {
				field = fmt.Sprintf("bindings[%d].variant", i)
			}
			errs = append(errs, ValidationError{Field: field, Message: err.Error(), Err: err})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
