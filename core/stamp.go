package core

import (
	"fmt"
	"time"
)

type Variant string

const (
	PlainVariant  Variant = "plain"  // the reference time itself
	WeeklyVariant Variant = "weekly" // last week's Monday-Friday span
)

// Stamp produces the text to insert for a reference time.
type Stamp func(ref time.Time) string

// NewStamp returns the Stamp for variant rendered with template.
// An empty variant means PlainVariant.
func NewStamp(variant Variant, template string) (Stamp, error) {
	if template == "" {
		return nil, ErrEmptyFormat
	}

	switch variant {
	case PlainVariant, "":
		return func(ref time.Time) string {
			return Strftime(template, ref)
		}, nil

	case WeeklyVariant:
		return func(ref time.Time) string {
			return WeeklyStamp(template, ref)
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidVariant, variant)
	}
}
