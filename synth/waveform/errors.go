package waveform

import "errors"

var (
	ErrNotFound      = errors.New("waveform: unknown template name")
	ErrEmptyName     = errors.New("waveform: template name must not be empty")
	ErrDuplicateName = errors.New("waveform: duplicate template name")
	ErrUnknownKind   = errors.New("waveform: unknown representation kind")
	ErrNoHarmonics   = errors.New("waveform: harmonic template has no partials")
	ErrBadMultiplier = errors.New("waveform: frequency multiplier must be positive")
	ErrNoPoints      = errors.New("waveform: points template has no samples")
)
