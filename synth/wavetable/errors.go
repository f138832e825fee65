package wavetable

import "errors"

var (
	ErrTableSize     = errors.New("wavetable: table size must be positive")
	ErrEmptyTemplate = errors.New("wavetable: template has an empty representation")
	ErrNotFinite     = errors.New("wavetable: rendering produced non-finite samples")
	ErrSpectrumSize  = errors.New("wavetable: spectrum table length must be a power of two")
)
