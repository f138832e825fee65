package waveform

import "fmt"

// Kind discriminates the two waveform representations.
type Kind int

const (
	// KindHarmonic is an additive recipe of sinusoidal partials.
	KindHarmonic Kind = iota
	// KindPoints is one raw cycle of samples, read cyclically.
	KindPoints
)

// String returns the kind name used in messages and tool output.
func (k Kind) String() string {
	switch k {
	case KindHarmonic:
		return "harmonic"
	case KindPoints:
		return "points"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Harmonic is a single sinusoidal partial. Multiplier 1 is the
// fundamental; non-integer multipliers describe inharmonic partials.
// Phase is in radians and defaults to 0, which keeps legacy recipes
// without explicit phases rendering exactly as before.
type Harmonic struct {
	Multiplier float64
	Amplitude  float64
	Phase      float64
}

// Template is a named waveform definition, a tagged union over the two
// representation kinds. Exactly one of Harmonics or Points is meaningful
// depending on Kind.
type Template struct {
	Name        string
	Description string
	Kind        Kind
	Harmonics   []Harmonic
	Points      []float64
}

// NewHarmonic builds a harmonic-kind template.
func NewHarmonic(name, description string, harmonics []Harmonic) Template {
	return Template{Name: name, Description: description, Kind: KindHarmonic, Harmonics: harmonics}
}

// NewPoints builds a points-kind template from one raw cycle.
func NewPoints(name, description string, points []float64) Template {
	return Template{Name: name, Description: description, Kind: KindPoints, Points: points}
}

// Validate checks the structural invariants of a template: a non-empty
// representation and, for harmonic templates, strictly positive
// frequency multipliers. Sample values themselves are opaque and pass
// untouched; amplitudes may be zero or negative, point sequences may be
// discontinuous or irregular.
func (t Template) Validate() error {
	if t.Name == "" {
		return ErrEmptyName
	}

	switch t.Kind {
	case KindHarmonic:
		if len(t.Harmonics) == 0 {
			return fmt.Errorf("%w: %q", ErrNoHarmonics, t.Name)
		}
		for i, h := range t.Harmonics {
			// NaN compares false here, so it is rejected too. Infinite
			// multipliers pass structural validation and surface later as
			// a numeric rendering error.
			if !(h.Multiplier > 0) {
				return fmt.Errorf("%w: %q partial %d has multiplier %v", ErrBadMultiplier, t.Name, i, h.Multiplier)
			}
		}
	case KindPoints:
		if len(t.Points) == 0 {
			return fmt.Errorf("%w: %q", ErrNoPoints, t.Name)
		}
	default:
		return fmt.Errorf("%w: %q has kind %d", ErrUnknownKind, t.Name, int(t.Kind))
	}

	return nil
}
