package waveform

import (
	"errors"
	"math"
	"testing"
)

func TestTemplateValidate(t *testing.T) {
	tests := []struct {
		name     string
		template Template
		wantErr  error
	}{
		{
			name:     "valid harmonic",
			template: NewHarmonic("sine", "", []Harmonic{{Multiplier: 1, Amplitude: 1}}),
		},
		{
			name:     "valid inharmonic",
			template: NewHarmonic("bell", "", []Harmonic{{Multiplier: 0.56, Amplitude: 1}, {Multiplier: 1.19, Amplitude: 0.5}}),
		},
		{
			name:     "valid points",
			template: NewPoints("cycle", "", []float64{0, 1, 0, -1}),
		},
		{
			name:     "zero amplitudes are opaque data",
			template: NewHarmonic("silent", "", []Harmonic{{Multiplier: 1, Amplitude: 0}}),
		},
		{
			name:     "irregular points are opaque data",
			template: NewPoints("glitch", "", []float64{1, -1, 1, -1, 0.123}),
		},
		{
			name:     "empty name",
			template: NewPoints("", "", []float64{0}),
			wantErr:  ErrEmptyName,
		},
		{
			name:     "no harmonics",
			template: NewHarmonic("empty", "", nil),
			wantErr:  ErrNoHarmonics,
		},
		{
			name:     "no points",
			template: NewPoints("empty", "", nil),
			wantErr:  ErrNoPoints,
		},
		{
			name:     "zero multiplier",
			template: NewHarmonic("bad", "", []Harmonic{{Multiplier: 0, Amplitude: 1}}),
			wantErr:  ErrBadMultiplier,
		},
		{
			name:     "negative multiplier",
			template: NewHarmonic("bad", "", []Harmonic{{Multiplier: -2, Amplitude: 1}}),
			wantErr:  ErrBadMultiplier,
		},
		{
			name:     "NaN multiplier",
			template: NewHarmonic("bad", "", []Harmonic{{Multiplier: math.NaN(), Amplitude: 1}}),
			wantErr:  ErrBadMultiplier,
		},
		{
			name:     "unknown kind",
			template: Template{Name: "odd", Kind: Kind(7)},
			wantErr:  ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.template.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewCatalogStrict(t *testing.T) {
	templates := []Template{
		NewHarmonic("sine", "", []Harmonic{{Multiplier: 1, Amplitude: 1}}),
		NewHarmonic("bad", "", []Harmonic{{Multiplier: 0, Amplitude: 1}}),
	}

	_, err := NewCatalog(templates)
	if !errors.Is(err, ErrBadMultiplier) {
		t.Fatalf("expected strict load to abort with ErrBadMultiplier, got %v", err)
	}
}

func TestNewCatalogDuplicateName(t *testing.T) {
	templates := []Template{
		NewPoints("cycle", "", []float64{0, 1}),
		NewPoints("cycle", "", []float64{0, -1}),
	}

	_, err := NewCatalog(templates)
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestNewCatalogSkipInvalid(t *testing.T) {
	templates := []Template{
		NewHarmonic("sine", "", []Harmonic{{Multiplier: 1, Amplitude: 1}}),
		NewHarmonic("bad", "", nil),
		NewPoints("cycle", "", []float64{0, 1, 0, -1}),
	}

	var skipped []string
	c, err := NewCatalog(templates, WithSkipInvalid(func(name string, err error) {
		skipped = append(skipped, name)
	}))
	if err != nil {
		t.Fatalf("lenient load failed: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if len(skipped) != 1 || skipped[0] != "bad" {
		t.Fatalf("skipped = %v, want [bad]", skipped)
	}
	if _, err := c.Lookup("bad"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected skipped template to stay unregistered, got %v", err)
	}
}

func TestCatalogLookup(t *testing.T) {
	c, err := NewCatalog(BuiltinTemplates())
	if err != nil {
		t.Fatalf("builtin load failed: %v", err)
	}

	tmpl, err := c.Lookup("square")
	if err != nil {
		t.Fatalf("Lookup(square) failed: %v", err)
	}
	if tmpl.Kind != KindHarmonic {
		t.Fatalf("Kind = %v, want harmonic", tmpl.Kind)
	}

	tmpl, err = c.Lookup("sculpted16")
	if err != nil {
		t.Fatalf("Lookup(sculpted16) failed: %v", err)
	}
	if tmpl.Kind != KindPoints || len(tmpl.Points) != 16 {
		t.Fatalf("sculpted16 = %v kind with %d points", tmpl.Kind, len(tmpl.Points))
	}

	if _, err := c.Lookup("no-such-wave"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogIsolation(t *testing.T) {
	source := []Template{NewPoints("cycle", "", []float64{0, 1, 0, -1})}
	c, err := NewCatalog(source)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	source[0].Points[1] = 42
	got, err := c.Lookup("cycle")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if got.Points[1] != 1 {
		t.Fatalf("catalog shares backing storage with its input")
	}

	got.Points[0] = 42
	again, _ := c.Lookup("cycle")
	if again.Points[0] != 0 {
		t.Fatalf("Lookup result shares backing storage with the catalog")
	}
}

func TestBuiltinTemplatesValid(t *testing.T) {
	templates := BuiltinTemplates()
	if len(templates) == 0 {
		t.Fatal("no builtin templates")
	}
	for _, tmpl := range templates {
		if err := tmpl.Validate(); err != nil {
			t.Fatalf("builtin %q invalid: %v", tmpl.Name, err)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindHarmonic.String() != "harmonic" || KindPoints.String() != "points" {
		t.Fatal("unexpected kind names")
	}
	if Kind(9).String() != "kind(9)" {
		t.Fatalf("Kind(9).String() = %q", Kind(9).String())
	}
}
