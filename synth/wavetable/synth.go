package wavetable

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/synth/core"
	"github.com/cwbudde/algo-synth/synth/waveform"
	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"
)

// Chunked rendering only pays off once the sample-times-partial count is
// large enough to amortize goroutine startup.
const minParallelWork = 1 << 15

// Synthesizer renders waveform templates into wavetables. The zero
// value renders serially; WithWorkers enables chunked rendering. A
// Synthesizer holds no mutable state and is safe for concurrent use.
type Synthesizer struct {
	workers int
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithWorkers sets the maximum number of goroutines used to render one
// table. Chunk boundaries never change the per-sample formula, so the
// output is identical to a serial render.
func WithWorkers(n int) Option {
	return func(s *Synthesizer) {
		if n > 0 {
			s.workers = n
		}
	}
}

// New creates a configured synthesizer.
func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{workers: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Render is a one-shot serial render with default settings.
func Render(t waveform.Template, n int) ([]float64, error) {
	return New().Render(t, n)
}

// Render returns a freshly allocated table of n samples for t.
func (s *Synthesizer) Render(t waveform.Template, n int) ([]float64, error) {
	return s.RenderInto(nil, t, n)
}

// RenderInto renders into dst, reusing its capacity when possible, and
// returns the resulting table of n samples.
//
// Errors: a non-positive n yields ErrTableSize; a template with an
// empty representation (normally rejected at catalog load, re-checked
// here) yields ErrEmptyTemplate; non-finite samples from degenerate
// inputs yield ErrNotFinite. A legitimately silent template renders to
// an all-zero table without error.
func (s *Synthesizer) RenderInto(dst []float64, t waveform.Template, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrTableSize, n)
	}

	dst = core.EnsureLen(dst, n)

	switch t.Kind {
	case waveform.KindHarmonic:
		if len(t.Harmonics) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyTemplate, t.Name)
		}
		if err := s.renderHarmonic(dst, t.Harmonics); err != nil {
			return nil, fmt.Errorf("%w (template %q)", err, t.Name)
		}
	case waveform.KindPoints:
		if len(t.Points) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyTemplate, t.Name)
		}
		renderPoints(dst, t.Points)
		if !core.AllFinite(dst) {
			return nil, fmt.Errorf("%w (template %q)", ErrNotFinite, t.Name)
		}
	default:
		return nil, fmt.Errorf("%w: %q has kind %d", waveform.ErrUnknownKind, t.Name, int(t.Kind))
	}

	normalize(dst)

	return dst, nil
}

// renderHarmonic sums the partials of an additive recipe:
// dst[i] = sum_h amp_h * sin(2*pi*mult_h*i/n + phase_h).
func (s *Synthesizer) renderHarmonic(dst []float64, harmonics []waveform.Harmonic) error {
	n := len(dst)
	step := 2 * math.Pi / float64(n)

	if s.workers <= 1 || n*len(harmonics) < minParallelWork {
		sumPartials(dst, 0, harmonics, step)
		if !core.AllFinite(dst) {
			return ErrNotFinite
		}
		return nil
	}

	var g errgroup.Group
	chunk := (n + s.workers - 1) / s.workers
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		seg, offset := dst[start:end], start
		g.Go(func() error {
			sumPartials(seg, offset, harmonics, step)
			if !core.AllFinite(seg) {
				return ErrNotFinite
			}
			return nil
		})
	}

	return g.Wait()
}

// sumPartials fills dst with the additive sum for absolute sample
// indices offset..offset+len(dst). The formula depends only on the
// absolute index, which keeps chunked output identical to serial.
func sumPartials(dst []float64, offset int, harmonics []waveform.Harmonic, step float64) {
	for i := range dst {
		x := step * float64(offset+i)
		v := 0.0
		for _, h := range harmonics {
			v += h.Amplitude * math.Sin(x*h.Multiplier+h.Phase)
		}
		dst[i] = v
	}
}

// renderPoints maps one stored cycle onto len(dst) samples. Matching
// lengths copy bit-exactly; otherwise the cycle is resampled with
// linear interpolation, index len(points) aliasing index 0.
func renderPoints(dst, points []float64) {
	n, length := len(dst), len(points)
	if n == length {
		copy(dst, points)
		return
	}

	ratio := float64(length) / float64(n)
	for i := range dst {
		pos := float64(i) * ratio
		idx := int(pos)
		if idx >= length {
			// float rounding at the top edge
			idx = length - 1
		}
		next := idx + 1
		if next == length {
			next = 0
		}
		frac := pos - float64(idx)
		dst[i] = points[idx] + frac*(points[next]-points[idx])
	}
}

// normalize scales buf so its peak magnitude is 1. An all-zero buffer
// is left untouched; there is never a division by zero.
func normalize(buf []float64) {
	peak := vecmath.MaxAbs(buf)
	if peak > 0 {
		vecmath.ScaleBlockInPlace(buf, 1/peak)
	}
}
