package wavetable

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-synth/synth/core"
	"github.com/cwbudde/algo-vecmath"
)

// Spectrum returns the amplitude of each integer harmonic of a rendered
// table, from index 0 (DC) through len(table)/2 (Nyquist). Rendering a
// harmonic recipe with integer multipliers and zero phases and feeding
// the table back through Spectrum recovers the recipe's relative
// amplitudes, up to the peak-normalization factor.
//
// The table length must be a power of two.
func Spectrum(table []float64) ([]float64, error) {
	n := len(table)
	if !core.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: %d", ErrSpectrumSize, n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("wavetable: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range table {
		in[i] = complex(v, 0)
	}

	bins := make([]complex128, n)
	if err := plan.Forward(bins, in); err != nil {
		return nil, fmt.Errorf("wavetable: forward FFT failed: %w", err)
	}

	half := n / 2
	re := make([]float64, half+1)
	im := make([]float64, half+1)
	for k := 0; k <= half; k++ {
		re[k] = real(bins[k])
		im[k] = imag(bins[k])
	}

	amps := make([]float64, half+1)
	vecmath.Magnitude(amps, re, im)
	vecmath.ScaleBlockInPlace(amps, 2/float64(n))
	// DC and Nyquist have no mirrored bin and are not doubled.
	amps[0] /= 2
	amps[half] /= 2

	return amps, nil
}
