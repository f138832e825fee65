package waveform

// BuiltinTemplates returns the stock waveform set: the classic shapes as
// band-limited additive recipes, two richer recipes (an organ drawbar
// registration and an inharmonic bell), and a hand-drawn 16-point cycle.
// The slice is freshly allocated on every call.
func BuiltinTemplates() []Template {
	return []Template{
		NewHarmonic("sine", "Pure sine wave", []Harmonic{
			{Multiplier: 1, Amplitude: 1},
		}),
		NewHarmonic("square", "Band-limited square wave (odd partials, 1/n)", oddSeries(16, func(n float64) float64 {
			return 1 / n
		})),
		NewHarmonic("sawtooth", "Band-limited sawtooth wave (all partials, 1/n)", fullSeries(16, func(n float64) float64 {
			return 1 / n
		})),
		NewHarmonic("triangle", "Band-limited triangle wave (odd partials, alternating 1/n^2)", oddTriangleSeries(16)),
		NewHarmonic("organ", "Drawbar organ registration", []Harmonic{
			{Multiplier: 0.5, Amplitude: 0.6},
			{Multiplier: 1, Amplitude: 1},
			{Multiplier: 1.5, Amplitude: 0.4},
			{Multiplier: 2, Amplitude: 0.7},
			{Multiplier: 3, Amplitude: 0.3},
			{Multiplier: 4, Amplitude: 0.35},
			{Multiplier: 6, Amplitude: 0.15},
			{Multiplier: 8, Amplitude: 0.2},
		}),
		NewHarmonic("bell", "Inharmonic bell partials", []Harmonic{
			{Multiplier: 0.56, Amplitude: 0.7},
			{Multiplier: 0.92, Amplitude: 1},
			{Multiplier: 1.19, Amplitude: 0.8},
			{Multiplier: 1.71, Amplitude: 0.6},
			{Multiplier: 2, Amplitude: 0.5},
			{Multiplier: 2.74, Amplitude: 0.35},
			{Multiplier: 3, Amplitude: 0.25},
			{Multiplier: 3.76, Amplitude: 0.2},
			{Multiplier: 4.07, Amplitude: 0.15},
		}),
		NewPoints("sculpted16", "Hand-drawn 16-point cycle", []float64{
			0, 0.55, 0.9, 1, 0.9, 0.55, 0, -0.3,
			-0.5, -0.85, -1, -0.85, -0.5, -0.3, -0.1, 0,
		}),
	}
}

// oddSeries builds count odd partials 1, 3, 5, ... with amp(n) weights.
func oddSeries(count int, amp func(n float64) float64) []Harmonic {
	harmonics := make([]Harmonic, count)
	for i := range harmonics {
		n := float64(2*i + 1)
		harmonics[i] = Harmonic{Multiplier: n, Amplitude: amp(n)}
	}
	return harmonics
}

// fullSeries builds count partials 1, 2, 3, ... with amp(n) weights.
func fullSeries(count int, amp func(n float64) float64) []Harmonic {
	harmonics := make([]Harmonic, count)
	for i := range harmonics {
		n := float64(i + 1)
		harmonics[i] = Harmonic{Multiplier: n, Amplitude: amp(n)}
	}
	return harmonics
}

// oddTriangleSeries builds the triangle series: odd partials with 1/n^2
// weights and alternating sign.
func oddTriangleSeries(count int) []Harmonic {
	harmonics := make([]Harmonic, count)
	sign := 1.0
	for i := range harmonics {
		n := float64(2*i + 1)
		harmonics[i] = Harmonic{Multiplier: n, Amplitude: sign / (n * n)}
		sign = -sign
	}
	return harmonics
}
