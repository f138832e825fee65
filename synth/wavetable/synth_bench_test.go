package wavetable

import (
	"testing"

	"github.com/cwbudde/algo-synth/synth/waveform"
)

func BenchmarkRenderHarmonic(b *testing.B) {
	tmpl := waveform.NewHarmonic("square", "", oddPartials(16))
	s := New()
	buf := make([]float64, 0, 2048)

	b.ReportAllocs()
	for b.Loop() {
		var err error
		buf, err = s.RenderInto(buf, tmpl, 2048)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRenderHarmonicParallel(b *testing.B) {
	tmpl := waveform.NewHarmonic("square", "", oddPartials(16))
	s := New(WithWorkers(4))
	buf := make([]float64, 0, 8192)

	b.ReportAllocs()
	for b.Loop() {
		var err error
		buf, err = s.RenderInto(buf, tmpl, 8192)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRenderPoints(b *testing.B) {
	tmpl := waveform.NewPoints("ramp", "", []float64{0, 1, 0, -1})
	s := New()
	buf := make([]float64, 0, 2048)

	b.ReportAllocs()
	for b.Loop() {
		var err error
		buf, err = s.RenderInto(buf, tmpl, 2048)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCacheHit(b *testing.B) {
	c := NewCache(nil)
	tmpl := waveform.NewHarmonic("square", "", oddPartials(16))
	if _, err := c.Get(tmpl, 2048); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := c.Get(tmpl, 2048); err != nil {
			b.Fatal(err)
		}
	}
}
