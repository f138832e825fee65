// Command waveinfo prints rendering and spectral properties of waveform
// templates.
//
// Usage:
//
//	waveinfo [flags] [waveform-name ...]
//
// Without arguments it prints info for all builtin waveforms.
//
// Examples:
//
//	waveinfo square
//	waveinfo -size 4096 sawtooth bell
//	waveinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-synth/synth/core"
	"github.com/cwbudde/algo-synth/synth/waveform"
	"github.com/cwbudde/algo-synth/synth/wavetable"
)

func main() {
	size := flag.Int("size", 2048, "wavetable length in samples (power of two)")
	list := flag.Bool("list", false, "list available waveform names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: waveinfo [flags] [waveform-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints rendering and spectral properties of waveform templates.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all builtin waveforms.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  waveinfo square sawtooth\n")
		fmt.Fprintf(os.Stderr, "  waveinfo -size 4096 bell\n")
		fmt.Fprintf(os.Stderr, "  waveinfo -list\n")
	}
	flag.Parse()

	catalog, err := waveform.NewCatalog(waveform.BuiltinTemplates())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load builtin waveforms: %v\n", err)
		os.Exit(1)
	}

	if *list {
		for _, name := range catalog.Names() {
			fmt.Println(name)
		}
		return
	}

	if !core.IsPowerOfTwo(*size) {
		fmt.Fprintf(os.Stderr, "error: size must be a power of two, got %d\n", *size)
		os.Exit(1)
	}

	names := flag.Args()
	if len(names) == 0 {
		names = catalog.Names()
	}

	templates := resolveTemplates(catalog, names)
	if len(templates) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching waveforms\n")
		os.Exit(1)
	}

	printAnalysis(templates, *size)
}

func resolveTemplates(catalog *waveform.Catalog, names []string) []waveform.Template {
	var result []waveform.Template
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		t, err := catalog.Lookup(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: unknown waveform %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, t)
	}
	return result
}

func printAnalysis(templates []waveform.Template, size int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Waveform\tKind\tSource\tSize\tPeak\tRMS\tStrongest bins\n")
	fmt.Fprintf(tw, "--------\t----\t------\t----\t----\t---\t--------------\n")

	for _, t := range templates {
		table, err := wavetable.Render(t, size)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: rendering %q failed: %v\n", t.Name, err)
			continue
		}

		amps, err := wavetable.Spectrum(table)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: spectrum of %q failed: %v\n", t.Name, err)
			continue
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.4f\t%.4f\t%s\n",
			t.Name,
			t.Kind,
			sourceLabel(t),
			size,
			peak(table),
			rms(table),
			strongestBins(amps, 3),
		)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func sourceLabel(t waveform.Template) string {
	switch t.Kind {
	case waveform.KindHarmonic:
		return fmt.Sprintf("%d partials", len(t.Harmonics))
	case waveform.KindPoints:
		return fmt.Sprintf("%d points", len(t.Points))
	default:
		return "?"
	}
}

func peak(table []float64) float64 {
	p := 0.0
	for _, v := range table {
		if a := math.Abs(v); a > p {
			p = a
		}
	}
	return p
}

func rms(table []float64) float64 {
	sum := 0.0
	for _, v := range table {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(table)))
}

// strongestBins lists the count loudest spectrum bins as "bin:amp"
// pairs, loudest first.
func strongestBins(amps []float64, count int) string {
	type binAmp struct {
		bin int
		amp float64
	}
	bins := make([]binAmp, 0, len(amps))
	for k, a := range amps {
		bins = append(bins, binAmp{bin: k, amp: a})
	}
	sort.Slice(bins, func(i, j int) bool {
		if bins[i].amp != bins[j].amp {
			return bins[i].amp > bins[j].amp
		}
		return bins[i].bin < bins[j].bin
	})

	if count > len(bins) {
		count = len(bins)
	}
	parts := make([]string, count)
	for i := range count {
		parts[i] = fmt.Sprintf("%d:%.3f", bins[i].bin, bins[i].amp)
	}
	return strings.Join(parts, " ")
}
