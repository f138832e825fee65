package chord

import "github.com/cwbudde/algo-synth/synth/core"

// ResolvePitches returns root+interval for every interval, in template
// order. Extensions above an octave stay in their upper octave; nothing
// is reduced or resorted.
func ResolvePitches(root int, t Template) []int {
	pitches := make([]int, len(t.Intervals))
	for i, interval := range t.Intervals {
		pitches[i] = root + interval
	}

	return pitches
}

// CollapsePitchClasses reduces the resolved pitches modulo 12 and drops
// duplicates, preserving first-occurrence order. Use it when only the
// chord identity matters, not the voicing.
func CollapsePitchClasses(root int, t Template) []int {
	classes := make([]int, 0, len(t.Intervals))
	seen := [12]bool{}
	for _, interval := range t.Intervals {
		pc := core.PositiveMod(root+interval, 12)
		if seen[pc] {
			continue
		}
		seen[pc] = true
		classes = append(classes, pc)
	}

	return classes
}
