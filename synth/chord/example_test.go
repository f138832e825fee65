package chord_test

import (
	"fmt"

	"github.com/cwbudde/algo-synth/synth/chord"
)

func ExampleResolvePitches() {
	catalog, _ := chord.NewCatalog(chord.BuiltinTemplates())
	tmpl, _ := catalog.Lookup("minor7")
	fmt.Println(chord.ResolvePitches(60, tmpl))
	// Output:
	// [60 63 67 70]
}

func ExampleCollapsePitchClasses() {
	tmpl := chord.Template{Name: "major9", Intervals: []int{0, 4, 7, 11, 14}}
	fmt.Println(chord.CollapsePitchClasses(60, tmpl))
	// Output:
	// [0 4 7 11 2]
}

func ExampleParsePitch() {
	pitch, _ := chord.ParsePitch("A4")
	fmt.Printf("%d %.0f\n", pitch, chord.Frequency(pitch))
	// Output:
	// 69 440
}
