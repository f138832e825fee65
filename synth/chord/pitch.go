package chord

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Pitches follow the MIDI convention: 60 = middle C, 69 = A4.
const (
	referencePitch = 69
	referenceFreq  = 440.0
)

var pitchClassNames = [12]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// Frequency returns the equal-tempered frequency in Hz of an integer
// pitch, tuned to A4 = 440 Hz.
func Frequency(pitch int) float64 {
	return referenceFreq * math.Pow(2, float64(pitch-referencePitch)/12)
}

// PitchClassName returns the sharp-spelled name of a pitch class, e.g.
// "C#" for pitch class 1. Any integer pitch is accepted.
func PitchClassName(pitch int) string {
	return pitchClassNames[(pitch%12+12)%12]
}

// ParsePitch parses a note name with octave, e.g. "C4", "F#3", "Bb-1",
// into an integer pitch ("C4" = 60).
func ParsePitch(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("chord: empty note name")
	}

	rest := s[1:]
	class := strings.IndexByte("C.D.EF.G.A.B", s[0])
	if class < 0 || s[0] == '.' {
		return 0, fmt.Errorf("chord: invalid note name %q", s)
	}

	for len(rest) > 0 {
		if rest[0] == '#' {
			class++
		} else if rest[0] == 'b' {
			class--
		} else {
			break
		}
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("chord: invalid octave in %q", s)
	}

	return (octave+1)*12 + class, nil
}
