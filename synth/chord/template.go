package chord

import "fmt"

// Template is a named chord voicing: an ordered list of semitone offsets
// from the root. The template itself is root-agnostic.
type Template struct {
	Name        string
	Intervals   []int
	Description string
}

// Validate checks the structural invariants of a template: a non-empty,
// ascending, duplicate-free interval list that starts at the root (0).
// It does not judge musical plausibility; stylized entries pass as long
// as the structure holds.
func (t Template) Validate() error {
	if t.Name == "" {
		return ErrEmptyName
	}

	if len(t.Intervals) == 0 {
		return fmt.Errorf("%w: %q", ErrNoIntervals, t.Name)
	}

	if t.Intervals[0] != 0 {
		if t.Intervals[0] < 0 {
			return fmt.Errorf("%w: %q has interval %d", ErrNegativeInterval, t.Name, t.Intervals[0])
		}
		return fmt.Errorf("%w: %q starts at %d", ErrMissingRoot, t.Name, t.Intervals[0])
	}

	for i := 1; i < len(t.Intervals); i++ {
		prev, cur := t.Intervals[i-1], t.Intervals[i]
		switch {
		case cur == prev:
			return fmt.Errorf("%w: %q repeats %d", ErrDuplicateInterval, t.Name, cur)
		case cur < prev:
			return fmt.Errorf("%w: %q has %d after %d", ErrUnsortedIntervals, t.Name, cur, prev)
		}
	}

	return nil
}

// Voices returns the number of notes the template resolves to.
func (t Template) Voices() int {
	return len(t.Intervals)
}
