package chord

// BuiltinTemplates returns the stock chord set: the classic triads and
// sevenths plus extended voicings whose 9th/11th/13th intervals live in
// the upper octave. The slice is freshly allocated on every call.
func BuiltinTemplates() []Template {
	return []Template{
		{Name: "major", Intervals: []int{0, 4, 7}, Description: "Major triad (1, 3, 5)"},
		{Name: "minor", Intervals: []int{0, 3, 7}, Description: "Minor triad (1, b3, 5)"},
		{Name: "diminished", Intervals: []int{0, 3, 6}, Description: "Diminished triad (1, b3, b5)"},
		{Name: "augmented", Intervals: []int{0, 4, 8}, Description: "Augmented triad (1, 3, #5)"},
		{Name: "major7", Intervals: []int{0, 4, 7, 11}, Description: "Major seventh (1, 3, 5, 7)"},
		{Name: "minor7", Intervals: []int{0, 3, 7, 10}, Description: "Minor seventh (1, b3, 5, b7)"},
		{Name: "dominant7", Intervals: []int{0, 4, 7, 10}, Description: "Dominant seventh (1, 3, 5, b7)"},
		{Name: "sus2", Intervals: []int{0, 2, 7}, Description: "Suspended 2nd (1, 2, 5)"},
		{Name: "sus4", Intervals: []int{0, 5, 7}, Description: "Suspended 4th (1, 4, 5)"},
		{Name: "add9", Intervals: []int{0, 4, 7, 14}, Description: "Added 9th (1, 3, 5, 9)"},
		{Name: "major9", Intervals: []int{0, 4, 7, 11, 14}, Description: "Major ninth (1, 3, 5, 7, 9)"},
		{Name: "minor9", Intervals: []int{0, 3, 7, 10, 14}, Description: "Minor ninth (1, b3, 5, b7, 9)"},
		{Name: "dominant9", Intervals: []int{0, 4, 7, 10, 14}, Description: "Dominant ninth (1, 3, 5, b7, 9)"},
		{Name: "major11", Intervals: []int{0, 4, 7, 11, 14, 17}, Description: "Major eleventh (1, 3, 5, 7, 9, 11)"},
		{Name: "minor11", Intervals: []int{0, 3, 7, 10, 14, 17}, Description: "Minor eleventh (1, b3, 5, b7, 9, 11)"},
		{Name: "dominant13", Intervals: []int{0, 4, 7, 10, 14, 21}, Description: "Dominant thirteenth (1, 3, 5, b7, 9, 13)"},
	}
}
