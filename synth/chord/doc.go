// Package chord provides a validated, immutable catalog of named chord
// templates and the pitch resolution built on top of it.
//
// A template is an ordered list of semitone intervals above a root.
// Intervals beyond 11 (9ths, 11ths, 13ths) are kept as-is; nothing is
// reduced modulo 12 unless the caller asks for pitch classes.
//
// Common workflows:
//   - NewCatalog(templates, opts...) then Lookup(name)
//   - ResolvePitches(root, tmpl) for a concrete voicing
//   - CollapsePitchClasses(root, tmpl) when only chord identity matters
package chord
