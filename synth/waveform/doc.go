// Package waveform provides a validated, immutable catalog of named
// waveform templates.
//
// A template is one of two representation kinds:
//
//   - KindHarmonic: an additive recipe, a list of sinusoidal partials
//     with frequency multipliers relative to the fundamental. Multipliers
//     need not be integers; inharmonic partials are valid data.
//   - KindPoints: one raw cycle of samples of arbitrary length, read
//     cyclically (index len aliases index 0).
//
// Templates are opaque data: validation checks structure only, never
// musical or spectral plausibility, and nothing is repaired or
// reinterpreted on the way in. Rendering lives in the wavetable package.
package waveform
