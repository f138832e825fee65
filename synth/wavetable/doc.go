// Package wavetable turns waveform templates into fixed-length,
// peak-normalized one-cycle sample buffers ready for an oscillator to
// loop over.
//
// Rendering is a pure function of (template, table size):
//
//   - harmonic templates are summed additively, sample by sample;
//   - points templates are copied bit-exactly when the stored cycle
//     already has the requested length, and resampled by cyclic linear
//     interpolation otherwise;
//   - the result is peak-normalized to [-1, 1]; an all-zero table stays
//     all-zero.
//
// Identical inputs always yield identical output, which licenses the
// compute-once memoization in Cache.
//
// Common workflows:
//   - Render(tmpl, n) for one-shot rendering
//   - New(WithWorkers(k)).Render(tmpl, n) for chunked rendering of large tables
//   - NewCache(nil).Get(tmpl, n) for memoized rendering
//   - Spectrum(table) to recover harmonic content from a rendered table
package wavetable
