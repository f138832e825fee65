// Package core provides small numeric and buffer helpers shared by the
// synth packages.
package core
