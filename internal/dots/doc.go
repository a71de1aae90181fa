// Package dots implements the logic of a Dots-style puzzle: a square board of
// colored dots, a path builder driven by pointer gestures, and a controller
// that scores, removes, settles and refills.
//
// The package is UI-agnostic and deterministic for a given seed. Renderers,
// audio and animation live behind the Observer interface.
package dots
