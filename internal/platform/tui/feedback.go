package tui

import (
	"io"

	"github.com/vovakirdan/tui-dots/internal/config"
	"github.com/vovakirdan/tui-dots/internal/dots"
)

// flashFrames is how many ticks the board frame stays highlighted after a removal.
const flashFrames = 12

const bell = "\a"

// Feedback is an observer that stands in for the sound and vibration of a
// touch device: it rings the terminal bell and flashes the board frame
// whenever dots are removed.
type Feedback struct {
	prefs config.FeedbackConfig
	out   io.Writer
	flash int
	rings int
}

// NewFeedback creates a feedback observer. The bell is written to out.
func NewFeedback(prefs config.FeedbackConfig, out io.Writer) *Feedback {
	return &Feedback{prefs: prefs, out: out}
}

// Notify reacts to removals and resets.
func (f *Feedback) Notify(e dots.Event) {
	switch e.(type) {
	case dots.DotsRemoved:
		if f.prefs.Sound && f.out != nil {
			//nolint:errcheck // Best-effort bell
			io.WriteString(f.out, bell)
			f.rings++
		}
		if f.prefs.Vibrate {
			f.flash = flashFrames
		}
	case dots.SessionReset:
		f.flash = 0
	}
}

// Tick decays the frame flash by one frame.
func (f *Feedback) Tick() {
	if f.flash > 0 {
		f.flash--
	}
}

// Flashing returns true while the board frame should be highlighted.
func (f *Feedback) Flashing() bool {
	return f.flash > 0
}

// Rings returns how many times the bell has been rung.
func (f *Feedback) Rings() int {
	return f.rings
}
