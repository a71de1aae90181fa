package dots

import "math/rand"

// Source produces the colors of freshly generated dots.
type Source interface {
	NextColor() Color
}

// RandSource draws colors uniformly from a palette.
type RandSource struct {
	rng     *rand.Rand
	palette []Color
}

// NewRandSource creates a seeded source over the first paletteSize colors.
// The same seed always yields the same stream.
func NewRandSource(seed int64, paletteSize int) *RandSource {
	return &RandSource{
		rng:     rand.New(rand.NewSource(seed)),
		palette: Palette(paletteSize),
	}
}

// NextColor returns the next color in the stream.
func (s *RandSource) NextColor() Color {
	return s.palette[s.rng.Intn(len(s.palette))]
}

// PaletteSize returns the number of colors this source draws from.
func (s *RandSource) PaletteSize() int {
	return len(s.palette)
}

// SequenceSource replays a fixed list of colors, cycling when exhausted.
// Useful for scripted refills.
type SequenceSource struct {
	colors []Color
	next   int
	draws  int
}

// NewSequenceSource creates a source that yields colors in order.
// An empty list yields ColorRed forever.
func NewSequenceSource(colors ...Color) *SequenceSource {
	if len(colors) == 0 {
		colors = []Color{ColorRed}
	}
	return &SequenceSource{colors: colors}
}

// NextColor returns the next scripted color.
func (s *SequenceSource) NextColor() Color {
	c := s.colors[s.next]
	s.next = (s.next + 1) % len(s.colors)
	s.draws++
	return c
}

// Draws returns how many colors have been drawn so far.
func (s *SequenceSource) Draws() int {
	return s.draws
}
