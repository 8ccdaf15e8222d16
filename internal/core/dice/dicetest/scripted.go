// Package dicetest provides deterministic dice sources for tests.
package dicetest

import "fmt"

// Scripted replays fixed values. Ints holds the raw Intn results (zero
// based, so a d20 showing 14 is scripted as 13) and Floats the Float64
// results. Running out of values panics so a test notices an unexpected draw.
type Scripted struct {
	Ints   []int
	Floats []float64

	intPos   int
	floatPos int
}

// Intn returns the next scripted integer. It panics if the value is outside
// [0, n).
func (s *Scripted) Intn(n int) int {
	if s.intPos >= len(s.Ints) {
		panic(fmt.Sprintf("dicetest: unexpected Intn(%d) draw #%d", n, s.intPos+1))
	}
	v := s.Ints[s.intPos]
	s.intPos++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("dicetest: scripted %d outside [0,%d)", v, n))
	}
	return v
}

// Float64 returns the next scripted float.
func (s *Scripted) Float64() float64 {
	if s.floatPos >= len(s.Floats) {
		panic(fmt.Sprintf("dicetest: unexpected Float64 draw #%d", s.floatPos+1))
	}
	v := s.Floats[s.floatPos]
	s.floatPos++
	return v
}

// Remaining reports how many scripted values were not consumed.
func (s *Scripted) Remaining() (ints, floats int) {
	return len(s.Ints) - s.intPos, len(s.Floats) - s.floatPos
}

// Die converts a face value (1-based) to the Intn result that produces it.
func Die(face int) int {
	return face - 1
}
