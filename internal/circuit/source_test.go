package circuit

import "testing"

// scriptedSource replays fixed draws and fails the test when it runs dry.
type scriptedSource struct {
	t      testing.TB
	floats []float64
	ints   []int
	intNs  []int
}

func script(t testing.TB, floats ...float64) *scriptedSource {
	return &scriptedSource{t: t, floats: floats}
}

func (s *scriptedSource) withInts(ints ...int) *scriptedSource {
	s.ints = ints
	return s
}

func (s *scriptedSource) Float64() float64 {
	s.t.Helper()
	if len(s.floats) == 0 {
		s.t.Fatal("scripted source: no float draws left")
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) IntN(n int) int {
	s.t.Helper()
	s.intNs = append(s.intNs, n)
	if len(s.ints) == 0 {
		s.t.Fatal("scripted source: no int draws left")
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func (s *scriptedSource) drained() bool { return len(s.floats) == 0 && len(s.ints) == 0 }
