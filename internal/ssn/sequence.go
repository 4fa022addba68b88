package ssn

// Sequence walks the unissued space in order: 900-01-0001, 900-01-0002, ...
// 900-99-9999, 901-01-0001, ... ending at 666-99-9999.
// A Sequence is not safe for concurrent use.
type Sequence struct {
	areas     []int
	groupMin  int
	groupMax  int
	serialMin int
	serialMax int
	autoReset bool

	area   int // index into areas
	group  int
	serial int
	done   bool
}

// NewSequence returns a sequence that stops after the last number.
func NewSequence() *Sequence {
	return newSequence(Areas(), groupMin, groupMax, serialMin, serialMax, false)
}

// NewCyclingSequence returns a sequence that starts over after the last
// number instead of stopping.
func NewCyclingSequence() *Sequence {
	return newSequence(Areas(), groupMin, groupMax, serialMin, serialMax, true)
}

func newSequence(areas []int, gmin, gmax, smin, smax int, autoReset bool) *Sequence {
	s := &Sequence{
		areas:     areas,
		groupMin:  gmin,
		groupMax:  gmax,
		serialMin: smin,
		serialMax: smax,
		autoReset: autoReset,
	}
	s.Reset()
	return s
}

// Reset rewinds to the first number.
func (s *Sequence) Reset() {
	s.area = 0
	s.group = s.groupMin
	s.serial = s.serialMin
	s.done = false
}

// Total returns how many numbers one pass yields.
func (s *Sequence) Total() int {
	return len(s.areas) * (s.groupMax - s.groupMin + 1) * (s.serialMax - s.serialMin + 1)
}

// Next returns the next number. ok is false once a non-cycling sequence is
// exhausted.
func (s *Sequence) Next() (v string, ok bool) {
	if s.done {
		if !s.autoReset {
			return "", false
		}
		s.Reset()
	}

	v = Format(s.areas[s.area], s.group, s.serial)
	s.advance()
	return v, true
}

func (s *Sequence) advance() {
	if s.serial < s.serialMax {
		s.serial++
		return
	}
	s.serial = s.serialMin

	if s.group < s.groupMax {
		s.group++
		return
	}
	s.group = s.groupMin

	if s.area < len(s.areas)-1 {
		s.area++
		return
	}
	s.done = true
}
