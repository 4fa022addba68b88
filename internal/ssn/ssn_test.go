package ssn

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomStaysInUnissuedSpace(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 0))
	seen666 := false
	for range 20000 {
		v := Random(r)
		require.Regexp(t, Pattern, v)
		require.True(t, Valid(v), "invalid ssn %q", v)

		area, err := strconv.Atoi(v[:3])
		require.NoError(t, err)
		if area == 666 {
			seen666 = true
		}
		assert.NotEqual(t, "00", v[4:6])
		assert.NotEqual(t, "0000", v[7:])
	}
	// 666 is one of 101 areas; 20000 draws miss it with probability ~1e-86
	assert.True(t, seen666, "area 666 never drawn")
}

func TestRandomDeterministic(t *testing.T) {
	a := rand.New(rand.NewPCG(9, 9))
	b := rand.New(rand.NewPCG(9, 9))
	for range 100 {
		assert.Equal(t, Random(a), Random(b))
	}
}

func TestSpace(t *testing.T) {
	assert.Equal(t, 99_980_001, Space)
	assert.Equal(t, Space, NewSequence().Total())
	assert.Len(t, Areas(), 101)
}

func TestValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"900-01-0001", true},
		{"666-99-9999", true},
		{"999-50-1234", true},
		{"123-45-6789", false},
		{"899-01-0001", false},
		{"900-00-0001", false},
		{"900-01-0000", false},
		{"9000-1-0001", false},
		{"900010001", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.in))
		})
	}
}

func TestSequenceFirstValues(t *testing.T) {
	s := NewSequence()
	for _, want := range []string{"900-01-0001", "900-01-0002", "900-01-0003"} {
		got, ok := s.Next()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestSequenceTwoAreas(t *testing.T) {
	s := newSequence([]int{900, 901}, 1, 2, 1, 2, false)
	assert.Equal(t, 8, s.Total())

	want := []string{
		"900-01-0001", "900-01-0002", "900-02-0001", "900-02-0002",
		"901-01-0001", "901-01-0002", "901-02-0001", "901-02-0002",
	}
	for _, w := range want {
		got, ok := s.Next()
		require.True(t, ok)
		assert.Equal(t, w, got)
	}

	_, ok := s.Next()
	assert.False(t, ok, "sequence should be exhausted")

	s.Reset()
	got, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, "900-01-0001", got)
}

func TestSequenceAutoReset(t *testing.T) {
	s := newSequence([]int{900}, 1, 2, 1, 2, true)
	var got []string
	for range 5 {
		v, ok := s.Next()
		require.True(t, ok)
		got = append(got, v)
	}
	assert.Equal(t, []string{
		"900-01-0001", "900-01-0002", "900-02-0001", "900-02-0002", "900-01-0001",
	}, got)
}

func TestSequenceEndsWith666(t *testing.T) {
	s := newSequence(Areas()[99:], 99, 99, 9999, 9999, false)
	first, _ := s.Next()
	last, _ := s.Next()
	assert.Equal(t, "999-99-9999", first)
	assert.Equal(t, "666-99-9999", last)
}
