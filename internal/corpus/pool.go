package corpus

import (
	"fmt"
	"math/rand/v2"
	"sort"
)

// Entry is one name and its relative frequency.
type Entry struct {
	Name   string
	Weight float64
}

// Pool is an immutable weighted name list.
// Draws are with replacement and proportional to weight.
type Pool struct {
	entries []Entry
	cum     []float64 // cum[i] = sum of weights [0, i]
	last    int       // index of the last entry with a positive weight
}

// New builds a pool from entries. It fails with ErrEmpty when there is
// nothing to draw from.
func New(entries []Entry) (*Pool, error) {
	if len(entries) == 0 {
		return nil, ErrEmpty
	}

	p := &Pool{
		entries: make([]Entry, len(entries)),
		cum:     make([]float64, len(entries)),
		last:    -1,
	}
	copy(p.entries, entries)

	var total float64
	for i, e := range p.entries {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: negative weight for %q", ErrMalformed, e.Name)
		}
		total += e.Weight
		p.cum[i] = total
		if e.Weight > 0 {
			p.last = i
		}
	}

	if p.last < 0 {
		return nil, fmt.Errorf("%w: all weights are zero", ErrEmpty)
	}
	return p, nil
}

// Pick draws one name using r.
func (p *Pool) Pick(r *rand.Rand) string {
	x := r.Float64() * p.Total()
	i := sort.Search(len(p.cum), func(i int) bool { return p.cum[i] > x })
	if i > p.last {
		// x rounded up to the total
		i = p.last
	}
	return p.entries[i].Name
}

// Len returns the number of entries.
func (p *Pool) Len() int { return len(p.entries) }

// Total returns the sum of all weights.
func (p *Pool) Total() float64 { return p.cum[len(p.cum)-1] }

// Names returns the names in file order.
func (p *Pool) Names() []string {
	names := make([]string, len(p.entries))
	for i, e := range p.entries {
		names[i] = e.Name
	}
	return names
}

// Paths locates the three corpus files of a run.
type Paths struct {
	Male   string
	Female string
	Last   string
}

// Set holds the pools of one run. It is read-only once loaded.
type Set struct {
	Male   *Pool
	Female *Pool
	Last   *Pool
}

// LoadSet loads all three pools, failing on the first bad file.
func LoadSet(p Paths, opts ...Option) (Set, error) {
	male, err := LoadFile(p.Male, opts...)
	if err != nil {
		return Set{}, err
	}
	female, err := LoadFile(p.Female, opts...)
	if err != nil {
		return Set{}, err
	}
	last, err := LoadFile(p.Last, opts...)
	if err != nil {
		return Set{}, err
	}
	return Set{Male: male, Female: female, Last: last}, nil
}
