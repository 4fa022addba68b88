package people

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/zarlcorp/peoplegen/internal/corpus"
	"github.com/zarlcorp/peoplegen/internal/ssn"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generator produces the fields of one run from a single random stream.
// A Generator is not safe for concurrent use; build one per run.
type Generator struct {
	corpora corpus.Set
	cfg     Config
	seed    uint64

	src    *rand.ChaCha8 // shared by rng, salary and uuid draws
	rng    *rand.Rand
	salary distuv.Normal
	ssns   *ssn.Sequence
}

// NewGenerator validates cfg and corpora and seeds the run stream.
func NewGenerator(c corpus.Set, cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkCorpora(c); err != nil {
		return nil, err
	}

	seed := NewSeed()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	src := rand.NewChaCha8(key)

	g := &Generator{
		corpora: c,
		cfg:     cfg,
		seed:    seed,
		src:     src,
		rng:     rand.New(src),
		salary:  distuv.Normal{Mu: cfg.SalaryMean, Sigma: cfg.SalarySigma, Src: src},
	}
	if cfg.SSNMode == SSNSequential {
		g.ssns = ssn.NewCyclingSequence()
	}
	return g, nil
}

// Seed returns the seed of the run stream.
func (g *Generator) Seed() uint64 { return g.seed }

// FirstName draws a first name from the pool for gender.
func (g *Generator) FirstName(gender Gender) string {
	return g.firstNames(gender).Pick(g.rng)
}

// MiddleName draws a middle name. Middle names share the first-name pools.
func (g *Generator) MiddleName(gender Gender) string {
	return g.firstNames(gender).Pick(g.rng)
}

// LastName draws a last name; the pool does not depend on gender.
func (g *Generator) LastName() string {
	return g.corpora.Last.Pick(g.rng)
}

// BirthDate draws a calendar date uniformly from the configured range.
func (g *Generator) BirthDate() time.Time {
	from, to := day(g.cfg.BirthFrom), day(g.cfg.BirthTo)
	days := (to.Unix() - from.Unix()) / 86400
	return from.AddDate(0, 0, int(g.rng.Int64N(days+1)))
}

// SSN returns the next fake Social Security number.
func (g *Generator) SSN() string {
	if g.ssns != nil {
		v, _ := g.ssns.Next() // cycling sequences never run out
		return v
	}
	return ssn.Random(g.rng)
}

// Salary draws from the configured normal distribution, rounded to the
// nearest whole number. A draw that is negative or does not fit in an int is
// never clamped or retried: it returns a *SalaryError.
func (g *Generator) Salary() (int, error) {
	v := g.salary.Rand()
	r := math.Round(v)
	if v < 0 || r >= maxSalary {
		return 0, &SalaryError{Mean: g.cfg.SalaryMean, Sigma: g.cfg.SalarySigma, Draw: v}
	}
	return int(r), nil
}

// maxSalary is math.MaxInt as a float64. On 64-bit platforms it rounds up to
// 2^63, so draws at or above it do not fit in an int.
const maxSalary = float64(math.MaxInt)

// Person synthesizes one complete record for gender.
func (g *Generator) Person(gender Gender) (Person, error) {
	if gender != Male && gender != Female {
		return Person{}, fmt.Errorf("synthesize person: invalid gender %d", int(gender))
	}

	p := Person{
		FirstName:  g.FirstName(gender),
		MiddleName: g.MiddleName(gender),
		LastName:   g.LastName(),
		Gender:     gender,
		BirthDate:  g.BirthDate(),
	}

	if g.cfg.IncludeSSN {
		p.SSN = g.SSN()
	}

	if g.cfg.IncludeSalary {
		s, err := g.Salary()
		if err != nil {
			return Person{}, err
		}
		p.Salary = s
	}

	return p, nil
}

// id returns the identifier for the person at output position i.
func (g *Generator) id(i int) (string, error) {
	switch g.cfg.IDs {
	case IDSequential:
		return strconv.Itoa(i + 1), nil
	case IDUUID:
		u, err := uuid.NewRandomFromReader(g.src)
		if err != nil {
			return "", fmt.Errorf("generate id: %w", err)
		}
		return u.String(), nil
	default:
		return "", nil
	}
}

func (g *Generator) firstNames(gender Gender) *corpus.Pool {
	if gender == Female {
		return g.corpora.Female
	}
	return g.corpora.Male
}

func checkCorpora(c corpus.Set) error {
	pools := []struct {
		label string
		pool  *corpus.Pool
	}{
		{"male first names", c.Male},
		{"female first names", c.Female},
		{"last names", c.Last},
	}
	for _, p := range pools {
		if p.pool == nil {
			return &corpus.Error{Path: p.label, Err: errors.New("pool not loaded")}
		}
	}
	return nil
}

// NewSeed returns a seed from crypto/rand.
func NewSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return binary.LittleEndian.Uint64(b[:])
}
