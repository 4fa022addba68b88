package people

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	DefaultFemaleFraction = 0.5
	DefaultSalaryMean     = 58260
	DefaultSalarySigma    = 5000

	// birth years default to this many years before the current year
	DefaultMinAge = 18
	DefaultMaxAge = 90
)

var (
	// ErrInvalidCount is returned when the requested total is not positive.
	ErrInvalidCount = errors.New("invalid count")

	// ErrInvalidRatio is returned for a female fraction outside [0, 1].
	ErrInvalidRatio = errors.New("invalid gender ratio")

	// ErrInvalidDateRange is returned when the birth date range is empty or unset.
	ErrInvalidDateRange = errors.New("invalid birth date range")

	// ErrInvalidSalaryParameters is returned for a salary mean and sigma that
	// are negative or that produced a negative or oversized salary.
	ErrInvalidSalaryParameters = errors.New("invalid salary parameters")
)

// SalaryError reports a salary draw that is negative or too large for an
// int. It matches ErrInvalidSalaryParameters.
type SalaryError struct {
	Mean  float64
	Sigma float64
	Draw  float64
}

func (e *SalaryError) Error() string {
	if e.Draw < 0 {
		return fmt.Sprintf("%v: mean %g and sigma %g produced negative salary %.2f",
			ErrInvalidSalaryParameters, e.Mean, e.Sigma, e.Draw)
	}
	return fmt.Sprintf("%v: mean %g and sigma %g produced salary %g, beyond the int range",
		ErrInvalidSalaryParameters, e.Mean, e.Sigma, e.Draw)
}

func (e *SalaryError) Unwrap() error { return ErrInvalidSalaryParameters }

// SSNMode chooses how SSNs are produced.
type SSNMode int

const (
	// SSNRandom draws each number independently; repeats may occur.
	SSNRandom SSNMode = iota
	// SSNSequential walks the unissued space in order and cycles when exhausted.
	SSNSequential
)

func (m SSNMode) String() string {
	if m == SSNSequential {
		return "sequential"
	}
	return "random"
}

// ParseSSNMode parses "random" or "sequential".
func ParseSSNMode(s string) (SSNMode, error) {
	switch strings.ToLower(s) {
	case "", "random":
		return SSNRandom, nil
	case "sequential", "seq":
		return SSNSequential, nil
	default:
		return 0, fmt.Errorf("unknown ssn mode %q (want random or sequential)", s)
	}
}

// IDMode chooses what, if anything, goes in Person.ID.
type IDMode int

const (
	IDNone IDMode = iota
	// IDSequential numbers people 1..N in output order.
	IDSequential
	// IDUUID gives each person a version 4 UUID drawn from the run stream.
	IDUUID
)

func (m IDMode) String() string {
	switch m {
	case IDSequential:
		return "seq"
	case IDUUID:
		return "uuid"
	default:
		return "none"
	}
}

// ParseIDMode parses "none", "seq" or "uuid".
func ParseIDMode(s string) (IDMode, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return IDNone, nil
	case "seq", "sequential":
		return IDSequential, nil
	case "uuid":
		return IDUUID, nil
	default:
		return 0, fmt.Errorf("unknown id format %q (want none, seq or uuid)", s)
	}
}

// Config describes one generation run.
type Config struct {
	Total          int
	FemaleFraction float64

	// inclusive, only the calendar date is used
	BirthFrom time.Time
	BirthTo   time.Time

	IncludeSSN bool
	SSNMode    SSNMode

	IncludeSalary bool
	SalaryMean    float64
	SalarySigma   float64

	IDs     IDMode
	Shuffle bool

	// Seed fixes the random stream. nil picks a fresh seed, reported in
	// Population.Seed.
	Seed *uint64
}

// DefaultConfig returns the defaults for a run of total people, with
// birth years DefaultMaxAge..DefaultMinAge years before now.
func DefaultConfig(total int, now time.Time) Config {
	from, to := YearRange(now.Year()-DefaultMaxAge, now.Year()-DefaultMinAge)
	return Config{
		Total:          total,
		FemaleFraction: DefaultFemaleFraction,
		BirthFrom:      from,
		BirthTo:        to,
		SalaryMean:     DefaultSalaryMean,
		SalarySigma:    DefaultSalarySigma,
		Shuffle:        true,
	}
}

// YearRange returns Jan 1 of minYear through Dec 31 of maxYear.
func YearRange(minYear, maxYear int) (from, to time.Time) {
	return time.Date(minYear, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(maxYear, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// Validate checks the config. The count is checked first.
func (c Config) Validate() error {
	if c.Total <= 0 {
		return fmt.Errorf("%w: %d (must be at least 1)", ErrInvalidCount, c.Total)
	}
	if math.IsNaN(c.FemaleFraction) || c.FemaleFraction < 0 || c.FemaleFraction > 1 {
		return fmt.Errorf("%w: female fraction %v not in [0, 1]", ErrInvalidRatio, c.FemaleFraction)
	}
	if c.BirthFrom.IsZero() || c.BirthTo.IsZero() {
		return fmt.Errorf("%w: range not set", ErrInvalidDateRange)
	}
	if day(c.BirthFrom).After(day(c.BirthTo)) {
		return fmt.Errorf("%w: %s is after %s", ErrInvalidDateRange,
			c.BirthFrom.Format(DateLayout), c.BirthTo.Format(DateLayout))
	}
	if c.IncludeSalary && (!finiteNonNegative(c.SalaryMean) || !finiteNonNegative(c.SalarySigma)) {
		return fmt.Errorf("%w: mean %v and sigma %v must be non-negative",
			ErrInvalidSalaryParameters, c.SalaryMean, c.SalarySigma)
	}
	return nil
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// day truncates t to midnight UTC of its calendar date.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
