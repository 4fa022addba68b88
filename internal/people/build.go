package people

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/zarlcorp/peoplegen/internal/corpus"
	"github.com/zarlcorp/peoplegen/internal/ssn"
)

type buildOptions struct {
	progress func(done, total int)
	logger   *slog.Logger
}

// BuildOption configures Build.
type BuildOption func(*buildOptions)

// WithProgress calls fn after each person is generated.
func WithProgress(fn func(done, total int)) BuildOption {
	return func(o *buildOptions) { o.progress = fn }
}

// WithLogger sets the logger for run diagnostics. The default is slog.Default().
func WithLogger(l *slog.Logger) BuildOption {
	return func(o *buildOptions) { o.logger = l }
}

// Split divides total between the genders. The female count is
// total*femaleFraction rounded half away from zero; males get the rest.
// An odd total at 0.5 therefore gives the extra person to the female group.
func Split(total int, femaleFraction float64) (female, male int) {
	female = int(math.Round(float64(total) * femaleFraction))
	female = max(0, min(female, total))
	return female, total - female
}

// Build generates a population of exactly cfg.Total people. The config is
// validated before the corpora are looked at, and nothing is returned unless
// every person was generated.
func Build(c corpus.Set, cfg Config, opts ...BuildOption) (Population, error) {
	o := buildOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	g, err := NewGenerator(c, cfg)
	if err != nil {
		return Population{}, fmt.Errorf("build population: %w", err)
	}

	female, male := Split(cfg.Total, cfg.FemaleFraction)
	o.logger.Debug("building population",
		"total", cfg.Total, "female", female, "male", male, "seed", g.Seed())

	if cfg.IncludeSSN && cfg.Total > ssn.Space {
		o.logger.Warn("population exceeds the fake ssn space, numbers will repeat",
			"total", cfg.Total, "space", ssn.Space)
	}

	people := make([]Person, 0, cfg.Total)
	slots := []struct {
		gender Gender
		n      int
	}{
		{Male, male},
		{Female, female},
	}
	for _, s := range slots {
		for range s.n {
			p, err := g.Person(s.gender)
			if err != nil {
				return Population{}, fmt.Errorf("build population: person %d: %w", len(people)+1, err)
			}
			people = append(people, p)
			if o.progress != nil {
				o.progress(len(people), cfg.Total)
			}
		}
	}

	if cfg.Shuffle {
		g.rng.Shuffle(len(people), func(i, j int) {
			people[i], people[j] = people[j], people[i]
		})
	}

	if cfg.IDs != IDNone {
		for i := range people {
			id, err := g.id(i)
			if err != nil {
				return Population{}, fmt.Errorf("build population: %w", err)
			}
			people[i].ID = id
		}
	}

	return Population{
		People: people,
		SSN:    cfg.IncludeSSN,
		Salary: cfg.IncludeSalary,
		IDs:    cfg.IDs,
		Seed:   g.Seed(),
	}, nil
}
