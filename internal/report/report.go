// Package report summarizes a generated population for the terminal.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/montanaflynn/stats"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/peoplegen/internal/people"
)

// Stats describes one numeric column.
type Stats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
}

// Summary is what a run produced.
type Summary struct {
	Total  int
	Female int
	Male   int
	Seed   uint64

	Age    Stats  // in years, as of the summary time
	Salary *Stats // nil when salaries were not generated

	DuplicateSSNs int
}

// Summarize computes a summary of pop with ages taken at now.
func Summarize(pop people.Population, now time.Time) (Summary, error) {
	s := Summary{
		Total:  pop.Len(),
		Female: pop.Count(people.Female),
		Male:   pop.Count(people.Male),
		Seed:   pop.Seed,
	}
	if pop.Len() == 0 {
		return s, nil
	}

	ages := make([]float64, 0, pop.Len())
	salaries := make([]float64, 0, pop.Len())
	ssns := make(map[string]struct{}, pop.Len())
	for _, p := range pop.People {
		ages = append(ages, now.Sub(p.BirthDate).Hours()/24/365.25)
		if pop.Salary {
			salaries = append(salaries, float64(p.Salary))
		}
		if pop.SSN {
			if _, dup := ssns[p.SSN]; dup {
				s.DuplicateSSNs++
			}
			ssns[p.SSN] = struct{}{}
		}
	}

	var err error
	if s.Age, err = describe(ages); err != nil {
		return s, fmt.Errorf("summarize ages: %w", err)
	}

	if pop.Salary {
		sal, err := describe(salaries)
		if err != nil {
			return s, fmt.Errorf("summarize salaries: %w", err)
		}
		s.Salary = &sal
	}

	return s, nil
}

func describe(data []float64) (Stats, error) {
	var (
		st  Stats
		err error
	)
	if st.Mean, err = stats.Mean(data); err != nil {
		return st, err
	}
	if st.StdDev, err = stats.StandardDeviation(data); err != nil {
		return st, err
	}
	if st.Min, err = stats.Min(data); err != nil {
		return st, err
	}
	if st.Max, err = stats.Max(data); err != nil {
		return st, err
	}
	if st.Median, err = stats.Median(data); err != nil {
		return st, err
	}
	return st, nil
}

var indent = lipgloss.NewStyle().PaddingLeft(2)

// Render formats the summary for a terminal.
func (s Summary) Render(title string) string {
	var lines []string
	lines = append(lines, zstyle.Title.Render(title))
	lines = append(lines, row("people", fmt.Sprintf("%d (female %d, male %d)", s.Total, s.Female, s.Male)))
	if s.Total > 0 {
		lines = append(lines, row("age", fmt.Sprintf("%.1f-%.1f years, median %.1f",
			s.Age.Min, s.Age.Max, s.Age.Median)))
	}
	if s.Salary != nil {
		lines = append(lines, row("salary", fmt.Sprintf("mean %.0f, sd %.0f, min %.0f, max %.0f",
			s.Salary.Mean, s.Salary.StdDev, s.Salary.Min, s.Salary.Max)))
	}
	if s.DuplicateSSNs > 0 {
		lines = append(lines, indent.Render(zstyle.StatusWarn.Render(
			fmt.Sprintf("%d repeated ssn(s)", s.DuplicateSSNs))))
	}
	lines = append(lines, row("seed", fmt.Sprintf("%d", s.Seed)))
	return strings.Join(lines, "\n") + "\n"
}

func row(label, v string) string {
	return indent.Render(zstyle.MutedText.Render(fmt.Sprintf("%-7s", label)) + " " + v)
}
