package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarlcorp/peoplegen/internal/people"
)

var now = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

func person(g people.Gender, born int, ssn string, salary int) people.Person {
	return people.Person{
		FirstName: "A",
		LastName:  "B",
		Gender:    g,
		BirthDate: time.Date(born, time.January, 1, 0, 0, 0, 0, time.UTC),
		SSN:       ssn,
		Salary:    salary,
	}
}

func TestSummarize(t *testing.T) {
	pop := people.Population{
		People: []people.Person{
			person(people.Female, 1976, "900-01-0001", 50000),
			person(people.Male, 1986, "900-01-0001", 60000),
			person(people.Female, 1996, "900-01-0002", 70000),
		},
		SSN:    true,
		Salary: true,
		Seed:   42,
	}

	s, err := Summarize(pop, now)
	require.NoError(t, err)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Female)
	assert.Equal(t, 1, s.Male)
	assert.Equal(t, 1, s.DuplicateSSNs)
	assert.InDelta(t, 40, s.Age.Median, 0.1)
	assert.InDelta(t, 30, s.Age.Min, 0.1)
	assert.InDelta(t, 50, s.Age.Max, 0.1)

	require.NotNil(t, s.Salary)
	assert.InDelta(t, 60000, s.Salary.Mean, 1e-9)
	assert.InDelta(t, 50000, s.Salary.Min, 1e-9)
	assert.InDelta(t, 70000, s.Salary.Max, 1e-9)

	out := s.Render("peoplegen")
	assert.Contains(t, out, "peoplegen")
	assert.Contains(t, out, "female 2, male 1")
	assert.Contains(t, out, "mean 60000")
	assert.Contains(t, out, "1 repeated ssn(s)")
	assert.Contains(t, out, "42")
}

func TestSummarizeWithoutSalary(t *testing.T) {
	pop := people.Population{People: []people.Person{person(people.Male, 2000, "", 0)}}
	s, err := Summarize(pop, now)
	require.NoError(t, err)
	assert.Nil(t, s.Salary)
	assert.Zero(t, s.DuplicateSSNs)
	assert.NotContains(t, s.Render("x"), "salary")
}

func TestSummarizeEmpty(t *testing.T) {
	s, err := Summarize(people.Population{}, now)
	require.NoError(t, err)
	assert.Zero(t, s.Total)
	assert.NotContains(t, s.Render("x"), "age")
}
