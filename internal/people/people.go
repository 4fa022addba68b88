// Package people synthesizes fake person records from weighted name corpora.
// All randomness for a run comes from one seeded stream, so a seed and the
// same corpora reproduce the same population.
package people

import (
	"fmt"
	"strings"
	"time"
)

// Gender selects the first-name pool of a person.
type Gender int

const (
	Male Gender = iota + 1
	Female
)

// String returns the single-letter code, "M" or "F".
func (g Gender) String() string {
	switch g {
	case Male:
		return "M"
	case Female:
		return "F"
	default:
		return fmt.Sprintf("Gender(%d)", int(g))
	}
}

// ParseGender accepts "M", "F", "male" or "female" in any case.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male":
		return Male, nil
	case "f", "female":
		return Female, nil
	default:
		return 0, fmt.Errorf("unknown gender %q", s)
	}
}

func (g Gender) MarshalText() ([]byte, error) {
	if g != Male && g != Female {
		return nil, fmt.Errorf("marshal gender: invalid value %d", int(g))
	}
	return []byte(g.String()), nil
}

func (g *Gender) UnmarshalText(b []byte) error {
	v, err := ParseGender(string(b))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// DateLayout is how birth dates are written.
const DateLayout = "2006-01-02"

// Person is one generated record. SSN and Salary are only meaningful when
// the owning Population says they were generated.
type Person struct {
	ID         string    `json:"id,omitempty"`
	FirstName  string    `json:"first_name"`
	MiddleName string    `json:"middle_name"`
	LastName   string    `json:"last_name"`
	Gender     Gender    `json:"gender"`
	BirthDate  time.Time `json:"birth_date"`
	SSN        string    `json:"ssn,omitempty"`
	Salary     int       `json:"salary,omitempty"`
}

// Population is the ordered result of one run.
type Population struct {
	People []Person `json:"people"`
	SSN    bool     `json:"ssn"`
	Salary bool     `json:"salary"`
	IDs    IDMode   `json:"ids"`
	Seed   uint64   `json:"seed"`
}

// Len returns the number of people.
func (p Population) Len() int { return len(p.People) }

// Count returns how many people have gender g.
func (p Population) Count(g Gender) int {
	n := 0
	for _, person := range p.People {
		if person.Gender == g {
			n++
		}
	}
	return n
}
