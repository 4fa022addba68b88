package output

import (
	"strconv"

	"github.com/zarlcorp/peoplegen/internal/people"
)

type field int

const (
	fieldID field = iota
	fieldFirstName
	fieldMiddleName
	fieldLastName
	fieldGender
	fieldBirthDate
	fieldSSN
	fieldSalary
)

// header names per style, indexed by field
var headers = map[HeaderStyle][8]string{
	Snake:  {"id", "first_name", "middle_name", "last_name", "gender", "birth_date", "ssn", "salary"},
	Camel:  {"id", "firstName", "middleName", "lastName", "gender", "birthDate", "ssn", "salary"},
	Pretty: {"ID", "First Name", "Middle Name", "Last Name", "Gender", "Birth Date", "SSN", "Salary"},
}

// fields returns the columns present in pop, in output order.
func fields(pop people.Population) []field {
	var fs []field
	if pop.IDs != people.IDNone {
		fs = append(fs, fieldID)
	}
	fs = append(fs, fieldFirstName, fieldMiddleName, fieldLastName, fieldGender, fieldBirthDate)
	if pop.SSN {
		fs = append(fs, fieldSSN)
	}
	if pop.Salary {
		fs = append(fs, fieldSalary)
	}
	return fs
}

func headerRow(fs []field, style HeaderStyle) []string {
	names := headers[style]
	row := make([]string, len(fs))
	for i, f := range fs {
		row[i] = names[f]
	}
	return row
}

// value returns the typed value of f: salary is an int, the rest strings.
func value(p people.Person, f field) any {
	switch f {
	case fieldID:
		return p.ID
	case fieldFirstName:
		return p.FirstName
	case fieldMiddleName:
		return p.MiddleName
	case fieldLastName:
		return p.LastName
	case fieldGender:
		return p.Gender.String()
	case fieldBirthDate:
		return p.BirthDate.Format(people.DateLayout)
	case fieldSSN:
		return p.SSN
	case fieldSalary:
		return p.Salary
	default:
		return nil
	}
}

func text(p people.Person, f field) string {
	if f == fieldSalary {
		return strconv.Itoa(p.Salary)
	}
	s, _ := value(p, f).(string)
	return s
}
