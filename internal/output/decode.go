package output

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/zarlcorp/peoplegen/internal/people"
)

// Decode parses JSON or JSON Lines output written with the same header
// style back into a population. Which optional fields exist is taken from
// the first record.
func Decode(r io.Reader, f Format, style HeaderStyle) (people.Population, error) {
	names, ok := headers[style]
	if !ok {
		return people.Population{}, fmt.Errorf("decode: unknown header style %d", int(style))
	}

	var records []map[string]json.RawMessage
	switch f {
	case JSON:
		var doc struct {
			People []map[string]json.RawMessage `json:"people"`
		}
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return people.Population{}, fmt.Errorf("decode json: %w", err)
		}
		records = doc.People
	case JSONL:
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 64*1024), 1024*1024)
		for sc.Scan() {
			if len(sc.Bytes()) == 0 {
				continue
			}
			var rec map[string]json.RawMessage
			if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
				return people.Population{}, fmt.Errorf("decode jsonl: line %d: %w", len(records)+1, err)
			}
			records = append(records, rec)
		}
		if err := sc.Err(); err != nil {
			return people.Population{}, fmt.Errorf("decode jsonl: %w", err)
		}
	default:
		return people.Population{}, &FormatError{Value: f.String()}
	}

	var pop people.Population
	if len(records) > 0 {
		rawID, hasID := records[0][names[fieldID]]
		_, pop.SSN = records[0][names[fieldSSN]]
		_, pop.Salary = records[0][names[fieldSalary]]
		if hasID {
			pop.IDs = idMode(rawID)
		}
	}

	pop.People = make([]people.Person, 0, len(records))
	for i, rec := range records {
		p, err := decodePerson(rec, names, pop)
		if err != nil {
			return people.Population{}, fmt.Errorf("decode: record %d: %w", i+1, err)
		}
		pop.People = append(pop.People, p)
	}
	return pop, nil
}

func decodePerson(rec map[string]json.RawMessage, names [8]string, pop people.Population) (people.Person, error) {
	var (
		p      people.Person
		gender string
		birth  string
	)

	targets := []struct {
		f   field
		dst any
		use bool
	}{
		{fieldID, &p.ID, pop.IDs != people.IDNone},
		{fieldFirstName, &p.FirstName, true},
		{fieldMiddleName, &p.MiddleName, true},
		{fieldLastName, &p.LastName, true},
		{fieldGender, &gender, true},
		{fieldBirthDate, &birth, true},
		{fieldSSN, &p.SSN, pop.SSN},
		{fieldSalary, &p.Salary, pop.Salary},
	}
	for _, t := range targets {
		if !t.use {
			continue
		}
		raw, ok := rec[names[t.f]]
		if !ok {
			return p, fmt.Errorf("missing %q", names[t.f])
		}
		if err := json.Unmarshal(raw, t.dst); err != nil {
			return p, fmt.Errorf("field %q: %w", names[t.f], err)
		}
	}

	if err := p.Gender.UnmarshalText([]byte(gender)); err != nil {
		return p, err
	}

	d, err := time.Parse(people.DateLayout, birth)
	if err != nil {
		return p, errors.Join(fmt.Errorf("bad birth date %q", birth), err)
	}
	p.BirthDate = d
	return p, nil
}

// idMode tells uuid ids from sequential ones by the first id.
func idMode(raw json.RawMessage) people.IDMode {
	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		if _, err := uuid.Parse(id); err == nil {
			return people.IDUUID
		}
	}
	return people.IDSequential
}
