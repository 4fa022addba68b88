// Package store archives generated runs in an encrypted zstore collection.
package store

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/zarlcorp/core/pkg/zcrypto"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstore"
	"github.com/zarlcorp/peoplegen/internal/people"
)

const collection = "runs"

var (
	// ErrNotFound is returned when a run does not exist.
	ErrNotFound = errors.New("run not found")

	// ErrWrongPassword is returned when the archive password does not match.
	ErrWrongPassword = zstore.ErrWrongPassword
)

// Run is one archived generation run.
type Run struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	Note      string            `json:"note,omitempty"`
	Params    Params            `json:"params"`
	People    people.Population `json:"population"`
}

// Params records the settings that produced a run.
type Params struct {
	Total          int     `json:"total"`
	FemaleFraction float64 `json:"female_fraction"`
	BirthFrom      string  `json:"birth_from"`
	BirthTo        string  `json:"birth_to"`
	SSN            bool    `json:"ssn"`
	SSNMode        string  `json:"ssn_mode,omitempty"`
	Salary         bool    `json:"salary"`
	SalaryMean     float64 `json:"salary_mean,omitempty"`
	SalarySigma    float64 `json:"salary_sigma,omitempty"`
	IDs            string  `json:"ids"`
	Seed           uint64  `json:"seed"`
}

// ParamsOf captures cfg and the seed actually used.
func ParamsOf(cfg people.Config, seed uint64) Params {
	p := Params{
		Total:          cfg.Total,
		FemaleFraction: cfg.FemaleFraction,
		BirthFrom:      cfg.BirthFrom.Format(people.DateLayout),
		BirthTo:        cfg.BirthTo.Format(people.DateLayout),
		SSN:            cfg.IncludeSSN,
		Salary:         cfg.IncludeSalary,
		IDs:            cfg.IDs.String(),
		Seed:           seed,
	}
	if cfg.IncludeSSN {
		p.SSNMode = cfg.SSNMode.String()
	}
	if cfg.IncludeSalary {
		p.SalaryMean = cfg.SalaryMean
		p.SalarySigma = cfg.SalarySigma
	}
	return p
}

// Store is an open run archive.
type Store struct {
	db   *zstore.Store
	runs *zstore.Collection[Run]
}

// Open opens or initializes the archive on fsys.
func Open(fsys zfilesystem.ReadWriteFileFS, password string) (*Store, error) {
	pass := []byte(password)
	defer zcrypto.Erase(pass)

	db, err := zstore.Open(fsys, pass)
	if err != nil {
		if errors.Is(err, zstore.ErrWrongPassword) {
			return nil, ErrWrongPassword
		}
		return nil, fmt.Errorf("open store: %w", err)
	}

	runs, err := zstore.NewCollection[Run](db, collection)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	return &Store{db: db, runs: runs}, nil
}

// Save writes r under its ID, replacing any run with the same ID.
func (s *Store) Save(r Run) error {
	if r.ID == "" {
		return errors.New("save run: empty id")
	}
	if err := s.runs.Put(r.ID, r); err != nil {
		return fmt.Errorf("save run %s: %w", r.ID, err)
	}
	return nil
}

// Get returns the run with the given ID.
func (s *Store) Get(id string) (Run, error) {
	ok, err := s.exists(id)
	if err != nil {
		return Run{}, fmt.Errorf("get run %s: %w", id, err)
	}
	if !ok {
		return Run{}, ErrNotFound
	}

	r, err := s.runs.Get(id)
	if err != nil {
		return Run{}, fmt.Errorf("get run %s: %w", id, err)
	}
	return r, nil
}

// List returns every run, newest first.
func (s *Store) List() ([]Run, error) {
	runs, err := s.runs.List()
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	// zstore.List does not guarantee order
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})
	return runs, nil
}

// Delete removes the run with the given ID.
func (s *Store) Delete(id string) error {
	ok, err := s.exists(id)
	if err != nil {
		return fmt.Errorf("delete run %s: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}

	if err := s.runs.Delete(id); err != nil {
		return fmt.Errorf("delete run %s: %w", id, err)
	}
	return nil
}

// Close locks the archive.
func (s *Store) Close() error {
	s.db.Close()
	return nil
}

func (s *Store) exists(id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	runs, err := s.runs.List()
	if err != nil {
		return false, err
	}
	for _, r := range runs {
		if r.ID == id {
			return true, nil
		}
	}
	return false, nil
}
