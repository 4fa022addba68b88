package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/peoplegen/internal/people"
)

func newTestRun(id string, createdAt time.Time) Run {
	return Run{
		ID:        id,
		CreatedAt: createdAt,
		Params: Params{
			Total:          2,
			FemaleFraction: 0.5,
			BirthFrom:      "1936-01-01",
			BirthTo:        "2008-10-19",
			SSN:            true,
			SSNMode:        "random",
			IDs:            "seq",
			Seed:           42,
		},
		People: people.Population{
			People: []people.Person{
				{
					ID:         "1",
					FirstName:  "Jane",
					MiddleName: "Ann",
					LastName:   "Doe",
					Gender:     people.Female,
					BirthDate:  time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
					SSN:        "900-12-3456",
				},
				{
					ID:         "2",
					FirstName:  "John",
					MiddleName: "Paul",
					LastName:   "Roe",
					Gender:     people.Male,
					BirthDate:  time.Date(1970, 2, 28, 0, 0, 0, 0, time.UTC),
					SSN:        "666-01-0001",
				},
			},
			SSN:  true,
			IDs:  people.IDSequential,
			Seed: 42,
		},
	}
}

func openTestStore(t *testing.T) (*Store, *zfilesystem.MemFS) {
	t.Helper()
	fs := zfilesystem.NewMemFS()
	s, err := Open(fs, "testpass")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, fs
}

func TestFirstOpenInitializesArchive(t *testing.T) {
	_, fs := openTestStore(t)

	if _, err := fs.ReadFile("salt"); err != nil {
		t.Fatal("salt file not created")
	}
}

func TestWrongPassword(t *testing.T) {
	fs := zfilesystem.NewMemFS()

	s, err := Open(fs, "correct")
	require.NoError(t, err)
	s.Close()

	_, err = Open(fs, "wrong")
	if err != ErrWrongPassword {
		t.Fatalf("open with wrong password: got %v, want ErrWrongPassword", err)
	}

	s, err = Open(fs, "correct")
	require.NoError(t, err)
	s.Close()
}

func TestSaveAndGet(t *testing.T) {
	s, _ := openTestStore(t)

	want := newTestRun("run-1", time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC))
	require.NoError(t, s.Save(want))

	got, err := s.Get("run-1")
	require.NoError(t, err)

	assert.Equal(t, want.ID, got.ID)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, want.Params, got.Params)
	assert.Equal(t, want.People.SSN, got.People.SSN)
	assert.Equal(t, want.People.IDs, got.People.IDs)
	assert.Equal(t, want.People.Seed, got.People.Seed)
	require.Len(t, got.People.People, 2)
	for i := range want.People.People {
		w, g := want.People.People[i], got.People.People[i]
		assert.Equal(t, w.FirstName, g.FirstName)
		assert.Equal(t, w.Gender, g.Gender)
		assert.Equal(t, w.SSN, g.SSN)
		assert.True(t, w.BirthDate.Equal(g.BirthDate))
	}
}

func TestSaveRequiresID(t *testing.T) {
	s, _ := openTestStore(t)
	assert.Error(t, s.Save(Run{}))
}

func TestGetNotFound(t *testing.T) {
	s, _ := openTestStore(t)

	_, err := s.Get("nonexistent")
	if err != ErrNotFound {
		t.Fatalf("get nonexistent: got %v, want ErrNotFound", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	s, _ := openTestStore(t)

	for _, r := range []struct {
		id string
		at time.Time
	}{
		{"oldest", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"newest", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"middle", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
	} {
		require.NoError(t, s.Save(newTestRun(r.id, r.at)))
	}

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 3)

	ids := []string{list[0].ID, list[1].ID, list[2].ID}
	assert.Equal(t, []string{"newest", "middle", "oldest"}, ids)
}

func TestListEmpty(t *testing.T) {
	s, _ := openTestStore(t)

	list, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDelete(t *testing.T) {
	s, _ := openTestStore(t)
	require.NoError(t, s.Save(newTestRun("gone", time.Now().UTC())))

	require.NoError(t, s.Delete("gone"))

	_, err := s.Get("gone")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete("gone"), ErrNotFound)
}

func TestPersistsAcrossReopen(t *testing.T) {
	fs := zfilesystem.NewMemFS()

	s1, err := Open(fs, "testpass")
	require.NoError(t, err)
	require.NoError(t, s1.Save(newTestRun("keep", time.Date(2025, 7, 4, 12, 0, 0, 0, time.UTC))))
	s1.Close()

	s2, err := Open(fs, "testpass")
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Get("keep")
	require.NoError(t, err)
	assert.Equal(t, "keep", got.ID)
}

func TestParamsOf(t *testing.T) {
	cfg := people.DefaultConfig(10, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC))
	cfg.IncludeSalary = true

	p := ParamsOf(cfg, 7)
	assert.Equal(t, 10, p.Total)
	assert.Equal(t, uint64(7), p.Seed)
	assert.True(t, p.Salary)
	assert.Equal(t, cfg.SalaryMean, p.SalaryMean)
	assert.False(t, p.SSN)
	assert.Empty(t, p.SSNMode)
	assert.Equal(t, cfg.BirthTo.Format(people.DateLayout), p.BirthTo)
}

func TestSaveReplacesRun(t *testing.T) {
	s, _ := openTestStore(t)

	r := newTestRun("same", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, s.Save(r))
	r.Note = "second"
	require.NoError(t, s.Save(r))

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "second", list[0].Note)
}
