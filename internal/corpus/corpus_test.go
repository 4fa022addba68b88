package corpus

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarlcorp/core/pkg/zfilesystem"
)

func TestParse(t *testing.T) {
	src := `# male first names, 1990 census
JAMES 3.318 3.318 1

john,2.271
  Robert   1.5
`
	p, err := Parse(strings.NewReader(src), "male.txt")
	require.NoError(t, err)

	assert.Equal(t, []string{"JAMES", "john", "Robert"}, p.Names())
	assert.Equal(t, 3, p.Len())
	assert.InDelta(t, 3.318+2.271+1.5, p.Total(), 1e-9)
}

func TestParseTitleCase(t *testing.T) {
	src := "MARY 2.6\nMcDONALD 1\nanne 1\n"
	p, err := Parse(strings.NewReader(src), "f.txt", TitleCase())
	require.NoError(t, err)
	assert.Equal(t, []string{"Mary", "McDONALD", "anne"}, p.Names())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
		want error
	}{
		{"name only", "JAMES 1\nJOHN\n", 2, ErrMalformed},
		{"bad weight", "JAMES abc\n", 1, ErrMalformed},
		{"negative weight", "# header\nJAMES -1\n", 2, ErrMalformed},
		{"nan weight", "JAMES NaN\n", 1, ErrMalformed},
		{"infinite weight", "JAMES +Inf\n", 1, ErrMalformed},
		{"empty file", "", 0, ErrEmpty},
		{"only comments", "# nothing\n\n# here\n", 0, ErrEmpty},
		{"zero weights", "A 0\nB 0\n", 0, ErrEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(strings.NewReader(tt.src), "names.txt")
			require.Error(t, err)
			assert.Nil(t, p)

			var cerr *Error
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, "names.txt", cerr.Path)
			assert.Equal(t, tt.line, cerr.Line)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "names.txt")
		})
	}
}

func TestLoadMemFS(t *testing.T) {
	fsys := zfilesystem.NewMemFS()
	require.NoError(t, fsys.WriteFile("last.txt", []byte("SMITH 1.006\nJOHNSON 0.810\n"), 0o600))

	p, err := Load(fsys, "last.txt", TitleCase())
	require.NoError(t, err)
	assert.Equal(t, []string{"Smith", "Johnson"}, p.Names())
}

func TestLoadMissing(t *testing.T) {
	fsys := zfilesystem.NewMemFS()
	p, err := Load(fsys, "nope.txt")
	assert.Nil(t, p)

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "nope.txt", cerr.Path)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "female.txt")
	require.NoError(t, os.WriteFile(path, []byte("MARY 2.629\nPATRICIA 1.073\n"), 0o600))

	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())

	_, err = LoadFile(filepath.Join(dir, "missing.txt"))
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, filepath.Join(dir, "missing.txt"), cerr.Path)

	_, err = LoadFile("")
	require.ErrorAs(t, err, &cerr)
}

func TestLoadFileErrorsCarryFullPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "last.txt")
	require.NoError(t, os.WriteFile(path, []byte("SMITH 1.0\nJOHNSON\n"), 0o600))

	p, err := LoadFile(path)
	assert.Nil(t, p)

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, path, cerr.Path)
	assert.Equal(t, 2, cerr.Line)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), path)
}

func TestLoadSetStopsOnFirstError(t *testing.T) {
	dir := t.TempDir()
	male := filepath.Join(dir, "male.txt")
	require.NoError(t, os.WriteFile(male, []byte("JAMES 1\n"), 0o600))

	set, err := LoadSet(Paths{Male: male, Female: filepath.Join(dir, "female.txt"), Last: male})
	require.Error(t, err)
	assert.Nil(t, set.Male)
	assert.Contains(t, err.Error(), "female.txt")
}

func TestPickSkipsZeroWeights(t *testing.T) {
	p, err := New([]Entry{{"zero", 0}, {"a", 1}, {"none", 0}, {"b", 1}, {"tail", 0}})
	require.NoError(t, err)

	r := rand.New(rand.NewPCG(1, 2))
	for range 5000 {
		got := p.Pick(r)
		if got != "a" && got != "b" {
			t.Fatalf("drew zero-weight name %q", got)
		}
	}
}

func TestPickProportional(t *testing.T) {
	p, err := New([]Entry{{"common", 3}, {"rare", 1}})
	require.NoError(t, err)

	r := rand.New(rand.NewPCG(7, 7))
	counts := map[string]int{}
	const n = 20000
	for range n {
		counts[p.Pick(r)]++
	}

	assert.InDelta(t, 0.75, float64(counts["common"])/n, 0.02)
	assert.InDelta(t, 0.25, float64(counts["rare"])/n, 0.02)
}

func TestNewCopiesEntries(t *testing.T) {
	entries := []Entry{{"a", 1}}
	p, err := New(entries)
	require.NoError(t, err)

	entries[0].Name = "changed"
	assert.Equal(t, []string{"a"}, p.Names())
}

func TestBuiltin(t *testing.T) {
	set := Builtin()
	for name, p := range map[string]*Pool{"male": set.Male, "female": set.Female, "last": set.Last} {
		t.Run(name, func(t *testing.T) {
			require.NotNil(t, p)
			assert.Positive(t, p.Len())
			assert.Positive(t, p.Total())
		})
	}
}
