// Package corpus loads weighted name lists and samples from them.
//
// A corpus file holds one name per line followed by its relative frequency:
//
//	# comment
//	JAMES 3.318 3.318 1
//	John,2.271
//
// Fields are separated by whitespace or commas. Columns after the frequency
// (the cumulative and rank columns of Census files) are ignored.
package corpus

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrMalformed is wrapped by an Error for a line that is not "<name> <frequency>".
	ErrMalformed = errors.New("malformed line")

	// ErrEmpty is wrapped by an Error when a corpus yields nothing to sample.
	ErrEmpty = errors.New("no usable names")
)

// Error reports a corpus file that could not be turned into a pool.
type Error struct {
	Path string
	Line int // 0 when the failure is not tied to a line
	Err  error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("corpus %q: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("corpus %q: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// FileReader is the subset of a filesystem the loader needs.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

type options struct {
	titleCase bool
}

// Option configures parsing.
type Option func(*options)

// TitleCase rewrites all-caps names ("MARY") as title case ("Mary").
// Names that already mix cases are kept as they are.
func TitleCase() Option {
	return func(o *options) { o.titleCase = true }
}

// Load reads the named file from fsys and parses it into a pool.
func Load(fsys FileReader, name string, opts ...Option) (*Pool, error) {
	data, err := fsys.ReadFile(name)
	if err != nil {
		return nil, &Error{Path: name, Err: err}
	}
	return Parse(bytes.NewReader(data), name, opts...)
}

// LoadFile reads a corpus from an operating system path.
func LoadFile(path string, opts ...Option) (*Pool, error) {
	if path == "" {
		return nil, &Error{Path: path, Err: errors.New("no path given")}
	}

	p, err := Load(zfilesystem.NewOSFileSystem(filepath.Dir(path)), filepath.Base(path), opts...)
	var cerr *Error
	if errors.As(err, &cerr) {
		cerr.Path = path
	}
	return p, err
}

// Parse builds a pool from corpus text. path only labels errors.
func Parse(r io.Reader, path string, opts ...Option) (*Pool, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var caser *cases.Caser
	if o.titleCase {
		c := cases.Title(language.English)
		caser = &c
	}

	var entries []Entry
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		if len(fields) < 2 {
			return nil, &Error{
				Path: path,
				Line: line,
				Err:  fmt.Errorf("%w: want \"<name> <frequency>\", got %q", ErrMalformed, text),
			}
		}

		weight, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
			return nil, &Error{
				Path: path,
				Line: line,
				Err:  fmt.Errorf("%w: bad frequency %q", ErrMalformed, fields[1]),
			}
		}

		name := fields[0]
		if caser != nil && isAllCaps(name) {
			name = caser.String(name)
		}
		entries = append(entries, Entry{Name: name, Weight: weight})
	}
	if err := sc.Err(); err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	p, err := New(entries)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	return p, nil
}

func isAllCaps(s string) bool {
	letters := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			letters = true
		}
	}
	return letters
}
