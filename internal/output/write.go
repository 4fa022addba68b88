package output

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"github.com/zarlcorp/peoplegen/internal/people"
)

// SheetName is the worksheet written to XLSX files.
const SheetName = "people"

// Options tunes rendering.
type Options struct {
	Header HeaderStyle
}

// Render encodes pop fully in memory. Callers writing files use it so that
// a failed render leaves nothing on disk.
func Render(pop people.Population, f Format, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, pop, f, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes pop to w. Optional columns (id, ssn, salary) appear for the
// whole output or not at all, as recorded on the population.
func Write(w io.Writer, pop people.Population, f Format, opts Options) error {
	if _, ok := headers[opts.Header]; !ok {
		return fmt.Errorf("write %s: unknown header style %d", f, int(opts.Header))
	}

	var err error
	switch f {
	case CSV:
		err = writeCSV(w, pop, opts)
	case JSON:
		err = writeJSON(w, pop, opts)
	case JSONL:
		err = writeJSONL(w, pop, opts)
	case XLSX:
		err = writeXLSX(w, pop, opts)
	default:
		return &FormatError{Value: f.String()}
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", f, err)
	}
	return nil
}

func writeCSV(w io.Writer, pop people.Population, opts Options) error {
	fs := fields(pop)
	cw := csv.NewWriter(w)
	if err := cw.Write(headerRow(fs, opts.Header)); err != nil {
		return err
	}

	rec := make([]string, len(fs))
	for _, p := range pop.People {
		for i, f := range fs {
			rec[i] = text(p, f)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// writeJSON writes {"people":[...]} on a single line.
func writeJSON(w io.Writer, pop people.Population, opts Options) error {
	bw := bufio.NewWriter(w)
	fs := fields(pop)
	names := headerRow(fs, opts.Header)

	bw.WriteString(`{"people":[`)
	for i, p := range pop.People {
		if i > 0 {
			bw.WriteByte(',')
		}
		if err := writeObject(bw, p, fs, names); err != nil {
			return err
		}
	}
	bw.WriteString("]}\n")
	return bw.Flush()
}

// writeJSONL writes one object per line with no enclosing array.
func writeJSONL(w io.Writer, pop people.Population, opts Options) error {
	bw := bufio.NewWriter(w)
	fs := fields(pop)
	names := headerRow(fs, opts.Header)

	for _, p := range pop.People {
		if err := writeObject(bw, p, fs, names); err != nil {
			return err
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// writeObject emits one compact object with keys in column order.
func writeObject(bw *bufio.Writer, p people.Person, fs []field, names []string) error {
	bw.WriteByte('{')
	for i, f := range fs {
		if i > 0 {
			bw.WriteByte(',')
		}
		k, err := json.Marshal(names[i])
		if err != nil {
			return err
		}
		v, err := json.Marshal(value(p, f))
		if err != nil {
			return err
		}
		bw.Write(k)
		bw.WriteByte(':')
		bw.Write(v)
	}
	return bw.WriteByte('}')
}

func writeXLSX(w io.Writer, pop people.Population, opts Options) error {
	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	sw, err := x.NewStreamWriter(SheetName)
	if err != nil {
		return err
	}

	fs := fields(pop)
	header := headerRow(fs, opts.Header)
	row := make([]any, len(header))
	for i, h := range header {
		row[i] = h
	}
	if err := sw.SetRow("A1", row); err != nil {
		return err
	}

	for r, p := range pop.People {
		row := make([]any, len(fs))
		for i, f := range fs {
			row[i] = value(p, f)
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}
	return x.Write(w)
}
