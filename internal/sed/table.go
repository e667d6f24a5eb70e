package sed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// commentMarker starts a header line, or an inline comment within a data line.
const commentMarker = "#"

// Table is the numeric content of a SED file.
type Table struct {
	Wavelength []float64
	Flux       []float64
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Wavelength)
}

// HasNaN reports whether any wavelength or flux value is NaN.
func (t *Table) HasNaN() bool {
	for i := range t.Wavelength {
		if math.IsNaN(t.Wavelength[i]) || math.IsNaN(t.Flux[i]) {
			return true
		}
	}
	return false
}

// LoadTable reads the two-column data in the SED file at path.
func LoadTable(path string) (*Table, error) {
	rc, err := openSED(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return ParseTable(rc)
}

// ParseTable parses whitespace-delimited (wavelength, flux) rows from r.
//
// Text from the comment marker to the end of a line is ignored, as are blank
// lines. A row missing its flux, or holding a cell that is not a number, loads
// with NaN in that cell. A row with more than two fields, a NUL byte or
// invalid UTF-8 fails the whole table.
func ParseTable(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)
	t := &Table{}

	for lineNo := 1; ; lineNo++ {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("reading line %d: %w", lineNo, readErr)
		}

		if line != "" {
			if err := t.parseLine(line); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}

		if readErr != nil {
			return t, nil
		}
	}
}

func (t *Table) parseLine(line string) error {
	if !utf8.ValidString(line) || strings.IndexByte(line, 0) >= 0 {
		return errors.New("not a text line")
	}

	if i := strings.Index(line, commentMarker); i >= 0 {
		line = line[:i]
	}

	fields := strings.Fields(line)
	switch len(fields) {
	case 0:
		return nil
	case 1:
		t.Wavelength = append(t.Wavelength, parseCell(fields[0]))
		t.Flux = append(t.Flux, math.NaN())
	case 2:
		t.Wavelength = append(t.Wavelength, parseCell(fields[0]))
		t.Flux = append(t.Flux, parseCell(fields[1]))
	default:
		return fmt.Errorf("expected 2 columns, got %d", len(fields))
	}
	return nil
}

// parseCell converts a data cell to float64. Cells that are not numbers load
// as NaN; out-of-range values saturate to ±Inf or 0.
func parseCell(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		return math.NaN()
	}
	return v
}
