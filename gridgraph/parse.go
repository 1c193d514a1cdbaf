package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a digit grid: one row per line, one digit per cell.
// Carriage returns and trailing blank lines are ignored; a blank line
// followed by more rows is reported as ErrNonRectangular.
func Parse(r io.Reader) (*GridGraph, error) {
	var rows [][]int
	blank := 0
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			blank++
			continue
		}
		if blank > 0 && len(rows) > 0 {
			return nil, fmt.Errorf("%w: empty row before line %d", ErrNonRectangular, line)
		}
		blank = 0
		row := make([]int, 0, len(text))
		for col, c := range text {
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("%w: %q at line %d, column %d", ErrNonDigit, c, line, col+1)
			}
			row = append(row, int(c-'0'))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read grid: %w", err)
	}

	return NewGridGraph(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*GridGraph, error) {
	return Parse(strings.NewReader(s))
}
