package grid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Read parses a cost table from r: one row per line, costs separated by
// whitespace. Blank lines and lines starting with '#' are skipped.
// The parsed table is validated by NewGrid.
func Read(r io.Reader) (*Grid, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("grid: line %d column %d: %w", line, i+1, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}
	return NewGrid(rows)
}
