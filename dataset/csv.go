// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV parses a population: one point per record, every record with the
// same number of numeric fields.
//
// Errors:
//   - ErrEmptyFile when no data record remains after comments and header.
//   - ErrParse for ragged records or non-numeric fields.
func ReadCSV(r io.Reader) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var rows [][]float64
	for line := 0; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: %w: %w", ErrParse, err)
		}
		row, err := parseRecord(rec)
		if err != nil {
			if line == 0 {
				continue // header
			}
			ln, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("ReadCSV: line %d: %w: %w", ln, ErrParse, err)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("ReadCSV: %w", ErrEmptyFile)
	}

	return rows, nil
}

func parseRecord(rec []string) ([]float64, error) {
	row := make([]float64, len(rec))
	for j, field := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		row[j] = v
	}

	return row, nil
}

// WriteCSV writes rows with the shortest exact float formatting.
func WriteCSV(w io.Writer, rows [][]float64) error {
	cw := csv.NewWriter(w)
	var rec []string
	for _, row := range rows {
		rec = rec[:0]
		for _, v := range row {
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteCSV: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// LoadCSV reads a population from path ("-" for stdin).
func LoadCSV(path string) (rows [][]float64, err error) {
	rc, err := Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadCSV: %w", err)
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("LoadCSV: %w", cerr)
		}
	}()

	return ReadCSV(rc)
}

// SaveCSV writes rows to path ("-" for stdout).
func SaveCSV(path string, rows [][]float64) (err error) {
	wc, err := Create(path)
	if err != nil {
		return fmt.Errorf("SaveCSV: %w", err)
	}
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("SaveCSV: %w", cerr)
		}
	}()

	return WriteCSV(wc, rows)
}
