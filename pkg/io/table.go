package io

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/tshape/pkg/errors"
)

// Separator is the field separator of tabular data files.
const Separator = ';'

// table is a header-indexed view over semicolon-separated rows.
type table struct {
	columns map[string]int
	rows    [][]string
}

func readTable(r io.Reader, required ...string) (*table, error) {
	cr := csv.NewReader(r)
	cr.Comma = Separator
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataLoad, err, "parse table")
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeDataLoad, "table has no header row")
	}

	t := &table{columns: make(map[string]int), rows: records[1:]}
	for i, name := range records[0] {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := t.columns[name]; !dup {
			t.columns[name] = i
		}
	}
	for _, name := range required {
		if _, ok := t.columns[name]; !ok {
			return nil, errors.New(errors.ErrCodeDataLoad, "missing column %q", name)
		}
	}
	return t, nil
}

// has reports whether the header names column.
func (t *table) has(column string) bool {
	_, ok := t.columns[column]
	return ok
}

// cell returns the trimmed value of column in row, or "" if the row is short.
func (t *table) cell(row []string, column string) string {
	i, ok := t.columns[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// number parses a required numeric cell. line is 1-based and counts the header.
func (t *table) number(row []string, column string, line int) (float64, error) {
	s := t.cell(row, column)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeDataLoad, "line %d: column %s: %q is not a number", line, column, s)
	}
	return v, nil
}

// optionalNumber parses a cell that may be empty or non-numeric.
func (t *table) optionalNumber(row []string, column string) *float64 {
	v, err := strconv.ParseFloat(t.cell(row, column), 64)
	if err != nil {
		return nil
	}
	return &v
}

// blank reports whether every cell of row is empty.
func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
