package io

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/tshape/pkg/errors"
	"github.com/matzehuels/tshape/pkg/geometry"
)

// ReadBoundaryCSV decodes a semicolon-separated outline with x and y columns.
func ReadBoundaryCSV(r io.Reader) (*geometry.Boundary, error) {
	t, err := readTable(r, "x", "y")
	if err != nil {
		return nil, err
	}

	points := make([]geometry.Point, 0, len(t.rows))
	for i, row := range t.rows {
		if blank(row) {
			continue
		}
		x, err := t.number(row, "x", i+2)
		if err != nil {
			return nil, err
		}
		y, err := t.number(row, "y", i+2)
		if err != nil {
			return nil, err
		}
		points = append(points, geometry.Point{X: x, Y: y})
	}
	return newBoundary(points)
}

// ReadBoundaryYAML decodes a YAML list of outline points.
func ReadBoundaryYAML(r io.Reader) (*geometry.Boundary, error) {
	var points []geometry.Point
	if err := yaml.NewDecoder(r).Decode(&points); err != nil && err != io.EOF {
		return nil, errors.Wrap(errors.ErrCodeDataLoad, err, "decode outline")
	}
	return newBoundary(points)
}

// ReadBoundaryJSON decodes a JSON array of outline points.
func ReadBoundaryJSON(r io.Reader) (*geometry.Boundary, error) {
	var points []geometry.Point
	if err := json.NewDecoder(r).Decode(&points); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataLoad, err, "decode outline")
	}
	return newBoundary(points)
}

// ImportBoundary reads the outline at path, choosing the decoder from the
// file extension.
func ImportBoundary(path string) (*geometry.Boundary, error) {
	var b *geometry.Boundary
	err := importFile(path, func(f format, r io.Reader) (err error) {
		switch f {
		case formatCSV:
			b, err = ReadBoundaryCSV(r)
		case formatYAML:
			b, err = ReadBoundaryYAML(r)
		case formatJSON:
			b, err = ReadBoundaryJSON(r)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// newBoundary reports an empty outline as a load failure of the file rather
// than a geometry failure of the layout.
func newBoundary(points []geometry.Point) (*geometry.Boundary, error) {
	if len(points) == 0 {
		return nil, errors.New(errors.ErrCodeDataLoad, "outline has no points")
	}
	return geometry.NewBoundary(points)
}
