// Package sample ships a small demonstration catalog and outline.
//
// The data is used whenever no data files are configured, so every command
// works out of the box:
//
//	records, _ := sample.Skills()
//	outline, _ := sample.Boundary()
package sample

import (
	"bytes"
	_ "embed"

	"github.com/matzehuels/tshape/pkg/geometry"
	tio "github.com/matzehuels/tshape/pkg/io"
	"github.com/matzehuels/tshape/pkg/skills"
)

// Names reported in place of file paths when the sample data is used.
const (
	SkillsName = "sample:skills.csv"
	ShapeName  = "sample:shape.csv"
)

//go:embed skills.csv
var skillsCSV []byte

//go:embed shape.csv
var shapeCSV []byte

// Skills returns the sample catalog.
func Skills() ([]skills.Record, error) {
	return tio.ReadSkillsCSV(bytes.NewReader(skillsCSV))
}

// Boundary returns the sample outline.
func Boundary() (*geometry.Boundary, error) {
	return tio.ReadBoundaryCSV(bytes.NewReader(shapeCSV))
}

// SkillsCSV returns the raw sample catalog.
func SkillsCSV() []byte { return append([]byte(nil), skillsCSV...) }

// ShapeCSV returns the raw sample outline.
func ShapeCSV() []byte { return append([]byte(nil), shapeCSV...) }
