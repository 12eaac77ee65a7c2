package io

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/matzehuels/tshape/pkg/errors"
	"github.com/matzehuels/tshape/pkg/geometry"
	"github.com/matzehuels/tshape/pkg/layout"
	"github.com/matzehuels/tshape/pkg/skills"
)

// DocumentVersion is the placement document format version.
const DocumentVersion = 1

//go:embed placement.schema.json
var placementSchema []byte

var schemaLoader = gojsonschema.NewBytesLoader(placementSchema)

// Document is a serialized layout run.
type Document struct {
	Version    int              `json:"version"`
	Mode       skills.Mode      `json:"mode"`
	Categories []string         `json:"categories"`
	Boundary   []geometry.Point `json:"boundary"`
	Labels     []layout.Label   `json:"labels"`
	Rounds     int              `json:"rounds"`
	Residual   int              `json:"residual"`
}

// NewDocument captures res together with the outline it was computed for.
func NewDocument(mode skills.Mode, b *geometry.Boundary, res layout.Result) Document {
	labels := res.Labels
	if labels == nil {
		labels = []layout.Label{}
	}
	categories := res.Categories
	if categories == nil {
		categories = []string{}
	}
	return Document{
		Version:    DocumentVersion,
		Mode:       mode,
		Categories: categories,
		Boundary:   b.Points(),
		Labels:     labels,
		Rounds:     res.Rounds,
		Residual:   res.Residual,
	}
}

// Outline rebuilds the boundary stored in the document.
func (d Document) Outline() (*geometry.Boundary, error) {
	return geometry.NewBoundary(d.Boundary)
}

// Result returns the layout result stored in the document.
func (d Document) Result() layout.Result {
	return layout.Result{
		Labels:     d.Labels,
		Categories: d.Categories,
		Rounds:     d.Rounds,
		Residual:   d.Residual,
	}
}

// WriteLayoutJSON encodes d as indented JSON.
func WriteLayoutJSON(w io.Writer, d Document) error {
	if d.Version == 0 {
		d.Version = DocumentVersion
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadLayoutJSON validates the document in r against the placement schema
// and decodes it.
func ReadLayoutJSON(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeDataLoad, err, "read placement document")
	}
	if err := validateDocument(data); err != nil {
		return Document{}, err
	}

	var d Document
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&d); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeDataLoad, err, "decode placement document")
	}
	return d, nil
}

// ExportLayoutJSON writes d to the file at path.
func ExportLayoutJSON(d Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteLayoutJSON(f, d)
}

// ImportLayoutJSON reads and validates the placement document at path.
func ImportLayoutJSON(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return Document{}, errors.Wrap(errors.ErrCodeDataLoad, err, "open %s", path)
	}
	defer f.Close()
	return ReadLayoutJSON(f)
}

func validateDocument(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return errors.Wrap(errors.ErrCodeDataLoad, err, "placement document is not valid JSON")
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		msgs = append(msgs, field+": "+desc.Description())
	}
	return errors.New(errors.ErrCodeDataLoad, "invalid placement document: %s", strings.Join(msgs, "; "))
}
