package io

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/tshape/pkg/errors"
	"github.com/matzehuels/tshape/pkg/skills"
)

// TextCategory marks annotation rows in skill catalogs.
const TextCategory = "Text"

// ReadSkillsCSV decodes a semicolon-separated skill catalog from r.
// Records keep their file order; annotation rows are dropped.
func ReadSkillsCSV(r io.Reader) ([]skills.Record, error) {
	t, err := readTable(r, "category", "skill", "y")
	if err != nil {
		return nil, err
	}

	out := make([]skills.Record, 0, len(t.rows))
	for i, row := range t.rows {
		if blank(row) {
			continue
		}
		category := t.cell(row, "category")
		if category == TextCategory {
			continue
		}
		level, err := t.number(row, "y", i+2)
		if err != nil {
			return nil, err
		}
		rec := skills.Record{
			Category: category,
			Skill:    t.cell(row, "skill"),
			Level:    level,
		}
		if t.has("y_aim") {
			rec.Target = t.optionalNumber(row, "y_aim")
		}
		out = append(out, rec)
	}
	return out, nil
}

// ReadSkillsYAML decodes a YAML list of skill records from r.
func ReadSkillsYAML(r io.Reader) ([]skills.Record, error) {
	var records []skills.Record
	if err := yaml.NewDecoder(r).Decode(&records); err != nil && err != io.EOF {
		return nil, errors.Wrap(errors.ErrCodeDataLoad, err, "decode skills")
	}
	return dropText(records), nil
}

// ReadSkillsJSON decodes a JSON array of skill records from r.
func ReadSkillsJSON(r io.Reader) ([]skills.Record, error) {
	var records []skills.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataLoad, err, "decode skills")
	}
	return dropText(records), nil
}

// ImportSkills reads the skill catalog at path, choosing the decoder from
// the file extension.
func ImportSkills(path string) ([]skills.Record, error) {
	var records []skills.Record
	err := importFile(path, func(f format, r io.Reader) (err error) {
		switch f {
		case formatCSV:
			records, err = ReadSkillsCSV(r)
		case formatYAML:
			records, err = ReadSkillsYAML(r)
		case formatJSON:
			records, err = ReadSkillsJSON(r)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func dropText(records []skills.Record) []skills.Record {
	out := make([]skills.Record, 0, len(records))
	for _, r := range records {
		if r.Category != TextCategory {
			out = append(out, r)
		}
	}
	return out
}
