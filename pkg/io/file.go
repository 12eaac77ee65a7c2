package io

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/tshape/pkg/errors"
)

type format int

const (
	formatCSV format = iota
	formatYAML
	formatJSON
)

// formatFor maps a file extension to a decoder.
func formatFor(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return formatCSV, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".json":
		return formatJSON, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidFormat, "unsupported data file %s (want .csv, .yaml or .json)", path)
	}
}

// importFile opens path and hands it to decode. Decode errors are annotated
// with the path.
func importFile(path string, decode func(format, io.Reader) error) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := formatFor(path)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return errors.Wrap(errors.ErrCodeDataLoad, err, "open %s", path)
	}
	defer file.Close()

	if err := decode(f, file); err != nil {
		if code := errors.GetCode(err); code != "" {
			return errors.Wrap(code, err, "read %s", path)
		}
		return errors.Wrap(errors.ErrCodeDataLoad, err, "read %s", path)
	}
	return nil
}
