package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/tshape/pkg/pipeline"
)

// stdoutPath writes a single artifact to standard output.
const stdoutPath = "-"

// basePath derives the base output path from the output and input paths.
// If output is empty, the extension is stripped from input. A known format
// extension on output is stripped as well, so "chart.svg" with formats
// svg,png writes chart.svg and chart.png.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns where the artifact of format is written.
func outputPath(output, input, format string, formats int) string {
	if formats == 1 && output != "" {
		if output == stdoutPath || filepath.Ext(output) != "" {
			return output
		}
	}
	return basePath(output, input) + "." + format
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput opens path for writing; "-" is standard output.
func openOutput(path string) (io.WriteCloser, error) {
	if path == stdoutPath {
		return nopCloser{os.Stdout}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

// artifactWriteParams describes one batch of rendered artifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string // base name source when output is empty
	output    string
	cacheHit  bool
	records   int
	labels    int
}

// writeArtifacts writes artifacts in the requested format order and reports
// the files. It returns the paths written.
func writeArtifacts(p artifactWriteParams) ([]string, error) {
	if p.output == stdoutPath && len(p.formats) != 1 {
		return nil, fmt.Errorf("writing to stdout needs exactly one format, got %d", len(p.formats))
	}

	var paths []string
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			return paths, fmt.Errorf("no %s output was rendered", format)
		}
		path := outputPath(p.output, p.input, format, len(p.formats))
		if err := writeFile(path, data); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	if p.output == stdoutPath {
		return paths, nil
	}
	printSuccess("Render complete")
	for _, path := range paths {
		printFile(path)
	}
	printStats(p.records, p.labels, p.cacheHit)
	return paths, nil
}

func writeFile(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
