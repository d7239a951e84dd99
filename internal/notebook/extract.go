// Package notebook loads the two comparison sides. Notebook files are run
// through an external extractor process that emits the input cells as a
// JSON array of strings; anything else is read as already-assembled flat
// text.
package notebook

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"nbdiff/internal/cells"
	"nbdiff/internal/util"
)

// Extractor extracts the input cells of a single notebook file.
type Extractor interface {
	ExtractInputs(ctx context.Context, path string) ([]string, error)
}

type execExtractor struct {
	argv []string
}

// NewExtractor returns an Extractor that shells out to the given command,
// typically ["extract-inputs"]. The file is passed as "--single <path>" and
// the cells are expected as a JSON array on stdout.
func NewExtractor(argv []string) Extractor {
	return execExtractor{argv: append([]string(nil), argv...)}
}

func (e execExtractor) ExtractInputs(ctx context.Context, path string) ([]string, error) {
	if len(e.argv) == 0 {
		return nil, fmt.Errorf("extractor command not configured")
	}
	args := append(append([]string(nil), e.argv[1:]...), "--single", path)
	out, err := util.Output(ctx, e.argv[0], args...)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", path, err)
	}
	inputs, err := ParseInputs(out)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", path, err)
	}
	return inputs, nil
}

// ParseInputs decodes the extractor's stdout: a JSON array of cell strings.
func ParseInputs(out string) ([]string, error) {
	trimmed := strings.TrimSpace(out)
	if trimmed == "" {
		return nil, fmt.Errorf("extractor produced no output")
	}
	var inputs []string
	if err := json.Unmarshal([]byte(trimmed), &inputs); err != nil {
		return nil, fmt.Errorf("parsing extractor output: %w", err)
	}
	return inputs, nil
}

// IsNotebook reports whether path names a notebook file that needs
// extraction rather than a plain text read.
func IsNotebook(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".nb")
}

// Load produces one side's raw text: notebooks are extracted and assembled
// into numbered-cell text, other files are read verbatim.
func Load(ctx context.Context, ex Extractor, path string) (string, error) {
	if IsNotebook(path) {
		inputs, err := ex.ExtractInputs(ctx, path)
		if err != nil {
			return "", err
		}
		return cells.Assemble(inputs), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
