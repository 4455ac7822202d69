package states

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

//go:embed data/states.yaml
var defaultStatesYAML []byte

// ErrNoFiles is returned when no dataset file matches the configured patterns.
var ErrNoFiles = errors.New("no dataset files matched")

// Source loads a dataset.
type Source interface {
	Load(ctx context.Context) (*Dataset, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) (*Dataset, error)

// Load calls f.
func (f SourceFunc) Load(ctx context.Context) (*Dataset, error) { return f(ctx) }

// Embedded returns the built-in dataset of all fifty states.
func Embedded() Source {
	return SourceFunc(func(ctx context.Context) (*Dataset, error) {
		records, err := decodeYAML(defaultStatesYAML)
		if err != nil {
			return nil, fmt.Errorf("decoding embedded dataset: %w", err)
		}
		return NewDataset(records)
	})
}

// FileSource reads records from YAML or JSON files. Patterns may use
// doublestar globs such as "data/**/*.yaml"; matches are read in sorted
// order and concatenated.
type FileSource struct {
	Patterns []string
}

// Load implements Source.
func (s FileSource) Load(ctx context.Context) (*Dataset, error) {
	paths, err := s.match()
	if err != nil {
		return nil, err
	}

	var records []Record
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		batch, err := decodeFile(p, data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", p, err)
		}
		records = append(records, batch...)
	}
	return NewDataset(records)
}

func (s FileSource) match() ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range s.Patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%v: %w", s.Patterns, ErrNoFiles)
	}
	sort.Strings(paths)
	return paths, nil
}

func decodeFile(path string, data []byte) ([]Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var records []Record
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&records); err != nil {
			return nil, err
		}
		return records, nil
	case ".yaml", ".yml":
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", filepath.Ext(path))
	}
}

func decodeYAML(data []byte) ([]Record, error) {
	var records []Record
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}

// Cached memoizes the first successful Load of src. Failed loads are not
// cached, so a later call retries. Safe for concurrent use.
func Cached(src Source) Source {
	c := &cachedSource{src: src}
	return c
}

type cachedSource struct {
	src Source

	mu sync.Mutex
	ds *Dataset
}

func (c *cachedSource) Load(ctx context.Context) (*Dataset, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ds != nil {
		return c.ds, nil
	}
	ds, err := c.src.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.ds = ds
	return ds, nil
}
