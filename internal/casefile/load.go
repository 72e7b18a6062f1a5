// Package casefile loads suites of kata cases from YAML or CUE files.
//
// # Suite Format
//
//	name: selectors
//	description: "Compound selectors and combinators"
//	cases:
//	  - name: id with classes
//	    kind: selector
//	    selector:
//	      parts:
//	        - {kind: id, value: main}
//	        - {kind: class, value: container}
//	    expect:
//	      output: "#main.container"
//	  - name: isolated double
//	    kind: domino
//	    tiles: [[1, 1], [2, 2], [1, 5]]
//	    expect:
//	      row: false
//
// CUE files use the same field names and are unified with an embedded schema
// before decoding, so unknown fields are rejected in both formats.
package casefile

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Extensions recognised by Load and LoadDir.
var (
	yamlExtensions = []string{".yaml", ".yml"}
	cueExtensions  = []string{".cue"}
)

// Load reads a suite, choosing the decoder from the file extension.
func Load(path string) (*Suite, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case slices.Contains(yamlExtensions, ext):
		return LoadYAML(path)
	case slices.Contains(cueExtensions, ext):
		return LoadCUE(path)
	default:
		return nil, fmt.Errorf("unsupported suite file %s: want .yaml, .yml or .cue", path)
	}
}

// LoadYAML reads a YAML suite. Unknown fields are rejected.
func LoadYAML(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	var suite Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // catches typos like "case:" vs "cases:"
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	return finish(&suite, path)
}

// LoadCUE reads a CUE suite and checks it against the #Suite schema.
func LoadCUE(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile suite schema: %w", err)
	}

	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse CUE %s: %s", path, cueErrorDetails(err))
	}

	v = schema.LookupPath(cue.ParsePath("#Suite")).Unify(v)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("invalid suite %s: %s", path, cueErrorDetails(err))
	}

	var suite Suite
	if err := v.Decode(&suite); err != nil {
		return nil, fmt.Errorf("decode suite %s: %w", path, err)
	}

	return finish(&suite, path)
}

// cueErrorDetails flattens a CUE error list into one line per error.
func cueErrorDetails(err error) string {
	var msgs []string
	for _, e := range cueerrors.Errors(err) {
		msgs = append(msgs, e.Error())
	}
	if len(msgs) == 0 {
		return err.Error()
	}
	return strings.Join(msgs, "; ")
}

func finish(s *Suite, path string) (*Suite, error) {
	s.Path = path
	if err := Validate(s); err != nil {
		return nil, fmt.Errorf("invalid suite %s: %w", path, err)
	}
	return s, nil
}

// FindSuiteFiles returns suite files in dir, sorted by name. filter is an
// optional glob matched against the base name.
func FindSuiteFiles(dir, filter string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !slices.Contains(yamlExtensions, ext) && !slices.Contains(cueExtensions, ext) {
			continue
		}
		if filter != "" {
			ok, err := filepath.Match(filter, e.Name())
			if err != nil {
				return nil, fmt.Errorf("invalid filter %q: %w", filter, err)
			}
			if !ok {
				continue
			}
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	slices.Sort(files)
	return files, nil
}

// LoadDir loads every suite in dir. A file that fails to load does not stop
// the others; all failures are returned together.
func LoadDir(dir, filter string) ([]*Suite, error) {
	files, err := FindSuiteFiles(dir, filter)
	if err != nil {
		return nil, err
	}

	var (
		suites []*Suite
		errs   error
	)
	for _, f := range files {
		s, err := Load(f)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		suites = append(suites, s)
	}
	return suites, errs
}
