// Package config collects initial register values for a run.
//
// Values are kept as text; parsing and validation happen when they are
// applied to a register bank, so a bad entry never fails the whole load.
package config

import (
	"errors"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ezrec/norma/translate"
)

var f = translate.From

var (
	ErrAssignment    = errors.New(f("expected NAME=VALUE"))
	ErrFormatUnknown = errors.New(f("unknown register file format"))
)

// Values maps register names to textual initial values.
// It can be used as a repeatable flag.
type Values map[string]string

// String returns the values as 'NAME=VALUE,...' in name order.
func (vals Values) String() string {
	var parts []string
	for _, name := range slices.Sorted(maps.Keys(vals)) {
		parts = append(parts, name+"="+vals[name])
	}
	return strings.Join(parts, ",")
}

// Set adds one or more comma separated NAME=VALUE assignments.
func (vals Values) Set(text string) (err error) {
	for _, part := range strings.Split(text, ",") {
		name, value, ok := strings.Cut(part, "=")
		name = strings.TrimSpace(name)
		if !ok || len(name) == 0 {
			return ErrAssignment
		}
		vals[name] = strings.TrimSpace(value)
	}
	return
}

// Merge copies other into vals, replacing existing names.
func (vals Values) Merge(other Values) {
	maps.Copy(vals, other)
}

// Load reads a register file. The format is selected by extension:
// .yaml and .yml are YAML mappings, .star is a Starlark script whose
// global variables are the register values.
func Load(path string) (vals Values, err error) {
	var load func(name string, input io.Reader) (Values, error)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		load = LoadYAML
	case ".star":
		load = LoadStarlark
	default:
		err = ErrFormatUnknown
		return
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return load(path, inf)
}
