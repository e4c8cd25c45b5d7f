package config

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads register values from a YAML mapping:
//
//	A: 5
//	b: "12"
//
// Scalars keep their source text. Other nodes become empty values.
func LoadYAML(name string, input io.Reader) (vals Values, err error) {
	var doc map[string]yaml.Node

	err = yaml.NewDecoder(input).Decode(&doc)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		err = &ErrFile{Name: name, Err: err}
		return
	}

	vals = make(Values, len(doc))
	for reg, node := range doc {
		if node.Kind == yaml.ScalarNode {
			vals[reg] = node.Value
		} else {
			vals[reg] = ""
		}
	}

	return
}
