package config

import (
	"io"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// LoadStarlark runs a Starlark script and reads its global variables as
// register values, so values may be computed:
//
//	A = 5
//	B = A * 3
//
// Globals starting with '_' and functions are ignored.
func LoadStarlark(name string, input io.Reader) (vals Values, err error) {
	src, err := io.ReadAll(input)
	if err != nil {
		return
	}

	thread := starlark.Thread{Name: "norma"}
	opts := syntax.FileOptions{}
	dict, err := starlark.ExecFileOptions(&opts, &thread, name, src, nil)
	if err != nil {
		err = &ErrFile{Name: name, Err: err}
		return
	}

	vals = make(Values, len(dict))
	for key, value := range dict {
		if strings.HasPrefix(key, "_") {
			continue
		}
		if _, ok := value.(starlark.Callable); ok {
			continue
		}
		switch value := value.(type) {
		case starlark.String:
			vals[key] = value.GoString()
		default:
			vals[key] = value.String()
		}
	}

	return
}
