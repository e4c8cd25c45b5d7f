package norma

import (
	"errors"

	"github.com/ezrec/norma/translate"
)

var f = translate.From

var (
	// Load errors
	ErrEmptyProgram       = errors.New(f("no instructions loaded"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))

	// Line errors
	ErrLabelMissing    = errors.New(f("label missing"))
	ErrLabelInvalid    = errors.New(f("label invalid"))
	ErrColonMissing    = errors.New(f("':' missing after label"))
	ErrRegisterMissing = errors.New(f("register missing"))
	ErrJumpMissing     = errors.New(f("va_para missing"))
	ErrTargetMissing   = errors.New(f("target missing"))
	ErrThenMissing     = errors.New(f("entao missing"))
	ErrElseMissing     = errors.New(f("senao missing"))
)

// ErrFileNotFound is returned when a program file does not exist.
type ErrFileNotFound struct {
	Path string
	Err  error
}

func (err *ErrFileNotFound) Error() string {
	return f("file '%v' not found", err.Path)
}

func (err *ErrFileNotFound) Unwrap() error {
	return err.Err
}

// ErrInstructionUnknown names the label of a line with no recognised instruction.
type ErrInstructionUnknown int

func (err ErrInstructionUnknown) Error() string {
	return f("unknown instruction at label %d", int(err))
}

type ErrTargetInvalid string

func (err ErrTargetInvalid) Error() string {
	return f("'%v' is not a label", string(err))
}

type ErrTrailing string

func (err ErrTrailing) Error() string {
	return f("unexpected '%v' after instruction", string(err))
}

// ErrSyntax locates a line that could not be parsed.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrRegisterUnknown is a register name outside of the register bank.
type ErrRegisterUnknown string

func (err ErrRegisterUnknown) Error() string {
	return f("unknown register '%v', ignored", string(err))
}

// ErrRegisterValue is an initial register value that is not a non-negative integer.
type ErrRegisterValue struct {
	Register string
	Value    string
}

func (err ErrRegisterValue) Error() string {
	return f("invalid value '%v' for register %v, using 0", err.Value, err.Register)
}
