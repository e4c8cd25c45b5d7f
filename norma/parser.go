// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package norma

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Parser loads Norma program text into a Program.
//
// Lines that fail to parse are dropped and reported as diagnostics; they
// never abort the load.
type Parser struct {
	Verbose bool         // If set, logs every parsed line.
	Logger  *slog.Logger // Diagnostics sink, nil for none.
}

// cursor walks the tokens of a single line.
type cursor struct {
	tokens []Token
	pos    int
}

func (cur *cursor) peek() (tok Token, ok bool) {
	if cur.pos >= len(cur.tokens) {
		return
	}
	return cur.tokens[cur.pos], true
}

func (cur *cursor) next() (tok Token, ok bool) {
	tok, ok = cur.peek()
	if ok {
		cur.pos++
	}
	return
}

// accept consumes the next token if it is of the given kind.
func (cur *cursor) accept(kind TokenKind) bool {
	tok, ok := cur.peek()
	if !ok || tok.Kind != kind {
		return false
	}
	cur.pos++
	return true
}

// expect consumes a token of the given kind, or returns err.
func (cur *cursor) expect(kind TokenKind, err error) error {
	if !cur.accept(kind) {
		return err
	}
	return nil
}

// register consumes a register name.
func (cur *cursor) register() (reg string, err error) {
	tok, ok := cur.peek()
	if !ok || tok.Kind != TOKEN_WORD {
		err = ErrRegisterMissing
		return
	}
	cur.pos++
	reg = tok.Text
	return
}

// target consumes 'va_para' and the label that follows it.
func (cur *cursor) target() (label int, err error) {
	err = cur.expect(TOKEN_VA_PARA, ErrJumpMissing)
	if err != nil {
		return
	}

	tok, ok := cur.next()
	if !ok {
		err = ErrTargetMissing
		return
	}
	if tok.Kind != TOKEN_NUMBER {
		err = ErrTargetInvalid(tok.Text)
		return
	}
	label, perr := strconv.Atoi(tok.Text)
	if perr != nil {
		err = ErrTargetInvalid(tok.Text)
	}
	return
}

// end verifies that no tokens remain.
func (cur *cursor) end() error {
	tok, ok := cur.peek()
	if ok {
		return ErrTrailing(tok.Text)
	}
	return nil
}

// ParseLine parses a single line of program text.
//
// Blank and comment-only lines return ok == false with a nil error.
func ParseLine(line string) (label int, inst Instruction, ok bool, err error) {
	text := StripComment(line)
	if len(text) == 0 {
		return
	}

	cur := &cursor{tokens: Tokenize(text)}

	tok, _ := cur.next()
	if tok.Kind != TOKEN_NUMBER {
		err = ErrLabelMissing
		return
	}
	label, err = strconv.Atoi(tok.Text)
	if err != nil {
		err = ErrLabelInvalid
		return
	}

	err = cur.expect(TOKEN_COLON, ErrColonMissing)
	if err != nil {
		return
	}

	inst, err = parseStatement(cur, label)
	if err != nil {
		inst = nil
		return
	}

	ok = true
	return
}

// parseStatement parses the instruction following a label.
func parseStatement(cur *cursor, label int) (inst Instruction, err error) {
	var reg string
	var next int

	switch {
	case cur.accept(TOKEN_FACA):
		var decrement bool
		switch {
		case cur.accept(TOKEN_ADD):
		case cur.accept(TOKEN_SUB):
			decrement = true
		default:
			err = ErrInstructionUnknown(label)
			return
		}
		reg, err = cur.register()
		if err != nil {
			return
		}
		next, err = cur.target()
		if err != nil {
			return
		}
		if decrement {
			inst = Decrement{Reg: reg, Next: next}
		} else {
			inst = Increment{Reg: reg, Next: next}
		}
	case cur.accept(TOKEN_SE):
		if !cur.accept(TOKEN_ZERO) {
			err = ErrInstructionUnknown(label)
			return
		}
		reg, err = cur.register()
		if err != nil {
			return
		}
		err = cur.expect(TOKEN_ENTAO, ErrThenMissing)
		if err != nil {
			return
		}
		var if_zero, if_nonzero int
		if_zero, err = cur.target()
		if err != nil {
			return
		}
		err = cur.expect(TOKEN_SENAO, ErrElseMissing)
		if err != nil {
			return
		}
		if_nonzero, err = cur.target()
		if err != nil {
			return
		}
		inst = BranchIfZero{Reg: reg, IfZero: if_zero, IfNonZero: if_nonzero}
	default:
		err = ErrInstructionUnknown(label)
		return
	}

	err = cur.end()
	return
}

// Parse parses an input stream into a Program.
//
// Lines that fail to parse are returned as ErrSyntax diagnostics.
// If no line produced an instruction, err is ErrEmptyProgram.
func (parser *Parser) Parse(input io.Reader) (prog *Program, diags []error, err error) {
	reader := bufio.NewReader(input)

	code := make(map[int]Instruction)

	var lineno int
	for {
		text, rerr := reader.ReadString('\n')
		if len(text) == 0 && rerr != nil {
			if !errors.Is(rerr, io.EOF) {
				err = rerr
				return
			}
			break
		}
		lineno += 1
		text = strings.TrimRight(text, "\r\n")

		label, inst, ok, lerr := ParseLine(text)
		if lerr != nil {
			diag := ErrSyntax{LineNo: lineno, Line: StripComment(text), Err: lerr}
			diags = append(diags, diag)
			if parser.Logger != nil {
				parser.Logger.Warn("line dropped", "line", lineno, "text", diag.Line, "error", diag.Err)
			}
			continue
		}
		if !ok {
			continue
		}

		if parser.Verbose && parser.Logger != nil {
			parser.Logger.Debug("parsed", "line", lineno, "label", label, "instruction", inst.String())
		}

		code[label] = inst
	}

	prog, err = MakeProgram(code)
	return
}

// LoadFile parses the program stored in a file.
func (parser *Parser) LoadFile(path string) (prog *Program, diags []error, err error) {
	inf, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = &ErrFileNotFound{Path: path, Err: err}
		}
		return
	}
	defer inf.Close()

	return parser.Parse(inf)
}
