package norma

import (
	"strings"
	"unicode"
)

// TokenKind is the lexical class of a token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_WORD    = TokenKind(iota) // word
	TOKEN_NUMBER                    // number
	TOKEN_COLON                     // :
	TOKEN_FACA                      // faca
	TOKEN_ADD                       // add
	TOKEN_SUB                       // sub
	TOKEN_SE                        // se
	TOKEN_ZERO                      // zero
	TOKEN_ENTAO                     // entao
	TOKEN_SENAO                     // senao
	TOKEN_VA_PARA                   // va_para
)

// keywordMap maps the case-sensitive keywords to their token kinds.
var keywordMap = map[string]TokenKind{
	"faca":    TOKEN_FACA,
	"add":     TOKEN_ADD,
	"sub":     TOKEN_SUB,
	"se":      TOKEN_SE,
	"zero":    TOKEN_ZERO,
	"entao":   TOKEN_ENTAO,
	"senao":   TOKEN_SENAO,
	"va_para": TOKEN_VA_PARA,
}

// Token is a single lexical element of a program line.
type Token struct {
	Kind TokenKind
	Text string
}

// StripComment removes a '#' comment and surrounding whitespace from a line.
func StripComment(line string) string {
	if n := strings.IndexByte(line, '#'); n >= 0 {
		line = line[:n]
	}
	return strings.TrimSpace(line)
}

// isNumber reports if a word is an optionally signed run of decimal digits.
func isNumber(word string) bool {
	if len(word) > 0 && (word[0] == '-' || word[0] == '+') {
		word = word[1:]
	}
	if len(word) == 0 {
		return false
	}
	for _, r := range word {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Tokenize splits a comment-free line into tokens.
// Whitespace separates tokens; ':' is always a token of its own.
func Tokenize(line string) (tokens []Token) {
	word := strings.Builder{}

	flush := func() {
		if word.Len() == 0 {
			return
		}
		text := word.String()
		word.Reset()

		kind, ok := keywordMap[text]
		switch {
		case ok:
		case isNumber(text):
			kind = TOKEN_NUMBER
		default:
			kind = TOKEN_WORD
		}
		tokens = append(tokens, Token{Kind: kind, Text: text})
	}

	for _, r := range line {
		switch {
		case unicode.IsSpace(r):
			flush()
		case r == ':':
			flush()
			tokens = append(tokens, Token{Kind: TOKEN_COLON, Text: ":"})
		default:
			word.WriteRune(r)
		}
	}
	flush()

	return
}
