package grammar

import (
	"errors"
	"fmt"

	"github.com/ghettovoice/contenttype/internal/grammar/rfc9110"
)

type lexemeKind uint8

const (
	lexEnd lexemeKind = iota
	lexToken
	lexSlash
	lexSemicolon
	lexEquals
	lexOWS
	lexQuoted
	lexBadQuoted
	lexOther
)

var lexemeKindNames = [...]string{
	lexEnd:       "end",
	lexToken:     "token",
	lexSlash:     "slash",
	lexSemicolon: "semicolon",
	lexEquals:    "equals",
	lexOWS:       "whitespace",
	lexQuoted:    "quoted-string",
	lexBadQuoted: "bad quoted-string",
	lexOther:     "other",
}

func (k lexemeKind) String() string {
	if int(k) < len(lexemeKindNames) {
		return lexemeKindNames[k]
	}
	return fmt.Sprintf("lexeme(%d)", k)
}

type lexeme struct {
	kind lexemeKind
	pos  int
	raw  string
	// val is the decoded value of a quoted-string
	val string
	// err is the decoding failure of a bad quoted-string
	err error
}

// cause returns the error reported when lx is not expected.
// A broken quoted-string keeps its decoding error in the chain.
func (lx lexeme) cause() error {
	switch lx.kind {
	case lexEnd:
		return errors.New("unexpected end of input")
	case lexBadQuoted:
		return fmt.Errorf("%w at offset %d", lx.err, lx.pos)
	case lexOWS:
		return fmt.Errorf("unexpected whitespace at offset %d", lx.pos)
	default:
		return fmt.Errorf("unexpected %s %q at offset %d", lx.kind, lx.raw, lx.pos)
	}
}

type lexer struct {
	src string
	buf []byte
	pos int
}

func newLexer(s string) lexer { return lexer{src: s, buf: []byte(s)} }

func (l *lexer) next() lexeme {
	if l.pos >= len(l.src) {
		return lexeme{kind: lexEnd, pos: len(l.src)}
	}

	start := l.pos
	rest := l.buf[start:]
	rules := rfc9110.Rules()
	if n := matchLen(rules.Token, rest); n > 0 {
		l.pos += n
		return lexeme{kind: lexToken, pos: start, raw: l.src[start:l.pos]}
	}
	if n := matchLen(rules.RWS, rest); n > 0 {
		l.pos += n
		return lexeme{kind: lexOWS, pos: start, raw: l.src[start:l.pos]}
	}
	if rest[0] == '"' {
		val, n, err := ConsumeQuoted(rest)
		if err != nil {
			// nothing after a broken quoted-string is worth lexing
			l.pos = len(l.src)
			pos := start + n
			if errors.Is(err, ErrUnterminatedQuote) {
				pos = start
			}
			return lexeme{kind: lexBadQuoted, pos: pos, raw: l.src[start:], err: err}
		}
		l.pos = start + n
		return lexeme{kind: lexQuoted, pos: start, raw: l.src[start:l.pos], val: val}
	}

	l.pos++
	lx := lexeme{pos: start, raw: l.src[start:l.pos]}
	switch rest[0] {
	case '/':
		lx.kind = lexSlash
	case ';':
		lx.kind = lexSemicolon
	case '=':
		lx.kind = lexEquals
	default:
		lx.kind = lexOther
	}
	return lx
}
