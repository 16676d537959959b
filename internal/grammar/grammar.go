// Package grammar implements the media-type grammar of RFC 9110 Section 8.3.1.
//
//	media-type = type "/" subtype parameters
//	parameters = *( OWS ";" OWS [ parameter ] )
//	parameter  = parameter-name "=" parameter-value
//	parameter-value = ( token / quoted-string )
//
// Unlike the RFC the grammar here allows OWS around "=" and rejects
// empty parameter clauses.
package grammar

//go:generate errtrace -w .

import (
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/contenttype/internal/constraints"
	"github.com/ghettovoice/contenttype/internal/grammar/rfc9110"
)

func init() {
	abnf.EnableNodeCache(10 * 1024)
	initCharClass()
}

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrUnterminatedQuote Error = "unterminated quoted-string"
	ErrInvalidQuotedByte Error = "invalid byte in quoted-string"
	ErrUnquotable        Error = "value can not be quoted"
)

const (
	charTchar uint8 = 1 << iota
	charQDText
	charQPair
	charOWS
)

var charClass [256]uint8

// initCharClass derives the single octet classes from the rules.
func initCharClass() {
	rules := rfc9110.Rules()
	for i := range 256 {
		b := []byte{byte(i)}
		var cls uint8
		if matchLen(rules.Tchar, b) == 1 {
			cls |= charTchar
		}
		if matchLen(rules.Qdtext, b) == 1 {
			cls |= charQDText
		}
		if matchLen(rules.QuotedPair, []byte{'\\', byte(i)}) == 2 {
			cls |= charQPair
		}
		if matchLen(rules.RWS, b) == 1 {
			cls |= charOWS
		}
		charClass[i] = cls
	}
}

type rule func(s []byte, ns *abnf.Nodes) error

// matchLen returns the length of the longest match of r at the start of s, or 0.
func matchLen[T constraints.Byteseq](r rule, s T) int {
	if len(s) == 0 {
		return 0
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := r([]byte(s), ns); err != nil {
		return 0
	}
	return ns.Best().Len()
}

// IsTchar reports whether c is allowed in a token.
func IsTchar(c byte) bool { return charClass[c]&charTchar != 0 }

// IsQDText reports whether c may appear unescaped inside a quoted-string.
func IsQDText(c byte) bool { return charClass[c]&charQDText != 0 }

// IsQuotedPairChar reports whether c may follow a backslash inside a quoted-string.
func IsQuotedPairChar(c byte) bool { return charClass[c]&charQPair != 0 }

// IsOWS reports whether c is SP or HTAB.
func IsOWS(c byte) bool { return charClass[c]&charOWS != 0 }

func IsToken[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rfc9110.Rules().Token([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsTypeName reports whether s is "token/token".
func IsTypeName[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rfc9110.Rules().TypeName([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}
