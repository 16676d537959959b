// Package rfc9110 holds the ABNF rules of RFC 9110 needed to recognize media types.
//
// The operators follow rfc9110.abnf rule by rule.
package rfc9110

import (
	"sync"

	"github.com/ghettovoice/abnf"
)

// OperatorSet holds the rule operators keyed by the rule names of rfc9110.abnf.
type OperatorSet struct {
	ALPHA  abnf.Operator
	DIGIT  abnf.Operator
	DQUOTE abnf.Operator
	HTAB   abnf.Operator
	SP     abnf.Operator

	Tchar          abnf.Operator
	Token          abnf.Operator
	RWS            abnf.Operator
	ObsText        abnf.Operator
	Qdtext         abnf.Operator
	QuotedPair     abnf.Operator
	QuotedText     abnf.Operator
	QuotedPrefix   abnf.Operator
	QuotedString   abnf.Operator
	TypeName       abnf.Operator
}

var operators = sync.OnceValue(func() *OperatorSet {
	ops := new(OperatorSet)

	ops.ALPHA = abnf.Alt(
		"ALPHA",
		abnf.Range("%x41-5A", []byte{0x41}, []byte{0x5A}),
		abnf.Range("%x61-7A", []byte{0x61}, []byte{0x7A}),
	)
	ops.DIGIT = abnf.Range("DIGIT", []byte{0x30}, []byte{0x39})
	ops.DQUOTE = abnf.Literal("DQUOTE", []byte{0x22})
	ops.HTAB = abnf.Literal("HTAB", []byte{0x09})
	ops.SP = abnf.Literal("SP", []byte{0x20})

	ops.Tchar = abnf.Alt(
		"tchar",
		abnf.Literal(`"!"`, []byte{'!'}),
		abnf.Literal(`"#"`, []byte{'#'}),
		abnf.Literal(`"$"`, []byte{'$'}),
		abnf.Literal(`"%"`, []byte{'%'}),
		abnf.Literal(`"&"`, []byte{'&'}),
		abnf.Literal(`"'"`, []byte{'\''}),
		abnf.Literal(`"*"`, []byte{'*'}),
		abnf.Literal(`"+"`, []byte{'+'}),
		abnf.Literal(`"-"`, []byte{'-'}),
		abnf.Literal(`"."`, []byte{'.'}),
		abnf.Literal(`"^"`, []byte{'^'}),
		abnf.Literal(`"_"`, []byte{'_'}),
		abnf.Literal("\"`\"", []byte{'`'}),
		abnf.Literal(`"|"`, []byte{'|'}),
		abnf.Literal(`"~"`, []byte{'~'}),
		ops.DIGIT,
		ops.ALPHA,
	)
	ops.Token = abnf.Repeat1Inf("token", ops.Tchar)

	ws := abnf.Alt("SP / HTAB", ops.SP, ops.HTAB)
	ops.RWS = abnf.Repeat1Inf("RWS", ws)

	ops.ObsText = abnf.Range("obs-text", []byte{0x80}, []byte{0xFF})
	ops.Qdtext = abnf.Alt(
		"qdtext",
		ops.HTAB,
		ops.SP,
		abnf.Literal("%x21", []byte{0x21}),
		abnf.Range("%x23-5B", []byte{0x23}, []byte{0x5B}),
		abnf.Range("%x5D-7E", []byte{0x5D}, []byte{0x7E}),
		ops.ObsText,
	)
	ops.QuotedPair = abnf.Concat(
		"quoted-pair",
		abnf.Literal(`"\"`, []byte{'\\'}),
		abnf.Alt(
			"%x01-09 / %x0B-0C / %x0E-FF",
			abnf.Range("%x01-09", []byte{0x01}, []byte{0x09}),
			abnf.Range("%x0B-0C", []byte{0x0B}, []byte{0x0C}),
			abnf.Range("%x0E-FF", []byte{0x0E}, []byte{0xFF}),
		),
	)
	ops.QuotedText = abnf.Repeat0Inf(
		"quoted-text",
		abnf.Alt("qdtext / quoted-pair", ops.Qdtext, ops.QuotedPair),
	)
	ops.QuotedPrefix = abnf.Concat("quoted-prefix", ops.DQUOTE, ops.QuotedText)
	ops.QuotedString = abnf.Concat("quoted-string", ops.DQUOTE, ops.QuotedText, ops.DQUOTE)

	ops.TypeName = abnf.Concat(
		"type-name",
		abnf.Repeat1Inf("type", ops.Tchar),
		abnf.Literal(`"/"`, []byte{'/'}),
		abnf.Repeat1Inf("subtype", ops.Tchar),
	)

	return ops
})

// Operators returns the rule operators.
func Operators() *OperatorSet { return operators() }

// RuleSet runs the rule operators from the start of the input.
type RuleSet struct{ ops *OperatorSet }

// Rules returns the rule set.
func Rules() RuleSet { return RuleSet{operators()} }

func (r RuleSet) Tchar(s []byte, ns *abnf.Nodes) error {
	return r.ops.Tchar(s, 0, ns) //errtrace:skip
}

func (r RuleSet) Token(s []byte, ns *abnf.Nodes) error {
	return r.ops.Token(s, 0, ns) //errtrace:skip
}

func (r RuleSet) RWS(s []byte, ns *abnf.Nodes) error {
	return r.ops.RWS(s, 0, ns) //errtrace:skip
}

func (r RuleSet) Qdtext(s []byte, ns *abnf.Nodes) error {
	return r.ops.Qdtext(s, 0, ns) //errtrace:skip
}

func (r RuleSet) QuotedPair(s []byte, ns *abnf.Nodes) error {
	return r.ops.QuotedPair(s, 0, ns) //errtrace:skip
}

func (r RuleSet) QuotedPrefix(s []byte, ns *abnf.Nodes) error {
	return r.ops.QuotedPrefix(s, 0, ns) //errtrace:skip
}

func (r RuleSet) QuotedString(s []byte, ns *abnf.Nodes) error {
	return r.ops.QuotedString(s, 0, ns) //errtrace:skip
}

func (r RuleSet) TypeName(s []byte, ns *abnf.Nodes) error {
	return r.ops.TypeName(s, 0, ns) //errtrace:skip
}
