package grammar

import (
	"context"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/contenttype/internal/errorutil"
	"github.com/ghettovoice/contenttype/internal/util"
)

type scanState string

const (
	stateExpectTypeToken           scanState = "ExpectTypeToken"
	stateExpectSlash               scanState = "ExpectSlash"
	stateExpectSubtypeToken        scanState = "ExpectSubtypeToken"
	stateExpectParamSeparatorOrEnd scanState = "ExpectParamSeparatorOrEnd"
	stateExpectParamName           scanState = "ExpectParamName"
	stateExpectEquals              scanState = "ExpectEquals"
	stateExpectParamValueOrQuote   scanState = "ExpectParamValueOrQuote"
	stateExpectNextParamOrEnd      scanState = "ExpectNextParamOrEnd"
	stateDone                      scanState = "Done"
)

// errKind returns the error kind reported when the input breaks off in the state.
// Everything up to the end of the subtype belongs to the media type itself.
func (st scanState) errKind() errorutil.Error {
	switch st {
	case stateExpectTypeToken, stateExpectSlash, stateExpectSubtypeToken, stateExpectParamSeparatorOrEnd:
		return errorutil.ErrInvalidMediaType
	default:
		return errorutil.ErrInvalidParameterFormat
	}
}

// Parts holds the pieces of a scanned media type.
type Parts struct {
	// Type is the lower-cased "type/subtype".
	Type string
	// Params holds lower-cased parameter names with decoded values in input order.
	// Repeated names are kept as is.
	Params [][2]string
}

type scanner struct {
	lex   lexer
	fsm   *stateless.StateMachine
	cur   lexeme
	parts Parts
	name  string
}

func newScanner(s string) *scanner {
	sc := &scanner{lex: newLexer(s)}
	sc.initFSM()
	return sc
}

func (sc *scanner) initFSM() {
	sc.fsm = stateless.NewStateMachine(stateExpectTypeToken)
	sc.fsm.OnUnhandledTrigger(sc.actUnexpected)

	sc.fsm.Configure(stateExpectTypeToken).
		Ignore(lexOWS).
		Permit(lexToken, stateExpectSlash)

	sc.fsm.Configure(stateExpectSlash).
		OnEntry(sc.actTypeToken).
		Permit(lexSlash, stateExpectSubtypeToken)

	sc.fsm.Configure(stateExpectSubtypeToken).
		Permit(lexToken, stateExpectParamSeparatorOrEnd)

	sc.fsm.Configure(stateExpectParamSeparatorOrEnd).
		OnEntry(sc.actSubtypeToken).
		Ignore(lexOWS).
		Permit(lexSemicolon, stateExpectParamName).
		Permit(lexEnd, stateDone)

	sc.fsm.Configure(stateExpectParamName).
		Ignore(lexOWS).
		Permit(lexToken, stateExpectEquals)

	sc.fsm.Configure(stateExpectEquals).
		OnEntry(sc.actParamName).
		Ignore(lexOWS).
		Permit(lexEquals, stateExpectParamValueOrQuote)

	sc.fsm.Configure(stateExpectParamValueOrQuote).
		Ignore(lexOWS).
		Permit(lexToken, stateExpectNextParamOrEnd).
		Permit(lexQuoted, stateExpectNextParamOrEnd)

	sc.fsm.Configure(stateExpectNextParamOrEnd).
		OnEntry(sc.actParamValue).
		Ignore(lexOWS).
		Permit(lexSemicolon, stateExpectParamName).
		Permit(lexEnd, stateDone)
}

func (sc *scanner) actTypeToken(_ context.Context, args ...any) error {
	lx := args[0].(lexeme) //nolint:forcetypeassert
	sc.parts.Type = util.LCase(lx.raw)
	return nil
}

func (sc *scanner) actSubtypeToken(_ context.Context, args ...any) error {
	lx := args[0].(lexeme) //nolint:forcetypeassert
	sc.parts.Type += "/" + util.LCase(lx.raw)
	return nil
}

func (sc *scanner) actParamName(_ context.Context, args ...any) error {
	lx := args[0].(lexeme) //nolint:forcetypeassert
	sc.name = util.LCase(lx.raw)
	return nil
}

func (sc *scanner) actParamValue(_ context.Context, args ...any) error {
	lx := args[0].(lexeme) //nolint:forcetypeassert
	val := lx.raw
	if lx.kind == lexQuoted {
		val = lx.val
	}
	sc.parts.Params = append(sc.parts.Params, [2]string{sc.name, val})
	return nil
}

func (sc *scanner) actUnexpected(_ context.Context, state stateless.State, _ stateless.Trigger, _ []string) error {
	st, _ := state.(scanState)
	return errtrace.Wrap(errorutil.NewWrapperError(st.errKind(), sc.cur.cause()))
}

func (sc *scanner) run(ctx context.Context) (Parts, error) {
	for {
		lx := sc.lex.next()
		sc.cur = lx
		if err := sc.fsm.FireCtx(ctx, lx.kind, lx); err != nil {
			return Parts{}, errtrace.Wrap(err)
		}
		if lx.kind == lexEnd {
			return sc.parts, nil
		}
	}
}

// Scan validates s against the media-type grammar and splits it into parts.
//
// Leading and trailing OWS is ignored, OWS is allowed around ";" and "=".
// The type, subtype and parameter names are lower-cased, parameter values
// keep their case, quoted values are decoded.
// Errors wrap [errorutil.ErrInvalidMediaType] when the type/subtype part is malformed
// and [errorutil.ErrInvalidParameterFormat] when a parameter clause is malformed.
func Scan(s string) (Parts, error) {
	return errtrace.Wrap2(newScanner(s).run(context.Background()))
}
