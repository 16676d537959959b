package contenttype

import (
	"context"
	"fmt"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/contenttype/internal/errorutil"
	"github.com/ghettovoice/contenttype/internal/grammar"
	"github.com/ghettovoice/contenttype/internal/log"
	"github.com/ghettovoice/contenttype/internal/util"
)

// ParserOptions configures a [Parser].
type ParserOptions struct {
	// Logger is used to report rejected input at debug level.
	// If nil, logging is disabled.
	Logger *slog.Logger
}

func (o *ParserOptions) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Noop
	}
	return o.Logger
}

// Parser parses Content-Type values.
// It is safe for concurrent use.
type Parser struct {
	log *slog.Logger
}

// NewParser creates a new parser. Options are optional.
func NewParser(opts *ParserOptions) *Parser {
	return &Parser{log: opts.log()}
}

// Parse parses s as a Content-Type value.
//
// Leading and trailing whitespace is ignored. The type, subtype and parameter names
// are lower-cased, values keep their case, quoted values are unescaped.
// If a parameter name repeats, the last value wins at the position of the first one.
//
// On failure the zero MediaType is returned with an error wrapping [ErrInvalidMediaType]
// or [ErrInvalidParameterFormat].
func (p *Parser) Parse(s string) (MediaType, error) {
	mt, err := parse(s)
	if err != nil {
		p.log.LogAttrs(context.Background(), slog.LevelDebug, "media type rejected",
			slog.Any("input", log.InputValue(s)),
			slog.Bool("grammar", errorutil.IsGrammarErr(err)),
			slog.Any("error", err),
		)
		return MediaType{}, errtrace.Wrap(err)
	}
	return mt, nil
}

// ParseFrom parses the Content-Type value held by src.
//
// src is either a string, a byte slice or a header source accepted by [HeaderValue].
func (p *Parser) ParseFrom(src any) (MediaType, error) {
	switch v := src.(type) {
	case string:
		return errtrace.Wrap2(p.Parse(v))
	case []byte:
		return errtrace.Wrap2(p.Parse(string(v)))
	}

	s, err := HeaderValue(src)
	if err != nil {
		p.log.LogAttrs(context.Background(), slog.LevelDebug, "header source rejected",
			slog.String("source", fmt.Sprintf("%T", src)),
			slog.Any("error", err),
		)
		return MediaType{}, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(p.Parse(s))
}

// Validate checks s against the media-type grammar without building the result.
func (p *Parser) Validate(s string) error {
	_, err := p.Parse(s)
	return errtrace.Wrap(err)
}

func parse(s string) (MediaType, error) {
	parts, err := grammar.Scan(s)
	if err != nil {
		return MediaType{}, errtrace.Wrap(err)
	}

	mt := MediaType{Type: parts.Type}
	if len(parts.Params) > 0 {
		mt.Params = make(Params, 0, len(parts.Params))
		for _, kv := range parts.Params {
			mt.Params = mt.Params.put(kv[0], kv[1])
		}
	}
	return mt, nil
}

var defParser = NewParser(nil)

// Parse parses s with the default parser, see [Parser.Parse].
func Parse(s string) (MediaType, error) { return errtrace.Wrap2(defParser.Parse(s)) }

// ParseFrom parses the value held by src with the default parser, see [Parser.ParseFrom].
func ParseFrom(src any) (MediaType, error) { return errtrace.Wrap2(defParser.ParseFrom(src)) }

// Validate checks s with the default parser, see [Parser.Validate].
func Validate(s string) error { return errtrace.Wrap(defParser.Validate(s)) }

// MustParse is like [Parse] but panics on error.
func MustParse(s string) MediaType { return util.Must2(Parse(s)) }
