package grammar

import (
	"bytes"
	"fmt"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/contenttype/internal/constraints"
	"github.com/ghettovoice/contenttype/internal/grammar/rfc9110"
	"github.com/ghettovoice/contenttype/internal/util"
)

type quoteState uint8

const (
	stateInQuotedValue quoteState = iota
	stateInEscapeSequence
)

// ConsumeQuoted decodes the quoted-string at the start of s.
// It returns the decoded value and the number of bytes consumed including both quotes.
// On failure n is the offset of the offending byte, or len(s) for an unterminated string.
func ConsumeQuoted[T constraints.Byteseq](s T) (val string, n int, err error) {
	return errtrace.Wrap3(consumeQuoted([]byte(s)))
}

func consumeQuoted(b []byte) (string, int, error) {
	rules := rfc9110.Rules()
	if n := matchLen(rules.QuotedString, b); n > 0 {
		return decodeQuoted(b[1 : n-1]), n, nil
	}

	n := matchLen(rules.QuotedPrefix, b)
	switch {
	case n == 0:
		return "", 0, errtrace.Wrap(fmt.Errorf("%w: missing opening quote", ErrUnterminatedQuote))
	case n == len(b), b[n] == '\\' && n+1 == len(b):
		return "", len(b), errtrace.Wrap(ErrUnterminatedQuote)
	case b[n] == '\\':
		return "", n + 1, errtrace.Wrap(fmt.Errorf("%w: escaped 0x%02x", ErrInvalidQuotedByte, b[n+1]))
	default:
		return "", n, errtrace.Wrap(fmt.Errorf("%w: 0x%02x", ErrInvalidQuotedByte, b[n]))
	}
}

// decodeQuoted drops the backslash of every quoted-pair in the already matched quoted text b.
func decodeQuoted(b []byte) string {
	i := bytes.IndexByte(b, '\\')
	if i < 0 {
		return string(b)
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.Write(b[:i])
	state := stateInEscapeSequence
	for _, c := range b[i+1:] {
		switch state {
		case stateInQuotedValue:
			if c == '\\' {
				state = stateInEscapeSequence
				continue
			}
			sb.WriteByte(c)
		case stateInEscapeSequence:
			// the escaped byte is taken literally
			sb.WriteByte(c)
			state = stateInQuotedValue
		}
	}
	return sb.String()
}

// CanQuote reports whether s can be represented as a quoted-string.
func CanQuote(s string) bool {
	return strings.IndexAny(s, "\x00\r\n") < 0
}

func needsEscape(c byte) bool { return c == '"' || c == '\\' || !IsQDText(c) }

// Quote encodes s as a quoted-string.
// Backslash and double quote are escaped, as are control bytes except HTAB, and DEL.
// NUL, CR and LF can not be represented and make Quote fail.
func Quote(s string) (string, error) {
	if !CanQuote(s) {
		return "", errtrace.Wrap(fmt.Errorf("%w: %q", ErrUnquotable, s))
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteByte('"')
	start := 0
	for i := 0; i < len(s); i++ {
		if needsEscape(s[i]) {
			sb.WriteString(s[start:i])
			sb.WriteByte('\\')
			start = i
		}
	}
	sb.WriteString(s[start:])
	sb.WriteByte('"')
	return sb.String(), nil
}

// FormatValue returns s as is when it is a token and quoted otherwise.
func FormatValue(s string) (string, error) {
	if IsToken(s) {
		return s, nil
	}
	return errtrace.Wrap2(Quote(s))
}
