package contenttype

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/contenttype/internal/util"
)

// Format serializes mt into a Content-Type value.
//
// Type is emitted as is, parameters follow in slice order as "; name=value".
// A value is emitted bare when it is a token and as a quoted-string otherwise.
// Invalid type, invalid or duplicate parameter names and values holding NUL, CR or LF
// make Format fail with an error wrapping [ErrInvalidArgument].
func Format(mt MediaType) (string, error) {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	if _, err := mt.RenderTo(sb); err != nil {
		return "", errtrace.Wrap(err)
	}
	return sb.String(), nil
}

// MustFormat is like [Format] but panics on error.
func MustFormat(mt MediaType) string { return util.Must2(Format(mt)) }
