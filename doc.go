// Package contenttype parses and formats HTTP Content-Type header values.
//
// A value is parsed strictly against the media-type grammar of RFC 9110 Section 8.3.1:
//
//	text/html; charset="utf-8"; foo=bar
//
// The type, the subtype and the parameter names are lower-cased, parameter values
// keep their case, quoted values are unescaped. Parameters keep the order of their
// first occurrence, a repeated name replaces the earlier value.
//
// Failures wrap one of the error kinds [ErrInvalidArgument], [ErrMissingHeader],
// [ErrInvalidMediaType] or [ErrInvalidParameterFormat]:
//
//	mt, err := contenttype.Parse(`text/plain; foo="bar`)
//	if errors.Is(err, contenttype.ErrInvalidParameterFormat) {
//		// reject the request
//	}
//
// [ParseFrom] reads the header from http.Header, *http.Request, *http.Response,
// http.ResponseWriter and any type implementing [HeaderCarrier] or [HeaderGetter].
//
// [Format] is the inverse of [Parse], values are quoted only when necessary.
package contenttype

//go:generate errtrace -w .
