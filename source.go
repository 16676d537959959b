package contenttype

import (
	"net/http"
	"net/textproto"
	"reflect"

	"braces.dev/errtrace"

	"github.com/ghettovoice/contenttype/internal/errorutil"
	"github.com/ghettovoice/contenttype/internal/util"
)

//go:generate go tool mockgen -source=source.go -destination=internal/testutil/hdrmock/source.go -package=hdrmock

// HeaderName is the canonical name of the header read from header sources.
const HeaderName = "Content-Type"

// HeaderGetter is a header accessor, e.g. [http.Header] or any custom header container.
type HeaderGetter interface {
	Get(name string) string
}

// HeaderGetterFunc is an adapter to use a function as [HeaderGetter].
type HeaderGetterFunc func(name string) string

func (fn HeaderGetterFunc) Get(name string) string { return fn(name) }

// HeaderCarrier is an object holding headers, e.g. [http.ResponseWriter].
type HeaderCarrier interface {
	Header() http.Header
}

// HeaderValue extracts the Content-Type value from src.
//
// Supported sources are checked in order:
//   - header mappings: [http.Header], [textproto.MIMEHeader], map[string][]string,
//     map[string]string, headers of [*http.Request] and [*http.Response], [HeaderCarrier];
//   - header accessors: [HeaderGetter].
//
// Header names are matched case-insensitively, the first value wins.
// A struct or a pointer to struct without any of the capabilities above holds no headers
// and fails with [ErrMissingHeader], as does an empty value.
// Nil sources, including typed nil pointers, and any other source fail with [ErrInvalidArgument].
// The value is returned as is, it is not parsed.
func HeaderValue(src any) (string, error) {
	var val string
	switch v := src.(type) {
	case http.Header:
		val = lookupMulti(v)
	case textproto.MIMEHeader:
		val = lookupMulti(v)
	case map[string][]string:
		val = lookupMulti(v)
	case map[string]string:
		val = lookupSingle(v)
	case *http.Request:
		if v == nil {
			return "", errtrace.Wrap(NewInvalidArgumentError("nil request"))
		}
		val = lookupMulti(v.Header)
	case *http.Response:
		if v == nil {
			return "", errtrace.Wrap(NewInvalidArgumentError("nil response"))
		}
		val = lookupMulti(v.Header)
	case HeaderCarrier:
		if isNilRef(v) {
			return "", errtrace.Wrap(NewInvalidArgumentError("nil header source %T", src))
		}
		val = lookupMulti(v.Header())
	case HeaderGetter:
		if isNilRef(v) {
			return "", errtrace.Wrap(NewInvalidArgumentError("nil header source %T", src))
		}
		val = v.Get(HeaderName)
	case nil:
		return "", errtrace.Wrap(NewInvalidArgumentError("nil header source"))
	default:
		rv := reflect.ValueOf(src)
		if rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return "", errtrace.Wrap(NewInvalidArgumentError("nil header source %T", src))
			}
			rv = rv.Elem()
		}
		if rv.Kind() == reflect.Struct {
			// an object without headers
			return "", errtrace.Wrap(errorutil.NewWrapperError(ErrMissingHeader, "%T holds no headers", src))
		}
		return "", errtrace.Wrap(NewInvalidArgumentError("unsupported header source %T", src))
	}

	if val == "" {
		return "", errtrace.Wrap(ErrMissingHeader)
	}
	return val, nil
}

// isNilRef reports whether v is a nil pointer or a nil func behind a non-nil interface.
func isNilRef(v any) bool {
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

func lookupMulti[M ~map[string][]string](m M) string {
	if vs, ok := m[HeaderName]; ok {
		return first(vs)
	}
	for k, vs := range m {
		if util.EqFold(k, HeaderName) {
			return first(vs)
		}
	}
	return ""
}

func first(vs []string) string {
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

func lookupSingle(m map[string]string) string {
	if v, ok := m[HeaderName]; ok {
		return v
	}
	for k, v := range m {
		if util.EqFold(k, HeaderName) {
			return v
		}
	}
	return ""
}
