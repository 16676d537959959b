package contenttype

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/contenttype/internal/errorutil"
	"github.com/ghettovoice/contenttype/internal/grammar"
	"github.com/ghettovoice/contenttype/internal/ioutil"
	"github.com/ghettovoice/contenttype/internal/util"
)

// MediaType is a parsed Content-Type value.
type MediaType struct {
	// Type is the full "type/subtype", lower-cased after parsing.
	Type string
	// Params holds parameters ordered by first occurrence.
	Params Params
}

// MainType returns the part of Type before the slash.
func (mt MediaType) MainType() string {
	typ, _, _ := strings.Cut(mt.Type, "/")
	return typ
}

// Subtype returns the part of Type after the slash.
func (mt MediaType) Subtype() string {
	_, sub, _ := strings.Cut(mt.Type, "/")
	return sub
}

// Suffix returns the structured syntax suffix of the subtype, e.g. "xml" for "image/svg+xml".
func (mt MediaType) Suffix() string {
	sub := mt.Subtype()
	if i := strings.LastIndexByte(sub, '+'); i >= 0 {
		return sub[i+1:]
	}
	return ""
}

// Param returns the value of the named parameter.
func (mt MediaType) Param(name string) (string, bool) { return mt.Params.Get(name) }

// Charset returns the charset parameter value or empty string.
func (mt MediaType) Charset() string {
	v, _ := mt.Params.Get("charset")
	return v
}

func (mt MediaType) IsZero() bool { return mt.Type == "" && len(mt.Params) == 0 }

func (mt MediaType) IsValid() bool { return mt.Validate() == nil }

// Validate checks that mt can be formatted.
// All problems are reported together in an error wrapping [ErrInvalidArgument].
func (mt MediaType) Validate() error {
	var errs []error
	if !grammar.IsTypeName(mt.Type) {
		errs = append(errs, errorutil.Errorf("invalid type %q", mt.Type))
	}
	for i, p := range mt.Params {
		switch {
		case !grammar.IsToken(p.Name):
			errs = append(errs, errorutil.Errorf("invalid parameter name %q", p.Name))
		case mt.Params[:i].Has(p.Name):
			errs = append(errs, errorutil.Errorf("duplicate parameter %q", p.Name))
		case !grammar.CanQuote(p.Value):
			errs = append(errs, errorutil.Errorf("invalid parameter %q value %q", p.Name, p.Value))
		}
	}
	if err := errorutil.JoinPrefix("invalid media type value:", errs...); err != nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	return nil
}

func (mt MediaType) Clone() MediaType {
	mt.Params = mt.Params.Clone()
	return mt
}

// Equal compares mt with val, which may be a MediaType or *MediaType.
// Type and parameter names are compared case-insensitively, parameter order is ignored.
func (mt MediaType) Equal(val any) bool {
	var other MediaType
	switch v := val.(type) {
	case MediaType:
		other = v
	case *MediaType:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	return util.EqFold(mt.Type, other.Type) && mt.Params.Equal(other.Params)
}

// RenderTo writes the formatted media type to w.
// mt is validated first, nothing is written if it is invalid.
func (mt MediaType) RenderTo(w io.Writer) (num int, err error) {
	if err := mt.Validate(); err != nil {
		return 0, errtrace.Wrap(err)
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.WriteStrings(mt.Type)
	for _, p := range mt.Params {
		val, _ := grammar.FormatValue(p.Value)
		cw.WriteStrings("; ", p.Name, "=", val)
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the formatted media type or empty string if mt is invalid.
func (mt MediaType) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	if _, err := mt.RenderTo(sb); err != nil {
		return ""
	}
	return sb.String()
}

func (mt MediaType) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, mt.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(mt.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, mt.String())
			return
		}

		type hideMethods MediaType
		type MediaType hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), MediaType(mt))
		return
	}
}

func (mt MediaType) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 2)
	attrs = append(attrs, slog.String("type", mt.Type))
	if len(mt.Params) > 0 {
		ps := make([]slog.Attr, len(mt.Params))
		for i, p := range mt.Params {
			ps[i] = slog.String(p.Name, p.Value)
		}
		attrs = append(attrs, slog.Attr{Key: "params", Value: slog.GroupValue(ps...)})
	}
	return slog.GroupValue(attrs...)
}

// MarshalText implements [encoding.TextMarshaler].
func (mt MediaType) MarshalText() ([]byte, error) {
	if mt.IsZero() {
		return []byte{}, nil
	}
	s, err := Format(mt)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// Empty data resets mt to the zero value.
func (mt *MediaType) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*mt = MediaType{}
		return nil
	}

	v, err := parse(string(data))
	if err != nil {
		*mt = MediaType{}
		return errtrace.Wrap(err)
	}
	*mt = v
	return nil
}
