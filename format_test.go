package contenttype_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/contenttype"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mt      contenttype.MediaType
		want    string
		wantErr error
	}{
		{"type only", contenttype.MediaType{Type: "text/html"}, "text/html", nil},
		{"type kept as is", contenttype.MediaType{Type: "Text/HTML"}, "Text/HTML", nil},
		{
			"token params",
			contenttype.MediaType{
				Type:   "text/html",
				Params: contenttype.Params{{"charset", "utf-8"}, {"foo", "bar"}},
			},
			"text/html; charset=utf-8; foo=bar",
			nil,
		},
		{
			"slice order kept",
			contenttype.MediaType{
				Type:   "text/html",
				Params: contenttype.Params{{"z", "1"}, {"a", "2"}},
			},
			"text/html; z=1; a=2",
			nil,
		},
		{
			"quoted value",
			contenttype.MediaType{
				Type:   "application/json",
				Params: contenttype.Params{{"profile", "http://localhost"}},
			},
			`application/json; profile="http://localhost"`,
			nil,
		},
		{
			"escaped value",
			contenttype.MediaType{
				Type:   "text/html",
				Params: contenttype.Params{{"charset", `UTF-\"8"`}},
			},
			`text/html; charset="UTF-\\\"8\""`,
			nil,
		},
		{
			"empty value",
			contenttype.MediaType{Type: "text/plain", Params: contenttype.Params{{"foo", ""}}},
			`text/plain; foo=""`,
			nil,
		},
		{
			"ctl escaped",
			contenttype.MediaType{Type: "text/plain", Params: contenttype.Params{{"foo", "a\x01\x7f"}}},
			"text/plain; foo=\"a\\\x01\\\x7f\"",
			nil,
		},

		{"zero", contenttype.MediaType{}, "", contenttype.ErrInvalidArgument},
		{"no subtype", contenttype.MediaType{Type: "text"}, "", contenttype.ErrInvalidArgument},
		{"bad type", contenttype.MediaType{Type: "text /html"}, "", contenttype.ErrInvalidArgument},
		{
			"bad name",
			contenttype.MediaType{Type: "text/html", Params: contenttype.Params{{"char set", "utf-8"}}},
			"",
			contenttype.ErrInvalidArgument,
		},
		{
			"empty name",
			contenttype.MediaType{Type: "text/html", Params: contenttype.Params{{"", "utf-8"}}},
			"",
			contenttype.ErrInvalidArgument,
		},
		{
			"duplicate name",
			contenttype.MediaType{Type: "text/html", Params: contenttype.Params{{"a", "1"}, {"A", "2"}}},
			"",
			contenttype.ErrInvalidArgument,
		},
		{
			"crlf value",
			contenttype.MediaType{Type: "text/html", Params: contenttype.Params{{"a", "1\r\nX-Injected: 1"}}},
			"",
			contenttype.ErrInvalidArgument,
		},
		{
			"nul value",
			contenttype.MediaType{Type: "text/html", Params: contenttype.Params{{"a", "\x00"}}},
			"",
			contenttype.ErrInvalidArgument,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := contenttype.Format(c.mt)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("contenttype.Format(%+v) error = %v, want %v\ndiff (-got +want):\n%v", c.mt, err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("contenttype.Format(%+v) = %q, want %q", c.mt, got, c.want)
			}
		})
	}
}

func TestFormat_AllProblems(t *testing.T) {
	t.Parallel()

	mt := contenttype.MediaType{
		Type:   "text",
		Params: contenttype.Params{{"a b", "1"}, {"c", "2"}, {"C", "3"}, {"d", "\n"}},
	}
	_, err := contenttype.Format(mt)
	if err == nil {
		t.Fatalf("contenttype.Format(%+v) error = nil, want error", mt)
	}

	msg := err.Error()
	for _, want := range []string{
		`invalid type "text"`,
		`invalid parameter name "a b"`,
		`duplicate parameter "C"`,
		`invalid parameter "d" value "\n"`,
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("contenttype.Format(%+v) error = %q, want to contain %q", mt, msg, want)
		}
	}
}

func TestMustFormat(t *testing.T) {
	t.Parallel()

	mt := contenttype.MediaType{Type: "text/plain", Params: contenttype.Params{{"charset", "utf-8"}}}
	if got, want := contenttype.MustFormat(mt), "text/plain; charset=utf-8"; got != want {
		t.Errorf("contenttype.MustFormat(%+v) = %q, want %q", mt, got, want)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("contenttype.MustFormat(zero) did not panic")
		}
	}()
	contenttype.MustFormat(contenttype.MediaType{})
}
