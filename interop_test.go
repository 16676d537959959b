package contenttype_test

import (
	"net/http"
	"testing"

	elcontenttype "github.com/elnormous/contenttype"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/vfaronov/httpheader"

	"github.com/ghettovoice/contenttype"
)

// Interop tests check that common values are read the same way by
// independent implementations.

func TestInterop_Elnormous(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		"text/html",
		"application/json",
		"image/svg+xml",
		"text/html; charset=utf-8",
		"text/html;charset=utf-8",
		`text/html; charset="utf-8"`,
		"multipart/form-data; boundary=abc123; charset=utf-8",
	} {
		req := &http.Request{Header: http.Header{"Content-Type": {s}}}
		their, err := elcontenttype.GetMediaType(req)
		if err != nil {
			t.Fatalf("elcontenttype.GetMediaType(%q) error = %v, want nil", s, err)
		}

		ours, err := contenttype.ParseFrom(req)
		if err != nil {
			t.Fatalf("contenttype.ParseFrom(%q) error = %v, want nil", s, err)
		}

		if got, want := ours.Type, their.Type+"/"+their.Subtype; got != want {
			t.Errorf("contenttype.ParseFrom(%q).Type = %q, want %q", s, got, want)
		}
		theirParams := make(map[string]string, len(their.Parameters))
		for k, v := range their.Parameters {
			theirParams[k] = v
		}
		if diff := cmp.Diff(ours.Params.Map(), theirParams, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("contenttype.ParseFrom(%q).Params diff (-got +want):\n%v", s, diff)
		}
	}
}

func TestInterop_Httpheader(t *testing.T) {
	t.Parallel()

	t.Run("parse", func(t *testing.T) {
		t.Parallel()

		for _, s := range []string{
			"text/html",
			"Text/HTML",
			"application/vnd.api+json",
			"text/html;charset=utf-8",
			`Text/HTML; Charset="utf-8"`,
			"text/html\t; \t charset=utf-8",
			`application/foo; quux="xyz\\zy";bar=baz`,
			"text/html; charset = utf-8",
		} {
			h := http.Header{"Content-Type": {s}}
			theirType, theirParams := httpheader.ContentType(h)

			ours, err := contenttype.ParseFrom(h)
			if err != nil {
				t.Fatalf("contenttype.ParseFrom(%q) error = %v, want nil", s, err)
			}

			if ours.Type != theirType {
				t.Errorf("contenttype.ParseFrom(%q).Type = %q, want %q", s, ours.Type, theirType)
			}
			if diff := cmp.Diff(ours.Params.Map(), theirParams, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("contenttype.ParseFrom(%q).Params diff (-got +want):\n%v", s, diff)
			}
		}
	})

	t.Run("format", func(t *testing.T) {
		t.Parallel()

		for _, mt := range []contenttype.MediaType{
			{Type: "text/html"},
			{Type: "text/html", Params: contenttype.Params{{"charset", "utf-8"}}},
			{Type: "application/foo", Params: contenttype.Params{{"quux", `xyz\z"y`}, {"bar", "a b"}}},
		} {
			s, err := contenttype.Format(mt)
			if err != nil {
				t.Fatalf("contenttype.Format(%+v) error = %v, want nil", mt, err)
			}

			gotType, gotParams := httpheader.ContentType(http.Header{"Content-Type": {s}})
			if gotType != mt.Type {
				t.Errorf("httpheader.ContentType(%q) type = %q, want %q", s, gotType, mt.Type)
			}
			if diff := cmp.Diff(gotParams, mt.Params.Map(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("httpheader.ContentType(%q) params diff (-got +want):\n%v", s, diff)
			}
		}
	})

	t.Run("generated by httpheader", func(t *testing.T) {
		t.Parallel()

		h := http.Header{}
		httpheader.SetContentType(h, "multipart/form-data", map[string]string{"boundary": "a;b=c", "charset": "utf-8"})

		mt, err := contenttype.ParseFrom(h)
		if err != nil {
			t.Fatalf("contenttype.ParseFrom(%q) error = %v, want nil", h.Get("Content-Type"), err)
		}
		want := map[string]string{"boundary": "a;b=c", "charset": "utf-8"}
		if mt.Type != "multipart/form-data" {
			t.Errorf("mt.Type = %q, want %q", mt.Type, "multipart/form-data")
		}
		if diff := cmp.Diff(mt.Params.Map(), want); diff != "" {
			t.Errorf("mt.Params diff (-got +want):\n%v", diff)
		}
	})
}
