package grammar_test

import (
	"testing"

	"github.com/ghettovoice/contenttype/internal/grammar"
)

func TestIsToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want bool
	}{
		{"empty", "", false},
		{"alpha", "html", true},
		{"all tchars", "!#$%&'*+-.^_`|~09AZaz", true},
		{"space", "ht ml", false},
		{"tab", "ht\tml", false},
		{"slash", "text/html", false},
		{"delimiters", "a(b)", false},
		{"at", "@plain", false},
		{"quote", `"plain"`, false},
		{"colon", "http:", false},
		{"non ascii", "p£ain", false},
		{"del", "a\x7f", false},
		{"ctl", "a\x01", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IsToken(c.str); got != c.want {
				t.Errorf("grammar.IsToken(%q) = %v, want %v", c.str, got, c.want)
			}
			if got := grammar.IsToken([]byte(c.str)); got != c.want {
				t.Errorf("grammar.IsToken([]byte(%q)) = %v, want %v", c.str, got, c.want)
			}
		})
	}
}

func TestIsTypeName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want bool
	}{
		{"empty", "", false},
		{"slash only", "/", false},
		{"no subtype", "text/", false},
		{"no type", "/plain", false},
		{"no slash", "text", false},
		{"valid", "text/plain", true},
		{"suffix", "image/svg+xml", true},
		{"upper", "TEXT/PLAIN", true},
		{"two slashes", "text/plain/x", false},
		{"spaces", "text / plain", false},
		{"params", "text/plain;a=b", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IsTypeName(c.str); got != c.want {
				t.Errorf("grammar.IsTypeName(%q) = %v, want %v", c.str, got, c.want)
			}
		})
	}
}

func TestCharClasses(t *testing.T) {
	t.Parallel()

	for i := range 256 {
		c := byte(i)
		if got, want := grammar.IsOWS(c), c == ' ' || c == '\t'; got != want {
			t.Errorf("grammar.IsOWS(0x%02x) = %v, want %v", c, got, want)
		}
		if got, want := grammar.IsQuotedPairChar(c), c != 0 && c != '\r' && c != '\n'; got != want {
			t.Errorf("grammar.IsQuotedPairChar(0x%02x) = %v, want %v", c, got, want)
		}
		wantQD := c == '\t' || (c >= 0x20 && c != '"' && c != '\\' && c != 0x7f)
		if got := grammar.IsQDText(c); got != wantQD {
			t.Errorf("grammar.IsQDText(0x%02x) = %v, want %v", c, got, wantQD)
		}
		if grammar.IsTchar(c) && !grammar.IsQDText(c) {
			t.Errorf("tchar 0x%02x is not qdtext", c)
		}
	}
}
