package contenttype

import (
	"iter"
	"slices"

	"github.com/ghettovoice/contenttype/internal/util"
)

// Param is a single media type parameter.
type Param struct {
	Name  string
	Value string
}

// Params is an ordered list of media type parameters.
// Names are matched case-insensitively.
//
// Set and Del never modify the receiver, they return an updated copy.
type Params []Param

func (ps Params) index(name string) int {
	return slices.IndexFunc(ps, func(p Param) bool { return util.EqFold(p.Name, name) })
}

// Get returns the value of the named parameter.
func (ps Params) Get(name string) (string, bool) {
	if i := ps.index(name); i >= 0 {
		return ps[i].Value, true
	}
	return "", false
}

// Has checks whether the named parameter is present.
func (ps Params) Has(name string) bool { return ps.index(name) >= 0 }

func (ps Params) Len() int { return len(ps) }

// Names returns parameter names in order.
func (ps Params) Names() []string {
	if len(ps) == 0 {
		return nil
	}
	names := make([]string, len(ps))
	for i := range ps {
		names[i] = ps[i].Name
	}
	return names
}

// All returns an iterator over name/value pairs in order.
func (ps Params) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, p := range ps {
			if !yield(p.Name, p.Value) {
				return
			}
		}
	}
}

// Set returns a copy of ps with the named parameter set to value.
// An existing parameter keeps its position and name, a new one is appended.
func (ps Params) Set(name, value string) Params {
	return ps.Clone().put(name, value)
}

// put sets the parameter in place.
func (ps Params) put(name, value string) Params {
	if i := ps.index(name); i >= 0 {
		ps[i].Value = value
		return ps
	}
	return append(ps, Param{Name: name, Value: value})
}

// Del returns a copy of ps without the named parameter.
func (ps Params) Del(name string) Params {
	i := ps.index(name)
	if i < 0 {
		return ps.Clone()
	}
	out := make(Params, 0, len(ps)-1)
	out = append(out, ps[:i]...)
	out = append(out, ps[i+1:]...)
	if len(out) == 0 {
		return nil
	}
	return out
}

func (ps Params) Clone() Params {
	if ps == nil {
		return nil
	}
	return slices.Clone(ps)
}

// Equal reports whether ps and other hold the same parameters regardless of order.
// Names are compared case-insensitively, values exactly, except the charset value
// that is case-insensitive.
func (ps Params) Equal(other Params) bool {
	if len(ps) != len(other) {
		return false
	}
	return ps.contains(other) && other.contains(ps)
}

func (ps Params) contains(other Params) bool {
	for _, p := range other {
		v, ok := ps.Get(p.Name)
		if !ok || !paramValueEqual(p.Name, v, p.Value) {
			return false
		}
	}
	return true
}

func paramValueEqual(name, v1, v2 string) bool {
	if util.EqFold(name, "charset") {
		return util.EqFold(v1, v2)
	}
	return v1 == v2
}

// Map returns parameters as a map keyed by lower-cased names.
// If names repeat, the last value wins.
func (ps Params) Map() map[string]string {
	if len(ps) == 0 {
		return nil
	}
	m := make(map[string]string, len(ps))
	for _, p := range ps {
		m[util.LCase(p.Name)] = p.Value
	}
	return m
}
