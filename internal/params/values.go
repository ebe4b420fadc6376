package params

import (
	"net/url"
	"strings"
)

// Values is an insertion-ordered set of query parameters.
type Values struct {
	keys []string
	m    map[string]string
}

// NewValues returns an empty Values.
func NewValues() *Values {
	return &Values{m: make(map[string]string)}
}

// Set adds key or replaces its value, keeping the original position.
func (v *Values) Set(key, value string) {
	if v.m == nil {
		v.m = make(map[string]string)
	}
	if _, ok := v.m[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.m[key] = value
}

func (v *Values) Get(key string) (string, bool) {
	if v == nil {
		return "", false
	}
	val, ok := v.m[key]
	return val, ok
}

func (v *Values) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Keys returns the keys in insertion order.
func (v *Values) Keys() []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

func (v *Values) Len() int {
	if v == nil {
		return 0
	}
	return len(v.keys)
}

// Map returns a plain copy of the parameters.
func (v *Values) Map() map[string]string {
	out := make(map[string]string, v.Len())
	for _, k := range v.Keys() {
		out[k] = v.m[k]
	}
	return out
}

func (v *Values) Clone() *Values {
	c := NewValues()
	for _, k := range v.Keys() {
		c.Set(k, v.m[k])
	}
	return c
}

// Encode renders the parameters as a URL query string in insertion order.
func (v *Values) Encode() string {
	var sb strings.Builder
	for i, k := range v.Keys() {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(k))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(v.m[k]))
	}
	return sb.String()
}
