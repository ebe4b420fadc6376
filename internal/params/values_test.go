package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValues_KeepsInsertionOrder(t *testing.T) {
	v := NewValues()
	v.Set("site", "stackoverflow")
	v.Set("sort", "votes")
	v.Set("page", "1")
	v.Set("sort", "hot")

	assert.Equal(t, []string{"site", "sort", "page"}, v.Keys())
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, "site=stackoverflow&sort=hot&page=1", v.Encode())
}

func TestValues_EncodeEscapes(t *testing.T) {
	v := NewValues()
	v.Set("tagged", "c#;.net")
	v.Set("filter", "!)GrKmj4SO9s6)An")
	assert.Equal(t, "tagged=c%23%3B.net&filter=%21%29GrKmj4SO9s6%29An", v.Encode())
}

func TestValues_CloneIsIndependent(t *testing.T) {
	v := NewValues()
	v.Set("site", "stackoverflow")

	c := v.Clone()
	c.Set("key", "secret")

	assert.False(t, v.Has("key"))
	assert.True(t, c.Has("key"))
	assert.Equal(t, []string{"site", "key"}, c.Keys())
}

func TestValues_NilAndZero(t *testing.T) {
	var nilValues *Values
	assert.Equal(t, 0, nilValues.Len())
	assert.Nil(t, nilValues.Keys())
	_, ok := nilValues.Get("site")
	assert.False(t, ok)

	var zero Values
	zero.Set("a", "b")
	assert.Equal(t, "a=b", zero.Encode())
}
