package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams_EmptyConfigPassesThrough(t *testing.T) {
	p := NewParams(nil)

	value, ok, used := p.Get("", "?")
	assert.Equal(t, "?", value)
	assert.True(t, ok)
	assert.False(t, used)
}

func TestParams_ListParamsConsumePositionally(t *testing.T) {
	p := NewParams(&ParamsConfig{ListParams: []string{"1", "2"}})

	v1, ok1, used1 := p.Get("", "?")
	assert.Equal(t, "1", v1)
	assert.True(t, ok1)
	assert.True(t, used1)

	v2, ok2, used2 := p.Get("", "?")
	assert.Equal(t, "2", v2)
	assert.True(t, ok2)
	assert.True(t, used2)

	_, ok3, used3 := p.Get("", "?")
	assert.False(t, ok3)
	assert.True(t, used3)
}

func TestParams_MapParamsLookUpByKey(t *testing.T) {
	p := NewParams(&ParamsConfig{MapParams: map[string]string{"name": "'bob'"}})

	v, ok, used := p.Get("name", ":name")
	assert.Equal(t, "'bob'", v)
	assert.True(t, ok)
	assert.True(t, used)

	_, ok2, used2 := p.Get("missing", ":missing")
	assert.False(t, ok2)
	assert.True(t, used2)
}
