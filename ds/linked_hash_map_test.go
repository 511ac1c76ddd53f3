package ds

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkedHashMap_Keys(t *testing.T) {
	lhm := NewLinkedHashMap[string, int]()

	assert.True(t, len(lhm.Keys()) == 0)

	lhm.Put("a", 1)
	lhm.Put("b", 2)
	lhm.Put("a", 3)

	assert.Equal(t, []string{"a", "b"}, lhm.Keys())
	assert.Equal(t, []int{3, 2}, lhm.Values())
	assert.Equal(t, 2, lhm.Len())
}

func TestLinkedHashMap_Put(t *testing.T) {
	lhm := NewLinkedHashMap[string, any]()
	lhm.Put("abc", 1)
	lhm.Put("abc", 1)

	assert.Equal(t, lhm.hashMap, map[string]any{"abc": 1})
}

func TestLinkedHashMap_MarshalJSON(t *testing.T) {
	lhm := NewLinkedHashMap[string, any]()
	lhm.Put("def", 2)
	lhm.Put("abc", 1)

	bs, err := json.Marshal(lhm)
	assert.NoError(t, err)

	assert.Equal(t, `{"def":2,"abc":1}`, string(bs))
}
