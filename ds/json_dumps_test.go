package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpJSON(t *testing.T) {
	lhm := NewLinkedHashMap[string, int]()
	lhm.Put("b", 1)
	lhm.Put("a", 2)

	assert.Equal(t, `{"b":1,"a":2}`, DumpJSON(lhm))
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": 2\n}", DumpIndentedJSON(lhm))
	assert.Contains(t, DumpJSON(make(chan int)), "DumpJSON error")
}
