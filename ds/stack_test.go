package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Peek(t *testing.T) {
	type T struct {
		Value1 int
		Value2 int
	}
	stack := NewStack[T]()
	stack.Push(
		T{
			Value1: 1,
			Value2: 2,
		},
	)

	last := stack.Peek()

	assert.Equal(t, last.Value1, 1)
	assert.Equal(t, last.Value2, 2)
}

func TestStack_PushPop(t *testing.T) {
	stack := NewStack[string]()
	assert.True(t, stack.IsEmpty())

	stack.Push("a")
	stack.Push("b")
	assert.Equal(t, []string{"a", "b"}, stack.Items())

	assert.Equal(t, "b", stack.Pop())
	assert.Equal(t, 1, stack.Len())
	stack.ReplaceLast(func(s string) string { return s + "!" })
	assert.Equal(t, "a!", stack.Peek())
}
