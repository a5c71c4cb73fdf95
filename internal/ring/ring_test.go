package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestPushPop_fifoOrder(t *testing.T) {
	b := New[int](4)
	assert.True(t, b.Push(1))
	assert.True(t, b.Push(2))
	v, ok := b.Pop()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = b.Pop()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = b.Pop()
	assert.False(t, ok)
}

func TestPush_reportsFalseWhenFull(t *testing.T) {
	b := New[int](2)
	assert.True(t, b.Push(1))
	assert.True(t, b.Push(2))
	assert.False(t, b.Push(3))
}

func TestPushPop_propertyFifoUnderWraparound(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.IntRange(1, 8).Draw(t, "capacity")
		ops := rapid.IntRange(1, 200).Draw(t, "ops")
		b := New[int](capacity)

		var expected []int
		next := 0
		for i := 0; i < ops; i++ {
			if rapid.Bool().Draw(t, "doPush") && len(expected) < capacity {
				b.Push(next)
				expected = append(expected, next)
				next++
			} else if len(expected) > 0 {
				v, ok := b.Pop()
				if assert.True(t, ok) {
					assert.Equal(t, expected[0], v)
					expected = expected[1:]
				}
			}
		}
	})
}
