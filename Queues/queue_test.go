package Queues

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayQueue_PopEmpty(t *testing.T) {
	q := MakeArrayQueue[int](0)
	require.True(t, q.Empty())
	_, err := q.Pop()
	var e *EmptyQueueError
	require.True(t, errors.As(err, &e))
	_, ok := q.Peek()
	assert.False(t, ok)
}

func TestArrayQueue_FIFO(t *testing.T) {
	for _, initCap := range []uint{0, 1, 3, 64} {
		q := MakeArrayQueue[int](initCap)
		for i := 0; i < 100; i++ {
			q.Push(i)
		}
		require.Equal(t, uint(100), q.Size())
		for i := 0; i < 100; i++ {
			p, ok := q.Peek()
			require.True(t, ok)
			require.Equal(t, i, p)
			v, err := q.Pop()
			require.NoError(t, err)
			require.Equal(t, i, v)
		}
		assert.True(t, q.Empty())
	}
}

// Interleaved pushes and pops wrap the head around the backing array.
func TestArrayQueue_Wrap(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	q := MakeArrayQueue[int](2)
	var model []int
	next := 0
	for range 5000 {
		if rg.Intn(3) > 0 || len(model) == 0 {
			q.Push(next)
			model = append(model, next)
			next++
		} else {
			v, err := q.Pop()
			require.NoError(t, err)
			require.Equal(t, model[0], v)
			model = model[1:]
		}
		if rg.Intn(50) == 0 {
			q.Shrink()
		}
		require.Equal(t, uint(len(model)), q.Size())
	}
	for _, want := range model {
		v, err := q.Pop()
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
}

func TestArrayQueue_Clear(t *testing.T) {
	q := MakeArrayQueue[string](4)
	q.Push("a")
	q.Push("b")
	q.Clear()
	assert.True(t, q.Empty())
	assert.Equal(t, uint(0), q.Size())
	q.Push("c")
	v, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "c", v)
}
