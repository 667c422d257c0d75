package stream

import (
	"context"
	"testing"
	"time"

	"petcare/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, s *Stream[T]) T {
	t.Helper()

	select {
	case v, ok := <-s.Updates():
		require.True(t, ok, "stream closed")

		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for update")
	}

	var zero T

	return zero
}

func TestStream_EmitLatestWins(t *testing.T) {
	s := New[int](nil)
	defer s.Stop()

	assert.True(t, s.Emit(1))
	assert.True(t, s.Emit(2))

	assert.Equal(t, 2, receive(t, s))
}

func TestStream_StopCallsCancelOnceAndClosesUpdates(t *testing.T) {
	calls := 0
	s := New[string](func() { calls++ })

	s.Stop()
	s.Stop()

	assert.Equal(t, 1, calls)
	_, ok := <-s.Updates()
	assert.False(t, ok)
	assert.False(t, s.Emit("late"))
	assert.NoError(t, s.Err())
}

func TestStream_FailRecordsError(t *testing.T) {
	s := New[int](nil)
	boom := errors.New("boom")

	s.Fail(boom)

	<-s.Done()
	assert.ErrorIs(t, s.Err(), boom)
}

func TestOf_ReplaysValuesThenEnds(t *testing.T) {
	s := Of(1, 2, 3)

	var got []int
	for v := range s.Updates() {
		got = append(got, v)
	}

	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestMap_ConvertsAndPropagatesStop(t *testing.T) {
	stopped := make(chan struct{})
	src := New[int](func() { close(stopped) })
	out := Map(src, func(v int) (string, error) {
		return string(rune('a' + v)), nil
	})

	src.Emit(1)
	assert.Equal(t, "b", receive(t, out))

	out.Stop()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("source was not stopped")
	}
}

func TestMap_ErrorEndsStream(t *testing.T) {
	src := New[int](nil)
	boom := errors.New("decode failed")
	out := Map(src, func(int) (int, error) { return 0, boom })

	src.Emit(1)

	select {
	case <-out.Done():
	case <-time.After(time.Second):
		t.Fatal("mapped stream did not end")
	}
	assert.ErrorIs(t, out.Err(), boom)
}

func TestFirst(t *testing.T) {
	t.Run("returns first value and stops", func(t *testing.T) {
		stopped := false
		s := New[int](func() { stopped = true })
		s.Emit(42)

		v, err := First(context.Background(), s)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
		assert.True(t, stopped)
	})

	t.Run("closed without value", func(t *testing.T) {
		s := New[int](nil)
		s.Fail(nil)

		_, err := First(context.Background(), s)
		assert.ErrorIs(t, err, ErrClosed)
	})

	t.Run("context cancelled", func(t *testing.T) {
		s := New[int](nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := First(ctx, s)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLatest3_EmitsOnEveryArrival(t *testing.T) {
	a, b, c := New[int](nil), New[int](nil), New[int](nil)
	sum := Latest3(a, b, c, func(x, y, z int) int { return x + y + z })
	defer sum.Stop()

	b.Emit(10)
	assert.Equal(t, 10, receive(t, sum))

	c.Emit(5)
	assert.Equal(t, 15, receive(t, sum))

	a.Emit(1)
	assert.Equal(t, 16, receive(t, sum))
}

func TestLatest3_FailureOfOneSourceEndsAll(t *testing.T) {
	a, b, c := New[int](nil), New[int](nil), New[int](nil)
	out := Latest3(a, b, c, func(x, y, z int) int { return x + y + z })

	boom := errors.New("listen failed")
	a.Fail(boom)

	select {
	case <-out.Done():
	case <-time.After(time.Second):
		t.Fatal("combined stream did not end")
	}
	assert.ErrorIs(t, out.Err(), boom)
	<-b.Done()
	<-c.Done()
}

func TestGroup_StopAll(t *testing.T) {
	var g Group
	s1, s2 := New[int](nil), New[int](nil)
	g.Add(s1)
	g.Add(s2)
	assert.Equal(t, 2, g.Len())

	g.StopAll()

	assert.Equal(t, 0, g.Len())
	<-s1.Done()
	<-s2.Done()
}
