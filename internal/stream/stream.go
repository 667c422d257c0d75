// Package stream provides live, restartable sequences of values pushed by a
// remote source. Every consumer owns a handle and must call Stop when done;
// a Group tears down many handles at once.
package stream

import (
	"context"
	"sync"

	"petcare/internal/errors"
)

// ErrClosed is returned by First when the stream ended without a value.
var ErrClosed = errors.New("stream closed")

// Stopper is anything that releases a subscription.
type Stopper interface {
	Stop()
}

// Stream delivers snapshots of type T. Delivery is latest-wins: a snapshot that
// arrives before the consumer read the previous one replaces it, so a slow
// consumer always observes the newest state in emission order.
type Stream[T any] struct {
	updates chan T
	done    chan struct{}
	cancel  func()

	mu     sync.Mutex
	closed bool
	err    error

	stopOnce sync.Once
}

// New creates a stream. cancel is invoked once on Stop and should release the
// producer (cancel a context, unregister a subscriber).
func New[T any](cancel func()) *Stream[T] {
	return &Stream[T]{
		updates: make(chan T, 1),
		done:    make(chan struct{}),
		cancel:  cancel,
	}
}

// Of returns an already-ended stream holding the given values in order.
func Of[T any](values ...T) *Stream[T] {
	s := &Stream[T]{
		updates: make(chan T, len(values)),
		done:    make(chan struct{}),
	}
	for _, v := range values {
		s.updates <- v
	}
	s.finish(nil)

	return s
}

// Updates returns the channel of snapshots. It is closed when the stream ends.
func (s *Stream[T]) Updates() <-chan T {
	return s.updates
}

// Done is closed when the stream ends for any reason.
func (s *Stream[T]) Done() <-chan struct{} {
	return s.done
}

// Err reports why the stream ended; nil after a plain Stop.
func (s *Stream[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// Stop releases the subscription. Safe to call more than once.
func (s *Stream[T]) Stop() {
	s.stopOnce.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
		s.finish(nil)
	})
}

// Emit publishes a snapshot, replacing any unread one. It returns false once the
// stream has ended. Only one goroutine may emit on a given stream.
func (s *Stream[T]) Emit(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	select {
	case <-s.updates:
	default:
	}
	s.updates <- v

	return true
}

// Fail ends the stream with err. Producers call it when the source breaks.
func (s *Stream[T]) Fail(err error) {
	s.finish(err)
}

func (s *Stream[T]) finish(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.err = err
	close(s.done)
	close(s.updates)
}

// Map derives a stream by converting every snapshot of src. Stopping the derived
// stream stops src; a conversion error ends both.
func Map[T, U any](src *Stream[T], fn func(T) (U, error)) *Stream[U] {
	out := New[U](src.Stop)

	go func() {
		for v := range src.Updates() {
			u, err := fn(v)
			if err != nil {
				out.Fail(err)
				src.Stop()

				return
			}
			if !out.Emit(u) {
				return
			}
		}
		out.Fail(src.Err())
	}()

	return out
}

// First waits for one snapshot and stops the stream.
func First[T any](ctx context.Context, s *Stream[T]) (T, error) {
	defer s.Stop()

	var zero T
	select {
	case v, ok := <-s.Updates():
		if !ok {
			if err := s.Err(); err != nil {
				return zero, err
			}

			return zero, ErrClosed
		}

		return v, nil
	case <-ctx.Done():
		return zero, errors.WithStack(ctx.Err())
	}
}

// Latest3 recomputes fn whenever any of the three sources emits, using the zero
// value for sources that have not emitted yet. It ends when all sources end or
// as soon as one fails.
func Latest3[A, B, C, R any](a *Stream[A], b *Stream[B], c *Stream[C], fn func(A, B, C) R) *Stream[R] {
	out := New[R](func() {
		a.Stop()
		b.Stop()
		c.Stop()
	})

	go func() {
		var (
			va A
			vb B
			vc C
		)
		ca, cb, cc := a.Updates(), b.Updates(), c.Updates()
		for ca != nil || cb != nil || cc != nil {
			select {
			case v, ok := <-ca:
				if !ok {
					if failed(out, a.Err()) {
						return
					}
					ca = nil

					continue
				}
				va = v
			case v, ok := <-cb:
				if !ok {
					if failed(out, b.Err()) {
						return
					}
					cb = nil

					continue
				}
				vb = v
			case v, ok := <-cc:
				if !ok {
					if failed(out, c.Err()) {
						return
					}
					cc = nil

					continue
				}
				vc = v
			}
			if !out.Emit(fn(va, vb, vc)) {
				return
			}
		}
		out.Fail(nil)
	}()

	return out
}

func failed[R any](out *Stream[R], err error) bool {
	if err == nil {
		return false
	}
	out.Fail(err)
	out.Stop()

	return true
}

// Group collects subscriptions that share a lifetime, such as every stream
// opened for one pet's detail view.
type Group struct {
	mu      sync.Mutex
	members []Stopper
}

// Add registers s with the group.
func (g *Group) Add(s Stopper) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.members = append(g.members, s)
}

// StopAll stops every registered subscription and empties the group.
func (g *Group) StopAll() {
	g.mu.Lock()
	members := g.members
	g.members = nil
	g.mu.Unlock()

	for _, m := range members {
		m.Stop()
	}
}

// Len returns the number of live registrations.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.members)
}
