package store

import "sync"

// Subscription is a cancellable stream of full-collection snapshots.
// The channel has a buffer of one and delivery coalesces: if the consumer is
// slow, intermediate snapshots are dropped and only the latest is kept. A
// consumer can therefore miss states but never observes a partial one.
type Subscription[T any] struct {
	C <-chan []T

	mu     sync.Mutex
	ch     chan []T
	closed bool
	cancel func()
}

func newSubscription[T any](cancel func()) *Subscription[T] {
	ch := make(chan []T, 1)
	return &Subscription[T]{C: ch, ch: ch, cancel: cancel}
}

// Cancel stops delivery and closes the channel. Safe to call more than once.
func (s *Subscription[T]) Cancel() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.ch)
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
}

// Send delivers a snapshot with latest-wins semantics. Sends after Cancel are
// dropped.
func (s *Subscription[T]) Send(snapshot []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	select {
	case s.ch <- snapshot:
	default:
		select {
		case <-s.ch:
		default:
		}
		s.ch <- snapshot
	}
}

// Notifier fans snapshots out to the current subscribers of one collection.
// The local sqlite backend publishes after each of its own mutations; there is
// no cross-client push for that backend.
type Notifier[T any] struct {
	mu   sync.Mutex
	next int
	subs map[int]*Subscription[T]
}

func NewNotifier[T any]() *Notifier[T] {
	return &Notifier[T]{subs: make(map[int]*Subscription[T])}
}

// Subscribe registers a new subscription. Cancelling it unregisters it.
func (n *Notifier[T]) Subscribe() *Subscription[T] {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++

	sub := newSubscription[T](func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	})
	n.subs[id] = sub
	return sub
}

// Publish delivers a snapshot to every current subscriber.
func (n *Notifier[T]) Publish(snapshot []T) {
	n.mu.Lock()
	subs := make([]*Subscription[T], 0, len(n.subs))
	for _, sub := range n.subs {
		subs = append(subs, sub)
	}
	n.mu.Unlock()

	for _, sub := range subs {
		sub.Send(snapshot)
	}
}
