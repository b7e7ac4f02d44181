package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierDeliversToAllSubscribers(t *testing.T) {
	n := NewNotifier[int]()
	first := n.Subscribe()
	second := n.Subscribe()

	n.Publish([]int{1, 2})

	assert.Equal(t, []int{1, 2}, <-first.C)
	assert.Equal(t, []int{1, 2}, <-second.C)
}

func TestSubscriptionCoalescesToLatest(t *testing.T) {
	n := NewNotifier[int]()
	sub := n.Subscribe()

	// nobody reading: later snapshots replace the buffered one
	n.Publish([]int{1})
	n.Publish([]int{1, 2})
	n.Publish([]int{1, 2, 3})

	assert.Equal(t, []int{1, 2, 3}, <-sub.C)

	select {
	case extra := <-sub.C:
		t.Fatalf("unexpected extra snapshot %v", extra)
	default:
	}
}

func TestCancelClosesChannelAndUnregisters(t *testing.T) {
	n := NewNotifier[int]()
	sub := n.Subscribe()

	sub.Cancel()
	sub.Cancel() // idempotent

	_, open := <-sub.C
	require.False(t, open)

	// publishing after cancel must not panic or deliver
	n.Publish([]int{1})
}

func TestSendAfterCancelIsDropped(t *testing.T) {
	sub := newSubscription[int](nil)
	sub.Cancel()
	sub.Send([]int{1})

	_, open := <-sub.C
	assert.False(t, open)
}
