package store

import "sync"

// EventProgressUpdated is broadcast after every checklist-progress write.
// The notification carries no data: subscribers re-read the record from the
// Adapter (push-invalidate, pull-refresh).
const EventProgressUpdated = "studyProgressUpdated"

// EventWordBankUpdated is broadcast after every word-bank write, so
// mounted views and the header word count can re-read the bank.
const EventWordBankUpdated = "wordBankUpdated"

// Notifier is the process-wide sync channel owned by the store Adapter.
// Subscribers receive event names on a buffered channel; sends never block,
// so a slow subscriber coalesces notifications rather than stalling writers.
type Notifier struct {
	mu   sync.Mutex
	subs map[int]chan string
	next int
}

// Subscription is a handle to a registered listener.
type Subscription struct {
	id int

	// C delivers event names. Closed on Unsubscribe.
	C <-chan string
}

// NewNotifier creates an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]chan string)}
}

// Subscribe registers a new listener.
func (n *Notifier) Subscribe() Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	ch := make(chan string, 4)
	id := n.next
	n.next++
	n.subs[id] = ch

	return Subscription{id: id, C: ch}
}

// Unsubscribe removes a listener and closes its channel.
func (n *Notifier) Unsubscribe(s Subscription) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if ch, ok := n.subs[s.id]; ok {
		delete(n.subs, s.id)
		close(ch)
	}
}

// Notify broadcasts an event name to all subscribers without blocking.
// A subscriber whose buffer is full simply misses the duplicate signal;
// it will re-read on the notification already queued.
func (n *Notifier) Notify(event string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
