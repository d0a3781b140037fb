// Package events is an in-process publish/subscribe bus. It lets views that
// were set up independently react when shared state (the cart) changes.
package events

import "sync"

// CartUpdated is published after every cart mutation. The payload is the
// cart as it stands after the change ([]domain.CartItem).
const CartUpdated = "cartUpdated"

type Event struct {
	Topic   string
	Payload any
}

type Handler func(Event)

type subscription struct {
	id int
	fn Handler
}

// Bus delivers events synchronously, in publish order, to the handlers
// subscribed at publish time. A nil *Bus drops everything.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string][]subscription
}

func New() *Bus { return &Bus{subs: map[string][]subscription{}} }

// Subscribe registers fn for topic and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (b *Bus) Subscribe(topic string, fn Handler) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	if b.subs == nil {
		b.subs = map[string][]subscription{}
	}
	b.subs[topic] = append(b.subs[topic], subscription{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(topic, id) })
	}
}

func (b *Bus) remove(topic string, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.subs[topic]
	for i, s := range subs {
		if s.id == id {
			b.subs[topic] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.subs[topic]) == 0 {
		delete(b.subs, topic)
	}
}

// Publish calls every handler of topic. Handlers run outside the lock and
// may subscribe or unsubscribe.
func (b *Bus) Publish(topic string, payload any) {
	if b == nil {
		return
	}
	b.mu.RLock()
	subs := append([]subscription(nil), b.subs[topic]...)
	b.mu.RUnlock()

	ev := Event{Topic: topic, Payload: payload}
	for _, s := range subs {
		s.fn(ev)
	}
}
