package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bikeaccessories/internal/events"
)

func TestPublishOrderAndUnsubscribe(t *testing.T) {
	bus := events.New()
	var got []string

	unA := bus.Subscribe(events.CartUpdated, func(e events.Event) { got = append(got, "a:"+e.Payload.(string)) })
	bus.Subscribe(events.CartUpdated, func(e events.Event) { got = append(got, "b:"+e.Payload.(string)) })
	bus.Subscribe("other", func(events.Event) { got = append(got, "other") })

	bus.Publish(events.CartUpdated, "1")
	unA()
	unA()
	bus.Publish(events.CartUpdated, "2")

	assert.Equal(t, []string{"a:1", "b:1", "b:2"}, got)
}

func TestUnsubscribeDuringPublish(t *testing.T) {
	bus := events.New()
	calls := 0
	var un func()
	un = bus.Subscribe("t", func(events.Event) {
		calls++
		un()
	})
	bus.Publish("t", nil)
	bus.Publish("t", nil)
	assert.Equal(t, 1, calls)
}

func TestNilBusIsSilent(t *testing.T) {
	var bus *events.Bus
	assert.NotPanics(t, func() { bus.Publish(events.CartUpdated, nil) })
}
