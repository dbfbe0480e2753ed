package notify

import (
	"io"
	"log/slog"
	"reflect"
	"testing"
)

func newTestBus() *Bus {
	return NewBus(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPublishInRegistrationOrder(t *testing.T) {
	b := newTestBus()
	var order []string

	b.Subscribe("evt", func(any) { order = append(order, "first") })
	b.Subscribe("evt", func(any) { order = append(order, "second") })
	b.Subscribe("evt", func(any) { order = append(order, "third") })

	b.Publish("evt", nil)

	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("dispatch order = %v, want %v", order, want)
	}
}

func TestExactlyOnceDeliveryPerPublish(t *testing.T) {
	b := newTestBus()
	count := 0
	b.Subscribe("evt", func(any) { count++ })

	b.Publish("evt", nil)
	if count != 1 {
		t.Errorf("after one publish, count = %d, want 1", count)
	}
}

func TestNoDeduplication(t *testing.T) {
	b := newTestBus()
	count := 0
	b.Subscribe("evt", func(any) { count++ })

	// Identical event and detail twice must deliver twice.
	b.Publish("evt", "same-detail")
	b.Publish("evt", "same-detail")

	if count != 2 {
		t.Errorf("after two identical publishes, count = %d, want 2", count)
	}
}

func TestUnsubscribedHandlerNotInvoked(t *testing.T) {
	b := newTestBus()
	count := 0
	off := b.Subscribe("evt", func(any) { count++ })

	off()
	b.Publish("evt", nil)

	if count != 0 {
		t.Errorf("unsubscribed handler invoked %d times, want 0", count)
	}
	if n := b.SubscriberCount("evt"); n != 0 {
		t.Errorf("SubscriberCount = %d, want 0", n)
	}
}

func TestUnsubscribeDuringDispatchHonored(t *testing.T) {
	b := newTestBus()
	var secondRan bool
	var offSecond func()

	// The first handler disposes the second mid-dispatch; the publish
	// snapshot was taken before, but the disposal must still win.
	b.Subscribe("evt", func(any) { offSecond() })
	offSecond = b.Subscribe("evt", func(any) { secondRan = true })

	b.Publish("evt", nil)

	if secondRan {
		t.Error("handler unsubscribed during dispatch was still invoked")
	}
}

func TestSubscribeDuringDispatchNotInvoked(t *testing.T) {
	b := newTestBus()
	var lateRan bool

	b.Subscribe("evt", func(any) {
		b.Subscribe("evt", func(any) { lateRan = true })
	})

	b.Publish("evt", nil)

	if lateRan {
		t.Error("handler subscribed during dispatch received the in-flight event")
	}
}

func TestPanickingHandlerIsolated(t *testing.T) {
	b := newTestBus()
	var survivorRan bool

	b.Subscribe("evt", func(any) { panic("broken widget") })
	b.Subscribe("evt", func(any) { survivorRan = true })

	b.Publish("evt", nil)

	if !survivorRan {
		t.Error("handler after a panicking sibling was not invoked")
	}
}

func TestDetailPassedThrough(t *testing.T) {
	b := newTestBus()
	var got any
	b.Subscribe("evt", func(detail any) { got = detail })

	type payload struct{ UserName string }
	b.Publish("evt", payload{UserName: "Ada"})

	want := payload{UserName: "Ada"}
	if got != want {
		t.Errorf("detail = %+v, want %+v", got, want)
	}
}

func TestDoubleUnsubscribeHarmless(t *testing.T) {
	b := newTestBus()
	off := b.Subscribe("evt", func(any) {})
	off()
	off() // must not panic or corrupt the registry

	b.Subscribe("evt", func(any) {})
	if n := b.SubscriberCount("evt"); n != 1 {
		t.Errorf("SubscriberCount = %d, want 1", n)
	}
}

func TestTypedOnAssertsPayload(t *testing.T) {
	b := newTestBus()
	type clockFormat struct{ Is24Hour bool }

	var got clockFormat
	calls := 0
	On(b, "clockFormatChanged", func(p clockFormat) {
		got = p
		calls++
	})

	Emit(b, "clockFormatChanged", clockFormat{Is24Hour: true})
	if calls != 1 || !got.Is24Hour {
		t.Errorf("typed handler: calls=%d got=%+v", calls, got)
	}

	// A mismatched payload is dropped for this subscriber, not a panic.
	b.Publish("clockFormatChanged", "wrong type")
	if calls != 1 {
		t.Errorf("mismatched payload reached typed handler, calls=%d", calls)
	}
}

func TestEventNamesAreIndependentChannels(t *testing.T) {
	b := newTestBus()
	var clockCalls, themeCalls int

	b.Subscribe("clockTypeChanged", func(any) { clockCalls++ })
	b.Subscribe("themeChanged", func(any) { themeCalls++ })

	b.Publish("clockTypeChanged", nil)

	if clockCalls != 1 || themeCalls != 0 {
		t.Errorf("clockCalls=%d themeCalls=%d, want 1 and 0", clockCalls, themeCalls)
	}
}
