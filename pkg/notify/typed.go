package notify

import "log/slog"

// On subscribes fn to event with the detail payload asserted to T.
// Publishes carrying a different payload type are logged and dropped
// for this subscriber rather than panicking, mirroring the bus's
// failure-isolation rule. The returned disposer behaves exactly like
// Bus.Subscribe's.
func On[T any](b *Bus, event string, fn func(T)) (unsubscribe func()) {
	return b.Subscribe(event, func(detail any) {
		v, ok := detail.(T)
		if !ok {
			b.logger.Warn("notify: unexpected detail type",
				"event", event, "detail", slog.AnyValue(detail))
			return
		}
		fn(v)
	})
}

// Emit publishes detail under event. It exists for symmetry with On so
// publisher and subscriber agree on the payload type at compile time.
func Emit[T any](b *Bus, event string, detail T) {
	b.Publish(event, detail)
}
