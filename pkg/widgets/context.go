package widgets

import (
	"context"
	"time"
)

// contextWithTimeout bounds background fetches spawned from the
// update loop.
func contextWithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 15*time.Second)
}
