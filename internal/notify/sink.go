package notify

import (
	"context"
	"errors"
)

// ErrNoPermission reports that the sink is not allowed to surface an alert.
// Dispatchers treat it as a per-notification skip, not a failure.
var ErrNoPermission = errors.New("notification permission missing")

// Sink delivers one notification. key is the dedup key: posting twice with
// the same key replaces the earlier alert instead of adding a second one.
type Sink interface {
	Post(ctx context.Context, userID, key, title, body string) error
}
