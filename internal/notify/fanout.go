package notify

import (
	"context"
	"errors"
)

// Fanout posts to every sink. The alert counts as delivered when at least one
// sink accepts it; when every sink refuses for lack of permission the result
// is ErrNoPermission, otherwise the first hard error wins.
type Fanout struct {
	sinks []Sink
}

func NewFanout(sinks ...Sink) *Fanout {
	return &Fanout{sinks: sinks}
}

func (f *Fanout) Post(ctx context.Context, userID, key, title, body string) error {
	if len(f.sinks) == 0 {
		return ErrNoPermission
	}
	delivered := false
	var firstErr error
	for _, sink := range f.sinks {
		err := sink.Post(ctx, userID, key, title, body)
		switch {
		case err == nil:
			delivered = true
		case errors.Is(err, ErrNoPermission):
		default:
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if delivered {
		return nil
	}
	if firstErr != nil {
		return firstErr
	}
	return ErrNoPermission
}
