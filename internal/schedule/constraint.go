package schedule

import (
	"context"
	"fmt"
	"net"
	"time"
)

// NetworkAvailable returns a Constraint that dials addr and reports the
// network as unavailable when the dial fails. addr should be a host:port
// reachable whenever the host has connectivity.
func NetworkAvailable(addr string, timeout time.Duration) Constraint {
	dialer := &net.Dialer{Timeout: timeout}
	return func(ctx context.Context) error {
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err != nil {
			return fmt.Errorf("network unavailable: %w", err)
		}
		_ = conn.Close()
		return nil
	}
}
