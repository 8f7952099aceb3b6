package ports

import "context"

// Transport performs one raw HTTP exchange with the game server.
// It returns the status code and response body; err is non-nil only
// for transport-level failures (dial, timeout, canceled context).
type Transport interface {
	Do(ctx context.Context, method, endpoint string, payload map[string]any) (int, []byte, error)
}
