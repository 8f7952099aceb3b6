package ports

import "context"

// ActionSender is the dispatcher as seen by the behavior layer.
// A false ok means the request was given up on after the retry
// budget; callers fall back rather than abort.
type ActionSender interface {
	Send(ctx context.Context, method, endpoint string, payload map[string]any) (map[string]any, bool)
}
