package dispatch

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"evader/internal/app/ports"
	"evader/internal/domain/arena"
)

const (
	// MinRequestInterval keeps the agent under the server's global
	// rate budget, independent of per-action cooldowns.
	MinRequestInterval = 500 * time.Millisecond

	MaxAttempts    = 3
	RateLimitDelay = 600 * time.Millisecond
	RetryDelay     = time.Second
)

// Dispatcher sends one HTTP action per call, enforcing the global
// inter-request spacing and the bounded retry policy. Metrics, Journal
// and Log are optional; Now and Sleep must be set.
type Dispatcher struct {
	Transport ports.Transport
	Metrics   ports.DispatchMetrics
	Journal   ports.DispatchJournal
	Log       *log.Logger
	RunID     string
	Now       func() time.Time
	Sleep     func(time.Duration)

	lastRequestAt time.Time
}

// Send issues method+endpoint with the given JSON payload. The second
// return is false once the attempt budget is exhausted; callers treat
// that as a soft failure, not an error.
func (d *Dispatcher) Send(ctx context.Context, method, endpoint string, payload map[string]any) (map[string]any, bool) {
	d.throttle()

	attempts := 0
	lastKind := arena.FailureNetwork
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		attempts = attempt + 1

		status, body, err := d.Transport.Do(ctx, method, endpoint, payload)
		kind, ok := classify(status, err)
		if ok {
			d.lastRequestAt = d.Now()
			d.recordSuccess(ctx, method, endpoint, attempts)
			return decodeBody(body), true
		}

		lastKind = kind
		if kind == arena.FailureRateLimited {
			d.logf("rate limited on %s, waiting", endpoint)
		} else {
			d.logf("request %s failed (attempt %d/%d): status=%d err=%v", endpoint, attempts, MaxAttempts, status, err)
		}
		if delay := backoffFor(attempt, kind); delay > 0 {
			d.Sleep(delay)
		}
	}

	d.recordFailure(ctx, method, endpoint, attempts, lastKind)
	return nil, false
}

func (d *Dispatcher) throttle() {
	if d.lastRequestAt.IsZero() {
		return
	}
	elapsed := d.Now().Sub(d.lastRequestAt)
	if elapsed < MinRequestInterval {
		d.Sleep(MinRequestInterval - elapsed)
	}
}

// classify maps one exchange outcome onto the failure taxonomy.
// ok is true only for 2xx responses.
func classify(status int, err error) (arena.FailureKind, bool) {
	switch {
	case err != nil:
		return arena.FailureNetwork, false
	case status >= 200 && status < 300:
		return "", true
	case status == 429:
		return arena.FailureRateLimited, false
	case status >= 500:
		return arena.FailureServer, false
	default:
		return arena.FailureClient, false
	}
}

// backoffFor is the delay before the attempt after attempt (0-based).
// Fixed constants rather than exponential backoff: the tick budget is
// too tight for adaptive congestion control.
func backoffFor(attempt int, kind arena.FailureKind) time.Duration {
	if attempt >= MaxAttempts-1 {
		return 0
	}
	if kind == arena.FailureRateLimited {
		return RateLimitDelay
	}
	return RetryDelay
}

func decodeBody(body []byte) map[string]any {
	out := map[string]any{}
	if len(body) == 0 {
		return out
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return map[string]any{}
	}
	return out
}

func (d *Dispatcher) recordSuccess(ctx context.Context, method, endpoint string, attempts int) {
	if d.Metrics != nil {
		d.Metrics.RecordSuccess(endpoint)
	}
	d.journal(ctx, method, endpoint, attempts, arena.OutcomeSuccess)
}

func (d *Dispatcher) recordFailure(ctx context.Context, method, endpoint string, attempts int, kind arena.FailureKind) {
	if d.Metrics != nil {
		if kind == arena.FailureRateLimited {
			d.Metrics.RecordRateLimited(endpoint)
		} else {
			d.Metrics.RecordFailure(endpoint, kind)
		}
	}
	d.journal(ctx, method, endpoint, attempts, string(kind))
}

func (d *Dispatcher) journal(ctx context.Context, method, endpoint string, attempts int, outcome string) {
	if d.Journal == nil {
		return
	}
	rec := ports.DispatchRecord{
		RunID:       d.RunID,
		Endpoint:    endpoint,
		Method:      method,
		Attempts:    attempts,
		Outcome:     outcome,
		CompletedAt: d.Now(),
	}
	if err := d.Journal.Append(ctx, rec); err != nil {
		d.logf("journal append: %v", err)
	}
}

func (d *Dispatcher) logf(format string, args ...any) {
	if d.Log != nil {
		d.Log.Printf(format, args...)
	}
}
