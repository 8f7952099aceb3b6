package ports

import "evader/internal/domain/arena"

type DispatchMetrics interface {
	RecordSuccess(endpoint string)
	RecordRateLimited(endpoint string)
	RecordFailure(endpoint string, kind arena.FailureKind)
}
