package inmemory

import (
	"sync"

	"evader/internal/domain/arena"
)

type Snapshot struct {
	RequestTotal       uint64            `json:"request_total"`
	RequestSuccess     uint64            `json:"request_success"`
	RequestRateLimited uint64            `json:"request_rate_limited"`
	RequestFailure     uint64            `json:"request_failure"`
	ByEndpoint         map[string]uint64 `json:"by_endpoint"`
	ByFailureKind      map[string]uint64 `json:"by_failure_kind"`
}

type Recorder struct {
	mu          sync.Mutex
	success     uint64
	rateLimited uint64
	failure     uint64
	byEndpoint  map[string]uint64
	byKind      map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byEndpoint: map[string]uint64{},
		byKind:     map[string]uint64{},
	}
}

func (r *Recorder) RecordSuccess(endpoint string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byEndpoint[endpoint]++
}

func (r *Recorder) RecordRateLimited(endpoint string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rateLimited++
	r.byKind[string(arena.FailureRateLimited)]++
}

func (r *Recorder) RecordFailure(endpoint string, kind arena.FailureKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
	r.byKind[string(kind)]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		RequestSuccess:     r.success,
		RequestRateLimited: r.rateLimited,
		RequestFailure:     r.failure,
		RequestTotal:       r.success + r.rateLimited + r.failure,
		ByEndpoint:         make(map[string]uint64, len(r.byEndpoint)),
		ByFailureKind:      make(map[string]uint64, len(r.byKind)),
	}
	for k, v := range r.byEndpoint {
		out.ByEndpoint[k] = v
	}
	for k, v := range r.byKind {
		out.ByFailureKind[k] = v
	}
	return out
}
