package inmemory

import (
	"testing"

	"evader/internal/domain/arena"
)

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordSuccess("move")
	r.RecordSuccess("move")
	r.RecordSuccess("fire")
	r.RecordRateLimited("move")
	r.RecordFailure("move", arena.FailureServer)

	s := r.Snapshot()
	if s.RequestTotal != 5 {
		t.Fatalf("expected total 5, got %d", s.RequestTotal)
	}
	if s.RequestSuccess != 3 {
		t.Fatalf("expected success 3, got %d", s.RequestSuccess)
	}
	if s.RequestRateLimited != 1 {
		t.Fatalf("expected rate-limited 1, got %d", s.RequestRateLimited)
	}
	if s.RequestFailure != 1 {
		t.Fatalf("expected failure 1, got %d", s.RequestFailure)
	}
	if s.ByEndpoint["move"] != 2 {
		t.Fatalf("expected move success count 2, got %d", s.ByEndpoint["move"])
	}
	if s.ByFailureKind[string(arena.FailureServer)] != 1 {
		t.Fatalf("expected server failure count 1")
	}
	if s.ByFailureKind[string(arena.FailureRateLimited)] != 1 {
		t.Fatalf("expected rate-limited kind count 1")
	}
}
