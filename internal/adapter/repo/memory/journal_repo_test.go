package memory

import (
	"context"
	"testing"
	"time"

	"evader/internal/app/ports"
	"evader/internal/domain/arena"
)

func TestJournalRepo_AppendAndListByRunID(t *testing.T) {
	repo := NewJournalRepo()
	ctx := context.Background()
	at := time.Unix(1700000000, 0)

	recs := []ports.DispatchRecord{
		{RunID: "run-1", Endpoint: "register", Method: "POST", Attempts: 1, Outcome: arena.OutcomeSuccess, CompletedAt: at},
		{RunID: "run-1", Endpoint: "move", Method: "POST", Attempts: 3, Outcome: string(arena.FailureServer), CompletedAt: at.Add(time.Second)},
		{RunID: "run-2", Endpoint: "move", Method: "POST", Attempts: 1, Outcome: arena.OutcomeSuccess, CompletedAt: at},
	}
	for _, rec := range recs {
		if err := repo.Append(ctx, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.ListByRunID(ctx, "run-1", 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records for run-1, want 2", len(got))
	}
	if got[1].Endpoint != "move" || got[1].Outcome != string(arena.FailureServer) {
		t.Fatalf("unexpected record: %+v", got[1])
	}

	limited, err := repo.ListByRunID(ctx, "run-1", 1)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("limit ignored: got %d records", len(limited))
	}
}
