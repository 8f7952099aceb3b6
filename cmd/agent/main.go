package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	httpadapter "evader/internal/adapter/http"
	metricsinmem "evader/internal/adapter/metrics/inmemory"
	gormrepo "evader/internal/adapter/repo/gorm"
	memoryrepo "evader/internal/adapter/repo/memory"
	"evader/internal/app/behavior"
	"evader/internal/app/dispatch"
	"evader/internal/app/ports"
	"evader/internal/domain/arena"

	"github.com/google/uuid"
)

func main() {
	baseURL := envOr("EVADER_BASE_URL", "http://127.0.0.1:8000")
	identity := arena.Identity{
		PlayerID: envOr("EVADER_PLAYER_ID", "evader_agent"),
		Name:     envOr("EVADER_PLAYER_NAME", "Evader"),
	}

	transport, err := httpadapter.NewClient(baseURL)
	if err != nil {
		log.Fatalf("build transport: %v", err)
	}

	recorder := metricsinmem.NewRecorder()
	runID := uuid.NewString()

	dispatcher := &dispatch.Dispatcher{
		Transport: transport,
		Metrics:   recorder,
		Journal:   buildJournalFromEnv(),
		Log:       log.Default(),
		RunID:     runID,
		Now:       time.Now,
		Sleep:     time.Sleep,
	}

	controller := &behavior.Controller{
		Sender:   dispatcher,
		Identity: identity,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		Log:      log.Default(),
		Now:      time.Now,
		Sleep:    time.Sleep,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("evader agent starting against %s (run %s)", baseURL, runID)
	err = controller.Run(ctx)
	if errors.Is(err, behavior.ErrRegistrationFailed) {
		log.Fatalf("could not register after retries, giving up")
	}

	snap := recorder.Snapshot()
	log.Printf("run %s finished: %d requests, %d ok, %d rate-limited, %d failed",
		runID, snap.RequestTotal, snap.RequestSuccess, snap.RequestRateLimited, snap.RequestFailure)
}

// buildJournalFromEnv persists the dispatch journal to postgres when a
// DSN is configured and keeps it in memory otherwise.
func buildJournalFromEnv() ports.DispatchJournal {
	dsn := strings.TrimSpace(os.Getenv("EVADER_DB_DSN"))
	if dsn == "" {
		return memoryrepo.NewJournalRepo()
	}
	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Printf("open postgres: %v, falling back to in-memory journal", err)
		return memoryrepo.NewJournalRepo()
	}
	if err := gormrepo.Migrate(db); err != nil {
		log.Printf("migrate journal: %v, falling back to in-memory journal", err)
		return memoryrepo.NewJournalRepo()
	}
	return gormrepo.NewJournalRepo(db)
}

func envOr(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
