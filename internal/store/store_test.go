package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/mindgym/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "mindgym.db")
	st, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestSnapshotMissing(t *testing.T) {
	st := openTestStore(t)
	data, ok, err := st.GetSnapshot(context.Background(), SnapshotKey)
	if err != nil {
		t.Fatalf("get snapshot: %v", err)
	}
	if ok || data != "" {
		t.Fatalf("expected no snapshot, got %q", data)
	}
}

func TestSnapshotRoundtrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if err := st.SetSnapshot(ctx, SnapshotKey, `{"streak":2}`); err != nil {
		t.Fatalf("set snapshot: %v", err)
	}
	data, ok, err := st.GetSnapshot(ctx, SnapshotKey)
	if err != nil {
		t.Fatalf("get snapshot: %v", err)
	}
	if !ok || data != `{"streak":2}` {
		t.Fatalf("unexpected snapshot: ok=%v data=%q", ok, data)
	}

	// Saves overwrite the whole payload under the same key.
	if err := st.SetSnapshot(ctx, SnapshotKey, `{"streak":3}`); err != nil {
		t.Fatalf("overwrite snapshot: %v", err)
	}
	data, ok, err = st.GetSnapshot(ctx, SnapshotKey)
	if err != nil {
		t.Fatalf("get snapshot: %v", err)
	}
	if !ok || data != `{"streak":3}` {
		t.Fatalf("unexpected overwritten snapshot: ok=%v data=%q", ok, data)
	}
}

func TestSessionLog(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)
	games := []model.GameKey{model.GameStroop, model.GameNBack, model.GameStroop}
	for i, game := range games {
		if _, err := st.InsertSession(ctx, game, 10+i, base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("insert session: %v", err)
		}
	}

	all, err := st.ListSessions(ctx, "", 0)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(all))
	}
	if !all[0].EndedAt.Before(all[2].EndedAt) {
		t.Fatalf("expected oldest first ordering")
	}

	stroopOnly, err := st.ListSessions(ctx, model.GameStroop, 0)
	if err != nil {
		t.Fatalf("list stroop sessions: %v", err)
	}
	if len(stroopOnly) != 2 {
		t.Fatalf("expected 2 stroop sessions, got %d", len(stroopOnly))
	}
	for _, rec := range stroopOnly {
		if rec.Game != model.GameStroop {
			t.Fatalf("unexpected game %q", rec.Game)
		}
	}

	lastTwo, err := st.ListSessions(ctx, "", 2)
	if err != nil {
		t.Fatalf("list last sessions: %v", err)
	}
	if len(lastTwo) != 2 || lastTwo[0].Score != 11 || lastTwo[1].Score != 12 {
		t.Fatalf("unexpected last sessions: %+v", lastTwo)
	}
}
