// Package stats owns the aggregate snapshot and streak state.
package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/verte-zerg/mindgym/internal/model"
	"github.com/verte-zerg/mindgym/internal/store"
)

// Store is the single authority over the stats snapshot. It loads the
// persisted snapshot once, applies per-session updates, and writes the
// whole snapshot back best-effort after each one. Persistence failures
// never propagate to callers.
type Store struct {
	mu        sync.Mutex
	st        *store.Store
	stats     model.Stats
	listeners map[int]func()
	nextID    int
	now       func() time.Time
}

// New constructs a stats store backed by the given persistence layer.
func New(st *store.Store) *Store {
	return &Store{
		st:        st,
		stats:     model.NewStats(),
		listeners: map[int]func(){},
		now:       time.Now,
	}
}

// Initialize loads the persisted snapshot. Absent or undecodable data
// falls back silently to a zeroed snapshot.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = model.NewStats()
	if s.st == nil {
		return
	}
	raw, ok, err := s.st.GetSnapshot(ctx, store.SnapshotKey)
	if err != nil {
		logErrf("failed to load stats snapshot: %v\n", err)
		return
	}
	if !ok {
		return
	}
	var loaded model.Stats
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		logErrf("failed to decode stats snapshot: %v\n", err)
		return
	}
	if loaded.Totals == nil {
		loaded.Totals = map[model.GameKey]model.GameTotal{}
	}
	for _, key := range model.GameKeys {
		if _, ok := loaded.Totals[key]; !ok {
			loaded.Totals[key] = model.GameTotal{}
		}
	}
	s.stats = loaded
}

// Snapshot returns a copy of the current snapshot for rendering.
func (s *Store) Snapshot() model.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.Clone()
}

// UpdateGame folds a finished session into the aggregates, advances the
// streak, persists the snapshot, and notifies subscribers. The running
// mean is rebuilt from the previous rounded average on purpose; drift
// accumulates the same way the stored averages always have.
func (s *Store) UpdateGame(ctx context.Context, key model.GameKey, score int) {
	s.mu.Lock()
	total := s.stats.Totals[key]
	total.Sessions++
	if score > total.Best {
		total.Best = score
	}
	total.Avg = roundDiv(total.Avg*(total.Sessions-1)+score, total.Sessions)
	s.stats.Totals[key] = total

	today := s.now()
	s.stats.Streak = nextStreak(s.stats.Streak, s.stats.LastPlayed, today)
	s.stats.LastPlayed = &today

	s.persist(ctx, key, score, today)
	listeners := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// Subscribe registers a callback invoked after every update. The returned
// id is passed to Unsubscribe.
func (s *Store) Subscribe(fn func()) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return id
}

// Unsubscribe removes a previously registered callback.
func (s *Store) Unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, id)
}

// persist writes the snapshot and session log best-effort. Caller holds the lock.
func (s *Store) persist(ctx context.Context, key model.GameKey, score int, endedAt time.Time) {
	if s.st == nil {
		return
	}
	data, err := json.Marshal(s.stats)
	if err != nil {
		logErrf("failed to encode stats snapshot: %v\n", err)
		return
	}
	if err := s.st.SetSnapshot(ctx, store.SnapshotKey, string(data)); err != nil {
		logErrf("failed to save stats snapshot: %v\n", err)
	}
	if _, err := s.st.InsertSession(ctx, key, score, endedAt); err != nil {
		logErrf("failed to log session: %v\n", err)
	}
}

// nextStreak applies the calendar-day streak rules.
func nextStreak(streak int, last *time.Time, today time.Time) int {
	if last == nil {
		return 1
	}
	gap := daysBetween(*last, today)
	switch {
	case gap == 0:
		return streak
	case gap == 1:
		return streak + 1
	default:
		return 1
	}
}

func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}

func roundDiv(sum, count int) int {
	if count <= 0 {
		return 0
	}
	half := count / 2
	if sum < 0 {
		return (sum - half) / count
	}
	return (sum + half) / count
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
