package game

import (
	"context"
	"testing"

	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/catalog"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/progress"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat
}

func TestNewSessionStartsFresh(t *testing.T) {
	ctx := context.Background()
	s, err := NewSession(ctx, testCatalog(t), openTestStore(t), nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	if !s.Ladder.Unlocked(0) {
		t.Error("first stage should start unlocked")
	}
	if s.Ladder.Unlocked(1) {
		t.Error("second stage should start locked")
	}
	if s.TotalStars() != 0 {
		t.Errorf("TotalStars = %d, want 0", s.TotalStars())
	}
}

func TestSessionProgressRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	cat := testCatalog(t)

	s1, err := NewSession(ctx, cat, st, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	s1.Ladder.Merge(0, 3, 10)
	if err := s1.SaveProgress(ctx); err != nil {
		t.Fatalf("SaveProgress: %v", err)
	}

	s2, err := NewSession(ctx, cat, st, nil)
	if err != nil {
		t.Fatalf("NewSession (restore): %v", err)
	}

	if s2.Ladder[0].Stars != 3 {
		t.Errorf("restored stage 0 stars = %d, want 3", s2.Ladder[0].Stars)
	}
	if s2.Ladder[0].BestCorrect != 10 {
		t.Errorf("restored stage 0 best = %d, want 10", s2.Ladder[0].BestCorrect)
	}
	if !s2.Ladder.Unlocked(1) {
		t.Error("stage 1 should be unlocked after restore")
	}
	if s2.TotalStars() != 3 {
		t.Errorf("TotalStars = %d, want 3", s2.TotalStars())
	}
}

func TestSessionDamagedSaveFallsBack(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	if err := st.SaveLadder(ctx, []byte("not json")); err != nil {
		t.Fatalf("SaveLadder: %v", err)
	}

	s, err := NewSession(ctx, testCatalog(t), st, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if got := s.Ladder; got != progress.DefaultLadder() {
		t.Errorf("damaged save should restore the default ladder, got %+v", got)
	}
}
