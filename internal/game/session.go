package game

import (
	"context"
	"fmt"

	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/catalog"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/progress"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/speech"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/store"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/tiles"
)

// Session bundles the long-lived dependencies the screens share: the word
// catalog, persistence, the speaker, and the in-memory ladder.
type Session struct {
	Catalog *catalog.Catalog
	Store   *store.Store
	Speaker *speech.Speaker
	Gen     *tiles.Generator
	Ladder  progress.Ladder
}

// NewSession wires a Session and restores saved progress. A nil speaker
// leaves the game silent but playable.
func NewSession(ctx context.Context, cat *catalog.Catalog, st *store.Store, sp *speech.Speaker) (*Session, error) {
	s := &Session{
		Catalog: cat,
		Store:   st,
		Speaker: sp,
		Gen:     tiles.NewGenerator(nil),
		Ladder:  progress.DefaultLadder(),
	}
	if err := s.LoadProgress(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadProgress restores the ladder from the store. A missing or damaged
// save yields the default ladder.
func (s *Session) LoadProgress(ctx context.Context) error {
	data, err := s.Store.LoadLadder(ctx)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}
	if data == nil {
		s.Ladder = progress.DefaultLadder()
		return nil
	}
	s.Ladder = progress.Decode(data)
	return nil
}

// SaveProgress persists the current ladder.
func (s *Session) SaveProgress(ctx context.Context) error {
	data, err := s.Ladder.Encode()
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := s.Store.SaveLadder(ctx, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// TotalStars returns the stars earned across all stages.
func (s *Session) TotalStars() int {
	return s.Ladder.TotalStars()
}
