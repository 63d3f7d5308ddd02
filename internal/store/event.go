package store

import (
	"context"
	"fmt"
	"time"
)

// RoundEvent records one finished spelling attempt.
type RoundEvent struct {
	Word      string
	Mistakes  int
	TimeSpent time.Duration
	Skipped   bool
}

// StageEvent records one completed stage run.
type StageEvent struct {
	Stage   int
	Correct int
	Stars   int
}

// SpeechEvent records one pronunciation request and how it was served.
type SpeechEvent struct {
	Word     string
	Provider string
	Outcome  string
}

// AppendRound stores a round event.
func (s *Store) AppendRound(ctx context.Context, e RoundEvent) error {
	skipped := 0
	if e.Skipped {
		skipped = 1
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO round_events (word, mistakes, time_ms, skipped)
		VALUES (?, ?, ?, ?)
	`, e.Word, e.Mistakes, e.TimeSpent.Milliseconds(), skipped)
	if err != nil {
		return fmt.Errorf("append round event: %w", err)
	}
	return nil
}

// AppendStage stores a stage event.
func (s *Store) AppendStage(ctx context.Context, e StageEvent) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO stage_events (stage, correct, stars)
		VALUES (?, ?, ?)
	`, e.Stage, e.Correct, e.Stars)
	if err != nil {
		return fmt.Errorf("append stage event: %w", err)
	}
	return nil
}

// AppendSpeech stores a speech event.
func (s *Store) AppendSpeech(ctx context.Context, e SpeechEvent) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO speech_events (word, provider, outcome)
		VALUES (?, ?, ?)
	`, e.Word, e.Provider, e.Outcome)
	if err != nil {
		return fmt.Errorf("append speech event: %w", err)
	}
	return nil
}

// Stats aggregates play history for the stats command.
type Stats struct {
	RoundsPlayed  int
	WordsSpelled  int
	WordsSkipped  int
	TotalMistakes int
	TotalPlayTime time.Duration
	StageRuns     int
}

// Stats computes aggregate counters over the event tables.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	var timeMS int64

	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN skipped = 0 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(skipped), 0),
			COALESCE(SUM(mistakes), 0),
			COALESCE(SUM(time_ms), 0)
		FROM round_events
	`).Scan(&st.RoundsPlayed, &st.WordsSpelled, &st.WordsSkipped, &st.TotalMistakes, &timeMS)
	if err != nil {
		return Stats{}, fmt.Errorf("round stats: %w", err)
	}
	st.TotalPlayTime = time.Duration(timeMS) * time.Millisecond

	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stage_events`).Scan(&st.StageRuns)
	if err != nil {
		return Stats{}, fmt.Errorf("stage stats: %w", err)
	}

	return st, nil
}
