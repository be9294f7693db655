package runner

import (
	"errors"
	"testing"
)

type memStore struct {
	high    map[string]int
	writes  int
	readErr error
	setErr  error
}

func newMemStore() *memStore {
	return &memStore{high: make(map[string]int)}
}

func (m *memStore) HighScore(mode string) (int, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}
	return m.high[mode], nil
}

func (m *memStore) SetHighScore(mode string, score int) error {
	m.writes++
	if m.setErr != nil {
		return m.setErr
	}
	m.high[mode] = score
	return nil
}

func TestSessionAddScore(t *testing.T) {
	s := NewSession(ModeChroma, nil, nil)
	s.AddScore(10)
	s.AddScore(-5)
	if s.Score() != 10 {
		t.Errorf("score = %d, expected 10", s.Score())
	}

	s.Pause()
	s.AddScore(10)
	if s.Score() != 10 {
		t.Error("AddScore should be ignored while paused")
	}

	s.Resume()
	s.TriggerGameOver()
	s.AddScore(10)
	if s.Score() != 10 {
		t.Error("AddScore should be ignored after game over")
	}
}

func TestSessionTriggerGameOverIdempotent(t *testing.T) {
	store := newMemStore()
	store.high[ModeChroma] = 5
	s := NewSession(ModeChroma, store, nil)
	if s.HighScore() != 5 {
		t.Fatalf("high score = %d, expected stored 5", s.HighScore())
	}

	s.AddScore(30)
	s.TriggerGameOver()
	score, high, writes := s.Score(), s.HighScore(), store.writes

	s.TriggerGameOver()
	if s.Score() != score || s.HighScore() != high || store.writes != writes {
		t.Error("second TriggerGameOver changed state")
	}
	if high != 30 || store.high[ModeChroma] != 30 || writes != 1 {
		t.Errorf("high=%d stored=%d writes=%d, expected 30/30/1", high, store.high[ModeChroma], writes)
	}
	if !s.IsGameOver() || !s.NewBest() {
		t.Error("expected game over with a new best")
	}
}

func TestSessionNoCommitBelowHigh(t *testing.T) {
	store := newMemStore()
	store.high[ModeChroma] = 100
	s := NewSession(ModeChroma, store, nil)
	s.AddScore(20)
	s.TriggerGameOver()

	if store.writes != 0 || s.NewBest() {
		t.Error("a lower score must not be committed")
	}
}

func TestSessionStoreErrorsAreBestEffort(t *testing.T) {
	store := newMemStore()
	store.readErr = errors.New("disk gone")
	store.setErr = errors.New("disk gone")

	s := NewSession(ModeChroma, store, nil)
	if s.HighScore() != 0 {
		t.Errorf("high score after read error = %d, expected 0", s.HighScore())
	}
	s.AddScore(10)
	s.TriggerGameOver()
	if s.HighScore() != 10 {
		t.Errorf("in-memory high score = %d, expected 10 despite store error", s.HighScore())
	}
}

func TestSessionPauseAndReset(t *testing.T) {
	s := NewSession(ModeClassic, nil, nil)

	s.TogglePause()
	if !s.IsPaused() {
		t.Fatal("TogglePause should pause")
	}
	s.TogglePause()
	if s.IsPaused() {
		t.Fatal("second TogglePause should resume")
	}

	s.AddScore(50)
	s.TriggerGameOver()
	s.Pause()
	if s.IsPaused() {
		t.Error("Pause should be ignored after game over")
	}

	s.Reset()
	if s.Score() != 0 || s.IsGameOver() || s.IsPaused() || s.NewBest() {
		t.Error("Reset should clear score and flags")
	}
	if s.HighScore() != 50 {
		t.Errorf("Reset should keep the high score, got %d", s.HighScore())
	}
	if s.Mode() != ModeClassic {
		t.Errorf("Mode() = %q", s.Mode())
	}
}
