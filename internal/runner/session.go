package runner

import (
	"github.com/charmbracelet/log"
)

// HighScoreStore persists the best score per game mode.
type HighScoreStore interface {
	HighScore(mode string) (int, error)
	SetHighScore(mode string, score int) error
}

// Session holds the score and run flags shared by the simulation.
// It is owned by one Game and passed explicitly to its components.
type Session struct {
	mode    string
	score   int
	high    int
	paused  bool
	over    bool
	newBest bool
	store   HighScoreStore
	log     *log.Logger
}

// NewSession creates a session and reads the stored high score.
// Store failures are logged and otherwise ignored.
func NewSession(mode string, store HighScoreStore, logger *log.Logger) *Session {
	s := &Session{mode: mode, store: store, log: logger}
	if store != nil {
		high, err := store.HighScore(mode)
		if err != nil {
			s.warn("read high score failed", err)
		} else {
			s.high = high
		}
	}
	return s
}

// AddScore adds amount to the score. Ignored while paused or over.
func (s *Session) AddScore(amount int) {
	if s.paused || s.over || amount <= 0 {
		return
	}
	s.score += amount
}

// TriggerGameOver ends the run. Only the first call has an effect; it
// commits the high score when the current score beats it.
func (s *Session) TriggerGameOver() {
	if s.over {
		return
	}
	s.over = true
	s.paused = false

	if s.score > s.high {
		s.high = s.score
		s.newBest = true
		if s.store != nil {
			if err := s.store.SetHighScore(s.mode, s.score); err != nil {
				s.warn("save high score failed", err)
			}
		}
	}
	if s.log != nil {
		s.log.Info("game over", "mode", s.mode, "score", s.score, "high", s.high, "new_best", s.newBest)
	}
}

// Pause stops the simulation. Ignored once the run is over.
func (s *Session) Pause() {
	if !s.over {
		s.paused = true
	}
}

// Resume continues a paused run.
func (s *Session) Resume() {
	s.paused = false
}

// TogglePause flips the paused flag.
func (s *Session) TogglePause() {
	if s.paused {
		s.Resume()
	} else {
		s.Pause()
	}
}

// Reset clears the score and flags. The high score is kept.
func (s *Session) Reset() {
	s.score = 0
	s.paused = false
	s.over = false
	s.newBest = false
}

func (s *Session) IsPaused() bool   { return s.paused }
func (s *Session) IsGameOver() bool { return s.over }
func (s *Session) Score() int       { return s.score }
func (s *Session) HighScore() int   { return s.high }
func (s *Session) Mode() string     { return s.mode }

// NewBest reports whether the finished run set a new high score.
func (s *Session) NewBest() bool { return s.newBest }

func (s *Session) warn(msg string, err error) {
	if s.log != nil {
		s.log.Warn(msg, "mode", s.mode, "err", err)
	}
}
