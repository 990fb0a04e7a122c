// Package player tracks in-memory playback sessions. There is no real media
// pipeline behind it; the UI's bound actions drive state and the watch
// history records what happened.
package player

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type State int

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// Session is one playback of a title.
type Session struct {
	ID          string
	TitleID     string
	state       State
	positionSec int
	durationSec int
	startedAt   time.Time
	now         func() time.Time
}

// Service owns at most one active session.
type Service struct {
	current *Session
	now     func() time.Time
}

// NewService builds a playback service. now may be nil for the real clock.
func NewService(now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{now: now}
}

// Start begins playback of a title from the given resume position, replacing
// any active session.
func (s *Service) Start(titleID string, durationSec, resumeSec int) *Session {
	if resumeSec < 0 || resumeSec >= durationSec {
		resumeSec = 0
	}
	s.current = &Session{
		ID:          uuid.NewString(),
		TitleID:     titleID,
		state:       Playing,
		positionSec: resumeSec,
		durationSec: durationSec,
		startedAt:   s.now(),
		now:         s.now,
	}
	return s.current
}

// Current returns the active session, or nil.
func (s *Service) Current() *Session { return s.current }

// Stop ends the active session and returns its final position.
func (s *Service) Stop() (titleID string, positionSec int, ok bool) {
	if s.current == nil {
		return "", 0, false
	}
	sess := s.current
	sess.state = Stopped
	s.current = nil
	return sess.TitleID, sess.positionSec, true
}

func (sess *Session) State() State     { return sess.state }
func (sess *Session) PositionSec() int { return sess.positionSec }
func (sess *Session) DurationSec() int { return sess.durationSec }

// TogglePause flips between playing and paused.
func (sess *Session) TogglePause() {
	switch sess.state {
	case Playing:
		sess.state = Paused
	case Paused:
		sess.state = Playing
	}
}

// Seek moves the position by delta seconds, clamped to the title bounds.
func (sess *Session) Seek(deltaSec int) {
	if sess.state == Stopped {
		return
	}
	pos := sess.positionSec + deltaSec
	if pos < 0 {
		pos = 0
	}
	if sess.durationSec > 0 && pos > sess.durationSec {
		pos = sess.durationSec
	}
	sess.positionSec = pos
}

// Progress renders a compact position display like 12:30 / 1:44:00.
func (sess *Session) Progress() string {
	return fmt.Sprintf("%s / %s", clockFormat(sess.positionSec), clockFormat(sess.durationSec))
}

func clockFormat(sec int) string {
	h, m, s := sec/3600, (sec%3600)/60, sec%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
