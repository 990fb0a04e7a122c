package player

import "testing"

func TestStartResumesFromPosition(t *testing.T) {
	svc := NewService(nil)
	sess := svc.Start("t1", 6000, 1200)
	if sess.State() != Playing {
		t.Fatalf("state = %v, want playing", sess.State())
	}
	if sess.PositionSec() != 1200 {
		t.Fatalf("position = %d, want 1200", sess.PositionSec())
	}
}

func TestStartIgnoresBadResumePosition(t *testing.T) {
	svc := NewService(nil)
	if sess := svc.Start("t1", 6000, 6000); sess.PositionSec() != 0 {
		t.Fatalf("position = %d, want 0 for resume at end", sess.PositionSec())
	}
	if sess := svc.Start("t1", 6000, -5); sess.PositionSec() != 0 {
		t.Fatalf("position = %d, want 0 for negative resume", sess.PositionSec())
	}
}

func TestTogglePauseAndSeek(t *testing.T) {
	svc := NewService(nil)
	sess := svc.Start("t1", 600, 0)
	sess.TogglePause()
	if sess.State() != Paused {
		t.Fatalf("state = %v, want paused", sess.State())
	}
	sess.Seek(-30)
	if sess.PositionSec() != 0 {
		t.Fatalf("position = %d, want clamped to 0", sess.PositionSec())
	}
	sess.Seek(700)
	if sess.PositionSec() != 600 {
		t.Fatalf("position = %d, want clamped to duration", sess.PositionSec())
	}
	sess.TogglePause()
	if sess.State() != Playing {
		t.Fatalf("state = %v, want playing", sess.State())
	}
}

func TestStopReturnsFinalPosition(t *testing.T) {
	svc := NewService(nil)
	sess := svc.Start("t1", 600, 0)
	sess.Seek(90)
	id, pos, ok := svc.Stop()
	if !ok || id != "t1" || pos != 90 {
		t.Fatalf("stop = (%q, %d, %v), want (t1, 90, true)", id, pos, ok)
	}
	if svc.Current() != nil {
		t.Fatal("no current session expected after stop")
	}
	if _, _, ok := svc.Stop(); ok {
		t.Fatal("second stop should report no session")
	}
}

func TestProgressFormat(t *testing.T) {
	svc := NewService(nil)
	sess := svc.Start("t1", 6240, 750)
	if got := sess.Progress(); got != "12:30 / 1:44:00" {
		t.Fatalf("progress = %q", got)
	}
}
