package loop

import "testing"

type recordingHUD struct {
	texts []string
}

func (h *recordingHUD) SetText(text string) {
	h.texts = append(h.texts, text)
}

func (h *recordingHUD) last() string {
	if len(h.texts) == 0 {
		return ""
	}
	return h.texts[len(h.texts)-1]
}

func TestScoreTracker(t *testing.T) {
	hud := &recordingHUD{}
	s := NewScoreTracker(hud)
	if hud.last() != "Score: 0" {
		t.Fatalf("initial HUD = %q, want %q", hud.last(), "Score: 0")
	}

	s.Add(1)
	s.Add(1)
	s.Add(-5)
	s.Add(0)
	if s.Score() != 2 {
		t.Fatalf("score = %d, want 2", s.Score())
	}
	if hud.last() != "Score: 2" {
		t.Fatalf("HUD = %q, want %q", hud.last(), "Score: 2")
	}
	if len(hud.texts) != 3 {
		t.Fatalf("HUD updates = %d, want 3", len(hud.texts))
	}
}

func TestScoreTrackerWithoutHUD(t *testing.T) {
	s := NewScoreTracker(nil)
	s.Add(3)
	if s.Text() != "Score: 3" {
		t.Fatalf("Text = %q", s.Text())
	}
}
