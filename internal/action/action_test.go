package action

import (
	"testing"
	"time"
)

func TestNotify(t *testing.T) {
	a := Notify(LevelError, "boom", LongNotice)
	if a.Notification.Level != LevelError || a.Notification.Message != "boom" {
		t.Errorf("Notify() = %+v", a)
	}
	if a.Duration != 8*time.Second {
		t.Errorf("Duration = %v, want 8s", a.Duration)
	}
	if got := a.String(); got != "AttachNotification(error: boom, 8s)" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"info", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"success", LevelSuccess},
		{"fail", LevelFail},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestActionsAreComparable(t *testing.T) {
	var a, b Action = Resize{Width: 80, Height: 24}, Resize{Width: 80, Height: 24}
	if a != b {
		t.Error("equal resize actions should compare equal")
	}
	if Action(Quit{}) == Action(WriteActiveBuffer{}) {
		t.Error("different actions should not compare equal")
	}
}
