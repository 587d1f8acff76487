package core

import "testing"

func TestActionForKey(t *testing.T) {
	tests := []struct {
		key      rune
		expected Action
	}{
		{'a', ActionSpeedUp},
		{'A', ActionSpeedUp},
		{'z', ActionSlowDown},
		{'Z', ActionSlowDown},
		{' ', ActionQuit},
		{'q', ActionNone},
		{'\n', ActionNone},
		{0, ActionNone},
	}

	for _, tc := range tests {
		if got := ActionForKey(tc.key); got != tc.expected {
			t.Errorf("ActionForKey(%q) = %v, expected %v", tc.key, got, tc.expected)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionSpeedUp.String() != "SpeedUp" {
		t.Errorf("ActionSpeedUp.String() = %q", ActionSpeedUp.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
