package domain

import "testing"

func TestPlayModeFromCode(t *testing.T) {
	for code, want := range map[int]PlayMode{
		1: ModeListLoop,
		2: ModeOrdered,
		3: ModeSingleLoop,
		4: ModeListRandom,
		5: ModeInfRandom,
		6: ModeIntelligent,
	} {
		got, ok := PlayModeFromCode(code)
		if !ok || got != want {
			t.Errorf("code %d: expected %s, got %s (ok=%v)", code, want, got, ok)
		}
	}
	if _, ok := PlayModeFromCode(0); ok {
		t.Error("code 0 must not resolve")
	}
	if _, ok := PlayModeFromCode(7); ok {
		t.Error("code 7 must not resolve")
	}
}

func TestPlayModesCoverTheCodeTable(t *testing.T) {
	modes := PlayModes()
	if len(modes) != 6 {
		t.Fatalf("expected 6 modes, got %d", len(modes))
	}
	for _, m := range modes {
		if !m.Valid() {
			t.Errorf("mode %s should be valid", m)
		}
		if m.Label() == "" {
			t.Errorf("mode %s has no label", m)
		}
		if m.Icon() == "mdi:playlist-music" {
			t.Errorf("mode %s fell back to the generic icon", m)
		}
	}
	if PlayMode("bogus").Valid() {
		t.Error("unknown mode must not be valid")
	}
	if got := PlayMode("bogus").Icon(); got != "mdi:playlist-music" {
		t.Errorf("unknown mode should use the fallback icon, got %s", got)
	}
}
