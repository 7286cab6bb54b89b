package domain

import "testing"

func TestDifficultyLabels(t *testing.T) {
	cases := []struct {
		id    Difficulty
		label string
	}{
		{DifficultyEasy, "EASY"},
		{DifficultyAdvance, "ADVANCE"},
		{DifficultyExpert, "EXPERT"},
		{DifficultyMaster, "MASTER"},
		{DifficultyUltima, "ULTIMA"},
		{DifficultyWorldsEnd, "WORLDS END"},
	}

	for _, c := range cases {
		if got := c.id.Label(); got != c.label {
			t.Errorf("Difficulty(%d).Label() = %q, want %q", c.id, got, c.label)
		}
	}
}

func TestDifficultyLabelRoundTrip(t *testing.T) {
	for id := Difficulty(0); id <= DifficultyWorldsEnd; id++ {
		if got := DifficultyFromLabel(id.Label()); got != id {
			t.Errorf("round trip for chart id %d returned %d", id, got)
		}
	}
}

func TestDifficultyUnknownChartID(t *testing.T) {
	if got := Difficulty(6).Label(); got != "Unknown" {
		t.Errorf("Difficulty(6).Label() = %q, want \"Unknown\"", got)
	}
	if got := Difficulty(-1).Label(); got != "Unknown" {
		t.Errorf("Difficulty(-1).Label() = %q, want \"Unknown\"", got)
	}
}

func TestDifficultyFromLabelDefaultsToMaster(t *testing.T) {
	if got := DifficultyFromLabel("unknown-label"); got != DifficultyMaster {
		t.Errorf("DifficultyFromLabel(unknown-label) = %d, want MASTER", got)
	}
}

func TestDifficultyFromLabelIgnoresCase(t *testing.T) {
	if got := DifficultyFromLabel("ultima"); got != DifficultyUltima {
		t.Errorf("DifficultyFromLabel(ultima) = %d, want ULTIMA", got)
	}
	if got := DifficultyFromLabel("worlds end"); got != DifficultyWorldsEnd {
		t.Errorf("DifficultyFromLabel(worlds end) = %d, want WORLDS END", got)
	}
}

func TestIsValidDifficultyLabel(t *testing.T) {
	if !IsValidDifficultyLabel("expert") {
		t.Error("expected expert to be a valid label")
	}
	if IsValidDifficultyLabel("LUNATIC") {
		t.Error("expected LUNATIC to be rejected")
	}
}
