package domain

import "strings"

// Difficulty is the chart id of a song's difficulty variant (0-5).
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyAdvance
	DifficultyExpert
	DifficultyMaster
	DifficultyUltima
	DifficultyWorldsEnd
)

var difficultyLabels = map[Difficulty]string{
	DifficultyEasy:      "EASY",
	DifficultyAdvance:   "ADVANCE",
	DifficultyExpert:    "EXPERT",
	DifficultyMaster:    "MASTER",
	DifficultyUltima:    "ULTIMA",
	DifficultyWorldsEnd: "WORLDS END",
}

// Label returns the display name of the difficulty. Unknown chart ids
// map to "Unknown", never an error.
func (d Difficulty) Label() string {
	if label, ok := difficultyLabels[d]; ok {
		return label
	}
	return "Unknown"
}

// DifficultyFromLabel maps a display name back to its chart id,
// case-insensitively. Labels that match nothing map to MASTER.
func DifficultyFromLabel(label string) Difficulty {
	upper := strings.ToUpper(label)
	for d, l := range difficultyLabels {
		if l == upper {
			return d
		}
	}
	return DifficultyMaster
}

// IsValidDifficultyLabel reports whether label names one of the six
// difficulties, ignoring case.
func IsValidDifficultyLabel(label string) bool {
	upper := strings.ToUpper(label)
	for _, l := range difficultyLabels {
		if l == upper {
			return true
		}
	}
	return false
}
