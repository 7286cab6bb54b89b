package domain

// gradeThresholds maps minimum scores to grade tiers, highest first.
// The first threshold at or below the score wins.
var gradeThresholds = []struct {
	min  int
	tier string
}{
	{1009000, "SSS+"},
	{1007500, "SSS"},
	{1005000, "SS+"},
	{1000000, "SS"},
	{990000, "S+"},
	{975000, "S"},
	{950000, "AAA"},
	{925000, "AA"},
	{900000, "A"},
	{800000, "BBB"},
	{700000, "BB"},
	{600000, "B"},
	{500000, "C"},
}

// Grade classifies a score into its grade tier. Total over all scores;
// anything below 500,000 is a D.
func Grade(score int) string {
	for _, t := range gradeThresholds {
		if score >= t.min {
			return t.tier
		}
	}
	return "D"
}
