package luogu

import "strconv"

// UnknownDifficulty is returned when upstream reports no difficulty at all.
const UnknownDifficulty = "unknown difficulty"

// difficultyNames maps Luogu's numeric difficulty codes 1 through 7 to the
// site's display tiers.
var difficultyNames = map[int]string{
	1: "入门",
	2: "普及−",
	3: "普及/提高−",
	4: "普及+/提高",
	5: "提高+/省选−",
	6: "省选/NOI−",
	7: "NOI/NOI+/CTSC",
}

// DifficultyName resolves a numeric difficulty code to a display label.
// The lookup is total: codes 1-7 map to their tier, zero (missing) maps to
// UnknownDifficulty, and anything else is rendered as the raw code.
func DifficultyName(code int) string {
	if name, ok := difficultyNames[code]; ok {
		return name
	}
	if code == 0 {
		return UnknownDifficulty
	}
	return strconv.Itoa(code)
}
