// Package luogu fetches problem pages from the Luogu online judge and turns
// them into structured records. Extraction is strictly best-effort: the
// upstream page format carries no contract, so every field degrades to a
// fixed placeholder instead of failing.
package luogu

// Sample is one input/output pair of a problem, in upstream presentation order.
type Sample struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Problem is the structured record extracted from one problem page.
// It is constructed once per request and never mutated afterwards.
type Problem struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	InputFormat   string   `json:"inputFormat"`
	OutputFormat  string   `json:"outputFormat"`
	Limit         string   `json:"limit"`
	Difficulty    string   `json:"difficulty"`
	DifficultyNum int      `json:"difficultyNum,omitempty"`
	Tags          []string `json:"tags"`
	Samples       []Sample `json:"samples"`
}

// Placeholder values substituted when extraction cannot find real content.
const (
	UnknownTitle = "unknown"
	NoContent    = "none"
)
