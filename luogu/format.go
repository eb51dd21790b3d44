package luogu

import (
	"fmt"
	"strings"
)

// Format renders a problem record as a human-readable markdown document.
// The rendering is pure and deterministic: identical records produce
// byte-identical output, and field order is fixed.
func Format(p Problem, id, url string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s. %s\n\n", id, orNone(p.Title))

	tags := NoContent
	if len(p.Tags) > 0 {
		tags = strings.Join(p.Tags, ", ")
	}
	fmt.Fprintf(&b, "Difficulty: %s | Tags: %s\n\n", p.Difficulty, tags)
	fmt.Fprintf(&b, "Link: %s\n\n", url)

	writeSection(&b, "Description", p.Description)
	writeSection(&b, "Input Format", p.InputFormat)
	writeSection(&b, "Output Format", p.OutputFormat)

	for i, s := range p.Samples {
		fmt.Fprintf(&b, "## Sample %d\n\n", i+1)
		fmt.Fprintf(&b, "Input:\n\n```\n%s\n```\n\n", s.Input)
		fmt.Fprintf(&b, "Output:\n\n```\n%s\n```\n\n", s.Output)
	}

	if p.Limit != "" && p.Limit != NoContent {
		writeSection(&b, "Constraints", p.Limit)
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeSection(b *strings.Builder, title, body string) {
	fmt.Fprintf(b, "## %s\n\n%s\n\n", title, orNone(body))
}

func orNone(s string) string {
	if s == "" {
		return NoContent
	}
	return s
}
