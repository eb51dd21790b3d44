package luogu

import (
	"regexp"
	"strings"
)

var (
	horizontalWS = regexp.MustCompile(`[ \t]+`)
	excessBlank  = regexp.MustCompile(`\n{3,}`)
)

// entityReplacer decodes the handful of HTML entities that show up in
// problem statements. Decoding happens after tag stripping so that a
// decoded "<" cannot be mistaken for markup.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&amp;", "&",
)

// Normalize strips markup and collapses whitespace from an extracted
// fragment. It is total: any input, including the empty string, produces a
// (possibly empty) string and never an error.
//
// A bare "<" that is not immediately followed by a tag-name character
// (letter, "/" or "!") is preserved, so inequalities like "a < b" in
// statements survive. A tag left unterminated at end of input is dropped.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	s := stripTags(raw)
	s = entityReplacer.Replace(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(horizontalWS.ReplaceAllString(line, " "))
	}
	s = strings.Join(lines, "\n")

	s = excessBlank.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

func stripTags(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '<' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(s) || !isTagStart(s[i+1]) {
			b.WriteByte(c)
			continue
		}
		end := strings.IndexByte(s[i:], '>')
		if end < 0 {
			// Unterminated tag runs to end of input.
			break
		}
		i += end
	}

	return b.String()
}

func isTagStart(c byte) bool {
	return c == '/' || c == '!' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
