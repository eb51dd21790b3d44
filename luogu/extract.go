package luogu

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

// The page embeds its data as a JSON document inside a dedicated script
// block. When present and parseable it is the primary source for every
// field; the markup scan below is the fallback.
var embeddedPayload = regexp.MustCompile(`(?s)<script[^>]*id="lentille-context"[^>]*>(.*?)</script>`)

type feContext struct {
	Data struct {
		Problem *feProblem `json:"problem"`
	} `json:"data"`
}

type feProblem struct {
	Title      string     `json:"title"`
	Difficulty int        `json:"difficulty"`
	Tags       []any      `json:"tags"`
	Content    *feContent `json:"content"`
	Samples    [][]string `json:"samples"`
}

type feContent struct {
	Description string `json:"description"`
	FormatI     string `json:"formatI"`
	FormatO     string `json:"formatO"`
	Hint        string `json:"hint"`
}

// Extract produces a structured record from a raw problem document. It never
// fails: each field independently prefers the embedded payload, then the
// labeled-section scan, then its placeholder value.
func Extract(doc string) Problem {
	p := Problem{
		Title:        UnknownTitle,
		Description:  NoContent,
		InputFormat:  NoContent,
		OutputFormat: NoContent,
		Tags:         []string{},
		Samples:      []Sample{},
	}

	if fe := parseEmbedded(doc); fe != nil {
		if t := Normalize(fe.Title); t != "" {
			p.Title = t
		}
		if fe.Content != nil {
			if s := Normalize(fe.Content.Description); s != "" {
				p.Description = s
			}
			if s := Normalize(fe.Content.FormatI); s != "" {
				p.InputFormat = s
			}
			if s := Normalize(fe.Content.FormatO); s != "" {
				p.OutputFormat = s
			}
			p.Limit = Normalize(fe.Content.Hint)
		}
		p.DifficultyNum = fe.Difficulty
		for _, raw := range fe.Tags {
			p.Tags = append(p.Tags, TagName(tagID(raw)))
		}
		for _, pair := range fe.Samples {
			if len(pair) >= 2 {
				p.Samples = append(p.Samples, Sample{
					Input:  Normalize(pair[0]),
					Output: Normalize(pair[1]),
				})
			}
		}
	}

	hs := indexHeadings(doc)
	if p.Title == UnknownTitle {
		if t := firstTitleHeading(hs); t != "" {
			p.Title = t
		}
	}
	if p.Description == NoContent {
		if s := section(doc, hs, "题目描述"); s != "" {
			p.Description = s
		}
	}
	if p.InputFormat == NoContent {
		if s := section(doc, hs, "输入格式"); s != "" {
			p.InputFormat = s
		}
	}
	if p.OutputFormat == NoContent {
		if s := section(doc, hs, "输出格式"); s != "" {
			p.OutputFormat = s
		}
	}
	if p.Limit == "" {
		p.Limit = section(doc, hs, "说明/提示")
	}
	if len(p.Samples) == 0 {
		p.Samples = scanSamples(doc, hs)
	}

	p.Difficulty = DifficultyName(p.DifficultyNum)
	return p
}

// parseEmbedded locates the embedded payload and returns its problem object,
// or nil. A malformed payload is swallowed so the caller falls through to
// the section scan.
func parseEmbedded(doc string) *feProblem {
	m := embeddedPayload.FindStringSubmatch(doc)
	if m == nil {
		return nil
	}
	var ctx feContext
	if err := json.Unmarshal([]byte(m[1]), &ctx); err != nil {
		return nil
	}
	return ctx.Data.Problem
}

// tagID renders a payload tag id as a string. Upstream has shipped both
// string and numeric ids.
func tagID(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.Itoa(int(t))
	default:
		return fmt.Sprint(t)
	}
}

// heading is one markup heading, with its byte extent inside the document.
type heading struct {
	level      int
	text       string
	start, end int
}

var headingPattern = regexp.MustCompile(`(?is)<h([1-6])[^>]*>(.*?)</h[1-6]\s*>`)

func indexHeadings(doc string) []heading {
	var hs []heading
	for _, m := range headingPattern.FindAllStringSubmatchIndex(doc, -1) {
		hs = append(hs, heading{
			level: int(doc[m[2]] - '0'),
			text:  Normalize(doc[m[4]:m[5]]),
			start: m[0],
			end:   m[1],
		})
	}
	return hs
}

func firstTitleHeading(hs []heading) string {
	for _, h := range hs {
		if h.level == 1 {
			return h.text
		}
	}
	return ""
}

// section captures the text between a heading whose literal text matches
// label and the next heading of the same level, normalized.
func section(doc string, hs []heading, label string) string {
	for i, h := range hs {
		if h.text != label {
			continue
		}
		end := len(doc)
		for _, nh := range hs[i+1:] {
			if nh.level == h.level {
				end = nh.start
				break
			}
		}
		return Normalize(doc[h.end:end])
	}
	return ""
}

var (
	sampleInputLabel  = regexp.MustCompile(`^输入样例\s*#?\s*(\d+)$`)
	sampleOutputLabel = regexp.MustCompile(`^输出样例\s*#?\s*(\d+)$`)
)

// scanSamples walks repeated input/output sample heading pairs with matching
// numbers. The final output capture runs to end-of-document when no heading
// follows it.
func scanSamples(doc string, hs []heading) []Sample {
	samples := []Sample{}
	for i := 0; i < len(hs); i++ {
		in := sampleInputLabel.FindStringSubmatch(hs[i].text)
		if in == nil {
			continue
		}
		for j := i + 1; j < len(hs); j++ {
			out := sampleOutputLabel.FindStringSubmatch(hs[j].text)
			if out == nil || out[1] != in[1] {
				continue
			}
			end := len(doc)
			for _, nh := range hs[j+1:] {
				if nh.level <= hs[j].level {
					end = nh.start
					break
				}
			}
			samples = append(samples, Sample{
				Input:  Normalize(doc[hs[i].end:hs[j].start]),
				Output: Normalize(doc[hs[j].end:end]),
			})
			i = j
			break
		}
	}
	return samples
}
