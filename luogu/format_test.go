package luogu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Fenced code blocks in the golden text are written with ~~~ because raw
// string literals cannot contain backticks.
const goldenProblem = `# P1001. A+B Problem

Difficulty: 入门 | Tags: 模拟, 字符串

Link: https://www.luogu.com.cn/problem/P1001

## Description

给出两个整数 a 和 b，求它们的和。

## Input Format

两个整数，以空格分隔。

## Output Format

一个整数。

## Sample 1

Input:

~~~
1 2
~~~

Output:

~~~
3
~~~

## Constraints

|a|,|b| <= 10^9
`

func TestFormatGolden(t *testing.T) {
	p := Problem{
		Title:         "A+B Problem",
		Description:   "给出两个整数 a 和 b，求它们的和。",
		InputFormat:   "两个整数，以空格分隔。",
		OutputFormat:  "一个整数。",
		Limit:         "|a|,|b| <= 10^9",
		Difficulty:    "入门",
		DifficultyNum: 1,
		Tags:          []string{"模拟", "字符串"},
		Samples:       []Sample{{Input: "1 2", Output: "3"}},
	}

	want := strings.ReplaceAll(goldenProblem, "~~~", "```")
	got := Format(p, "P1001", "https://www.luogu.com.cn/problem/P1001")
	assert.Equal(t, want, got)
}

func TestFormatIsDeterministic(t *testing.T) {
	p := Extract(embeddedDoc)
	first := Format(p, "P1001", "https://example.com/problem/P1001")
	second := Format(Extract(embeddedDoc), "P1001", "https://example.com/problem/P1001")
	assert.Equal(t, first, second)
}

func TestFormatEmptyRecord(t *testing.T) {
	got := Format(Problem{Difficulty: UnknownDifficulty}, "X1", "https://example.com/problem/X1")

	assert.Contains(t, got, "# X1. none")
	assert.Contains(t, got, "Difficulty: unknown difficulty | Tags: none")
	assert.Contains(t, got, "## Description\n\nnone")
	assert.Contains(t, got, "## Input Format\n\nnone")
	assert.Contains(t, got, "## Output Format\n\nnone")
	assert.NotContains(t, got, "## Constraints")
	assert.NotContains(t, got, "## Sample")
}

func TestFormatOmitsConstraintsForSentinelLimit(t *testing.T) {
	p := Problem{Title: "T", Limit: NoContent, Difficulty: UnknownDifficulty}
	assert.NotContains(t, Format(p, "P1", "u"), "## Constraints")
}

func TestFormatNumbersSamplesFromOne(t *testing.T) {
	p := Problem{
		Title:      "T",
		Difficulty: UnknownDifficulty,
		Samples:    []Sample{{Input: "a", Output: "b"}, {Input: "c", Output: "d"}},
	}
	got := Format(p, "P1", "u")
	assert.Contains(t, got, "## Sample 1")
	assert.Contains(t, got, "## Sample 2")
	assert.Less(t, strings.Index(got, "## Sample 1"), strings.Index(got, "## Sample 2"))
}
