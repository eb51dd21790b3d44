package luogu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty input", input: "", want: ""},
		{name: "plain text", input: "hello", want: "hello"},
		{name: "strips tags", input: "<p>hello <b>world</b></p>", want: "hello world"},
		{
			name:  "strips tag with attributes",
			input: `<div class="main">text</div>`,
			want:  "text",
		},
		{
			name:  "unterminated tag runs to end of input",
			input: "text <div class=",
			want:  "text",
		},
		{
			name:  "bare less-than before space survives",
			input: "a < b",
			want:  "a < b",
		},
		{
			name:  "less-than before digit survives",
			input: "n<100",
			want:  "n<100",
		},
		{
			name:  "less-than before equals survives",
			input: "|a| <= 10^9",
			want:  "|a| <= 10^9",
		},
		{
			name:  "less-than before letter is consumed as a tag",
			input: "a<b>c",
			want:  "ac",
		},
		{
			name:  "entities decode after stripping",
			input: "x &lt;sub&gt; y &amp; z&nbsp;!",
			want:  "x <sub> y & z !",
		},
		{
			name:  "horizontal whitespace collapses within a line",
			input: "a   b\t\tc",
			want:  "a b c",
		},
		{
			name:  "lines are trimmed",
			input: "  first  \n\t second \t",
			want:  "first\nsecond",
		},
		{
			name:  "excess blank lines collapse to one",
			input: "para one\n\n\n\n\npara two",
			want:  "para one\n\npara two",
		},
		{
			name:  "paragraph break is preserved",
			input: "para one\n\npara two",
			want:  "para one\n\npara two",
		},
		{
			name:  "whole result is trimmed",
			input: "\n\n  body  \n\n",
			want:  "body",
		},
		{
			name:  "carriage returns",
			input: "a\r\nb",
			want:  "a\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIsTotal(t *testing.T) {
	// Arbitrary garbage must never panic.
	inputs := []string{
		"<<<>>>",
		"<",
		"</",
		"<!",
		string([]byte{0x00, 0xff, 0xfe, '<', 'a'}),
		"<script>while(1){}</script",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { Normalize(in) })
	}
}
