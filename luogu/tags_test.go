package luogu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{id: "1", want: "模拟"},
		{id: "2", want: "字符串"},
		{id: "3", want: "动态规划"},
		{id: "40", want: "背包"},
	}

	for _, test := range tests {
		t.Run(test.id, func(t *testing.T) {
			assert.Equal(t, test.want, TagName(test.id))
		})
	}
}

func TestTagNameUnknown(t *testing.T) {
	got := TagName("9999")
	assert.Equal(t, "unknown tag(9999)", got)
	assert.Contains(t, got, "9999")
}
