package luogu

import "fmt"

// tagNames maps Luogu's opaque tag ids to display names. The site only
// ships ids in problem payloads; the name table is static and curated here.
var tagNames = map[string]string{
	"1":  "模拟",
	"2":  "字符串",
	"3":  "动态规划",
	"4":  "搜索",
	"5":  "数学",
	"6":  "图论",
	"7":  "贪心",
	"8":  "计算几何",
	"9":  "并查集",
	"10": "高精度",
	"11": "树形结构",
	"12": "递推",
	"13": "博弈论",
	"14": "线段树",
	"15": "倍增",
	"16": "二分",
	"17": "深度优先搜索 DFS",
	"18": "广度优先搜索 BFS",
	"19": "最短路",
	"20": "最小生成树",
	"21": "排序",
	"22": "树状数组",
	"23": "枚举",
	"24": "分治",
	"25": "前缀和",
	"26": "概率论",
	"27": "组合数学",
	"28": "素数判断,质数,筛法",
	"29": "进制",
	"30": "哈希",
	"31": "位运算",
	"32": "栈",
	"33": "队列",
	"34": "拓扑排序",
	"35": "矩阵运算",
	"36": "快速幂",
	"37": "数论",
	"38": "强连通分量",
	"39": "记忆化搜索",
	"40": "背包",
}

// TagName resolves a tag id to its display name. Ids missing from the table
// are rendered as a placeholder that still carries the raw id, so unknown
// tags surface instead of silently disappearing.
func TagName(id string) string {
	if name, ok := tagNames[id]; ok {
		return name
	}
	return fmt.Sprintf("unknown tag(%s)", id)
}
