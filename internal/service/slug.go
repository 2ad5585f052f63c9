package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/bwmarrin/snowflake"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// 空标题或全为符号的标题使用的slug前缀
	fallbackSlugBase = "article"
	// 与 articles.slug 列宽一致
	maxSlugLength = 255
	// 雪花ID的base36形式最长13位，另加一个连字符
	maxSlugBaseLength = maxSlugLength - 14
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// SlugGenerator 根据标题生成全局唯一的slug
type SlugGenerator struct {
	node *snowflake.Node
}

// NewSlugGenerator 创建slug生成器，machineID 为雪花节点ID (0-1023)
func NewSlugGenerator(machineID int64) (*SlugGenerator, error) {
	node, err := snowflake.NewNode(machineID)
	if err != nil {
		return nil, fmt.Errorf("初始化雪花节点失败: %w", err)
	}
	return &SlugGenerator{node: node}, nil
}

// Generate 返回 "<标题音译>-<唯一后缀>"。
// 后缀为雪花ID (毫秒时间戳 + 节点 + 单调序列)，同一进程内快速连续调用也不会重复。
func (g *SlugGenerator) Generate(title string) string {
	base := slugify(title)
	if len(base) > maxSlugBaseLength {
		base = strings.TrimRight(base[:maxSlugBaseLength], "-")
	}
	if base == "" {
		base = fallbackSlugBase
	}
	return base + "-" + g.node.Generate().Base36()
}

// slugify 将标题转换为小写、URL安全的形式，去掉重音符号
func slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	result = strings.ToLower(result)
	result = nonSlugChars.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
