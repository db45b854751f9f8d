package generator

import (
	"fmt"
	"strings"
)

// Prompt 表示发送给 LLM 的消息集合。
type Prompt struct {
	System string
	User   string
}

// BuildUpcyclePrompt 生成アップサイクル提案的提示词。模板固定，只替换商品名。
func BuildUpcyclePrompt(itemName string) Prompt {
	levels := make([]string, len(EcoLevels))
	for i, l := range EcoLevels {
		levels[i] = string(l)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("不要な商品の名前：%s\n\n", itemName))
	sb.WriteString(fmt.Sprintf(
		"上記の商品に基づいて、%d個のアップサイクル例を考えてください。それぞれの例について、具体的な方法と環境エコ度（CO2削減量を示す指数。%sで評価）を示してください。\n\n",
		IdeaCount, strings.Join(levels, "、")))
	sb.WriteString("出力形式：\n")
	sb.WriteString("1. 方法：[具体的な方法]、エコ度：[エコ度]\n")
	sb.WriteString("2. 方法：[具体的な方法]、エコ度：[エコ度]\n")
	sb.WriteString("...\n")
	sb.WriteString(fmt.Sprintf("%d. 方法：[具体的な方法]、エコ度：[エコ度]\n", IdeaCount))

	return Prompt{User: sb.String()}
}
