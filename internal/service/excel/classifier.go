package excel

import (
	"strings"

	"github.com/devahmed4965/CheckerApp/internal/model"
)

// Classify 把原始状态文本映射到固定分类
// 先查 Return 关键词，再查 Line 关键词（同一文本同时出现在两个列表时
// Return 优先，顺序不可交换）；都未命中时返回 Other 并原样保留文本。
// 这里是精确匹配：状态是公司维护的受控词表，与列名的模糊匹配策略不同。
func Classify(raw string, cfg model.ImportConfig) model.Status {
	s := strings.TrimSpace(raw)
	if _, ok := cfg.ReturnKeywords[s]; ok {
		return model.ReturnStatus()
	}
	if _, ok := cfg.LineKeywords[s]; ok {
		return model.LineStatus()
	}
	return model.OtherStatus(s)
}
