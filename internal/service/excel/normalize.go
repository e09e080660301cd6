package excel

import "strings"

// nanPlaceholder 表格库把缺失数值单元格渲染成的文本
const nanPlaceholder = "nan"

// NormalizeID 规范化货运单号：去除首尾空白并转小写
// 幂等：NormalizeID(NormalizeID(s)) == NormalizeID(s)
func NormalizeID(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Row 规范化后的清单行
type Row struct {
	ID     string // 已规范化的单号
	Status string // 已去除首尾空白的原始状态文本
}

// NormalizeRow 规范化一行 (单号, 状态)
// 单号规范化后为空或为 "nan"（大小写不敏感，规范化已转小写）时丢弃该行；
// 状态做同样的空值检查。被丢弃的行静默排除，不计入任何计数。
func NormalizeRow(rawID, rawStatus string) (Row, bool) {
	id := NormalizeID(rawID)
	if id == "" || id == nanPlaceholder {
		return Row{}, false
	}
	status := strings.TrimSpace(rawStatus)
	if status == "" || status == nanPlaceholder {
		return Row{}, false
	}
	return Row{ID: id, Status: status}, true
}
