package model

import "strings"

// StatusKind 状态分类（固定三类）
type StatusKind string

const (
	StatusLine   StatusKind = "Line"   // 正常派送
	StatusReturn StatusKind = "Return" // 退回
	StatusOther  StatusKind = "Other"  // 未命中关键词，保留原始文本
)

// Status 货运状态分类结果
// Kind 为 Other 时 Raw 保存去除首尾空白后的原始状态文本
type Status struct {
	Kind StatusKind
	Raw  string
}

// LineStatus 构造 Line 状态
func LineStatus() Status {
	return Status{Kind: StatusLine}
}

// ReturnStatus 构造 Return 状态
func ReturnStatus() Status {
	return Status{Kind: StatusReturn}
}

// OtherStatus 构造 Other 状态，携带原始文本
func OtherStatus(raw string) Status {
	return Status{Kind: StatusOther, Raw: raw}
}

// Storage 返回写入数据库的状态文本
// Line/Return 存固定字面量，Other 存原始文本（与历史数据兼容）
func (s Status) Storage() string {
	switch s.Kind {
	case StatusLine:
		return string(StatusLine)
	case StatusReturn:
		return string(StatusReturn)
	default:
		return s.Raw
	}
}

// StatusFromStorage 从数据库文本还原分类
func StatusFromStorage(v string) Status {
	switch v {
	case string(StatusLine):
		return LineStatus()
	case string(StatusReturn):
		return ReturnStatus()
	default:
		return OtherStatus(v)
	}
}

// ImportConfig 公司级导入配置
// 列别名按优先级顺序模糊匹配；状态关键词精确匹配（两种策略不可统一）
type ImportConfig struct {
	IDColumnAliases     []string
	StatusColumnAliases []string
	LineKeywords        map[string]struct{}
	ReturnKeywords      map[string]struct{}
}

// DefaultImportConfig 默认导入配置
// 别名覆盖历史清单中出现过的表头写法
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		IDColumnAliases:     []string{"رقم الشحنة", "Shipment ID", "ID"},
		StatusColumnAliases: []string{"الحالة", "Status"},
		LineKeywords:        map[string]struct{}{},
		ReturnKeywords:      map[string]struct{}{},
	}
}

// KeywordSet 把逗号分隔的配置文本解析为关键词集合
// 空白项被丢弃，关键词保留大小写（精确匹配）
func KeywordSet(csv string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		set[part] = struct{}{}
	}
	return set
}

// AliasList 把逗号分隔的配置文本解析为有序别名列表
func AliasList(csv string) []string {
	var list []string
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		list = append(list, part)
	}
	return list
}
