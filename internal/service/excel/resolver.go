package excel

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/devahmed4965/CheckerApp/internal/model"
)

// 语义字段名
const (
	FieldID     = "ID"
	FieldStatus = "Status"
)

// similarityCutoff 模糊匹配阈值（0-1）
// 低于该相似度的表头不作为候选
const similarityCutoff = 0.6

// MissingColumnError 列解析失败：没有任何别名命中表头
// 整批中止，零行入库
type MissingColumnError struct {
	Field string
}

// Error 实现 error 接口
func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column: %s", e.Field)
}

// ColumnMapping 语义字段到实际表头的绑定结果
type ColumnMapping struct {
	IDColumn     string
	StatusColumn string
}

// ResolveColumns 自动解析清单表头
// 对每个语义字段按优先级遍历别名，别名与全部表头做相似度匹配，
// 第一个产生候选的别名胜出并绑定相似度最高的表头。
func ResolveColumns(headers []string, cfg model.ImportConfig) (ColumnMapping, error) {
	idColumn, ok := resolveField(cfg.IDColumnAliases, headers)
	if !ok {
		return ColumnMapping{}, &MissingColumnError{Field: FieldID}
	}
	statusColumn, ok := resolveField(cfg.StatusColumnAliases, headers)
	if !ok {
		return ColumnMapping{}, &MissingColumnError{Field: FieldStatus}
	}
	return ColumnMapping{IDColumn: idColumn, StatusColumn: statusColumn}, nil
}

// ResolveManualColumns 手动选择路径：跳过模糊匹配，仅校验列存在
func ResolveManualColumns(headers []string, idColumn, statusColumn string) (ColumnMapping, error) {
	if !containsHeader(headers, idColumn) {
		return ColumnMapping{}, &MissingColumnError{Field: FieldID}
	}
	if !containsHeader(headers, statusColumn) {
		return ColumnMapping{}, &MissingColumnError{Field: FieldStatus}
	}
	return ColumnMapping{IDColumn: idColumn, StatusColumn: statusColumn}, nil
}

// resolveField 按别名优先级寻找最佳表头
func resolveField(aliases, headers []string) (string, bool) {
	for _, alias := range aliases {
		if best, ok := closestHeader(alias, headers); ok {
			return best, true
		}
	}
	return "", false
}

// closestHeader 在表头集合中找与别名相似度最高且不低于阈值的一个
// 相似度使用 difflib 的 SequenceMatcher ratio（字符级，大小写敏感），
// 与历史实现的匹配口径保持一致。
func closestHeader(alias string, headers []string) (string, bool) {
	best := ""
	bestRatio := 0.0
	for _, header := range headers {
		r := similarity(alias, header)
		if r >= similarityCutoff && r > bestRatio {
			best = header
			bestRatio = r
		}
	}
	return best, best != ""
}

// similarity 计算两个字符串的相似度（0-1）
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}

func containsHeader(headers []string, name string) bool {
	for _, h := range headers {
		if h == name {
			return true
		}
	}
	return false
}
