package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// RawRow 清单中一行未处理的 (单号, 状态) 单元格对
type RawRow struct {
	ID     string
	Status string
}

// Manifest 已载入的货运清单
// 仅读取第一个工作表：清单文件约定单 sheet
type Manifest struct {
	Headers []string
	rows    [][]string
}

// OpenManifest 打开并读取清单文件
func OpenManifest(path string) (*Manifest, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()
	return ReadManifest(f)
}

// ReadManifest 从打开的工作簿读取清单
func ReadManifest(f *excelize.File) (*Manifest, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return &Manifest{Headers: []string{}, rows: [][]string{}}, nil
	}

	return &Manifest{
		Headers: rows[0],
		rows:    rows[1:],
	}, nil
}

// RowCount 数据行数（不含表头）
func (m *Manifest) RowCount() int {
	return len(m.rows)
}

// Rows 按列绑定提取 (单号, 状态) 对，保持文件内的行序
func (m *Manifest) Rows(mapping ColumnMapping) ([]RawRow, error) {
	idIdx := headerIndex(m.Headers, mapping.IDColumn)
	statusIdx := headerIndex(m.Headers, mapping.StatusColumn)
	if idIdx < 0 {
		return nil, &MissingColumnError{Field: FieldID}
	}
	if statusIdx < 0 {
		return nil, &MissingColumnError{Field: FieldStatus}
	}

	out := make([]RawRow, 0, len(m.rows))
	for _, row := range m.rows {
		out = append(out, RawRow{
			ID:     cellAt(row, idIdx),
			Status: cellAt(row, statusIdx),
		})
	}
	return out, nil
}

func headerIndex(headers []string, name string) int {
	for i, h := range headers {
		if h == name {
			return i
		}
	}
	return -1
}

// cellAt 安全取列值：excelize 会截断行尾的空单元格
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
