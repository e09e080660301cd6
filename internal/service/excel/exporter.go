package excel

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// 导出分类（对外契约，不可改动字面量）
const (
	CategoryInspected = "Inspected" // checked == true
	CategoryRemaining = "Remaining" // 未检查且不在未匹配列表
	CategoryUnmatched = "Unmatched" // 未匹配列表中的单号，无视其他字段
)

// ExportRow 导出输入行
type ExportRow struct {
	ID      string
	Status  string
	Checked bool
}

// ExportInspection 生成检查结果工作簿
// 单 sheet，四列 ID/Status/Checked/Category，按分类着色：
// 已检查绿、剩余黄、未匹配红；末尾追加经手员工。
// 工作集中重复的单号按首次出现的位置保留、取最后一次的值（与历史导出一致）。
func ExportInspection(records []ExportRow, unmatched []string, employeeName string) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "Inspection"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"ID", "Status", "Checked", "Category"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetRowStyle(sheetName, 1, 1, headerStyle)

	inspectedStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#C6EFCE"}, Pattern: 1},
		Font: &excelize.Font{Color: "#006100"},
	})
	remainingStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFEB9C"}, Pattern: 1},
		Font: &excelize.Font{Color: "#9C6500"},
	})
	unmatchedStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFC7CE"}, Pattern: 1},
		Font: &excelize.Font{Color: "#9C0006"},
	})

	type exportLine struct {
		row      ExportRow
		category string
	}

	// 去重：保留首次出现的位置，值取最后一次
	order := make([]string, 0, len(records))
	byID := make(map[string]ExportRow, len(records))
	for _, r := range records {
		if _, seen := byID[r.ID]; !seen {
			order = append(order, r.ID)
		}
		byID[r.ID] = r
	}

	lines := make([]exportLine, 0, len(order)+len(unmatched))
	for _, id := range order {
		r := byID[id]
		category := CategoryRemaining
		if r.Checked {
			category = CategoryInspected
		}
		lines = append(lines, exportLine{row: r, category: category})
	}
	for _, id := range unmatched {
		lines = append(lines, exportLine{
			row:      ExportRow{ID: id, Status: CategoryUnmatched},
			category: CategoryUnmatched,
		})
	}

	for i, line := range lines {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), line.row.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), line.row.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), line.row.Checked)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), line.category)

		style := remainingStyle
		switch line.category {
		case CategoryInspected:
			style = inspectedStyle
		case CategoryUnmatched:
			style = unmatchedStyle
		}
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), style)
	}

	// 末尾标注经手员工
	footerRow := len(lines) + 3
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", footerRow), "Employee:")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", footerRow), employeeName)

	f.SetColWidth(sheetName, "A", "A", 28)
	f.SetColWidth(sheetName, "B", "D", 16)

	return f, nil
}

// DefaultExportName 根据来源文件名生成默认导出文件名
func DefaultExportName(sourceName string) string {
	if sourceName == "" {
		return "shipments_inspected.xlsx"
	}
	base := strings.TrimSuffix(sourceName, filepath.Ext(sourceName))
	return base + "_inspected.xlsx"
}
