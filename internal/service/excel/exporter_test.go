package excel

import (
	"fmt"
	"testing"
)

func TestExportInspection_Categories(t *testing.T) {
	t.Parallel()

	records := []ExportRow{
		{ID: "shp-1", Status: "Line", Checked: true},
		{ID: "shp-2", Status: "Return", Checked: false},
	}
	unmatched := []string{"shp-9"}

	f, err := ExportInspection(records, unmatched, "Ahmed")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetList()[0]
	if sheet != "Inspection" {
		t.Fatalf("unexpected sheet name: %q", sheet)
	}

	cell := func(ref string) string {
		t.Helper()
		v, err := f.GetCellValue(sheet, ref)
		if err != nil {
			t.Fatalf("get cell %s: %v", ref, err)
		}
		return v
	}

	// 表头
	for i, want := range []string{"ID", "Status", "Checked", "Category"} {
		ref := fmt.Sprintf("%c1", 'A'+i)
		if got := cell(ref); got != want {
			t.Fatalf("header %s: got %q, want %q", ref, got, want)
		}
	}

	// 已检查 -> Inspected
	if got := cell("D2"); got != CategoryInspected {
		t.Fatalf("row 2 category: got %q, want %q", got, CategoryInspected)
	}
	// 未检查且匹配 -> Remaining
	if got := cell("D3"); got != CategoryRemaining {
		t.Fatalf("row 3 category: got %q, want %q", got, CategoryRemaining)
	}
	// 未匹配 -> Unmatched，无视其他字段
	if got := cell("A4"); got != "shp-9" {
		t.Fatalf("row 4 id: got %q", got)
	}
	if got := cell("D4"); got != CategoryUnmatched {
		t.Fatalf("row 4 category: got %q, want %q", got, CategoryUnmatched)
	}

	// 末尾经手员工（数据行后隔一个空行）
	if got := cell("A6"); got != "Employee:" {
		t.Fatalf("footer label: got %q", got)
	}
	if got := cell("B6"); got != "Ahmed" {
		t.Fatalf("footer name: got %q", got)
	}
}

func TestExportInspection_DuplicateIDsLastWins(t *testing.T) {
	t.Parallel()

	records := []ExportRow{
		{ID: "shp-1", Status: "Line", Checked: false},
		{ID: "shp-2", Status: "Line", Checked: false},
		{ID: "shp-1", Status: "Return", Checked: true},
	}

	f, err := ExportInspection(records, nil, "x")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetList()[0]

	// 去重后两行：shp-1 保留首次出现位置、取最后一次的值
	id, _ := f.GetCellValue(sheet, "A2")
	if id != "shp-1" {
		t.Fatalf("row 2 id: got %q", id)
	}
	status, _ := f.GetCellValue(sheet, "B2")
	if status != "Return" {
		t.Fatalf("row 2 status: got %q, want last value", status)
	}
	category, _ := f.GetCellValue(sheet, "D2")
	if category != CategoryInspected {
		t.Fatalf("row 2 category: got %q", category)
	}

	// 第三行应该已经不存在
	leftover, _ := f.GetCellValue(sheet, "A4")
	if leftover != "" {
		t.Fatalf("unexpected extra row: %q", leftover)
	}
}

func TestDefaultExportName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		source string
		want   string
	}{
		{"manifest.xlsx", "manifest_inspected.xlsx"},
		{"august shipments.xlsx", "august shipments_inspected.xlsx"},
		{"", "shipments_inspected.xlsx"},
	}
	for _, tc := range cases {
		if got := DefaultExportName(tc.source); got != tc.want {
			t.Fatalf("DefaultExportName(%q) = %q, want %q", tc.source, got, tc.want)
		}
	}
}
