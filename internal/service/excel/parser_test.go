package excel

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildManifest 构造测试用清单工作簿
func buildManifest(t *testing.T, rows [][]string) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetList()[0]
	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	return f
}

func TestReadManifest(t *testing.T) {
	t.Parallel()

	f := buildManifest(t, [][]string{
		{"Shipment ID", "Status", "Notes"},
		{"SHP-1", "Delivered", "x"},
		{"SHP-2", "Returned", ""},
	})
	defer f.Close()

	m, err := ReadManifest(f)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if len(m.Headers) != 3 {
		t.Fatalf("unexpected headers: %v", m.Headers)
	}
	if m.RowCount() != 2 {
		t.Fatalf("unexpected row count: %d", m.RowCount())
	}
}

func TestManifestRows_MappedExtraction(t *testing.T) {
	t.Parallel()

	f := buildManifest(t, [][]string{
		{"Notes", "Shipment ID", "Status"},
		{"a", "SHP-1", "Delivered"},
		{"b", "SHP-2", "Returned"},
	})
	defer f.Close()

	m, err := ReadManifest(f)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}

	rows, err := m.Rows(ColumnMapping{IDColumn: "Shipment ID", StatusColumn: "Status"})
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("unexpected rows: %d", len(rows))
	}
	if rows[0].ID != "SHP-1" || rows[0].Status != "Delivered" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].ID != "SHP-2" || rows[1].Status != "Returned" {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func TestManifestRows_TruncatedTrailingCells(t *testing.T) {
	t.Parallel()

	// 行尾空单元格会被表格库截断，取值按空串处理
	f := buildManifest(t, [][]string{
		{"Shipment ID", "Status"},
		{"SHP-1"},
	})
	defer f.Close()

	m, err := ReadManifest(f)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}

	rows, err := m.Rows(ColumnMapping{IDColumn: "Shipment ID", StatusColumn: "Status"})
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if rows[0].Status != "" {
		t.Fatalf("expected empty status, got %q", rows[0].Status)
	}
}

func TestManifestRows_UnknownColumn(t *testing.T) {
	t.Parallel()

	f := buildManifest(t, [][]string{{"Shipment ID", "Status"}})
	defer f.Close()

	m, err := ReadManifest(f)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}

	if _, err := m.Rows(ColumnMapping{IDColumn: "Nope", StatusColumn: "Status"}); err == nil {
		t.Fatalf("expected error for unknown column")
	}
}
