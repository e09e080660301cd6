package store

import (
	"testing"
	"time"

	"github.com/devahmed4965/CheckerApp/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := Open("", t.TempDir())
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestGetShipmentByShipmentID_LatestRowWins(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	// 同一单号两个批次，查询取最新插入的一条
	if err := st.CreateShipment(&model.Shipment{ShipmentID: "shp-1", Status: "Line"}); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if err := st.CreateShipment(&model.Shipment{ShipmentID: "shp-1", Status: "Return"}); err != nil {
		t.Fatalf("create second: %v", err)
	}

	got, err := st.GetShipmentByShipmentID("shp-1")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.Status != "Return" {
		t.Fatalf("got status %q, want latest row", got.Status)
	}
}

func TestGetShipmentByShipmentID_NotFound(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	_, err := st.GetShipmentByShipmentID("missing")
	if err != ErrNotFound {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestMarkShipmentChecked_UpdatesLatestRow(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	if err := st.BatchInsertShipments([]model.Shipment{
		{ShipmentID: "shp-1", Status: "Line"},
		{ShipmentID: "shp-1", Status: "Line"},
	}); err != nil {
		t.Fatalf("batch insert: %v", err)
	}

	now := time.Now()
	if err := st.MarkShipmentChecked("shp-1", 7, now); err != nil {
		t.Fatalf("mark checked: %v", err)
	}

	got, err := st.GetShipmentByShipmentID("shp-1")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !got.Checked || got.InspectedDate == nil || got.InspectedBy == nil {
		t.Fatalf("latest row not stamped: %+v", got)
	}

	total, checked, err := st.CountShipments()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 2 || checked != 1 {
		t.Fatalf("counts: total=%d checked=%d", total, checked)
	}
}

func TestMarkShipmentChecked_MissingRowTolerated(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	// 离线行可能尚未落库，找不到不算错误
	if err := st.MarkShipmentChecked("missing", 7, time.Now()); err != nil {
		t.Fatalf("got %v, want nil", err)
	}
}

func TestCreateEmployee_DuplicateUsername(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	first := &model.Employee{Name: "A", Username: "ahmed"}
	if err := first.SetPassword("x"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if err := st.CreateEmployee(first); err != nil {
		t.Fatalf("create: %v", err)
	}

	dup := &model.Employee{Name: "B", Username: "ahmed"}
	if err := dup.SetPassword("y"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if err := st.CreateEmployee(dup); err != ErrDuplicateUsername {
		t.Fatalf("got %v, want ErrDuplicateUsername", err)
	}
}

func TestImportConfigForCompany(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	// 无公司绑定走默认配置
	cfg, err := st.ImportConfigForCompany(0)
	if err != nil {
		t.Fatalf("default config: %v", err)
	}
	if len(cfg.IDColumnAliases) == 0 {
		t.Fatalf("default aliases missing")
	}

	company := &model.Company{
		Name:                "Test Co",
		ExcelIDColumn:       "Tracking#",
		ExcelLineStatuses:   "Delivered, تم التسليم",
		ExcelReturnStatuses: "Returned",
	}
	if err := st.SaveCompany(company); err != nil {
		t.Fatalf("save company: %v", err)
	}

	cfg, err = st.ImportConfigForCompany(company.ID)
	if err != nil {
		t.Fatalf("company config: %v", err)
	}
	// 手动列名插到别名最前面
	if cfg.IDColumnAliases[0] != "Tracking#" {
		t.Fatalf("manual column not prioritized: %v", cfg.IDColumnAliases)
	}
	if _, ok := cfg.LineKeywords["Delivered"]; !ok {
		t.Fatalf("line keywords not parsed: %v", cfg.LineKeywords)
	}
	if _, ok := cfg.LineKeywords["تم التسليم"]; !ok {
		t.Fatalf("line keywords lost arabic entry: %v", cfg.LineKeywords)
	}
	if _, ok := cfg.ReturnKeywords["Returned"]; !ok {
		t.Fatalf("return keywords not parsed: %v", cfg.ReturnKeywords)
	}
}
