package offline

import (
	"testing"

	"go.uber.org/zap"

	"github.com/devahmed4965/CheckerApp/internal/store"
)

func TestQueue_AppendAndLoad(t *testing.T) {
	t.Parallel()

	q := NewQueue(t.TempDir(), zap.NewNop())

	// 文件不存在视为空队列
	entries, err := q.Load()
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty queue, got %d", len(entries))
	}

	first := []Entry{
		{ID: "shp-1", Status: "Line", EmployeeID: 7, Imported: true},
		{ID: "shp-2", Status: "Return", EmployeeID: 7, Imported: true},
	}
	if err := q.Append(first); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := q.Append([]Entry{{ID: "shp-3", Status: "Line", Checked: true}}); err != nil {
		t.Fatalf("append second batch: %v", err)
	}

	entries, err = q.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entry count: got %d, want 3", len(entries))
	}
	if entries[0].ID != "shp-1" || entries[2].ID != "shp-3" {
		t.Fatalf("unexpected order: %+v", entries)
	}
	if !entries[2].Checked {
		t.Fatalf("checked flag lost on round trip")
	}
}

func TestQueue_SyncFlushesToStore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	st, err := store.Open("", dir)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	q := NewQueue(dir, zap.NewNop())
	if err := q.Append([]Entry{
		{ID: "shp-1", Status: "Line", EmployeeID: 7, Imported: true},
		{ID: "shp-2", Status: "Return", EmployeeID: 7, Imported: true, Checked: true},
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	n, err := q.Sync(st)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if n != 2 {
		t.Fatalf("synced count: got %d, want 2", n)
	}

	total, checked, err := st.CountShipments()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 2 || checked != 1 {
		t.Fatalf("db counts: total=%d checked=%d", total, checked)
	}

	// 同步后文件被清空
	count, err := q.Count()
	if err != nil {
		t.Fatalf("count after sync: %v", err)
	}
	if count != 0 {
		t.Fatalf("queue not truncated: %d entries", count)
	}

	// 空队列同步是空操作
	n, err = q.Sync(st)
	if err != nil || n != 0 {
		t.Fatalf("empty sync: n=%d err=%v", n, err)
	}
}
