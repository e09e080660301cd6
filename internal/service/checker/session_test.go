package checker

import (
	"testing"
	"time"

	"github.com/devahmed4965/CheckerApp/internal/model"
)

func newTestSession() *Session {
	return NewSession(7, "Ahmed", 1)
}

func lineRecord(id string) Record {
	return Record{ID: id, Status: model.LineStatus(), Imported: true, OwnerEmployeeID: 7}
}

func TestCheck_MatchMarksRecord(t *testing.T) {
	t.Parallel()

	sess := newTestSession()
	sess.Append(lineRecord("shp-1"))

	now := time.Now()
	result := sess.Check("  SHP-1  ", 7, now)

	if !result.Matched {
		t.Fatalf("expected match")
	}
	if result.Signal != SignalLine {
		t.Fatalf("unexpected signal: %v", result.Signal)
	}
	if !result.Record.Checked {
		t.Fatalf("record not checked")
	}
	if result.Record.InspectedAt == nil || !result.Record.InspectedAt.Equal(now) {
		t.Fatalf("inspected_at not stamped: %v", result.Record.InspectedAt)
	}
	if result.Record.InspectedBy == nil || *result.Record.InspectedBy != 7 {
		t.Fatalf("inspected_by not stamped: %v", result.Record.InspectedBy)
	}
}

func TestCheck_SignalPerStatus(t *testing.T) {
	t.Parallel()

	sess := newTestSession()
	sess.Append(Record{ID: "shp-line", Status: model.LineStatus()})
	sess.Append(Record{ID: "shp-return", Status: model.ReturnStatus()})
	sess.Append(Record{ID: "shp-other", Status: model.OtherStatus("In transit")})

	cases := []struct {
		id   string
		want Signal
	}{
		{"shp-line", SignalLine},
		{"shp-return", SignalReturn},
		{"shp-other", SignalOther},
	}
	for _, tc := range cases {
		result := sess.Check(tc.id, 7, time.Now())
		if !result.Matched || result.Signal != tc.want {
			t.Fatalf("Check(%q): matched=%v signal=%v, want %v", tc.id, result.Matched, result.Signal, tc.want)
		}
	}
}

func TestCheck_UnmatchedAppendsOnce(t *testing.T) {
	t.Parallel()

	sess := newTestSession()
	sess.Append(lineRecord("shp-1"))

	result := sess.Check("shp-404", 7, time.Now())
	if result.Matched {
		t.Fatalf("expected no match")
	}
	if result.Signal != SignalUnmatched {
		t.Fatalf("unexpected signal: %v", result.Signal)
	}

	unmatched := sess.Unmatched()
	if len(unmatched) != 1 || unmatched[0] != "shp-404" {
		t.Fatalf("unexpected unmatched list: %v", unmatched)
	}

	// 已有记录不受影响
	rec, ok := sess.Find("shp-1")
	if !ok || rec.Checked {
		t.Fatalf("existing record mutated: %+v", rec)
	}
}

func TestCheck_DuplicateIDsPrefersUnchecked(t *testing.T) {
	t.Parallel()

	sess := newTestSession()
	sess.Append(lineRecord("shp-1"))
	sess.Append(lineRecord("shp-1"))

	sess.Check("shp-1", 7, time.Now())
	sess.Check("shp-1", 7, time.Now())

	recs := sess.Records()
	if len(recs) != 2 {
		t.Fatalf("unexpected record count: %d", len(recs))
	}
	// 两次检查覆盖两条重复记录
	for i, rec := range recs {
		if !rec.Checked {
			t.Fatalf("record %d not checked", i)
		}
	}
}

func TestCheck_RecheckRestampsTimestamp(t *testing.T) {
	t.Parallel()

	sess := newTestSession()
	sess.Append(lineRecord("shp-1"))

	first := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)

	sess.Check("shp-1", 7, first)
	result := sess.Check("shp-1", 7, second)

	if !result.Matched || !result.Record.Checked {
		t.Fatalf("recheck should match: %+v", result)
	}
	if !result.Record.InspectedAt.Equal(second) {
		t.Fatalf("timestamp not restamped: %v", result.Record.InspectedAt)
	}
}

func TestUndo_RestoresPreviousState(t *testing.T) {
	t.Parallel()

	sess := newTestSession()
	sess.Append(lineRecord("shp-1"))

	sess.Check("shp-1", 7, time.Now())
	rec, err := sess.Undo()
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if rec.Checked {
		t.Fatalf("record still checked after undo")
	}
	if rec.InspectedAt != nil || rec.InspectedBy != nil {
		t.Fatalf("stamps not cleared: %+v", rec)
	}
}

func TestUndo_SingleLevel(t *testing.T) {
	t.Parallel()

	sess := newTestSession()
	sess.Append(lineRecord("shp-1"))
	sess.Append(lineRecord("shp-2"))

	first := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	sess.Check("shp-1", 7, first)
	sess.Check("shp-2", 7, first.Add(time.Minute))

	// 只能撤销最近一次
	rec, err := sess.Undo()
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if rec.ID != "shp-2" {
		t.Fatalf("undo wrong record: %q", rec.ID)
	}

	if _, err := sess.Undo(); err != ErrNothingToUndo {
		t.Fatalf("second undo: got %v, want ErrNothingToUndo", err)
	}

	// shp-1 保持已检查
	kept, _ := sess.Find("shp-1")
	if !kept.Checked {
		t.Fatalf("earlier check lost")
	}
}

func TestUndo_EmptyStackIsNoOp(t *testing.T) {
	t.Parallel()

	sess := newTestSession()
	sess.Append(lineRecord("shp-1"))

	if _, err := sess.Undo(); err != ErrNothingToUndo {
		t.Fatalf("got %v, want ErrNothingToUndo", err)
	}

	rec, _ := sess.Find("shp-1")
	if rec.Checked {
		t.Fatalf("no-op undo mutated record")
	}
}

func TestMarkUnchecked_ResetsAllDuplicates(t *testing.T) {
	t.Parallel()

	sess := newTestSession()
	sess.Append(lineRecord("shp-1"))
	sess.Append(lineRecord("shp-1"))

	now := time.Now()
	sess.Check("shp-1", 7, now)
	sess.Check("shp-1", 7, now)

	affected := sess.MarkUnchecked("SHP-1")
	if affected != 2 {
		t.Fatalf("affected: got %d, want 2", affected)
	}
	for _, rec := range sess.Records() {
		if rec.Checked || rec.InspectedAt != nil {
			t.Fatalf("record not reset: %+v", rec)
		}
	}

	// 重置后撤销栈被清空
	if _, err := sess.Undo(); err != ErrNothingToUndo {
		t.Fatalf("undo after reset: %v", err)
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	sess := newTestSession()
	sess.Append(lineRecord("shp-100"))
	sess.Append(lineRecord("shp-200"))
	sess.Append(lineRecord("box-100"))

	got := sess.Filter("100")
	if len(got) != 2 {
		t.Fatalf("filter 100: got %d records", len(got))
	}

	got = sess.Filter("SHP")
	if len(got) != 2 {
		t.Fatalf("filter SHP: got %d records", len(got))
	}

	got = sess.Filter("")
	if len(got) != 3 {
		t.Fatalf("empty filter: got %d records", len(got))
	}
}

func TestRemaining(t *testing.T) {
	t.Parallel()

	sess := newTestSession()
	sess.Append(lineRecord("shp-1"))
	sess.Append(lineRecord("shp-2"))
	sess.Check("shp-1", 7, time.Now())

	remaining := sess.Remaining()
	if len(remaining) != 1 || remaining[0].ID != "shp-2" {
		t.Fatalf("unexpected remaining: %+v", remaining)
	}
}

func TestCheck_BlankInputIgnored(t *testing.T) {
	t.Parallel()

	sess := newTestSession()
	sess.Append(lineRecord("shp-1"))

	// 规范化后为空的输入不算未匹配
	for _, raw := range []string{"", "   ", "\t"} {
		result := sess.Check(raw, 7, time.Now())
		if result.Matched {
			t.Fatalf("blank input %q matched", raw)
		}
	}
	if got := sess.Unmatched(); len(got) != 0 {
		t.Fatalf("blank input entered unmatched list: %v", got)
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(time.Hour)
	token, sess := reg.Create(7, "Ahmed", 1)
	if token == "" {
		t.Fatalf("empty token")
	}

	got, ok := reg.Get(token)
	if !ok || got != sess {
		t.Fatalf("lookup failed")
	}

	reg.Delete(token)
	if _, ok := reg.Get(token); ok {
		t.Fatalf("token survived delete")
	}

	if _, ok := reg.Get("bogus"); ok {
		t.Fatalf("bogus token resolved")
	}
}
