package excel

import "testing"

func TestNormalizeID(t *testing.T) {
	t.Parallel()

	got := NormalizeID("  SHP-1001  ")
	if got != "shp-1001" {
		t.Fatalf("got %q, want %q", got, "shp-1001")
	}

	// 幂等
	if again := NormalizeID(got); again != got {
		t.Fatalf("not idempotent: %q -> %q", got, again)
	}
}

func TestNormalizeRow_Valid(t *testing.T) {
	t.Parallel()

	row, ok := NormalizeRow(" SHP-1 ", "  Delivered ")
	if !ok {
		t.Fatalf("expected row to pass")
	}
	if row.ID != "shp-1" {
		t.Fatalf("unexpected id: %q", row.ID)
	}
	if row.Status != "Delivered" {
		t.Fatalf("unexpected status: %q", row.Status)
	}
}

func TestNormalizeRow_SkipsMissingValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		id     string
		status string
	}{
		{"empty id", "", "Delivered"},
		{"blank id", "   ", "Delivered"},
		{"nan id", "nan", "Delivered"},
		{"nan id upper", "NaN", "Delivered"},
		{"empty status", "shp-1", ""},
		{"blank status", "shp-1", "   "},
		{"nan status", "shp-1", "nan"},
	}
	for _, tc := range cases {
		if _, ok := NormalizeRow(tc.id, tc.status); ok {
			t.Fatalf("%s: expected row to be skipped", tc.name)
		}
	}
}

func TestNormalizeRow_NanStatusIsCaseSensitive(t *testing.T) {
	t.Parallel()

	// 状态只去空白不转小写，"NAN" 是合法的原始文本
	row, ok := NormalizeRow("shp-1", "NAN")
	if !ok {
		t.Fatalf("expected row to pass")
	}
	if row.Status != "NAN" {
		t.Fatalf("unexpected status: %q", row.Status)
	}
}
