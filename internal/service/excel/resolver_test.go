package excel

import (
	"errors"
	"testing"

	"github.com/devahmed4965/CheckerApp/internal/model"
)

func TestResolveColumns_ExactHeaders(t *testing.T) {
	t.Parallel()

	headers := []string{"Shipment ID", "Status", "Notes"}
	mapping, err := ResolveColumns(headers, model.DefaultImportConfig())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if mapping.IDColumn != "Shipment ID" {
		t.Fatalf("unexpected id column: %q", mapping.IDColumn)
	}
	if mapping.StatusColumn != "Status" {
		t.Fatalf("unexpected status column: %q", mapping.StatusColumn)
	}
}

func TestResolveColumns_FuzzyHeaders(t *testing.T) {
	t.Parallel()

	// 表头有错拼，相似度仍在阈值之上
	headers := []string{"Shipment IDs", "Statuss"}
	mapping, err := ResolveColumns(headers, model.DefaultImportConfig())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if mapping.IDColumn != "Shipment IDs" {
		t.Fatalf("unexpected id column: %q", mapping.IDColumn)
	}
	if mapping.StatusColumn != "Statuss" {
		t.Fatalf("unexpected status column: %q", mapping.StatusColumn)
	}
}

func TestResolveColumns_MissingIDColumn(t *testing.T) {
	t.Parallel()

	headers := []string{"Tracking#", "State"}
	_, err := ResolveColumns(headers, model.DefaultImportConfig())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}

	var missing *MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("unexpected error type: %T", err)
	}
	if missing.Field != FieldID {
		t.Fatalf("unexpected missing field: %q", missing.Field)
	}
}

func TestResolveColumns_AliasPriority(t *testing.T) {
	t.Parallel()

	// 两个别名都能命中时，先出现的别名胜出
	cfg := model.DefaultImportConfig()
	cfg.IDColumnAliases = []string{"Shipment ID", "ID"}
	headers := []string{"ID", "Shipment ID", "Status"}

	mapping, err := ResolveColumns(headers, cfg)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if mapping.IDColumn != "Shipment ID" {
		t.Fatalf("unexpected id column: %q", mapping.IDColumn)
	}
}

func TestResolveManualColumns(t *testing.T) {
	t.Parallel()

	headers := []string{"رقم الشحنة", "الحالة"}

	mapping, err := ResolveManualColumns(headers, "رقم الشحنة", "الحالة")
	if err != nil {
		t.Fatalf("resolve manual: %v", err)
	}
	if mapping.IDColumn != "رقم الشحنة" || mapping.StatusColumn != "الحالة" {
		t.Fatalf("unexpected mapping: %+v", mapping)
	}

	// 手动路径不做模糊匹配：列名必须逐字存在
	_, err = ResolveManualColumns(headers, "رقم الشحنه", "الحالة")
	var missing *MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing.Field != FieldID {
		t.Fatalf("unexpected missing field: %q", missing.Field)
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	if got := similarity("Status", "Status"); got != 1.0 {
		t.Fatalf("identical strings: got %v, want 1.0", got)
	}
	if got := similarity("Status", "State"); got < similarityCutoff {
		t.Fatalf("Status/State below cutoff: %v", got)
	}
	if got := similarity("Status", "Tracking#"); got >= similarityCutoff {
		t.Fatalf("unrelated strings above cutoff: %v", got)
	}
}
