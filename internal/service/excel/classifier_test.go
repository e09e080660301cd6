package excel

import (
	"testing"

	"github.com/devahmed4965/CheckerApp/internal/model"
)

func classifierConfig() model.ImportConfig {
	cfg := model.DefaultImportConfig()
	cfg.LineKeywords = model.KeywordSet("تم التسليم,Delivered,Out for delivery")
	cfg.ReturnKeywords = model.KeywordSet("مرتجع,Returned")
	return cfg
}

func TestClassify_LineKeyword(t *testing.T) {
	t.Parallel()

	got := Classify("Delivered", classifierConfig())
	if got.Kind != model.StatusLine {
		t.Fatalf("got %v, want Line", got.Kind)
	}
}

func TestClassify_ReturnKeyword(t *testing.T) {
	t.Parallel()

	got := Classify("مرتجع", classifierConfig())
	if got.Kind != model.StatusReturn {
		t.Fatalf("got %v, want Return", got.Kind)
	}
}

func TestClassify_TrimsBeforeMatch(t *testing.T) {
	t.Parallel()

	got := Classify("  Delivered  ", classifierConfig())
	if got.Kind != model.StatusLine {
		t.Fatalf("got %v, want Line", got.Kind)
	}
}

func TestClassify_ReturnBeatsLine(t *testing.T) {
	t.Parallel()

	// 同一关键词出现在两个列表时 Return 优先
	cfg := classifierConfig()
	cfg.LineKeywords["Returned"] = struct{}{}

	got := Classify("Returned", cfg)
	if got.Kind != model.StatusReturn {
		t.Fatalf("got %v, want Return", got.Kind)
	}
}

func TestClassify_OtherKeepsRawText(t *testing.T) {
	t.Parallel()

	got := Classify("  In transit  ", classifierConfig())
	if got.Kind != model.StatusOther {
		t.Fatalf("got %v, want Other", got.Kind)
	}
	if got.Raw != "In transit" {
		t.Fatalf("got raw %q, want trimmed original", got.Raw)
	}
}

func TestClassify_ExactMatchOnly(t *testing.T) {
	t.Parallel()

	// 状态匹配是精确的：大小写或多余文字都不命中
	for _, raw := range []string{"delivered", "Delivered today", "DELIVERED"} {
		got := Classify(raw, classifierConfig())
		if got.Kind != model.StatusOther {
			t.Fatalf("Classify(%q) = %v, want Other", raw, got.Kind)
		}
	}
}
