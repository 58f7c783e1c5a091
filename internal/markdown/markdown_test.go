package markdown

import (
	"strings"
	"testing"
)

func TestRenderEmpty(t *testing.T) {
	if got := Render(80, "   \n\n"); got != "" {
		t.Fatalf("Render of whitespace = %q, want empty", got)
	}
}

func TestRenderPlainText(t *testing.T) {
	got := Render(80, "pick up the dry cleaning")
	if !strings.Contains(got, "pick up the dry cleaning") {
		t.Fatalf("Render lost the text: %q", got)
	}
}

func TestRenderList(t *testing.T) {
	got := Render(80, "- first\n- second")
	if !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Fatalf("Render lost list items: %q", got)
	}
}

func TestRenderNormalizesCarriageReturns(t *testing.T) {
	got := Render(80, "one\r\ntwo")
	if !strings.Contains(got, "one") || !strings.Contains(got, "two") {
		t.Fatalf("Render lost text: %q", got)
	}
	if strings.Contains(got, "\r") {
		t.Fatalf("Render kept carriage returns: %q", got)
	}
}
