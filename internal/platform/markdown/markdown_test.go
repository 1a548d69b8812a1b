package markdown

import (
	"strings"
	"testing"
)

type meta struct {
	ID    string `yaml:"id"`
	Kicks int    `yaml:"kicks"`
}

func TestRenderThenSplit(t *testing.T) {
	t.Parallel()
	out, err := Render(meta{ID: "p1", Kicks: 3}, "# Results\n")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(out, "---\nid: p1\nkicks: 3\n---\n\n# Results\n") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	var got meta
	body, err := Split(strings.ReplaceAll(out, "\n", "\r\n"), &got)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if got.ID != "p1" || got.Kicks != 3 {
		t.Fatalf("meta = %+v", got)
	}
	if body != "\n# Results\n" {
		t.Fatalf("body = %q", body)
	}
}

func TestSplitWithoutFrontmatter(t *testing.T) {
	t.Parallel()
	body, err := Split("just notes\n", nil)
	if err != nil || body != "just notes\n" {
		t.Fatalf("body=%q err=%v", body, err)
	}
	if _, err := Split("---\nid: x\n", nil); err == nil {
		t.Fatalf("expected error for unterminated frontmatter")
	}
}

func TestBlockReplaceKeepsSurroundingText(t *testing.T) {
	t.Parallel()
	b := Block{Owner: "kickclock", Name: "results"}

	body := b.Replace("# Header\n", "v1")
	body = "Coach notes above\n" + body + "\nNotes below\n"
	body = b.Replace(body, "v2\n")

	if strings.Count(body, "kickclock:results:start") != 1 {
		t.Fatalf("duplicated block:\n%s", body)
	}
	if !strings.HasPrefix(body, "Coach notes above\n# Header\n") || !strings.HasSuffix(body, "\nNotes below\n") {
		t.Fatalf("surrounding text lost:\n%s", body)
	}
	got, ok := b.Extract(body)
	if !ok || got != "v2" {
		t.Fatalf("extract = %q, %v", got, ok)
	}
	if _, ok := (Block{Owner: "kickclock", Name: "other"}).Extract(body); ok {
		t.Fatalf("unexpected block")
	}
}
