package export_test

import (
	"context"
	"strings"
	"testing"

	"showboat/internal/chunk"
	"showboat/internal/export"
	"showboat/internal/testsupport"
)

func TestParseFormat(t *testing.T) {
	cases := []struct {
		input string
		want  export.Format
		ok    bool
	}{
		{"markdown", export.FormatMarkdown, true},
		{"md", export.FormatMarkdown, true},
		{"HTML", export.FormatHTML, true},
		{" html ", export.FormatHTML, true},
		{"pdf", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := export.ParseFormat(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseFormat(%q) = %q, %v; want %q, %v", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDocumentMarkdown(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	testsupport.AppendChunk(t, store, "doc-1", chunk.CommandInit, chunk.Fields{Title: "Demo"})
	testsupport.AppendChunk(t, store, "doc-1", chunk.CommandNote, chunk.Fields{Markdown: "first note"})
	testsupport.AppendChunk(t, store, "doc-1", chunk.CommandPop, chunk.Fields{})
	testsupport.AppendChunk(t, store, "doc-1", chunk.CommandExec, chunk.Fields{
		Language: "bash",
		Input:    "echo hi",
		Output:   "hi",
	})

	rendered, err := export.New(store).Document(context.Background(), "doc-1", export.FormatMarkdown)
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}

	want := "# Demo\n\nfirst note\n\n```bash\necho hi\n```\n\n```output\nhi\n```\n"
	if rendered != want {
		t.Fatalf("unexpected markdown export:\n%q\nwant:\n%q", rendered, want)
	}
}

func TestDocumentHTML(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x00}
	testsupport.AppendChunk(t, store, "doc-1", chunk.CommandInit, chunk.Fields{Title: "Demo"})
	testsupport.AppendChunk(t, store, "doc-1", chunk.CommandImage, chunk.Fields{
		Filename: "chart.png",
		Alt:      "a chart",
		Image:    payload,
	})

	rendered, err := export.New(store).Document(context.Background(), "doc-1", export.FormatHTML)
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}

	if !strings.HasPrefix(rendered, "<!DOCTYPE html>") {
		t.Fatalf("expected a standalone HTML document, got %q", rendered)
	}
	if !strings.Contains(rendered, "Demo</h1>") {
		t.Fatalf("expected rendered title, got %q", rendered)
	}
	if !strings.Contains(rendered, `src="data:`) {
		t.Fatalf("image payload must be inlined: %q", rendered)
	}
	if strings.Contains(rendered, `src=""`) {
		t.Fatalf("placeholder should be replaced: %q", rendered)
	}
}

func TestDocumentUnknownID(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	if _, err := export.New(store).Document(context.Background(), "missing", export.FormatMarkdown); err == nil {
		t.Fatal("expected error for unknown document")
	}
}
