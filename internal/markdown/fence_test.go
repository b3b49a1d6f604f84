package markdown_test

import (
	"strings"
	"testing"

	"showboat/internal/markdown"
)

func TestFenceDefaultsToThreeBackticks(t *testing.T) {
	if got := markdown.Fence("echo hello"); got != "```" {
		t.Fatalf("expected three backticks, got %q", got)
	}
	if got := markdown.Fence(""); got != "```" {
		t.Fatalf("expected three backticks for empty content, got %q", got)
	}
}

func TestFenceGrowsPastLongestRun(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    int
	}{
		{"inline code", "use `ls` here", 3},
		{"double run", "a``b", 3},
		{"triple run", "a```b", 4},
		{"existing fence block", "```bash\nls\n```", 4},
		{"long run", "a``````b", 7},
		{"run at end", "trailing`````", 6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fence := markdown.Fence(tc.content)
			if len(fence) != tc.want {
				t.Fatalf("fence %q has length %d, want %d", fence, len(fence), tc.want)
			}
			if fence != strings.Repeat("`", tc.want) {
				t.Fatalf("fence %q is not all backticks", fence)
			}
			if strings.Contains(tc.content, fence) {
				t.Fatalf("content contains a run as long as the fence %q", fence)
			}
		})
	}
}
