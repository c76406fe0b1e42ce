package markdown

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ---------------------------------------------------------------------------
// TestExtractImageURLs - Lists image destinations in document order
// ---------------------------------------------------------------------------

func TestExtractImageURLs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "two images in order",
			input: "a ![x](u1.png) b ![y](u2.png)",
			want:  []string{"u1.png", "u2.png"},
		},
		{
			name:  "duplicates kept",
			input: "![a](u.png)\n\n![b](u.png)",
			want:  []string{"u.png", "u.png"},
		},
		{
			name:  "title ignored",
			input: `![a](u.png "title")`,
			want:  []string{"u.png"},
		},
		{
			name:  "bracketed destination",
			input: "![a](<my image.png>)",
			want:  []string{"my image.png"},
		},
		{
			name:  "nested brackets in alt",
			input: "![a [b] c](u.png)",
			want:  []string{"u.png"},
		},
		{
			name:  "links are not images",
			input: "[a](u.png)",
			want:  nil,
		},
		{
			name:  "escaped bang is not an image",
			input: `\![a](u.png)`,
			want:  nil,
		},
		{
			name:  "scheme not validated",
			input: "![x](javascript:alert(1))",
			want:  []string{"javascript:alert(1)"},
		},
		{
			name:  "blank line breaks alt text",
			input: "![a\n\nb](u.png)",
			want:  nil,
		},
		{
			name:  "image inside link text",
			input: "[![a](i.png)](page.html)",
			want:  []string{"i.png"},
		},
		{
			name:  "unterminated tail",
			input: "![a](u.png",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExtractImageURLs(tt.input)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ExtractImageURLs(%q) (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}
