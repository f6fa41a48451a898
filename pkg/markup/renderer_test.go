package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_Blocks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty input", input: "", expected: ""},
		{name: "plain paragraph", input: "hello world", expected: "<p>hello world</p>"},
		{name: "heading level 1", input: "# Title", expected: "<h1>Title</h1>"},
		{name: "heading level 3", input: "### Title", expected: "<h3>Title</h3>"},
		{name: "heading level 6", input: "###### Deep", expected: "<h6>Deep</h6>"},
		{name: "heading without space", input: "##Tight", expected: "<h2>Tight</h2>"},
		{name: "too many hashes", input: "####### nope", expected: "<p>####### nope</p>"},
		{name: "horizontal rule dashes", input: "---", expected: "<hr>"},
		{name: "horizontal rule stars", input: "***", expected: "<hr>"},
		{name: "horizontal rule underscores", input: "___", expected: "<hr>"},
		{name: "unordered list dash", input: "- one\n- two", expected: "<ul>\n<li>one</li>\n<li>two</li>\n</ul>"},
		{name: "unordered list star", input: "* one\n* two", expected: "<ul>\n<li>one</li>\n<li>two</li>\n</ul>"},
		{name: "ordered list", input: "1. one\n2. two\n10. ten", expected: "<ol>\n<li>one</li>\n<li>two</li>\n<li>ten</li>\n</ol>"},
		{
			name:     "list kind switch closes previous list",
			input:    "- a\n1. b",
			expected: "<ul>\n<li>a</li>\n</ul>\n<ol>\n<li>b</li>\n</ol>",
		},
		{
			name:     "blank line closes list",
			input:    "- a\n\nafter",
			expected: "<ul>\n<li>a</li>\n</ul>\n<p>after</p>",
		},
		{
			name:     "paragraph closes list",
			input:    "- a\nplain",
			expected: "<ul>\n<li>a</li>\n</ul>\n<p>plain</p>",
		},
		{
			name:     "heading closes list",
			input:    "- a\n## next",
			expected: "<ul>\n<li>a</li>\n</ul>\n<h2>next</h2>",
		},
		{
			name:     "rule closes list",
			input:    "1. a\n---",
			expected: "<ol>\n<li>a</li>\n</ol>\n<hr>",
		},
		{
			name:     "list open at end of input is closed",
			input:    "- tail",
			expected: "<ul>\n<li>tail</li>\n</ul>",
		},
		{
			name:     "indented lines are trimmed",
			input:    "   spaced   ",
			expected: "<p>spaced</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.input))
		})
	}
}

func TestRender_Inline(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "bold stars", input: "**bold**", expected: "<p><strong>bold</strong></p>"},
		{name: "bold underscores", input: "__bold__", expected: "<p><strong>bold</strong></p>"},
		{name: "italic star", input: "*em*", expected: "<p><em>em</em></p>"},
		{name: "italic underscore", input: "_em_", expected: "<p><em>em</em></p>"},
		{name: "bold inside heading", input: "## a **b**", expected: "<h2>a <strong>b</strong></h2>"},
		{name: "bold inside list item", input: "- **b** c", expected: "<ul>\n<li><strong>b</strong> c</li>\n</ul>"},
		{
			name:     "two italic spans stay separate",
			input:    "*one* and *two*",
			expected: "<p><em>one</em> and <em>two</em></p>",
		},
		{
			name:     "bold processed before italic",
			input:    "**b** and *i*",
			expected: "<p><strong>b</strong> and <em>i</em></p>",
		},
		{name: "unmatched marker left alone", input: "a * b", expected: "<p>a * b</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.input))
		})
	}
}

func TestRender_Document(t *testing.T) {
	input := "### Title\n\n- A\n- B\n\n**Done**"
	expected := "<h3>Title</h3>\n<ul>\n<li>A</li>\n<li>B</li>\n</ul>\n<p><strong>Done</strong></p>"
	assert.Equal(t, expected, Render(input))

	// single pass over fixed input is deterministic
	assert.Equal(t, Render(input), Render(input))
}
