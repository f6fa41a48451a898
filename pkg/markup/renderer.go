// Package markup renders a small markdown subset into HTML suitable for
// email bodies. The renderer is a line-oriented state machine: the only
// state carried between lines is whether a list is open and of which kind.
// It is total - malformed input degrades to plain paragraphs, it never fails.
package markup

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	reOrdered    = regexp.MustCompile(`^\d+\.\s`)
	reBoldStars  = regexp.MustCompile(`\*\*(.*?)\*\*`)
	reBoldUnders = regexp.MustCompile(`__(.*?)__`)
	reEmStar     = regexp.MustCompile(`\*([^*]+)\*`)
	reEmUnder    = regexp.MustCompile(`_([^_]+)_`)
)

// Render converts text to HTML, one block element per source line. Blank
// lines close any open list and emit nothing. Deterministic for fixed input.
func Render(text string) string {
	if text == "" {
		return ""
	}

	var out []string
	listKind := "" // "ul", "ol" or empty when no list is open

	closeList := func() {
		if listKind != "" {
			out = append(out, "</"+listKind+">")
			listKind = ""
		}
	}

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)

		if stripped == "" {
			closeList()
			continue
		}

		// headings, up to six # characters; longer runs degrade to a paragraph
		if strings.HasPrefix(stripped, "#") {
			closeList()
			level := 0
			for level < len(stripped) && stripped[level] == '#' {
				level++
			}
			if level <= 6 {
				content := strings.TrimSpace(stripped[level:])
				out = append(out, fmt.Sprintf("<h%d>%s</h%d>", level, renderInline(content), level))
			} else {
				out = append(out, "<p>"+renderInline(stripped)+"</p>")
			}
			continue
		}

		if stripped == "---" || stripped == "***" || stripped == "___" {
			closeList()
			out = append(out, "<hr>")
			continue
		}

		unordered := strings.HasPrefix(stripped, "- ") || strings.HasPrefix(stripped, "* ")
		ordered := reOrdered.MatchString(stripped)
		if unordered || ordered {
			kind := "ul"
			if ordered {
				kind = "ol"
			}
			if listKind != "" && listKind != kind {
				closeList()
			}
			if listKind == "" {
				listKind = kind
				out = append(out, "<"+kind+">")
			}

			var content string
			if unordered {
				content = stripped[2:]
			} else {
				content = reOrdered.ReplaceAllString(stripped, "")
			}
			out = append(out, "<li>"+renderInline(content)+"</li>")
			continue
		}

		// plain paragraph breaks an open list
		closeList()
		out = append(out, "<p>"+renderInline(stripped)+"</p>")
	}

	closeList()
	return strings.Join(out, "\n")
}

// renderInline substitutes emphasis markers, strong first so that the
// single-marker patterns never consume halves of a double marker
func renderInline(text string) string {
	text = reBoldStars.ReplaceAllString(text, "<strong>$1</strong>")
	text = reBoldUnders.ReplaceAllString(text, "<strong>$1</strong>")
	text = reEmStar.ReplaceAllString(text, "<em>$1</em>")
	text = reEmUnder.ReplaceAllString(text, "<em>$1</em>")
	return text
}
