// Package render converts a structural document model into a
// self-contained HTML document.
//
// The renderer is a pure function over its inputs: a single
// top-to-bottom pass with no retained state, safe to call concurrently.
// It degrades gracefully on malformed-but-present input (ragged tables,
// empty runs, out-of-range heading levels) and fails only when handed a
// node variant outside the defined set.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/oldgaffers/fetch-doc/internal/core/domain"
)

// baseStyle is the embedded baseline typography. No external resources
// are referenced anywhere in the output.
const baseStyle = `body { font-family: Arial, sans-serif; max-width: 800px; margin: 40px auto; padding: 20px; line-height: 1.6; }
h1 { font-size: 24px; margin-top: 20px; margin-bottom: 10px; }
h2 { font-size: 20px; margin-top: 18px; margin-bottom: 8px; }
h3 { font-size: 16px; margin-top: 16px; margin-bottom: 6px; }
p { margin: 10px 0; }
table { border-collapse: collapse; margin: 10px 0; }
td { border: 1px solid #999; padding: 5px; vertical-align: top; }`

// Render produces a complete HTML document for the given title and
// body. Body order is preserved exactly. The only error condition is a
// node variant outside the defined set, reported as
// domain.ErrUnsupportedNode.
func Render(title string, body []domain.Node) (string, error) {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"UTF-8\">\n<title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title>\n<style>\n")
	b.WriteString(baseStyle)
	b.WriteString("\n</style>\n</head>\n<body>\n")
	if err := writeNodes(&b, body); err != nil {
		return "", err
	}
	b.WriteString("\n</body>\n</html>\n")
	return b.String(), nil
}

// writeNodes dispatches each node to its block renderer. It is shared
// between the top-level body and nested table cell content, so tables
// and headings inside cells render the same way they do at top level.
func writeNodes(b *strings.Builder, nodes []domain.Node) error {
	for _, n := range nodes {
		switch n := n.(type) {
		case *domain.Heading:
			writeHeading(b, n)
		case *domain.Paragraph:
			b.WriteString("<p>")
			writeRuns(b, n.Runs)
			b.WriteString("</p>")
		case *domain.Table:
			if err := writeTable(b, n); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %T", domain.ErrUnsupportedNode, n)
		}
	}
	return nil
}

func writeHeading(b *strings.Builder, h *domain.Heading) {
	level := h.Level
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	fmt.Fprintf(b, "<h%d>", level)
	writeRuns(b, h.Runs)
	fmt.Fprintf(b, "</h%d>", level)
}

// writeTable renders the grid row by row. Short rows are padded with
// empty cells up to the widest row so the output is always rectangular.
func writeTable(b *strings.Builder, t *domain.Table) error {
	width := 0
	for _, row := range t.Rows {
		if len(row.Cells) > width {
			width = len(row.Cells)
		}
	}

	b.WriteString("<table>")
	for _, row := range t.Rows {
		b.WriteString("<tr>")
		for _, cell := range row.Cells {
			b.WriteString("<td>")
			if err := writeNodes(b, cell); err != nil {
				return err
			}
			b.WriteString("</td>")
		}
		for i := len(row.Cells); i < width; i++ {
			b.WriteString("<td></td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")
	return nil
}
