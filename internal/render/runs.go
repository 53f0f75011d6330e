package render

import (
	"html"
	"strings"

	"github.com/oldgaffers/fetch-doc/internal/core/domain"
)

// MergeRuns folds a run sequence into its canonical form: empty-text
// runs are dropped and adjacent runs with identical style flags are
// joined into one. Two style-equivalent segmentations of the same text
// always fold to the same sequence, which is what makes rendered
// output byte-identical regardless of how the upstream model split
// its runs.
func MergeRuns(runs []domain.TextRun) []domain.TextRun {
	merged := make([]domain.TextRun, 0, len(runs))
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		if n := len(merged); n > 0 && merged[n-1].SameStyle(r) {
			merged[n-1].Text += r.Text
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// writeRuns renders a run sequence as inline HTML. Text is escaped
// before any style tag is written, so document content can never open
// or close markup. Style tags nest in a fixed canonical order, bold
// outermost, then italic, then underline.
func writeRuns(b *strings.Builder, runs []domain.TextRun) {
	for _, r := range MergeRuns(runs) {
		if r.Bold {
			b.WriteString("<strong>")
		}
		if r.Italic {
			b.WriteString("<em>")
		}
		if r.Underline {
			b.WriteString("<u>")
		}
		b.WriteString(html.EscapeString(r.Text))
		if r.Underline {
			b.WriteString("</u>")
		}
		if r.Italic {
			b.WriteString("</em>")
		}
		if r.Bold {
			b.WriteString("</strong>")
		}
	}
}
