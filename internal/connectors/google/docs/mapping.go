package docs

import (
	"strconv"
	"strings"

	"google.golang.org/api/docs/v1"

	"github.com/oldgaffers/fetch-doc/internal/core/domain"
)

// MapDocument translates a Docs API document into the domain
// structural model. Constructs outside the supported subset (section
// breaks, tables of contents, inline objects) are skipped; the mapping
// never fails.
func MapDocument(doc *docs.Document) *domain.StructuralDocument {
	out := &domain.StructuralDocument{
		Title:      doc.Title,
		RevisionID: doc.RevisionId,
	}
	if doc.Body != nil {
		out.Body = mapContent(doc.Body.Content)
	}
	return out
}

func mapContent(elements []*docs.StructuralElement) []domain.Node {
	nodes := make([]domain.Node, 0, len(elements))
	for _, el := range elements {
		switch {
		case el == nil:
			continue
		case el.Paragraph != nil:
			nodes = append(nodes, mapParagraph(el.Paragraph))
		case el.Table != nil:
			nodes = append(nodes, mapTable(el.Table))
		}
	}
	return nodes
}

// mapParagraph produces a Heading for named heading styles and a plain
// Paragraph otherwise. The document title and subtitle styles render as
// the two top heading levels.
func mapParagraph(p *docs.Paragraph) domain.Node {
	runs := mapRuns(p.Elements)

	if p.ParagraphStyle != nil {
		if level, ok := headingLevel(p.ParagraphStyle.NamedStyleType); ok {
			return &domain.Heading{Level: level, Runs: runs}
		}
	}
	return &domain.Paragraph{Runs: runs}
}

func headingLevel(namedStyle string) (int, bool) {
	switch namedStyle {
	case "TITLE":
		return 1, true
	case "SUBTITLE":
		return 2, true
	}
	if rest, ok := strings.CutPrefix(namedStyle, "HEADING_"); ok {
		if level, err := strconv.Atoi(rest); err == nil {
			return level, true
		}
	}
	return 0, false
}

// mapRuns collects the text runs of a paragraph. The Docs API
// terminates the last run of every paragraph with a newline that is
// structural, not content, so it is stripped here. Non-text elements
// (inline objects, page breaks, footnote references) are skipped.
func mapRuns(elements []*docs.ParagraphElement) []domain.TextRun {
	runs := make([]domain.TextRun, 0, len(elements))
	for _, el := range elements {
		if el == nil || el.TextRun == nil {
			continue
		}

		text := strings.TrimSuffix(el.TextRun.Content, "\n")
		run := domain.TextRun{Text: text}
		if ts := el.TextRun.TextStyle; ts != nil {
			run.Bold = ts.Bold
			run.Italic = ts.Italic
			run.Underline = ts.Underline
		}
		runs = append(runs, run)
	}
	return runs
}

func mapTable(t *docs.Table) *domain.Table {
	rows := make([]domain.TableRow, 0, len(t.TableRows))
	for _, tr := range t.TableRows {
		if tr == nil {
			continue
		}
		cells := make([][]domain.Node, 0, len(tr.TableCells))
		for _, tc := range tr.TableCells {
			if tc == nil {
				cells = append(cells, nil)
				continue
			}
			cells = append(cells, mapContent(tc.Content))
		}
		rows = append(rows, domain.TableRow{Cells: cells})
	}
	return &domain.Table{Rows: rows}
}
