package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"google.golang.org/api/docs/v1"

	"github.com/oldgaffers/fetch-doc/internal/core/domain"
)

func textParagraph(style, text string) *docs.StructuralElement {
	return &docs.StructuralElement{
		Paragraph: &docs.Paragraph{
			ParagraphStyle: &docs.ParagraphStyle{NamedStyleType: style},
			Elements: []*docs.ParagraphElement{
				{TextRun: &docs.TextRun{Content: text}},
			},
		},
	}
}

func TestMapDocumentTitleAndRevision(t *testing.T) {
	got := MapDocument(&docs.Document{Title: "Notes", RevisionId: "rev-7"})

	assert.Equal(t, "Notes", got.Title)
	assert.Equal(t, "rev-7", got.RevisionID)
	assert.Empty(t, got.Body)
}

func TestMapDocumentHeadingStyles(t *testing.T) {
	tests := []struct {
		name      string
		style     string
		wantLevel int
	}{
		{name: "heading 1", style: "HEADING_1", wantLevel: 1},
		{name: "heading 3", style: "HEADING_3", wantLevel: 3},
		{name: "heading 6", style: "HEADING_6", wantLevel: 6},
		{name: "title maps to level 1", style: "TITLE", wantLevel: 1},
		{name: "subtitle maps to level 2", style: "SUBTITLE", wantLevel: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapDocument(&docs.Document{
				Body: &docs.Body{Content: []*docs.StructuralElement{
					textParagraph(tt.style, "x\n"),
				}},
			})

			require.Len(t, got.Body, 1)
			heading, ok := got.Body[0].(*domain.Heading)
			require.True(t, ok, "expected a heading node")
			assert.Equal(t, tt.wantLevel, heading.Level)
			assert.Equal(t, []domain.TextRun{{Text: "x"}}, heading.Runs)
		})
	}
}

func TestMapDocumentNormalTextIsParagraph(t *testing.T) {
	got := MapDocument(&docs.Document{
		Body: &docs.Body{Content: []*docs.StructuralElement{
			textParagraph("NORMAL_TEXT", "hello\n"),
		}},
	})

	require.Len(t, got.Body, 1)
	para, ok := got.Body[0].(*domain.Paragraph)
	require.True(t, ok, "expected a paragraph node")
	assert.Equal(t, []domain.TextRun{{Text: "hello"}}, para.Runs)
}

func TestMapDocumentStyleFlags(t *testing.T) {
	got := MapDocument(&docs.Document{
		Body: &docs.Body{Content: []*docs.StructuralElement{
			{
				Paragraph: &docs.Paragraph{
					Elements: []*docs.ParagraphElement{
						{TextRun: &docs.TextRun{
							Content:   "styled",
							TextStyle: &docs.TextStyle{Bold: true, Underline: true},
						}},
						{TextRun: &docs.TextRun{
							Content:   "plain\n",
							TextStyle: &docs.TextStyle{},
						}},
					},
				},
			},
		}},
	})

	require.Len(t, got.Body, 1)
	para := got.Body[0].(*domain.Paragraph)
	require.Len(t, para.Runs, 2)
	assert.Equal(t, domain.TextRun{Text: "styled", Bold: true, Underline: true}, para.Runs[0])
	assert.Equal(t, domain.TextRun{Text: "plain"}, para.Runs[1])
}

func TestMapDocumentBlankParagraphKept(t *testing.T) {
	// A blank line in a Google Doc is a paragraph whose only run is
	// the structural newline. It must survive as an empty paragraph.
	got := MapDocument(&docs.Document{
		Body: &docs.Body{Content: []*docs.StructuralElement{
			textParagraph("NORMAL_TEXT", "before\n"),
			textParagraph("NORMAL_TEXT", "\n"),
			textParagraph("NORMAL_TEXT", "after\n"),
		}},
	})

	require.Len(t, got.Body, 3)
	blank, ok := got.Body[1].(*domain.Paragraph)
	require.True(t, ok)
	assert.Equal(t, []domain.TextRun{{Text: ""}}, blank.Runs)
}

func TestMapDocumentTable(t *testing.T) {
	got := MapDocument(&docs.Document{
		Body: &docs.Body{Content: []*docs.StructuralElement{
			{
				Table: &docs.Table{
					TableRows: []*docs.TableRow{
						{TableCells: []*docs.TableCell{
							{Content: []*docs.StructuralElement{textParagraph("NORMAL_TEXT", "a\n")}},
							{Content: []*docs.StructuralElement{textParagraph("HEADING_2", "b\n")}},
						}},
					},
				},
			},
		}},
	})

	require.Len(t, got.Body, 1)
	table, ok := got.Body[0].(*domain.Table)
	require.True(t, ok, "expected a table node")
	require.Len(t, table.Rows, 1)
	require.Len(t, table.Rows[0].Cells, 2)

	first, ok := table.Rows[0].Cells[0][0].(*domain.Paragraph)
	require.True(t, ok)
	assert.Equal(t, "a", first.Runs[0].Text)

	// Headings inside cells stay headings.
	second, ok := table.Rows[0].Cells[1][0].(*domain.Heading)
	require.True(t, ok)
	assert.Equal(t, 2, second.Level)
}

func TestMapDocumentSkipsUnsupportedElements(t *testing.T) {
	got := MapDocument(&docs.Document{
		Body: &docs.Body{Content: []*docs.StructuralElement{
			{SectionBreak: &docs.SectionBreak{}},
			textParagraph("NORMAL_TEXT", "kept\n"),
			{TableOfContents: &docs.TableOfContents{}},
		}},
	})

	require.Len(t, got.Body, 1)
	para := got.Body[0].(*domain.Paragraph)
	assert.Equal(t, "kept", para.Runs[0].Text)
}

func TestMapDocumentOrderPreserved(t *testing.T) {
	got := MapDocument(&docs.Document{
		Body: &docs.Body{Content: []*docs.StructuralElement{
			textParagraph("HEADING_1", "first\n"),
			textParagraph("NORMAL_TEXT", "second\n"),
			textParagraph("HEADING_2", "third\n"),
		}},
	})

	require.Len(t, got.Body, 3)
	_, isHeading := got.Body[0].(*domain.Heading)
	assert.True(t, isHeading)
	_, isParagraph := got.Body[1].(*domain.Paragraph)
	assert.True(t, isParagraph)
	third, isHeading := got.Body[2].(*domain.Heading)
	require.True(t, isHeading)
	assert.Equal(t, "third", third.Runs[0].Text)
}
