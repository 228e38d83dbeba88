package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/nao1215/wikiwalk/internal/model"
)

// MarkdownWriter outputs results in GitHub-flavored Markdown for
// documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
//  1. Type-safe markdown generation
//  2. Table support without manual pipe alignment
//  3. Consistent escaping of cell content
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the result in Markdown format: a crawl summary table
// followed by the discovered links in discovery order.
func (w *MarkdownWriter) Write(result *model.CrawlResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Crawl Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Seed", "`" + result.Seed + "`"},
			{"Depth", strconv.Itoa(result.Depth)},
			{"Total links found", strconv.Itoa(result.TotalLinksFound)},
			{"Unique links", strconv.Itoa(result.UniqueLinks)},
		},
	})
	md.PlainText("")

	md.H2("Discovered Links")
	md.PlainText("")

	rows := make([][]string, 0, len(result.Links))
	for i, link := range result.Links {
		rows = append(rows, []string{strconv.Itoa(i + 1), link})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Index", "URL"},
		Rows:   rows,
	})

	return len(md.String()), md.Build()
}
