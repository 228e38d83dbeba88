package report

import (
	"fmt"
	"io"

	"github.com/nao1215/wikiwalk/internal/model"
)

// SummaryWriter outputs the human-readable completion summary printed to
// standard output at the end of a crawl: the crawl depth and the total and
// unique link counts.
type SummaryWriter struct {
	baseWriter
}

// NewSummaryWriter creates a SummaryWriter that outputs to the given writer.
func NewSummaryWriter(output io.Writer) *SummaryWriter {
	return &SummaryWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the completion summary.
func (w *SummaryWriter) Write(result *model.CrawlResult) (int, error) {
	return fmt.Fprintf(w.output,
		"\nCrawl complete (depth %d)\nTotal links found : %4d\nUnique links      : %4d\n",
		result.Depth, result.TotalLinksFound, result.UniqueLinks)
}
