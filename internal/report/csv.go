package report

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/nao1215/wikiwalk/internal/model"
)

// CSVWriter outputs results as CSV with an "index,url" header row and one
// row per discovered URL, indexed from 1.
type CSVWriter struct {
	baseWriter
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the result in CSV format.
func (w *CSVWriter) Write(result *model.CrawlResult) (int, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write([]string{"index", "url"}); err != nil {
		return 0, err
	}

	for i, link := range result.Links {
		if err := cw.Write([]string{strconv.Itoa(i + 1), link}); err != nil {
			return 0, err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, err
	}

	return w.output.Write(buf.Bytes())
}
