// Package report writes the results of a benchmark suite: as a markdown
// table in the log, as a JSON document per year, or into the run history.
package report

import (
	"advent/pkg/domain"
	"advent/pkg/storage"
	"context"
	"strings"

	"github.com/go-faster/errors"
)

// Formats understood by NewWriter.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Writer outputs the report of one year.
type Writer interface {
	Write(ctx context.Context, report domain.Report) error
}

// Options configures the writers created by NewWriter.
type Options struct {
	// Dir is where JSON reports are written.
	Dir string
	// History, when set, additionally persists every report.
	History storage.HistoryStorage
}

// NewWriter returns the writer for format. Unknown formats fall back to markdown.
func NewWriter(format string, opts Options) Writer {
	var w Writer
	switch strings.ToLower(format) {
	case FormatJSON:
		w = &JSONWriter{Dir: opts.Dir}
	default:
		w = &MarkdownWriter{}
	}

	if opts.History != nil {
		return Multi(w, &HistoryWriter{Storage: opts.History})
	}

	return w
}

type multi []Writer

// Multi returns a writer that writes to every writer in order, stopping at
// the first error.
func Multi(writers ...Writer) Writer {
	return multi(writers)
}

func (m multi) Write(ctx context.Context, report domain.Report) error {
	for _, w := range m {
		if err := w.Write(ctx, report); err != nil {
			return errors.Wrapf(err, "write %T", w)
		}
	}

	return nil
}
