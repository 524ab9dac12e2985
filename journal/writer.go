package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Writer writes entries as delimited rows in the configured Format.
type Writer struct {
	opts Options
	w    io.Writer
	csv  *csv.Writer
	err  error
}

func NewWriter(w io.Writer, o Options) *Writer {
	jw := &Writer{opts: o, w: w}
	if o.Format == FormatCSV {
		jw.csv = csv.NewWriter(w)
	}
	return jw
}

func (w *Writer) WriteHeader() error {
	return w.writeRecord(Header())
}

func (w *Writer) Write(e Entry) error {
	return w.writeRecord(Fields(e, w.opts))
}

func (w *Writer) writeRecord(rec []string) error {
	if w.err != nil {
		return w.err
	}
	if w.csv != nil {
		w.err = w.csv.Write(rec)
		return w.err
	}
	_, w.err = fmt.Fprintln(w.w, strings.Join(rec, w.opts.separator()))
	return w.err
}

// Flush must be called after the last Write for csv output.
func (w *Writer) Flush() error {
	if w.csv != nil {
		w.csv.Flush()
		if err := w.csv.Error(); err != nil {
			return err
		}
	}
	return w.err
}

func (o Options) separator() string {
	if o.Format == FormatPipe {
		return " | "
	}
	return "\t"
}

// FormatRow renders a single entry without a trailing newline, ready for
// the clipboard.
func FormatRow(e Entry, o Options) string {
	var b strings.Builder
	w := NewWriter(&b, o)
	if err := w.Write(e); err != nil {
		return ""
	}
	if err := w.Flush(); err != nil {
		return ""
	}
	return strings.TrimRight(b.String(), "\r\n")
}
