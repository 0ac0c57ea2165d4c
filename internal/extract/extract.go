package extract

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
)

// Format identifies a resume file format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatTXT  Format = "txt"
)

// ErrNoText is returned when no format yields any text.
var ErrNoText = errors.New("no text extracted from resume")

var errEmptyText = errors.New("empty text")

// Attempt is the outcome of extracting one format: text on success, the
// reason otherwise.
type Attempt struct {
	Format Format
	Text   string
	Err    error
}

// OK reports whether the attempt produced text.
func (a Attempt) OK() bool {
	return a.Err == nil && a.Text != ""
}

type extractorFunc func(data []byte) (string, error)

var extractors = map[Format]extractorFunc{
	FormatPDF:  extractPDF,
	FormatDOCX: extractDOCX,
	FormatTXT:  extractTXT,
}

// fallbackOrder is used when the file extension is not recognised.
var fallbackOrder = []Format{FormatPDF, FormatDOCX, FormatTXT}

// FormatsFor returns the formats tried, in order, for filename.
func FormatsFor(filename string) []Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return []Format{FormatPDF}
	case ".docx":
		return []Format{FormatDOCX}
	case ".txt":
		return []Format{FormatTXT}
	default:
		return fallbackOrder
	}
}

// ResumeText extracts trimmed plain text from an uploaded resume. Formats are
// tried in the order given by FormatsFor and the first one producing text wins.
func ResumeText(filename string, data []byte) (string, error) {
	var errs []error
	for _, f := range FormatsFor(filename) {
		a := Try(f, data)
		if a.OK() {
			return a.Text, nil
		}
		log.Printf("resume %q: %s extraction failed: %v", filename, f, a.Err)
		errs = append(errs, fmt.Errorf("%s: %w", f, a.Err))
	}
	return "", errors.Join(append([]error{ErrNoText}, errs...)...)
}

// Try runs a single format extractor. Parser panics are reported as errors.
func Try(f Format, data []byte) (a Attempt) {
	a.Format = f
	fn, ok := extractors[f]
	if !ok {
		a.Err = fmt.Errorf("unsupported format %q", f)
		return a
	}
	if len(data) == 0 {
		a.Err = errEmptyText
		return a
	}

	defer func() {
		if r := recover(); r != nil {
			a.Text = ""
			a.Err = fmt.Errorf("%s parser panic: %v", f, r)
		}
	}()

	text, err := fn(data)
	if err != nil {
		a.Err = err
		return a
	}
	a.Text = strings.TrimSpace(text)
	if a.Text == "" {
		a.Err = errEmptyText
	}
	return a
}
