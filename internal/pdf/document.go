// Package pdf wraps the ledongthuc/pdf library with the two extraction views
// docket parsing needs: whole-document plain text for regex work and
// positioned text fragments for geometric work.
package pdf

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// UnreadableDocumentError indicates the source file could not be opened or
// decoded as a PDF. It is fatal for that document's record; the batch
// continues with the next document.
type UnreadableDocumentError struct {
	Path string
	Err  error
}

func (e *UnreadableDocumentError) Error() string {
	return fmt.Sprintf("unreadable document %s: %v", e.Path, e.Err)
}

func (e *UnreadableDocumentError) Unwrap() error {
	return e.Err
}

// Document is an open PDF. It is owned by a single extraction run and is not
// safe for concurrent use.
type Document struct {
	path   string
	file   *os.File
	reader *pdf.Reader
}

// Open opens and decodes a PDF file. Any open or decode failure is reported
// as an UnreadableDocumentError.
func Open(path string) (*Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, &UnreadableDocumentError{Path: path, Err: err}
	}
	return &Document{path: path, file: f, reader: reader}, nil
}

// Path returns the file path the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// NumPages returns the page count.
func (d *Document) NumPages() int {
	return d.reader.NumPage()
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}

// PlainText extracts the text of every page concatenated into one string.
// Pages that fail to decode are skipped rather than failing the document;
// a document with no extractable text at all is unreadable.
func (d *Document) PlainText() (string, error) {
	var builder strings.Builder
	for pageNum := 1; pageNum <= d.reader.NumPage(); pageNum++ {
		page := d.reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(content)
		builder.WriteString(" ")
	}
	text := builder.String()
	if strings.TrimSpace(text) == "" {
		return "", &UnreadableDocumentError{Path: d.path, Err: fmt.Errorf("no text content extracted")}
	}
	return text, nil
}

// pageText returns the plain text of a single zero-based page, or "" when the
// page cannot be decoded.
func (d *Document) pageText(page int) string {
	p := d.reader.Page(page + 1)
	if p.V.IsNull() {
		return ""
	}
	content, err := p.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return content
}

// FindPages returns the zero-based indices of every page whose text matches
// the given pattern. Callers use this to restrict expensive positioned
// extraction to pages already known relevant.
func (d *Document) FindPages(pattern string) ([]int, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid page search pattern %q: %w", pattern, err)
	}
	var pages []int
	for i := 0; i < d.reader.NumPage(); i++ {
		if re.MatchString(d.pageText(i)) {
			pages = append(pages, i)
		}
	}
	return pages, nil
}
