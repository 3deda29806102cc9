// Package extractor converts uploaded documents into flat UTF-8 text.
//
// Extraction never fails: a handler error (or panic) on malformed input is
// logged and replaced by a placeholder string naming the file, so downstream
// parsing always receives text. Placeholder text contains no headings, so the
// section parsers degrade to empty records.
package extractor

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// extractFunc turns raw file bytes into text.
type extractFunc func(data []byte) (string, error)

var handlers = map[string]extractFunc{
	".txt":      extractPlainText,
	".docx":     extractDOCX,
	".pdf":      extractPDF,
	".md":       extractMarkdown,
	".markdown": extractMarkdown,
	".html":     extractHTML,
	".htm":      extractHTML,
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// Extractor dispatches on the file extension.
type Extractor struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{log: log}
}

// ExtractText returns the text of the document. Images yield "". Legacy
// .doc files and unknown extensions yield a placeholder naming the file.
func (e *Extractor) ExtractText(data []byte, filename string) string {
	ext := Ext(filename)
	log := e.log.With("filename", filename, "ext", ext)

	if imageExtensions[ext] {
		return ""
	}
	extract, ok := handlers[ext]
	if !ok {
		log.Warn("no text extractor for format")
		return unsupportedPlaceholder(filename)
	}

	text, err := safeExtract(extract, data)
	if err != nil {
		log.Warn("text extraction failed", "error", err)
		return failurePlaceholder(filename, err)
	}
	log.Debug("extracted text", "bytes", len(data), "chars", len(text))
	return text
}

// Ext returns the lower-cased extension of filename.
func Ext(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// IsImage reports whether filename has an image extension.
func IsImage(filename string) bool {
	return imageExtensions[Ext(filename)]
}

func safeExtract(extract extractFunc, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during extraction: %v", r)
		}
	}()
	return extract(data)
}

func unsupportedPlaceholder(filename string) string {
	return fmt.Sprintf("[Text extraction is not supported for %s]", filename)
}

func failurePlaceholder(filename string, err error) string {
	return fmt.Sprintf("[Could not extract text from %s: %v]", filename, err)
}
