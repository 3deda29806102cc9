package extractor

import (
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// uploadExtensions are the document types accepted for extraction. Legacy
// .doc is accepted and answered with a placeholder.
var uploadExtensions = map[string]bool{
	".txt":      true,
	".docx":     true,
	".doc":      true,
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
}

// IsSupportedUpload reports whether a document upload should be accepted.
func IsSupportedUpload(filename string) bool {
	return uploadExtensions[Ext(filename)]
}

// ResolveFilename appends an extension inferred from content when the
// uploaded filename has none.
func ResolveFilename(filename string, head []byte) string {
	if filepath.Ext(filename) != "" || len(head) == 0 {
		return filename
	}
	if ext := DetectMIME(head).Extension(); ext != "" {
		return filename + ext
	}
	return filename
}

// DetectMIME sniffs the content type from the first bytes of a file.
func DetectMIME(head []byte) *mimetype.MIME {
	return mimetype.Detect(head)
}
