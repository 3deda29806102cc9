package extractor

import "strings"

func extractPlainText(data []byte) (string, error) {
	text := strings.ToValidUTF8(string(data), "\uFFFD")
	return strings.TrimPrefix(text, "\uFEFF"), nil
}
