// Package content turns extracted document text into onboarding records.
// Every parser tolerates missing anchors: absent sections come back as empty
// strings and empty lists, and are logged at warn level.
package content

import (
	"log/slog"

	"github.com/dgallion1/onboard/internal/sections"
)

// Parser builds records from extracted text.
type Parser struct {
	log *slog.Logger
}

func NewParser(log *slog.Logger) *Parser {
	if log == nil {
		log = slog.Default()
	}
	return &Parser{log: log}
}

// document is the line view of one extracted text plus the record it is
// being parsed into, for logging.
type document struct {
	lines  []string
	log    *slog.Logger
	record string
}

func (p *Parser) newDocument(text, record string) *document {
	return &document{
		lines:  sections.SplitLines(text),
		log:    p.log.With("record", record),
		record: record,
	}
}

func (d *document) section(start, stop string) string {
	if !d.has(start) {
		return ""
	}
	return sections.ExtractSection(d.lines, start, stop)
}

func (d *document) list(start, stop string) []string {
	if !d.has(start) {
		return []string{}
	}
	return sections.ExtractList(d.lines, start, stop)
}

func (d *document) has(heading string) bool {
	if sections.FindHeading(d.lines, heading) == sections.NotFound {
		d.log.Warn("heading not found", "heading", heading)
		return false
	}
	return true
}
