package content

import (
	"strings"

	"github.com/dgallion1/onboard/internal/domain"
	"github.com/dgallion1/onboard/internal/sections"
)

const (
	headRegional        = "REGIONAL INFORMATION"
	headFirstImpression = "FIRST IMPRESSIONS"

	// maxLabelLen bounds the text before a colon that still counts as a label.
	maxLabelLen = 60
	// maxGroupWords bounds the length of a line taken as a region group title.
	maxGroupWords = 8
)

// ParseEtiquette builds the etiquette record from one document.
func (p *Parser) ParseEtiquette(text string) domain.Etiquette {
	d := p.newDocument(text, "etiquette")

	e := domain.Etiquette{
		RegionalInfo:    []domain.RegionalInfo{},
		FirstImpression: []domain.TitledText{},
	}
	if d.has(headRegional) {
		from, to, _ := sections.Bounds(d.lines, headRegional, headFirstImpression)
		e.RegionalInfo = ParseRegionalInfo(d.lines[from:to])
	}
	if d.has(headFirstImpression) {
		from, to, _ := sections.Bounds(d.lines, headFirstImpression, "")
		e.FirstImpression = ParseTitledEntries(d.lines[from:to])
	}
	e.Normalize()
	return e
}

// ParseRegionalInfo groups labeled region entries under group titles. A
// short plain line without a colon opens a group; "Label: text" opens an
// entry; any other line continues the open entry.
func ParseRegionalInfo(lines []string) []domain.RegionalInfo {
	groups := []domain.RegionalInfo{}
	var group *domain.RegionalInfo
	var entry *domain.TitledText

	flushEntry := func() {
		if entry == nil {
			return
		}
		if group == nil {
			groups = append(groups, domain.RegionalInfo{Regions: []domain.TitledText{}})
			group = &groups[len(groups)-1]
		}
		group.Regions = append(group.Regions, *entry)
		entry = nil
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if title, body, ok := splitLabel(line); ok {
			flushEntry()
			entry = &domain.TitledText{Title: title, Content: body}
			continue
		}
		if !sections.IsBullet(line) && isGroupTitle(line) {
			flushEntry()
			groups = append(groups, domain.RegionalInfo{Title: line, Regions: []domain.TitledText{}})
			group = &groups[len(groups)-1]
			continue
		}
		if entry != nil {
			entry.Content = joinContent(entry.Content, sections.StripBullet(line))
		}
	}
	flushEntry()
	return groups
}

// ParseTitledEntries reads "Title: content" entries. A line ending in a colon
// is a title whose content follows on the next lines; a plain line with no
// open entry becomes a title on its own.
func ParseTitledEntries(lines []string) []domain.TitledText {
	entries := []domain.TitledText{}
	open := false
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if title, body, ok := splitLabel(line); ok {
			entries = append(entries, domain.TitledText{Title: title, Content: body})
			open = true
			continue
		}
		text := sections.StripBullet(line)
		if !open {
			entries = append(entries, domain.TitledText{Title: text})
			open = true
			continue
		}
		last := &entries[len(entries)-1]
		last.Content = joinContent(last.Content, text)
	}
	return entries
}

// splitLabel splits "• Label: text" into its parts.
func splitLabel(line string) (string, string, bool) {
	line = sections.StripBullet(line)
	i := strings.Index(line, ":")
	if i <= 0 || i > maxLabelLen {
		return "", "", false
	}
	title := strings.TrimSpace(line[:i])
	if title == "" {
		return "", "", false
	}
	return title, strings.TrimSpace(line[i+1:]), true
}

func isGroupTitle(line string) bool {
	if strings.Contains(line, ":") {
		return false
	}
	if strings.ContainsAny(line[len(line)-1:], ".,;!?") {
		return false
	}
	return len(strings.Fields(line)) <= maxGroupWords
}

func joinContent(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + " " + b
}
