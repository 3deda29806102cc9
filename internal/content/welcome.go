package content

import (
	"strings"

	"github.com/dgallion1/onboard/internal/domain"
	"github.com/dgallion1/onboard/internal/sections"
)

// signatureArtifacts are glyphs PDF and DOCX extraction leave in front of a
// signature name.
var signatureArtifacts = []string{"•", "◦", "-", "·", "*", "\uf0b7"}

// ParseWelcomeMessage parses the CEO and HR letters independently.
func (p *Parser) ParseWelcomeMessage(ceoText, hrText string) domain.WelcomeMessage {
	ceo := p.ParsePerson(ceoText)
	hr := p.ParsePerson(hrText)
	if ceo.Name == "" {
		p.log.Warn("no signature block in welcome message", "author", "ceo")
	}
	if hr.Name == "" {
		p.log.Warn("no signature block in welcome message", "author", "hr")
	}
	return domain.WelcomeMessage{Ceo: ceo, Hr: hr}
}

// ParsePerson reads a signed letter. The last line is the signer's title,
// the one before it the name, and everything above the message.
func (p *Parser) ParsePerson(text string) domain.Person {
	lines := sections.SplitLines(text)
	if len(lines) < 2 {
		return domain.Person{Message: strings.TrimSpace(text)}
	}
	n := len(lines)
	return domain.Person{
		Name:    stripArtifacts(strings.TrimSpace(lines[n-2])),
		Title:   strings.TrimSpace(lines[n-1]),
		Message: sections.JoinTrimmed(lines[:n-2]),
	}
}

func stripArtifacts(s string) string {
	for _, a := range signatureArtifacts {
		if strings.HasPrefix(s, a) {
			return strings.TrimSpace(strings.TrimPrefix(s, a))
		}
	}
	return s
}
