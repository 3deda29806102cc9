package content

import (
	"regexp"
	"strings"

	"github.com/dgallion1/onboard/internal/domain"
	"github.com/dgallion1/onboard/internal/sections"
)

// Anchor headings of the local hire information document, in document order.
const (
	headWhoWeAre         = "WHO WE ARE"
	headFootprint        = "OUR FOOTPRINT"
	headPlants           = "PLANTS"
	headReadyMix         = "READY MIX"
	headDepots           = "DEPOTS"
	headCulture          = "OUR CULTURE"
	headPillars          = "OUR PILLARS"
	headInnovation       = "INNOVATION"
	headHuaxinSpirit     = "HUAXIN SPIRIT"
	headRespectful       = "RESPECTFUL WORKPLACES"
	headGeneralIntro     = "GENERAL INTRODUCTION"
	headCountry          = "Country:"
	headInterestingFacts = "Interesting Facts About Nigeria"
	headHolidays         = "National Holidays"

	holidaySkipMarker = "Visiting Nigeria"
)

var holidayPattern = regexp.MustCompile(
	`^(?:(\d{1,2}(?:\s*[-–]\s*\d{1,2})?)\s+)?` +
		`(January|February|March|April|May|June|July|August|September|October|November|December)\b\s*(.*)$`,
)

// ParseLocalHireInfo builds the local hire record from one document.
func (p *Parser) ParseLocalHireInfo(text string) domain.LocalHireInfo {
	d := p.newDocument(text, "local_hire_info")

	info := domain.LocalHireInfo{
		AboutLafarge: domain.AboutLafarge{
			WhoWeAre: d.section(headWhoWeAre, headFootprint),
			Footprint: domain.Footprint{
				Summary:  d.section(headFootprint, headPlants),
				Plants:   d.list(headPlants, headReadyMix),
				ReadyMix: d.list(headReadyMix, headDepots),
				Depots:   d.section(headDepots, headCulture),
			},
			Culture: domain.Culture{
				Summary:              d.section(headCulture, headPillars),
				Pillars:              d.section(headPillars, headInnovation),
				Innovation:           d.section(headInnovation, headHuaxinSpirit),
				HuaxinSpirit:         d.list(headHuaxinSpirit, headRespectful),
				RespectfulWorkplaces: d.section(headRespectful, headGeneralIntro),
			},
		},
		GeneralIntro: domain.GeneralIntro{
			Introduction:     d.section(headGeneralIntro, headCountry),
			CountryFacts:     ParseCountryFacts(d.lines),
			InterestingFacts: d.list(headInterestingFacts, headHolidays),
			Holidays:         ParseHolidays(d.lines),
		},
	}
	info.Normalize()
	return info
}

// dayRangeSeparator matches the dash between the days of a range, with any
// surrounding space.
var dayRangeSeparator = regexp.MustCompile(`\s*[-–]\s*`)

// ParseCountryFacts reads label/value pairs from the "Country:" line up to
// the interesting-facts heading. A line ending in ':' is a label and the next
// line its value. A label followed directly by another label is dropped.
func ParseCountryFacts(lines []string) []domain.CountryFact {
	facts := []domain.CountryFact{}
	start := sections.FindHeading(lines, headCountry)
	if start == sections.NotFound {
		return facts
	}
	end := len(lines)
	if stop := sections.FindHeading(lines, headInterestingFacts); stop != sections.NotFound {
		end = stop
	}

	c := sections.NewCursor(lines).Slice(start, end)
	pending := ""
	for !c.Done() {
		line, _ := c.Next()
		switch {
		case line == "":
		case strings.HasSuffix(line, ":"):
			pending = strings.TrimSpace(strings.TrimSuffix(line, ":"))
		case pending != "":
			facts = append(facts, domain.CountryFact{Label: pending, Value: line})
			pending = ""
		}
	}
	return facts
}

// ParseHolidays reads "<day(s)> <Month> <name>" lines from the national
// holidays heading to the end of the document. Day ranges are written
// "d-d" whatever dash and spacing the source used.
func ParseHolidays(lines []string) []domain.Holiday {
	holidays := []domain.Holiday{}
	from, to, ok := sections.Bounds(lines, headHolidays, "")
	if !ok {
		return holidays
	}
	for _, line := range lines[from:to] {
		line = strings.TrimSpace(line)
		if strings.Contains(line, holidaySkipMarker) {
			continue
		}
		m := holidayPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		date := m[2]
		if m[1] != "" {
			date = dayRangeSeparator.ReplaceAllString(m[1], "-") + " " + m[2]
		}
		holidays = append(holidays, domain.Holiday{Date: date, Name: strings.TrimSpace(m[3])})
	}
	return holidays
}
