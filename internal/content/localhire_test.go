package content

import (
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/dgallion1/onboard/internal/domain"
)

func testParser() *Parser {
	return NewParser(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

const localHireDoc = `WHO WE ARE
We are a leading building solutions company.
OUR FOOTPRINT
We operate across the country.
PLANTS
• Ewekoro
• Mfamosing
  Cross River State
READY MIX
- Lagos
- Abuja
DEPOTS
Twelve depots nationwide.
OUR CULTURE
Safety first.
OUR PILLARS
People, planet, performance.
INNOVATION
We invest in low-carbon products.
HUAXIN SPIRIT
• Integrity
• Excellence
RESPECTFUL WORKPLACES
Zero tolerance for harassment.
GENERAL INTRODUCTION
Nigeria is the most populous country in Africa.
Country:
Nigeria
Capital:
Abuja
Currency:
Naira
Interesting Facts About Nigeria
• Over 500 languages are spoken.
• Nollywood is the second largest film industry.
National Holidays
1 January New Year's Day
1 May Workers' Day
Visiting Nigeria in December is popular
25-26 December Christmas and Boxing Day
`

func TestParseLocalHireInfo_FullDocument(t *testing.T) {
	info := testParser().ParseLocalHireInfo(localHireDoc)

	about := info.AboutLafarge
	if about.WhoWeAre != "We are a leading building solutions company." {
		t.Errorf("unexpected WhoWeAre %q", about.WhoWeAre)
	}
	if about.Footprint.Summary != "We operate across the country." {
		t.Errorf("unexpected footprint summary %q", about.Footprint.Summary)
	}
	if want := []string{"Ewekoro", "Mfamosing Cross River State"}; !reflect.DeepEqual(about.Footprint.Plants, want) {
		t.Errorf("expected plants %q, got %q", want, about.Footprint.Plants)
	}
	if want := []string{"Lagos", "Abuja"}; !reflect.DeepEqual(about.Footprint.ReadyMix, want) {
		t.Errorf("expected ready mix %q, got %q", want, about.Footprint.ReadyMix)
	}
	if about.Footprint.Depots != "Twelve depots nationwide." {
		t.Errorf("unexpected depots %q", about.Footprint.Depots)
	}
	if about.Culture.Pillars != "People, planet, performance." {
		t.Errorf("unexpected pillars %q", about.Culture.Pillars)
	}
	if about.Culture.Innovation != "We invest in low-carbon products." {
		t.Errorf("unexpected innovation %q", about.Culture.Innovation)
	}
	if want := []string{"Integrity", "Excellence"}; !reflect.DeepEqual(about.Culture.HuaxinSpirit, want) {
		t.Errorf("expected spirit %q, got %q", want, about.Culture.HuaxinSpirit)
	}
	if about.Culture.RespectfulWorkplaces != "Zero tolerance for harassment." {
		t.Errorf("unexpected respectful workplaces %q", about.Culture.RespectfulWorkplaces)
	}

	intro := info.GeneralIntro
	if intro.Introduction != "Nigeria is the most populous country in Africa." {
		t.Errorf("unexpected introduction %q", intro.Introduction)
	}
	wantFacts := []domain.CountryFact{
		{Label: "Country", Value: "Nigeria"},
		{Label: "Capital", Value: "Abuja"},
		{Label: "Currency", Value: "Naira"},
	}
	if !reflect.DeepEqual(intro.CountryFacts, wantFacts) {
		t.Errorf("expected facts %+v, got %+v", wantFacts, intro.CountryFacts)
	}
	if len(intro.InterestingFacts) != 2 {
		t.Errorf("expected 2 interesting facts, got %q", intro.InterestingFacts)
	}
	wantHolidays := []domain.Holiday{
		{Date: "1 January", Name: "New Year's Day"},
		{Date: "1 May", Name: "Workers' Day"},
		{Date: "25-26 December", Name: "Christmas and Boxing Day"},
	}
	if !reflect.DeepEqual(intro.Holidays, wantHolidays) {
		t.Errorf("expected holidays %+v, got %+v", wantHolidays, intro.Holidays)
	}
}

func TestParseLocalHireInfo_NoAnchorsYieldsEmptyLists(t *testing.T) {
	info := testParser().ParseLocalHireInfo("Placeholder: could not read file.docx")

	if info.AboutLafarge.WhoWeAre != "" || info.GeneralIntro.Introduction != "" {
		t.Errorf("expected empty text fields, got %+v", info)
	}
	lists := map[string]int{
		"plants":           len(info.AboutLafarge.Footprint.Plants),
		"readyMix":         len(info.AboutLafarge.Footprint.ReadyMix),
		"huaxinSpirit":     len(info.AboutLafarge.Culture.HuaxinSpirit),
		"countryFacts":     len(info.GeneralIntro.CountryFacts),
		"interestingFacts": len(info.GeneralIntro.InterestingFacts),
		"holidays":         len(info.GeneralIntro.Holidays),
	}
	for name, n := range lists {
		if n != 0 {
			t.Errorf("%s: expected empty list, got %d items", name, n)
		}
	}
	if info.AboutLafarge.Footprint.Plants == nil || info.GeneralIntro.Holidays == nil {
		t.Error("expected non-nil lists")
	}
}

func TestParseCountryFacts_DanglingLabelDropped(t *testing.T) {
	lines := []string{"Country:", "City:", "Lagos", "Interesting Facts About Nigeria"}
	got := ParseCountryFacts(lines)
	want := []domain.CountryFact{{Label: "City", Value: "Lagos"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestParseCountryFacts_StopsAtInterestingFacts(t *testing.T) {
	lines := []string{"Country:", "Nigeria", "Interesting Facts About Nigeria", "Fun:", "Yes"}
	got := ParseCountryFacts(lines)
	if len(got) != 1 || got[0].Value != "Nigeria" {
		t.Errorf("expected only the country fact, got %+v", got)
	}
}

func TestParseHolidays(t *testing.T) {
	lines := []string{"National Holidays", "1 January New Year's Day", "25-26 December Christmas", "Visiting Nigeria tips", "something"}
	got := ParseHolidays(lines)
	want := []domain.Holiday{
		{Date: "1 January", Name: "New Year's Day"},
		{Date: "25-26 December", Name: "Christmas"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestParseHolidays_NormalizesDayRange(t *testing.T) {
	lines := []string{"National Holidays", "25 – 26 December Christmas and Boxing Day", "1 - 2 October Independence"}
	got := ParseHolidays(lines)
	want := []domain.Holiday{
		{Date: "25-26 December", Name: "Christmas and Boxing Day"},
		{Date: "1-2 October", Name: "Independence"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestParseHolidays_DaylessMonthAndMissingHeading(t *testing.T) {
	got := ParseHolidays([]string{"National Holidays", "June Democracy Day"})
	if len(got) != 1 || got[0].Date != "June" || got[0].Name != "Democracy Day" {
		t.Errorf("unexpected holidays %+v", got)
	}
	if got := ParseHolidays([]string{"1 January New Year"}); got == nil || len(got) != 0 {
		t.Errorf("expected empty list without heading, got %+v", got)
	}
}

func TestParsers_NeverPanicOnArbitraryInput(t *testing.T) {
	inputs := []string{"", "\x00\xff\xfe", strings.Repeat("•\n", 50), "NEW HIRE CHECKLIST\nDay One:", "Country:\n:\n:"}
	p := testParser()
	for _, in := range inputs {
		p.ParseLocalHireInfo(in)
		p.ParseOnboardingPlan(in)
		p.ParseEtiquette(in)
		p.ParseWelcomeMessage(in, in)
	}
}
