package content

import (
	"reflect"
	"testing"

	"github.com/dgallion1/onboard/internal/domain"
)

const etiquetteDoc = `REGIONAL INFORMATION
Northern Nigeria
• Greetings: Use both hands when greeting elders.
Handshakes may be brief.
• Dress: Conservative clothing is expected.
South West
• Food: Expect to be offered food
at every visit.
FIRST IMPRESSIONS
Punctuality: Arrive on time for meetings.
Titles:
Address people by their titles.
Dress well
First impressions last.
`

func TestParseEtiquette_FullDocument(t *testing.T) {
	e := testParser().ParseEtiquette(etiquetteDoc)

	wantRegional := []domain.RegionalInfo{
		{
			Title: "Northern Nigeria",
			Regions: []domain.TitledText{
				{Title: "Greetings", Content: "Use both hands when greeting elders. Handshakes may be brief."},
				{Title: "Dress", Content: "Conservative clothing is expected."},
			},
		},
		{
			Title:   "South West",
			Regions: []domain.TitledText{{Title: "Food", Content: "Expect to be offered food at every visit."}},
		},
	}
	if !reflect.DeepEqual(e.RegionalInfo, wantRegional) {
		t.Errorf("expected regional %+v, got %+v", wantRegional, e.RegionalInfo)
	}

	wantFirst := []domain.TitledText{
		{Title: "Punctuality", Content: "Arrive on time for meetings."},
		{Title: "Titles", Content: "Address people by their titles. Dress well First impressions last."},
	}
	if !reflect.DeepEqual(e.FirstImpression, wantFirst) {
		t.Errorf("expected first impressions %+v, got %+v", wantFirst, e.FirstImpression)
	}
}

func TestParseTitledEntries_TitleOnlyLineOpensEntry(t *testing.T) {
	got := ParseTitledEntries([]string{"Smile", "It helps."})
	want := []domain.TitledText{{Title: "Smile", Content: "It helps."}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestParseRegionalInfo_EntryWithoutGroup(t *testing.T) {
	got := ParseRegionalInfo([]string{"• Lagos: Busy traffic."})
	if len(got) != 1 || got[0].Title != "" || len(got[0].Regions) != 1 {
		t.Errorf("expected one untitled group, got %+v", got)
	}
}

func TestParseEtiquette_MissingHeadings(t *testing.T) {
	e := testParser().ParseEtiquette("nothing to see")
	if e.RegionalInfo == nil || e.FirstImpression == nil {
		t.Fatal("expected non-nil lists")
	}
	if len(e.RegionalInfo) != 0 || len(e.FirstImpression) != 0 {
		t.Errorf("expected empty etiquette, got %+v", e)
	}
}
