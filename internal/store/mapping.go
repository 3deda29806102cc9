package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dgallion1/onboard/internal/domain"
)

// Mapping between domain records and their models. Encoding a nil list
// writes "[]"; decoding an empty or null column yields an empty list, so a
// record survives the round trip unchanged.

func MapLocalHireInfoToEntity(r domain.LocalHireInfo) (LocalHireInfoModel, error) {
	var m LocalHireInfoModel
	var err error
	about, intro := r.AboutLafarge, r.GeneralIntro
	m.WhoWeAre = about.WhoWeAre
	m.FootprintSummary = about.Footprint.Summary
	m.Depots = about.Footprint.Depots
	m.CultureSummary = about.Culture.Summary
	m.Pillars = about.Culture.Pillars
	m.Innovation = about.Culture.Innovation
	m.RespectfulWorkplaces = about.Culture.RespectfulWorkplaces
	m.Introduction = intro.Introduction

	enc := jsonEncoder{err: &err}
	m.Plants = enc.column("plants", about.Footprint.Plants)
	m.ReadyMix = enc.column("ready_mix", about.Footprint.ReadyMix)
	m.HuaxinSpirit = enc.column("huaxin_spirit", about.Culture.HuaxinSpirit)
	m.CountryFacts = enc.column("country_facts", intro.CountryFacts)
	m.InterestingFacts = enc.column("interesting_facts", intro.InterestingFacts)
	m.Holidays = enc.column("holidays", intro.Holidays)
	return m, err
}

func MapLocalHireInfoToResponse(m LocalHireInfoModel) (domain.LocalHireInfo, error) {
	r := domain.LocalHireInfo{
		AboutLafarge: domain.AboutLafarge{
			WhoWeAre: m.WhoWeAre,
			Footprint: domain.Footprint{
				Summary: m.FootprintSummary,
				Depots:  m.Depots,
			},
			Culture: domain.Culture{
				Summary:              m.CultureSummary,
				Pillars:              m.Pillars,
				Innovation:           m.Innovation,
				RespectfulWorkplaces: m.RespectfulWorkplaces,
			},
		},
		GeneralIntro: domain.GeneralIntro{Introduction: m.Introduction},
	}
	var err error
	r.AboutLafarge.Footprint.Plants = decodeList[string](&err, "plants", m.Plants)
	r.AboutLafarge.Footprint.ReadyMix = decodeList[string](&err, "ready_mix", m.ReadyMix)
	r.AboutLafarge.Culture.HuaxinSpirit = decodeList[string](&err, "huaxin_spirit", m.HuaxinSpirit)
	r.GeneralIntro.CountryFacts = decodeList[domain.CountryFact](&err, "country_facts", m.CountryFacts)
	r.GeneralIntro.InterestingFacts = decodeList[string](&err, "interesting_facts", m.InterestingFacts)
	r.GeneralIntro.Holidays = decodeList[domain.Holiday](&err, "holidays", m.Holidays)
	return r, err
}

func MapOnboardingPlanToEntity(r domain.OnboardingPlan) (OnboardingPlanModel, error) {
	r.Normalize()
	var err error
	enc := jsonEncoder{err: &err}
	m := OnboardingPlanModel{
		BuddyDetails:     r.Buddy.Details,
		ChecklistSummary: r.Checklist.Summary,
	}
	m.BuddyActivities = enc.column("buddy_activities", r.Buddy.Activities)
	m.Timeline = enc.column("timeline", r.Checklist.Timeline)
	return m, err
}

func MapOnboardingPlanToResponse(m OnboardingPlanModel) (domain.OnboardingPlan, error) {
	var err error
	r := domain.OnboardingPlan{
		Buddy: domain.Buddy{
			Details:    m.BuddyDetails,
			Activities: decodeList[string](&err, "buddy_activities", m.BuddyActivities),
		},
		Checklist: domain.Checklist{
			Summary:  m.ChecklistSummary,
			Timeline: decodeList[domain.TimelineItem](&err, "timeline", m.Timeline),
		},
	}
	r.Normalize()
	return r, err
}

func MapEtiquetteToEntity(r domain.Etiquette) (EtiquetteModel, error) {
	r.Normalize()
	var err error
	enc := jsonEncoder{err: &err}
	m := EtiquetteModel{
		RegionalInfo:    enc.column("regional_info", r.RegionalInfo),
		FirstImpression: enc.column("first_impression", r.FirstImpression),
	}
	return m, err
}

func MapEtiquetteToResponse(m EtiquetteModel) (domain.Etiquette, error) {
	var err error
	r := domain.Etiquette{
		RegionalInfo:    decodeList[domain.RegionalInfo](&err, "regional_info", m.RegionalInfo),
		FirstImpression: decodeList[domain.TitledText](&err, "first_impression", m.FirstImpression),
	}
	r.Normalize()
	return r, err
}

func MapWelcomeMessageToEntity(r domain.WelcomeMessage) (WelcomeMessageModel, error) {
	return WelcomeMessageModel{
		CeoName:     r.Ceo.Name,
		CeoTitle:    r.Ceo.Title,
		CeoMessage:  r.Ceo.Message,
		CeoImageURL: r.Ceo.ImageURL,
		HrName:      r.Hr.Name,
		HrTitle:     r.Hr.Title,
		HrMessage:   r.Hr.Message,
		HrImageURL:  r.Hr.ImageURL,
	}, nil
}

func MapWelcomeMessageToResponse(m WelcomeMessageModel) (domain.WelcomeMessage, error) {
	return domain.WelcomeMessage{
		Ceo: domain.Person{Name: m.CeoName, Title: m.CeoTitle, Message: m.CeoMessage, ImageURL: m.CeoImageURL},
		Hr:  domain.Person{Name: m.HrName, Title: m.HrTitle, Message: m.HrMessage, ImageURL: m.HrImageURL},
	}, nil
}

func MapContactDirectoryToEntity(r domain.ContactDirectory) (ContactDirectoryModel, error) {
	var err error
	enc := jsonEncoder{err: &err}
	return ContactDirectoryModel{Contacts: enc.column("contacts", r.Contacts)}, err
}

func MapContactDirectoryToResponse(m ContactDirectoryModel) (domain.ContactDirectory, error) {
	var err error
	return domain.ContactDirectory{
		Contacts: decodeList[domain.Contact](&err, "contacts", m.Contacts),
	}, err
}

// jsonEncoder keeps the first encoding error so a mapping function can
// encode every column before checking.
type jsonEncoder struct {
	err *error
}

func (e jsonEncoder) column(name string, v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		if *e.err == nil {
			*e.err = fmt.Errorf("encode %s: %w", name, err)
		}
		return "[]"
	}
	if string(b) == "null" {
		return "[]"
	}
	return string(b)
}

func decodeList[T any](errp *error, name, column string) []T {
	column = strings.TrimSpace(column)
	if column == "" || column == "null" {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal([]byte(column), &out); err != nil {
		if *errp == nil {
			*errp = fmt.Errorf("decode %s: %w", name, err)
		}
		return []T{}
	}
	if out == nil {
		return []T{}
	}
	return out
}
