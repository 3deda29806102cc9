package domain

// Normalize replaces every nil list in the record with an empty one so the
// JSON form never carries null for a list.
func (l *LocalHireInfo) Normalize() {
	l.AboutLafarge.Footprint.Plants = nonNil(l.AboutLafarge.Footprint.Plants)
	l.AboutLafarge.Footprint.ReadyMix = nonNil(l.AboutLafarge.Footprint.ReadyMix)
	l.AboutLafarge.Culture.HuaxinSpirit = nonNil(l.AboutLafarge.Culture.HuaxinSpirit)
	l.GeneralIntro.CountryFacts = nonNil(l.GeneralIntro.CountryFacts)
	l.GeneralIntro.InterestingFacts = nonNil(l.GeneralIntro.InterestingFacts)
	l.GeneralIntro.Holidays = nonNil(l.GeneralIntro.Holidays)
}

func (p *OnboardingPlan) Normalize() {
	p.Buddy.Activities = nonNil(p.Buddy.Activities)
	p.Checklist.Timeline = nonNil(p.Checklist.Timeline)
	for i := range p.Checklist.Timeline {
		p.Checklist.Timeline[i].Tasks = nonNil(p.Checklist.Timeline[i].Tasks)
		p.Checklist.Timeline[i].SubTasks = nonNil(p.Checklist.Timeline[i].SubTasks)
	}
}

func (e *Etiquette) Normalize() {
	e.RegionalInfo = nonNil(e.RegionalInfo)
	e.FirstImpression = nonNil(e.FirstImpression)
	for i := range e.RegionalInfo {
		e.RegionalInfo[i].Regions = nonNil(e.RegionalInfo[i].Regions)
	}
}

func (d *ContactDirectory) Normalize() {
	d.Contacts = nonNil(d.Contacts)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
