// Package domain holds the structured onboarding records produced by the
// section parsers and served by the API.
package domain

// LocalHireInfo describes the company and the host country for new local hires.
type LocalHireInfo struct {
	AboutLafarge AboutLafarge `json:"aboutLafarge"`
	GeneralIntro GeneralIntro `json:"generalIntro"`
}

type AboutLafarge struct {
	WhoWeAre  string    `json:"whoWeAre"`
	Footprint Footprint `json:"footprint"`
	Culture   Culture   `json:"culture"`
}

type Footprint struct {
	Summary  string   `json:"summary"`
	Plants   []string `json:"plants"`
	ReadyMix []string `json:"readyMix"`
	Depots   string   `json:"depots"`
}

type Culture struct {
	Summary              string   `json:"summary"`
	Pillars              string   `json:"pillars"`
	Innovation           string   `json:"innovation"`
	HuaxinSpirit         []string `json:"huaxinSpirit"`
	RespectfulWorkplaces string   `json:"respectfulWorkplaces"`
}

type GeneralIntro struct {
	Introduction     string        `json:"introduction"`
	CountryFacts     []CountryFact `json:"countryFacts"`
	InterestingFacts []string      `json:"interestingFacts"`
	Holidays         []Holiday     `json:"holidays"`
}

// CountryFact is one labeled value, e.g. {"Capital", "Abuja"}.
type CountryFact struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Holiday is a public holiday; Date keeps the source form ("25-26 December").
type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// OnboardingPlan is the buddy programme plus the new hire checklist.
type OnboardingPlan struct {
	Buddy     Buddy     `json:"buddy"`
	Checklist Checklist `json:"checklist"`
}

type Buddy struct {
	Details    string   `json:"details"`
	Activities []string `json:"activities"`
}

type Checklist struct {
	Summary  string         `json:"summary"`
	Timeline []TimelineItem `json:"timeline"`
}

// TimelineItem groups the tasks due within one period. Period always carries
// a trailing colon ("Day One:").
type TimelineItem struct {
	Period   string   `json:"period"`
	Tasks    []string `json:"tasks"`
	SubTasks []string `json:"subTasks"`
}

// Etiquette is regional guidance plus first-impression tips.
type Etiquette struct {
	RegionalInfo    []RegionalInfo `json:"regionalInfo"`
	FirstImpression []TitledText   `json:"firstImpression"`
}

type RegionalInfo struct {
	Title   string       `json:"title"`
	Regions []TitledText `json:"regions"`
}

type TitledText struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// WelcomeMessage holds the CEO and HR welcome letters.
type WelcomeMessage struct {
	Ceo Person `json:"ceo"`
	Hr  Person `json:"hr"`
}

// Person is a signed message: the signature block supplies Name and Title.
type Person struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl"`
}

// ContactDirectory is the imported list of onboarding contacts.
type ContactDirectory struct {
	Contacts []Contact `json:"contacts"`
}

type Contact struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
}
