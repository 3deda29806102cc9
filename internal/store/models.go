package store

import "time"

// GORM models used for persistence. Every list or nested list field is kept
// in its own JSON text column.

// Base carries the columns shared by every record table.
type Base struct {
	ID        string    `gorm:"primaryKey;size:26"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (b *Base) base() *Base { return b }

type LocalHireInfoModel struct {
	Base
	WhoWeAre             string `gorm:"type:text"`
	FootprintSummary     string `gorm:"type:text"`
	Plants               string `gorm:"type:text"`
	ReadyMix             string `gorm:"type:text"`
	Depots               string `gorm:"type:text"`
	CultureSummary       string `gorm:"type:text"`
	Pillars              string `gorm:"type:text"`
	Innovation           string `gorm:"type:text"`
	HuaxinSpirit         string `gorm:"type:text"`
	RespectfulWorkplaces string `gorm:"type:text"`
	Introduction         string `gorm:"type:text"`
	CountryFacts         string `gorm:"type:text"`
	InterestingFacts     string `gorm:"type:text"`
	Holidays             string `gorm:"type:text"`
}

func (LocalHireInfoModel) TableName() string { return "local_hire_info" }

type OnboardingPlanModel struct {
	Base
	BuddyDetails     string `gorm:"type:text"`
	BuddyActivities  string `gorm:"type:text"`
	ChecklistSummary string `gorm:"type:text"`
	Timeline         string `gorm:"type:text"`
}

func (OnboardingPlanModel) TableName() string { return "onboarding_plan" }

type EtiquetteModel struct {
	Base
	RegionalInfo    string `gorm:"type:text"`
	FirstImpression string `gorm:"type:text"`
}

func (EtiquetteModel) TableName() string { return "etiquette" }

type WelcomeMessageModel struct {
	Base
	CeoName     string
	CeoTitle    string
	CeoMessage  string `gorm:"type:text"`
	CeoImageURL string
	HrName      string
	HrTitle     string
	HrMessage   string `gorm:"type:text"`
	HrImageURL  string
}

func (WelcomeMessageModel) TableName() string { return "welcome_messages" }

type ContactDirectoryModel struct {
	Base
	Contacts string `gorm:"type:text"`
}

func (ContactDirectoryModel) TableName() string { return "contact_directory" }
