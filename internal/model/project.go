package model

import "time"

// Project statuses accepted by the table-level CHECK constraint.
const (
	ProjectStatusTender       = "tender"
	ProjectStatusPrecon       = "precon"
	ProjectStatusConstruction = "construction"
	ProjectStatusAftercare    = "aftercare"
)

// WorkPackage is one of the five build stages tracked per project
// (foundations, frame, envelope, internals, MEP).
type WorkPackage struct {
	Status     *string    `gorm:"size:50" json:"status,omitempty"`
	Start      *time.Time `json:"start,omitempty"`
	Finish     *time.Time `json:"finish,omitempty"`
	Contractor *string    `gorm:"size:100" json:"contractor,omitempty"`
}

type Project struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Number      *string `gorm:"size:50" json:"number,omitempty"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Status      string  `gorm:"size:20;not null;default:tender;check:chk_projects_status,status IN ('tender','precon','construction','aftercare')" json:"status"`
	Description *string `gorm:"type:text" json:"description,omitempty"`

	// Free-text currency values, kept as entered
	Value     *string `gorm:"size:50" json:"value,omitempty"`
	Retention *string `gorm:"size:50" json:"retention,omitempty"`

	Latitude  *string `gorm:"size:50" json:"latitude,omitempty"`
	Longitude *string `gorm:"size:50" json:"longitude,omitempty"`
	Postcode  *string `gorm:"size:20" json:"postcode,omitempty"`

	StartOnSite            *time.Time `json:"startOnSite,omitempty"`
	ContractCompletion     *time.Time `json:"contractCompletion,omitempty"`
	ConstructionCompletion *time.Time `json:"constructionCompletion,omitempty"`

	Foundations WorkPackage `gorm:"embedded;embeddedPrefix:foundations_" json:"foundations"`
	Frame       WorkPackage `gorm:"embedded;embeddedPrefix:frame_" json:"frame"`
	Envelope    WorkPackage `gorm:"embedded;embeddedPrefix:envelope_" json:"envelope"`
	Internals   WorkPackage `gorm:"embedded;embeddedPrefix:internals_" json:"internals"`
	MEP         WorkPackage `gorm:"embedded;embeddedPrefix:mep_" json:"mep"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
