package model

import "time"

// Action is a follow-up task tied to a project and an assignee. The
// discipline/phase/status/priority fields are deliberately free text;
// the client constrains them, the schema does not.
type Action struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Description string `gorm:"type:text;not null" json:"description"`
	Discipline  string `gorm:"size:100;not null" json:"discipline"`
	Phase       string `gorm:"size:50;not null;default:construction" json:"phase"`
	Status      string `gorm:"size:50;not null;default:open" json:"status"`
	Priority    string `gorm:"size:50;not null;default:medium" json:"priority"`

	AssigneeID *uint    `json:"assigneeId"`
	Assignee   *User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"assignee,omitempty"`
	ProjectID  *uint    `json:"projectId"`
	Project    *Project `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"project,omitempty"`

	DueDate   *time.Time `json:"dueDate,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
