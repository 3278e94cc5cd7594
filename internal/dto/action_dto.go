package dto

type CreateActionRequest struct {
	Description string `json:"description" binding:"required"`
	Discipline  string `json:"discipline" binding:"required"`
	Phase       string `json:"phase"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	AssigneeID  *uint  `json:"assigneeId"`
	ProjectID   *uint  `json:"projectId"`
	DueDate     *Date  `json:"dueDate"`
}

// UpdateActionRequest is a partial patch: nil fields are left
// untouched. A JSON null is indistinguishable from an absent field
// here, so a PATCH cannot clear assigneeId or projectId; those
// references are only cleared when the referenced user or project is
// deleted.
type UpdateActionRequest struct {
	Description *string `json:"description" binding:"omitempty,min=1"`
	Discipline  *string `json:"discipline" binding:"omitempty,min=1"`
	Phase       *string `json:"phase"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	AssigneeID  *uint   `json:"assigneeId"`
	ProjectID   *uint   `json:"projectId"`
	DueDate     *Date   `json:"dueDate"`
}

// ActionFilter carries the query parameters of GET /api/actions.
// Unknown query parameters are simply ignored by the binding.
type ActionFilter struct {
	Discipline string `form:"discipline"`
	Phase      string `form:"phase"`
	Status     string `form:"status"`
	AssigneeID *uint  `form:"assigneeId"`
	Assignee   string `form:"assignee"`
	ProjectID  *uint  `form:"projectId"`
	Search     string `form:"search"`
}
