package dto

// WorkPackageInput mirrors one build-stage block of a project.
type WorkPackageInput struct {
	Status     *string `json:"status"`
	Start      *Date   `json:"start"`
	Finish     *Date   `json:"finish"`
	Contractor *string `json:"contractor"`
}

type CreateProjectRequest struct {
	Number      *string `json:"number"`
	Name        string  `json:"name" binding:"required"`
	Status      string  `json:"status" binding:"omitempty,oneof=tender precon construction aftercare"`
	Description *string `json:"description"`
	Value       *string `json:"value"`
	Retention   *string `json:"retention"`
	Latitude    *string `json:"latitude"`
	Longitude   *string `json:"longitude"`
	Postcode    *string `json:"postcode"`

	StartOnSite            *Date `json:"startOnSite"`
	ContractCompletion     *Date `json:"contractCompletion"`
	ConstructionCompletion *Date `json:"constructionCompletion"`

	Foundations *WorkPackageInput `json:"foundations"`
	Frame       *WorkPackageInput `json:"frame"`
	Envelope    *WorkPackageInput `json:"envelope"`
	Internals   *WorkPackageInput `json:"internals"`
	MEP         *WorkPackageInput `json:"mep"`
}

type UpdateProjectRequest struct {
	Number      *string `json:"number"`
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Status      *string `json:"status" binding:"omitempty,oneof=tender precon construction aftercare"`
	Description *string `json:"description"`
	Value       *string `json:"value"`
	Retention   *string `json:"retention"`
	Latitude    *string `json:"latitude"`
	Longitude   *string `json:"longitude"`
	Postcode    *string `json:"postcode"`

	StartOnSite            *Date `json:"startOnSite"`
	ContractCompletion     *Date `json:"contractCompletion"`
	ConstructionCompletion *Date `json:"constructionCompletion"`

	Foundations *WorkPackageInput `json:"foundations"`
	Frame       *WorkPackageInput `json:"frame"`
	Envelope    *WorkPackageInput `json:"envelope"`
	Internals   *WorkPackageInput `json:"internals"`
	MEP         *WorkPackageInput `json:"mep"`
}
