package dto

type CreateUserRequest struct {
	Username   string  `json:"username" binding:"required,min=3,max=50"`
	Password   string  `json:"password" binding:"required,min=8"`
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Discipline *string `json:"discipline"`
}

type UpdateUserRequest struct {
	Username   *string `json:"username" binding:"omitempty,min=3,max=50"`
	Password   *string `json:"password" binding:"omitempty,min=8"`
	Name       *string `json:"name" binding:"omitempty,min=1"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Discipline *string `json:"discipline"`
}
