package dto

import "time"

type UserResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Role               string    `json:"role"`
	Address            string    `json:"address"`
	Gender             string    `json:"gender"`
	Skills             string    `json:"skills"`
	CompanyDescription string    `json:"company_description"`
	PhotoURL           string    `json:"photo_url,omitempty"`
	ResumeURL          string    `json:"resume_url,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// UpdateUserRequest carries the textual profile fields of a multipart
// profile update; photo/resume files ride alongside in the form.
type UpdateUserRequest struct {
	Email              string `form:"email" json:"email" validate:"omitempty,email"`
	Phone              string `form:"phone" json:"phone" validate:"omitempty"`
	Address            string `form:"address" json:"address" validate:"omitempty,max=200"`
	Gender             string `form:"gender" json:"gender" validate:"omitempty,is-gender"`
	Skills             string `form:"skills" json:"skills" validate:"omitempty,max=500"`
	CompanyDescription string `form:"company_description" json:"company_description" validate:"omitempty,max=1000"`
}
