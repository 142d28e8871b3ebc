package dto

import "time"

// SubmitApplicationRequest carries the textual fields of the multipart
// application form; the resume and cover letter files ride alongside.
type SubmitApplicationRequest struct {
	FirstName string `form:"first_name" json:"first_name" validate:"required,min=3,max=30"`
	LastName  string `form:"last_name" json:"last_name" validate:"required,min=3,max=30"`
	Email     string `form:"email" json:"email" validate:"required,email"`
	Phone     string `form:"phone" json:"phone" validate:"required"`
	Address   string `form:"address" json:"address" validate:"required"`
	Skills    string `form:"skills" json:"skills" validate:"omitempty,max=500"`
	JobID     string `form:"job_id" json:"job_id" validate:"required,uuid"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,is-application-status"`
}

type FileRefResponse struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

// ApplicationResponse enriches the stored record with display fields
// looked up at read time (job title, counterpart name), so they reflect
// the current state of the referenced entities.
type ApplicationResponse struct {
	ID            string          `json:"id"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	Skills        string          `json:"skills"`
	Resume        FileRefResponse `json:"resume"`
	CoverLetter   FileRefResponse `json:"cover_letter"`
	JobID         string          `json:"job_id"`
	Status        string          `json:"status"`
	SubmittedAt   time.Time       `json:"submitted_at"`
	JobTitle      string          `json:"job_title"`
	ApplicantName string          `json:"applicant_name,omitempty"`
	EmployerName  string          `json:"employer_name,omitempty"`
}
