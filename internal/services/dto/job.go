package dto

import "time"

type CreateJobRequest struct {
	Title       string    `json:"title" validate:"required,min=3,max=30"`
	Description string    `json:"description" validate:"required,min=30,max=500"`
	Requirement string    `json:"requirement" validate:"required"`
	Type        string    `json:"type" validate:"required"`
	Experience  string    `json:"experience" validate:"required"`
	Salary      int64     `json:"salary" validate:"required,min=1"`
	Vacancy     int       `json:"vacancy" validate:"required,min=1"`
	Deadline    time.Time `json:"deadline" validate:"required"`
}

type UpdateJobRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=3,max=30"`
	Description *string    `json:"description" validate:"omitempty,min=30,max=500"`
	Requirement *string    `json:"requirement" validate:"omitempty"`
	Type        *string    `json:"type" validate:"omitempty"`
	Experience  *string    `json:"experience" validate:"omitempty"`
	Salary      *int64     `json:"salary" validate:"omitempty,min=1"`
	Vacancy     *int       `json:"vacancy" validate:"omitempty,min=1"`
	Deadline    *time.Time `json:"deadline" validate:"omitempty"`
	Expired     *bool      `json:"expired" validate:"omitempty"`
}

// JobFilter narrows the public job listing. Each field is optional and
// the filters compose conjunctively.
type JobFilter struct {
	Type       string `form:"type" json:"type"`
	Experience string `form:"experience" json:"experience"`
	Title      string `form:"title" json:"title"`     // case-insensitive substring
	Address    string `form:"address" json:"address"` // case-insensitive substring on the poster's address
}

// PosterInfo is the denormalized display block for the posting employer,
// resolved at read time.
type PosterInfo struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	PhotoURL           string `json:"photo_url,omitempty"`
	CompanyDescription string `json:"company_description"`
	Address            string `json:"address"`
}

type JobResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Requirement string     `json:"requirement"`
	Type        string     `json:"type"`
	Experience  string     `json:"experience"`
	Salary      int64      `json:"salary"`
	Vacancy     int        `json:"vacancy"`
	Deadline    time.Time  `json:"deadline"`
	Expired     bool       `json:"expired"`
	PostedOn    time.Time  `json:"posted_on"`
	PostedBy    PosterInfo `json:"posted_by"`
}
