package models

// Application is a job seeker's submission against a job posting. The
// employer reference is copied from the posting at submission time, so
// the record stays resolvable if the posting is later deleted.
type Application struct {
	BaseModel
	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
	Email     string `gorm:"not null" json:"email"`
	Phone     string `gorm:"not null" json:"phone"`
	Address   string `gorm:"not null" json:"address"`
	Skills    string `gorm:"default:''" json:"skills"`

	Resume      FileRef `gorm:"embedded;embeddedPrefix:resume_" json:"resume"`
	CoverLetter FileRef `gorm:"embedded;embeddedPrefix:cover_letter_" json:"cover_letter"`

	JobID       string `gorm:"type:uuid;not null;index" json:"job_id"`
	ApplicantID string `gorm:"type:uuid;not null;index" json:"applicant_id"`
	EmployerID  string `gorm:"type:uuid;not null;index" json:"employer_id"`

	Status ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	Job       *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Applicant *User `gorm:"foreignKey:ApplicantID" json:"-"`
	Employer  *User `gorm:"foreignKey:EmployerID" json:"-"`
}
