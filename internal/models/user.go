package models

import "time"

// User is an account: a job seeker or an employer. Profile fields for
// both roles live on the same record, matching the single-collection
// account design.
type User struct {
	BaseModel
	Name         string      `gorm:"not null" json:"name"`
	Email        string      `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string      `gorm:"not null" json:"phone"`
	PasswordHash string      `gorm:"not null" json:"-"`
	Role         AccountRole `gorm:"type:varchar(20);not null" json:"role"`

	// Profile
	Address            string `gorm:"default:''" json:"address"`
	Gender             Gender `gorm:"type:varchar(20);default:'prefer_not_to_say'" json:"gender"`
	Skills             string `gorm:"default:''" json:"skills"`
	CompanyDescription string `gorm:"default:''" json:"company_description"`

	// Stored artifact paths; retrieval URLs are derived from the
	// artifact store at read time.
	PhotoPath  string `gorm:"default:''" json:"-"`
	ResumePath string `gorm:"default:''" json:"-"`

	ResetPasswordToken  string     `json:"-"`
	ResetPasswordExpire *time.Time `json:"-"`
}
