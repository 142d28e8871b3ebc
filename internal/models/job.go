package models

import "time"

// Job is an open position created by an employer.
type Job struct {
	BaseModel
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Requirement string    `gorm:"not null" json:"requirement"`
	Type        string    `gorm:"not null" json:"type"`
	Experience  string    `gorm:"not null" json:"experience"`
	Salary      int64     `gorm:"not null" json:"salary"`
	Vacancy     int       `gorm:"not null" json:"vacancy"`
	Deadline    time.Time `gorm:"not null" json:"deadline"`
	Expired     bool      `gorm:"default:false" json:"expired"`

	PostedByID string `gorm:"type:uuid;not null;index" json:"posted_by_id"`
	PostedBy   *User  `gorm:"foreignKey:PostedByID" json:"posted_by,omitempty"`
}
