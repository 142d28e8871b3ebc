package models

import (
	"time"

	"worknest_backend/internal/admission"
)

// Interview is tied one-to-one with an accepted application. The room ID
// is generated on the first schedule call and never changes afterwards.
type Interview struct {
	BaseModel
	ApplicationID string `gorm:"type:uuid;not null;uniqueIndex" json:"application_id"`
	EmployerID    string `gorm:"type:uuid;not null;index" json:"employer_id"`

	// Day-level date plus 24-hour HH:MM wall time. Combined through one
	// helper everywhere, so there is a single notion of the start instant.
	InterviewDate time.Time `gorm:"type:date;not null" json:"interview_date"`
	InterviewTime string    `gorm:"type:varchar(5);not null" json:"interview_time"`

	RoomID string          `gorm:"not null" json:"room_id"`
	Status InterviewStatus `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`

	Application *Application `gorm:"foreignKey:ApplicationID" json:"-"`
}

// ScheduledStart combines the stored date and wall time into the start
// instant of the interview.
func (i *Interview) ScheduledStart() (time.Time, error) {
	return admission.ScheduledStart(i.InterviewDate, i.InterviewTime)
}
