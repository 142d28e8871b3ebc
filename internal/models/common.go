package models

import (
	"time"
)

type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// FileRef is an opaque stored-artifact reference: the storage identifier
// plus the retrieval URL handed back by the artifact store.
type FileRef struct {
	PublicID string `gorm:"column:public_id" json:"public_id"`
	URL      string `gorm:"column:url" json:"url"`
}

func (f FileRef) IsZero() bool {
	return f.PublicID == "" && f.URL == ""
}
