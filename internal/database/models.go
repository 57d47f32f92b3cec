package database

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is an account identified solely by email (passwordless login).
type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;size:255"`
	Name        string `gorm:"size:128"`
	LastLoginAt *time.Time
	Resumes     []Resume `gorm:"constraint:OnDelete:CASCADE"`
}

// Resume is one owner-scoped resume document. Content holds the structured
// payload (resume.Content) as JSONB; TemplateID and FontFamily select the
// presentation, not the data.
type Resume struct {
	gorm.Model
	Title            string         `gorm:"size:255"`
	TemplateID       string         `gorm:"size:64"`
	FontFamily       string         `gorm:"size:64"`
	Content          datatypes.JSON `gorm:"type:jsonb"`
	UserID           uint           `gorm:"index"`
	User             User           `gorm:"constraint:OnDelete:CASCADE"`
	PdfObjectKey     string         `gorm:"size:512"`
	PreviewImageURL  string         `gorm:"size:1024"`
	PreviewObjectKey string         `gorm:"size:512"`
}
