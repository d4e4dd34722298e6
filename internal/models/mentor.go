package models

import (
	"strings"

	"github.com/lib/pq"
)

// Mentor is a user offering mentoring. Email is stored lower-cased and the
// unique index is the single authority on duplicates: concurrent signups with
// the same address race on the constraint, not on application code.
type Mentor struct {
	BaseModel
	FirstName         string         `gorm:"not null" json:"firstName"`
	LastName          string         `gorm:"not null" json:"lastName"`
	Email             string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string         `gorm:"not null" json:"-"`
	Phone             string         `gorm:"not null" json:"phone"`
	Description       string         `json:"description"`
	Technologies      pq.StringArray `gorm:"type:text[]" json:"technologies"`
	YearsOfExperience int            `json:"yearsOfExperience"`
	Availability      Availability   `gorm:"type:varchar(20);default:'available'" json:"availability"`
	LinkedinURL       string         `json:"linkedinUrl,omitempty"`
	GithubURL         string         `json:"githubUrl,omitempty"`
	WebsiteURL        string         `json:"websiteUrl,omitempty"`
	TwitterURL        string         `json:"twitterUrl,omitempty"`
	ProfileImage      string         `json:"profileImage"`
	ProfileCompleted  bool           `gorm:"default:false" json:"profileCompleted"`
	IsActive          bool           `gorm:"default:true" json:"isActive"`
}

// FullName joins first and last name the way the directory displays it.
func (m *Mentor) FullName() string {
	return m.FirstName + " " + m.LastName
}

// CheckProfileCompletion reports whether all required profile fields are set.
func (m *Mentor) CheckProfileCompletion() bool {
	required := []string{m.FirstName, m.LastName, m.Email, m.Phone}
	for _, f := range required {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return len(m.Technologies) > 0
}
