package models

import (
	"strings"

	"github.com/lib/pq"
)

// Mentee is a user looking for mentoring. Shares the common profile shape
// with Mentor but carries the skills sought instead of the skills offered.
type Mentee struct {
	BaseModel
	FirstName        string         `gorm:"not null" json:"firstName"`
	LastName         string         `gorm:"not null" json:"lastName"`
	Email            string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash     string         `gorm:"not null" json:"-"`
	Phone            string         `gorm:"not null" json:"phone"`
	Description      string         `json:"description"`
	LookingFor       pq.StringArray `gorm:"type:text[]" json:"lookingFor"`
	ProfileImage     string         `json:"profileImage"`
	ProfileCompleted bool           `gorm:"default:false" json:"profileCompleted"`
	IsActive         bool           `gorm:"default:true" json:"isActive"`
}

// FullName joins first and last name for display.
func (m *Mentee) FullName() string {
	return m.FirstName + " " + m.LastName
}

// CheckProfileCompletion reports whether all required profile fields are set.
func (m *Mentee) CheckProfileCompletion() bool {
	required := []string{m.FirstName, m.LastName, m.Email, m.Phone}
	for _, f := range required {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return len(m.LookingFor) > 0
}
