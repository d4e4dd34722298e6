package repositories

import (
	"errors"
	"strings"

	"mentorhub_backend/internal/models"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters in user-supplied search text so
// a query for "100%" matches the literal string, not every row.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

type MentorRepository interface {
	Create(db *gorm.DB, mentor *models.Mentor) error
	FindByID(db *gorm.DB, id string) (*models.Mentor, error)
	FindByEmail(db *gorm.DB, email string) (*models.Mentor, error)
	FindAll(db *gorm.DB) ([]models.Mentor, error)
	FindActive(db *gorm.DB) ([]models.Mentor, error)
	Search(db *gorm.DB, technology, name string) ([]models.Mentor, error)
	Update(db *gorm.DB, mentor *models.Mentor) error
	Delete(db *gorm.DB, id string) error
}

type MentorRepositoryImpl struct{}

func NewMentorRepository() MentorRepository {
	return &MentorRepositoryImpl{}
}

func (r *MentorRepositoryImpl) Create(db *gorm.DB, mentor *models.Mentor) error {
	if err := db.Create(mentor).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *MentorRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Mentor, error) {
	var mentor models.Mentor
	err := db.First(&mentor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMentorNotFound
		}
		return nil, err
	}
	return &mentor, nil
}

func (r *MentorRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Mentor, error) {
	var mentor models.Mentor
	err := db.Where("email = ?", email).First(&mentor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMentorNotFound
		}
		return nil, err
	}
	return &mentor, nil
}

// FindAll returns every mentor, newest first.
func (r *MentorRepositoryImpl) FindAll(db *gorm.DB) ([]models.Mentor, error) {
	var mentors []models.Mentor
	err := db.Order("created_at DESC").Find(&mentors).Error
	return mentors, err
}

// FindActive returns only mentors with is_active = true, newest first.
func (r *MentorRepositoryImpl) FindActive(db *gorm.DB) ([]models.Mentor, error) {
	var mentors []models.Mentor
	err := db.Where("is_active = ?", true).Order("created_at DESC").Find(&mentors).Error
	return mentors, err
}

// Search filters server-side by case-insensitive substring on technologies
// and on first or last name. Both criteria combine with AND when present.
func (r *MentorRepositoryImpl) Search(db *gorm.DB, technology, name string) ([]models.Mentor, error) {
	query := db.Model(&models.Mentor{})

	if technology != "" {
		query = query.Where(
			"EXISTS (SELECT 1 FROM unnest(technologies) AS tech WHERE tech ILIKE ?)",
			"%"+escapeLike(technology)+"%",
		)
	}
	if name != "" {
		pattern := "%" + escapeLike(name) + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern)
	}

	var mentors []models.Mentor
	err := query.Order("created_at DESC").Find(&mentors).Error
	return mentors, err
}

// Update persists the full record; UpdatedAt is refreshed by gorm. An email
// change can trip the unique index the same way a create can.
func (r *MentorRepositoryImpl) Update(db *gorm.DB, mentor *models.Mentor) error {
	if err := db.Save(mentor).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// Delete removes the record permanently. No soft delete: a following
// FindByID for the same id reports ErrMentorNotFound.
func (r *MentorRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Mentor{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMentorNotFound
	}
	return nil
}
