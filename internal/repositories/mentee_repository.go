package repositories

import (
	"errors"

	"mentorhub_backend/internal/models"

	"gorm.io/gorm"
)

type MenteeRepository interface {
	Create(db *gorm.DB, mentee *models.Mentee) error
	FindByID(db *gorm.DB, id string) (*models.Mentee, error)
	FindByEmail(db *gorm.DB, email string) (*models.Mentee, error)
	FindAll(db *gorm.DB) ([]models.Mentee, error)
	FindActive(db *gorm.DB) ([]models.Mentee, error)
	Update(db *gorm.DB, mentee *models.Mentee) error
	Delete(db *gorm.DB, id string) error
}

type MenteeRepositoryImpl struct{}

func NewMenteeRepository() MenteeRepository {
	return &MenteeRepositoryImpl{}
}

func (r *MenteeRepositoryImpl) Create(db *gorm.DB, mentee *models.Mentee) error {
	if err := db.Create(mentee).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *MenteeRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Mentee, error) {
	var mentee models.Mentee
	err := db.First(&mentee, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenteeNotFound
		}
		return nil, err
	}
	return &mentee, nil
}

func (r *MenteeRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Mentee, error) {
	var mentee models.Mentee
	err := db.Where("email = ?", email).First(&mentee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenteeNotFound
		}
		return nil, err
	}
	return &mentee, nil
}

func (r *MenteeRepositoryImpl) FindAll(db *gorm.DB) ([]models.Mentee, error) {
	var mentees []models.Mentee
	err := db.Order("created_at DESC").Find(&mentees).Error
	return mentees, err
}

func (r *MenteeRepositoryImpl) FindActive(db *gorm.DB) ([]models.Mentee, error) {
	var mentees []models.Mentee
	err := db.Where("is_active = ?", true).Order("created_at DESC").Find(&mentees).Error
	return mentees, err
}

func (r *MenteeRepositoryImpl) Update(db *gorm.DB, mentee *models.Mentee) error {
	if err := db.Save(mentee).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *MenteeRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Mentee{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMenteeNotFound
	}
	return nil
}
