package services

import (
	"errors"
	"time"

	"mentorhub_backend/internal/auth"
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// MenteeService mirrors MentorService for the mentee kind.
type MenteeService interface {
	Register(db *gorm.DB, req *dto.RegisterMenteeRequest) (*models.Mentee, error)
	GetByID(db *gorm.DB, id string) (*models.Mentee, error)
	List(db *gorm.DB, activeOnly bool) ([]models.Mentee, error)
	Update(db *gorm.DB, id string, req *dto.UpdateMenteeRequest) (*models.Mentee, error)
	Delete(db *gorm.DB, id string) error
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.SessionData, string, error)
}

type MenteeServiceImpl struct {
	menteeRepo    repositories.MenteeRepository
	sessionSecret string
	sessionTTL    time.Duration
}

func NewMenteeService(menteeRepo repositories.MenteeRepository, sessionSecret string, sessionTTL time.Duration) MenteeService {
	return &MenteeServiceImpl{
		menteeRepo:    menteeRepo,
		sessionSecret: sessionSecret,
		sessionTTL:    sessionTTL,
	}
}

func (s *MenteeServiceImpl) Register(db *gorm.DB, req *dto.RegisterMenteeRequest) (*models.Mentee, error) {
	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	profileImage := req.ProfileImage
	if profileImage == "" {
		profileImage = defaultAvatarURL(req.FirstName, req.LastName)
	}

	mentee := &models.Mentee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        normalizeEmail(req.Email),
		PasswordHash: passwordHash,
		Phone:        req.Phone,
		Description:  req.Description,
		LookingFor:   dedupeSkills(req.LookingFor),
		ProfileImage: profileImage,
		IsActive:     true,
	}
	mentee.ProfileCompleted = mentee.CheckProfileCompletion()

	if err := s.menteeRepo.Create(db, mentee); err != nil {
		return nil, mapMenteeError(err)
	}
	return mentee, nil
}

func (s *MenteeServiceImpl) GetByID(db *gorm.DB, id string) (*models.Mentee, error) {
	if err := parseProfileID(id, "mentee"); err != nil {
		return nil, err
	}
	mentee, err := s.menteeRepo.FindByID(db, id)
	if err != nil {
		return nil, mapMenteeError(err)
	}
	return mentee, nil
}

func (s *MenteeServiceImpl) List(db *gorm.DB, activeOnly bool) ([]models.Mentee, error) {
	var (
		mentees []models.Mentee
		err     error
	)
	if activeOnly {
		mentees, err = s.menteeRepo.FindActive(db)
	} else {
		mentees, err = s.menteeRepo.FindAll(db)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return mentees, nil
}

func (s *MenteeServiceImpl) Update(db *gorm.DB, id string, req *dto.UpdateMenteeRequest) (*models.Mentee, error) {
	if err := parseProfileID(id, "mentee"); err != nil {
		return nil, err
	}
	mentee, err := s.menteeRepo.FindByID(db, id)
	if err != nil {
		return nil, mapMenteeError(err)
	}

	if req.FirstName != nil {
		mentee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		mentee.LastName = *req.LastName
	}
	if req.Email != nil {
		mentee.Email = normalizeEmail(*req.Email)
	}
	if req.Password != nil {
		passwordHash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		mentee.PasswordHash = passwordHash
	}
	if req.Phone != nil {
		mentee.Phone = *req.Phone
	}
	if req.Description != nil {
		mentee.Description = *req.Description
	}
	if req.LookingFor != nil {
		mentee.LookingFor = dedupeSkills(req.LookingFor)
	}
	if req.ProfileImage != nil {
		mentee.ProfileImage = *req.ProfileImage
	}
	if req.IsActive != nil {
		mentee.IsActive = *req.IsActive
	}
	mentee.ProfileCompleted = mentee.CheckProfileCompletion()

	if err := s.menteeRepo.Update(db, mentee); err != nil {
		return nil, mapMenteeError(err)
	}
	return mentee, nil
}

func (s *MenteeServiceImpl) Delete(db *gorm.DB, id string) error {
	if err := parseProfileID(id, "mentee"); err != nil {
		return err
	}
	if err := s.menteeRepo.Delete(db, id); err != nil {
		return mapMenteeError(err)
	}
	return nil
}

func (s *MenteeServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.SessionData, string, error) {
	mentee, err := s.menteeRepo.FindByEmail(db, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrMenteeNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", apperrors.InternalError(err)
	}
	if !auth.CheckPasswordHash(req.Password, mentee.PasswordHash) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := auth.IssueSessionToken(s.sessionSecret, mentee.ID, string(models.KindMentee), s.sessionTTL)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	session := &dto.SessionData{
		ID:           mentee.ID,
		Kind:         string(models.KindMentee),
		FirstName:    mentee.FirstName,
		LastName:     mentee.LastName,
		ProfileImage: mentee.ProfileImage,
	}
	return session, token, nil
}

func mapMenteeError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrMenteeNotFound):
		return apperrors.ErrNotFound(err, "Mentee")
	case errors.Is(err, repositories.ErrDuplicateEmail):
		return apperrors.ErrEmailAlreadyExists(err)
	}
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	return apperrors.InternalError(err)
}
