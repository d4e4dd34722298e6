package services

import (
	"errors"
	"time"

	"mentorhub_backend/internal/auth"
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/search"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// MentorService is the seam between HTTP and storage for the mentor kind:
// request shaping in, records out, repository errors translated to the
// boundary taxonomy. No business logic lives below it and none above it.
type MentorService interface {
	Register(db *gorm.DB, req *dto.RegisterMentorRequest) (*models.Mentor, error)
	GetByID(db *gorm.DB, id string) (*models.Mentor, error)
	List(db *gorm.DB, activeOnly bool) ([]models.Mentor, error)
	Search(db *gorm.DB, technology, name string) ([]models.Mentor, error)
	FilterDirectory(db *gorm.DB, query search.Query) ([]models.Mentor, error)
	Update(db *gorm.DB, id string, req *dto.UpdateMentorRequest) (*models.Mentor, error)
	Delete(db *gorm.DB, id string) error
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.SessionData, string, error)
}

type MentorServiceImpl struct {
	mentorRepo    repositories.MentorRepository
	sessionSecret string
	sessionTTL    time.Duration
}

func NewMentorService(mentorRepo repositories.MentorRepository, sessionSecret string, sessionTTL time.Duration) MentorService {
	return &MentorServiceImpl{
		mentorRepo:    mentorRepo,
		sessionSecret: sessionSecret,
		sessionTTL:    sessionTTL,
	}
}

func (s *MentorServiceImpl) Register(db *gorm.DB, req *dto.RegisterMentorRequest) (*models.Mentor, error) {
	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	availability := models.Availability(req.Availability)
	if availability == "" {
		availability = models.AvailabilityAvailable
	}

	profileImage := req.ProfileImage
	if profileImage == "" {
		profileImage = defaultAvatarURL(req.FirstName, req.LastName)
	}

	mentor := &models.Mentor{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             normalizeEmail(req.Email),
		PasswordHash:      passwordHash,
		Phone:             req.Phone,
		Description:       req.Description,
		Technologies:      dedupeSkills(req.Technologies),
		YearsOfExperience: req.YearsOfExperience.Int(),
		Availability:      availability,
		LinkedinURL:       req.LinkedinURL,
		GithubURL:         req.GithubURL,
		WebsiteURL:        req.WebsiteURL,
		TwitterURL:        req.TwitterURL,
		ProfileImage:      profileImage,
		IsActive:          true,
	}
	mentor.ProfileCompleted = mentor.CheckProfileCompletion()

	if err := s.mentorRepo.Create(db, mentor); err != nil {
		return nil, mapMentorError(err)
	}
	return mentor, nil
}

func (s *MentorServiceImpl) GetByID(db *gorm.DB, id string) (*models.Mentor, error) {
	if err := parseProfileID(id, "mentor"); err != nil {
		return nil, err
	}
	mentor, err := s.mentorRepo.FindByID(db, id)
	if err != nil {
		return nil, mapMentorError(err)
	}
	return mentor, nil
}

func (s *MentorServiceImpl) List(db *gorm.DB, activeOnly bool) ([]models.Mentor, error) {
	var (
		mentors []models.Mentor
		err     error
	)
	if activeOnly {
		mentors, err = s.mentorRepo.FindActive(db)
	} else {
		mentors, err = s.mentorRepo.FindAll(db)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return mentors, nil
}

func (s *MentorServiceImpl) Search(db *gorm.DB, technology, name string) ([]models.Mentor, error) {
	mentors, err := s.mentorRepo.Search(db, technology, name)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return mentors, nil
}

// FilterDirectory applies the pure directory filter to the full listing.
func (s *MentorServiceImpl) FilterDirectory(db *gorm.DB, query search.Query) ([]models.Mentor, error) {
	mentors, err := s.mentorRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return search.Filter(mentors, query), nil
}

// Update applies the fields present in req onto the stored record and
// persists the result. Last write wins on concurrent updates.
func (s *MentorServiceImpl) Update(db *gorm.DB, id string, req *dto.UpdateMentorRequest) (*models.Mentor, error) {
	if err := parseProfileID(id, "mentor"); err != nil {
		return nil, err
	}
	mentor, err := s.mentorRepo.FindByID(db, id)
	if err != nil {
		return nil, mapMentorError(err)
	}

	if req.FirstName != nil {
		mentor.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		mentor.LastName = *req.LastName
	}
	if req.Email != nil {
		mentor.Email = normalizeEmail(*req.Email)
	}
	if req.Password != nil {
		passwordHash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		mentor.PasswordHash = passwordHash
	}
	if req.Phone != nil {
		mentor.Phone = *req.Phone
	}
	if req.Description != nil {
		mentor.Description = *req.Description
	}
	if req.Technologies != nil {
		mentor.Technologies = dedupeSkills(req.Technologies)
	}
	if req.YearsOfExperience != nil {
		mentor.YearsOfExperience = req.YearsOfExperience.Int()
	}
	if req.Availability != nil {
		mentor.Availability = models.Availability(*req.Availability)
	}
	if req.LinkedinURL != nil {
		mentor.LinkedinURL = *req.LinkedinURL
	}
	if req.GithubURL != nil {
		mentor.GithubURL = *req.GithubURL
	}
	if req.WebsiteURL != nil {
		mentor.WebsiteURL = *req.WebsiteURL
	}
	if req.TwitterURL != nil {
		mentor.TwitterURL = *req.TwitterURL
	}
	if req.ProfileImage != nil {
		mentor.ProfileImage = *req.ProfileImage
	}
	if req.IsActive != nil {
		mentor.IsActive = *req.IsActive
	}
	mentor.ProfileCompleted = mentor.CheckProfileCompletion()

	if err := s.mentorRepo.Update(db, mentor); err != nil {
		return nil, mapMentorError(err)
	}
	return mentor, nil
}

func (s *MentorServiceImpl) Delete(db *gorm.DB, id string) error {
	if err := parseProfileID(id, "mentor"); err != nil {
		return err
	}
	if err := s.mentorRepo.Delete(db, id); err != nil {
		return mapMentorError(err)
	}
	return nil
}

// Login verifies credentials and returns the session record plus a signed
// session token. The token is informational; no route requires it.
func (s *MentorServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.SessionData, string, error) {
	mentor, err := s.mentorRepo.FindByEmail(db, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrMentorNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", apperrors.InternalError(err)
	}
	if !auth.CheckPasswordHash(req.Password, mentor.PasswordHash) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := auth.IssueSessionToken(s.sessionSecret, mentor.ID, string(models.KindMentor), s.sessionTTL)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	session := &dto.SessionData{
		ID:           mentor.ID,
		Kind:         string(models.KindMentor),
		FirstName:    mentor.FirstName,
		LastName:     mentor.LastName,
		ProfileImage: mentor.ProfileImage,
	}
	return session, token, nil
}

func mapMentorError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrMentorNotFound):
		return apperrors.ErrNotFound(err, "Mentor")
	case errors.Is(err, repositories.ErrDuplicateEmail):
		return apperrors.ErrEmailAlreadyExists(err)
	}
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	return apperrors.InternalError(err)
}
