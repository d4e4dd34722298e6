package services

import (
	"testing"
	"time"

	"mentorhub_backend/internal/auth"
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeMentorRepo is an in-memory MentorRepository. It mimics the store
// contract the real repository gets from Postgres: email uniqueness and
// newest-first ordering.
type fakeMentorRepo struct {
	mentors []*models.Mentor
}

func (f *fakeMentorRepo) Create(_ *gorm.DB, mentor *models.Mentor) error {
	for _, m := range f.mentors {
		if m.Email == mentor.Email {
			return repositories.ErrDuplicateEmail
		}
	}
	mentor.ID = uuid.NewString()
	mentor.CreatedAt = time.Now()
	mentor.UpdatedAt = mentor.CreatedAt
	f.mentors = append(f.mentors, mentor)
	return nil
}

func (f *fakeMentorRepo) FindByID(_ *gorm.DB, id string) (*models.Mentor, error) {
	for _, m := range f.mentors {
		if m.ID == id {
			copied := *m
			return &copied, nil
		}
	}
	return nil, repositories.ErrMentorNotFound
}

func (f *fakeMentorRepo) FindByEmail(_ *gorm.DB, email string) (*models.Mentor, error) {
	for _, m := range f.mentors {
		if m.Email == email {
			copied := *m
			return &copied, nil
		}
	}
	return nil, repositories.ErrMentorNotFound
}

func (f *fakeMentorRepo) FindAll(_ *gorm.DB) ([]models.Mentor, error) {
	result := make([]models.Mentor, 0, len(f.mentors))
	for i := len(f.mentors) - 1; i >= 0; i-- {
		result = append(result, *f.mentors[i])
	}
	return result, nil
}

func (f *fakeMentorRepo) FindActive(_ *gorm.DB) ([]models.Mentor, error) {
	all, _ := f.FindAll(nil)
	result := make([]models.Mentor, 0, len(all))
	for _, m := range all {
		if m.IsActive {
			result = append(result, m)
		}
	}
	return result, nil
}

func (f *fakeMentorRepo) Search(_ *gorm.DB, _, _ string) ([]models.Mentor, error) {
	return f.FindAll(nil)
}

func (f *fakeMentorRepo) Update(_ *gorm.DB, mentor *models.Mentor) error {
	for i, m := range f.mentors {
		if m.ID == mentor.ID {
			for _, other := range f.mentors {
				if other.ID != mentor.ID && other.Email == mentor.Email {
					return repositories.ErrDuplicateEmail
				}
			}
			mentor.UpdatedAt = time.Now()
			copied := *mentor
			f.mentors[i] = &copied
			return nil
		}
	}
	return repositories.ErrMentorNotFound
}

func (f *fakeMentorRepo) Delete(_ *gorm.DB, id string) error {
	for i, m := range f.mentors {
		if m.ID == id {
			f.mentors = append(f.mentors[:i], f.mentors[i+1:]...)
			return nil
		}
	}
	return repositories.ErrMentorNotFound
}

func newTestMentorService() (MentorService, *fakeMentorRepo) {
	repo := &fakeMentorRepo{}
	return NewMentorService(repo, "test-secret", time.Hour), repo
}

func registerRequest(email string) *dto.RegisterMentorRequest {
	years := dto.ExperienceYears(5)
	return &dto.RegisterMentorRequest{
		FirstName:         "Jane",
		LastName:          "Doe",
		Email:             email,
		Password:          "secret1",
		Phone:             "555-123-4567",
		Technologies:      []string{"Go", "React"},
		YearsOfExperience: &years,
	}
}

func TestRegisterHashesPasswordAndFoldsEmail(t *testing.T) {
	svc, repo := newTestMentorService()

	mentor, err := svc.Register(nil, registerRequest("Jane.Doe@Example.COM"))
	require.NoError(t, err)

	assert.Equal(t, "jane.doe@example.com", mentor.Email)
	assert.NotEqual(t, "secret1", mentor.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("secret1", mentor.PasswordHash))
	assert.NotEmpty(t, mentor.ID)
	assert.Len(t, repo.mentors, 1)
}

func TestRegisterAppliesDefaults(t *testing.T) {
	svc, _ := newTestMentorService()

	mentor, err := svc.Register(nil, registerRequest("jane@example.com"))
	require.NoError(t, err)

	assert.Equal(t, models.AvailabilityAvailable, mentor.Availability)
	assert.Contains(t, mentor.ProfileImage, "Jane")
	assert.True(t, mentor.IsActive)
	assert.True(t, mentor.ProfileCompleted)
}

func TestRegisterDeduplicatesTechnologies(t *testing.T) {
	svc, _ := newTestMentorService()

	req := registerRequest("jane@example.com")
	req.Technologies = []string{"React", "react", " Node ", "React", "Node"}

	mentor, err := svc.Register(nil, req)
	require.NoError(t, err)

	assert.Equal(t, []string{"React", "Node"}, []string(mentor.Technologies))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, repo := newTestMentorService()

	_, err := svc.Register(nil, registerRequest("a@b.com"))
	require.NoError(t, err)

	// Same address, different case: uniqueness is case-insensitive
	_, err = svc.Register(nil, registerRequest("A@B.COM"))
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
	assert.Equal(t, "Email already exists", appErr.Message)
	assert.Equal(t, 400, appErr.HTTPCode)

	// The store still holds exactly one record for that email
	assert.Len(t, repo.mentors, 1)
}

func TestGetByIDMalformedID(t *testing.T) {
	svc, _ := newTestMentorService()

	_, err := svc.GetByID(nil, "not-a-uuid")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidID, appErr.Code)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _ := newTestMentorService()

	_, err := svc.GetByID(nil, uuid.NewString())
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	assert.Equal(t, "Mentor not found", appErr.Message)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	svc, _ := newTestMentorService()

	created, err := svc.Register(nil, registerRequest("jane@example.com"))
	require.NoError(t, err)

	fetched, err := svc.GetByID(nil, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Email, fetched.Email)
	assert.Equal(t, created.Technologies, fetched.Technologies)
	assert.Equal(t, created.YearsOfExperience, fetched.YearsOfExperience)
}

func TestUpdatePreservesUnspecifiedFields(t *testing.T) {
	svc, _ := newTestMentorService()

	created, err := svc.Register(nil, registerRequest("jane@example.com"))
	require.NoError(t, err)

	newName := "Janet"
	updated, err := svc.Update(nil, created.ID, &dto.UpdateMentorRequest{FirstName: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Janet", updated.FirstName)
	// Everything not in the request keeps its prior value
	assert.Equal(t, created.LastName, updated.LastName)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.Phone, updated.Phone)
	assert.Equal(t, created.Technologies, updated.Technologies)
	assert.Equal(t, created.PasswordHash, updated.PasswordHash)
}

func TestUpdateRefreshesUpdatedAt(t *testing.T) {
	svc, _ := newTestMentorService()

	created, err := svc.Register(nil, registerRequest("jane@example.com"))
	require.NoError(t, err)
	before := created.UpdatedAt

	time.Sleep(5 * time.Millisecond)

	newName := "Janet"
	updated, err := svc.Update(nil, created.ID, &dto.UpdateMentorRequest{FirstName: &newName})
	require.NoError(t, err)

	assert.True(t, updated.UpdatedAt.After(before))
}

func TestUpdateRehashesPassword(t *testing.T) {
	svc, _ := newTestMentorService()

	created, err := svc.Register(nil, registerRequest("jane@example.com"))
	require.NoError(t, err)

	newPassword := "another-secret"
	updated, err := svc.Update(nil, created.ID, &dto.UpdateMentorRequest{Password: &newPassword})
	require.NoError(t, err)

	assert.NotEqual(t, created.PasswordHash, updated.PasswordHash)
	assert.True(t, auth.CheckPasswordHash(newPassword, updated.PasswordHash))
}

func TestUpdateMalformedAndMissingIDs(t *testing.T) {
	svc, _ := newTestMentorService()

	newName := "Janet"
	_, err := svc.Update(nil, "short-id", &dto.UpdateMentorRequest{FirstName: &newName})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidID, appErr.Code)

	_, err = svc.Update(nil, uuid.NewString(), &dto.UpdateMentorRequest{FirstName: &newName})
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestDeleteThenGetNotFound(t *testing.T) {
	svc, _ := newTestMentorService()

	created, err := svc.Register(nil, registerRequest("jane@example.com"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(nil, created.ID))

	_, err = svc.GetByID(nil, created.ID)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	// Deleting again reports not found as well
	err = svc.Delete(nil, created.ID)
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestListNewestFirst(t *testing.T) {
	svc, _ := newTestMentorService()

	first, err := svc.Register(nil, registerRequest("first@example.com"))
	require.NoError(t, err)
	second, err := svc.Register(nil, registerRequest("second@example.com"))
	require.NoError(t, err)

	mentors, err := svc.List(nil, false)
	require.NoError(t, err)

	require.Len(t, mentors, 2)
	assert.Equal(t, second.ID, mentors[0].ID)
	assert.Equal(t, first.ID, mentors[1].ID)
}

func TestListEmptyStore(t *testing.T) {
	svc, _ := newTestMentorService()

	mentors, err := svc.List(nil, false)
	require.NoError(t, err)
	assert.Empty(t, mentors)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestMentorService()

	created, err := svc.Register(nil, registerRequest("jane@example.com"))
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		session, token, err := svc.Login(nil, &dto.LoginRequest{
			Email:    "Jane@Example.com",
			Password: "secret1",
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, session.ID)
		assert.Equal(t, "mentor", session.Kind)
		assert.Equal(t, "Jane", session.FirstName)
		assert.NotEmpty(t, token)

		claims, err := auth.ParseSessionToken("test-secret", token)
		require.NoError(t, err)
		assert.Equal(t, created.ID, claims.ProfileID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(nil, &dto.LoginRequest{
			Email:    "jane@example.com",
			Password: "wrong",
		})
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, 401, appErr.HTTPCode)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(nil, &dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret1",
		})
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, 401, appErr.HTTPCode)
		// Same message either way: unknown email is indistinguishable
		assert.Equal(t, "Invalid email or password", appErr.Message)
	})
}
