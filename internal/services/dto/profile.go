package dto

// Request shapes for the directory API. Update requests use pointer fields as
// an explicit allow-list: only the fields present in the body are applied and
// anything unknown is rejected by the strict JSON binder.

// RegisterMentorRequest is the mentor signup payload.
type RegisterMentorRequest struct {
	FirstName    string   `json:"firstName" validate:"required,min=2,max=50"`
	LastName     string   `json:"lastName" validate:"required,min=2,max=50"`
	Email        string   `json:"email" validate:"required,email"`
	Password     string   `json:"password" validate:"required,min=6"`
	Phone        string   `json:"phone" validate:"required,phone"`
	Description  string   `json:"description" validate:"omitempty,max=500"`
	Technologies []string `json:"technologies" validate:"required,min=1,dive,required"`
	// Pointer so an absent field is distinguishable from an explicit 0:
	// zero years is a legitimate value, a missing field is not.
	YearsOfExperience *ExperienceYears `json:"yearsOfExperience" validate:"required,gte=0"`
	Availability      string           `json:"availability" validate:"omitempty,is-availability"`
	LinkedinURL       string           `json:"linkedinUrl" validate:"omitempty,linkedin-url"`
	GithubURL         string           `json:"githubUrl" validate:"omitempty,github-url"`
	WebsiteURL        string           `json:"websiteUrl" validate:"omitempty,website-url"`
	TwitterURL        string           `json:"twitterUrl" validate:"omitempty,twitter-url"`
	ProfileImage      string           `json:"profileImage" validate:"omitempty,url"`
}

// UpdateMentorRequest is the partial update payload; nil means "keep".
type UpdateMentorRequest struct {
	FirstName         *string          `json:"firstName" validate:"omitempty,min=2,max=50"`
	LastName          *string          `json:"lastName" validate:"omitempty,min=2,max=50"`
	Email             *string          `json:"email" validate:"omitempty,email"`
	Password          *string          `json:"password" validate:"omitempty,min=6"`
	Phone             *string          `json:"phone" validate:"omitempty,phone"`
	Description       *string          `json:"description" validate:"omitempty,max=500"`
	Technologies      []string         `json:"technologies" validate:"omitempty,min=1,dive,required"`
	YearsOfExperience *ExperienceYears `json:"yearsOfExperience" validate:"omitempty,gte=0"`
	Availability      *string          `json:"availability" validate:"omitempty,is-availability"`
	LinkedinURL       *string          `json:"linkedinUrl" validate:"omitempty,linkedin-url"`
	GithubURL         *string          `json:"githubUrl" validate:"omitempty,github-url"`
	WebsiteURL        *string          `json:"websiteUrl" validate:"omitempty,website-url"`
	TwitterURL        *string          `json:"twitterUrl" validate:"omitempty,twitter-url"`
	ProfileImage      *string          `json:"profileImage" validate:"omitempty,url"`
	IsActive          *bool            `json:"isActive"`
}

// RegisterMenteeRequest is the mentee signup payload.
type RegisterMenteeRequest struct {
	FirstName    string   `json:"firstName" validate:"required,min=2,max=50"`
	LastName     string   `json:"lastName" validate:"required,min=2,max=50"`
	Email        string   `json:"email" validate:"required,email"`
	Password     string   `json:"password" validate:"required,min=6"`
	Phone        string   `json:"phone" validate:"required,phone"`
	Description  string   `json:"description" validate:"omitempty,max=500"`
	LookingFor   []string `json:"lookingFor" validate:"required,min=1,dive,required"`
	ProfileImage string   `json:"profileImage" validate:"omitempty,url"`
}

// UpdateMenteeRequest is the partial update payload; nil means "keep".
type UpdateMenteeRequest struct {
	FirstName    *string  `json:"firstName" validate:"omitempty,min=2,max=50"`
	LastName     *string  `json:"lastName" validate:"omitempty,min=2,max=50"`
	Email        *string  `json:"email" validate:"omitempty,email"`
	Password     *string  `json:"password" validate:"omitempty,min=6"`
	Phone        *string  `json:"phone" validate:"omitempty,phone"`
	Description  *string  `json:"description" validate:"omitempty,max=500"`
	LookingFor   []string `json:"lookingFor" validate:"omitempty,min=1,dive,required"`
	ProfileImage *string  `json:"profileImage" validate:"omitempty,url"`
	IsActive     *bool    `json:"isActive"`
}

// LoginRequest is the credential payload of the login endpoints.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionData is the client-held identity record: the display fields the UI
// needs to render the profile menu. Not an authorization grant.
type SessionData struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	ProfileImage string `json:"profileImage"`
}
