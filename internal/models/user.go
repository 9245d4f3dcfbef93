package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the single persisted entity: identity, credentials and the
// candidate profile. The password column holds a bcrypt hash and is
// excluded both from JSON and from default query projections.
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email    string `gorm:"uniqueIndex;not null" json:"email" validate:"required,email"`
	Password string `gorm:"not null" json:"-" validate:"required"`
	Verified bool   `gorm:"default:false" json:"verified"`

	FirstName        string   `json:"firstName" validate:"required,max=50"`
	LastName         string   `json:"lastName" validate:"required,max=50"`
	Phone            string   `json:"phone,omitempty" validate:"omitempty,phone"`
	CurrentCTC       *float64 `json:"currentCTC,omitempty" validate:"omitempty,gte=0"`
	ExpectedCTC      *float64 `json:"expectedCTC,omitempty" validate:"omitempty,gte=0"`
	NoticePeriod     string   `json:"noticePeriod,omitempty" validate:"omitempty,oneof=Yes No"`
	NoticePeriodDays *int     `json:"noticePeriodDays,omitempty" validate:"omitempty,gte=0"`
	Bio              string   `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Experience       string   `json:"experience,omitempty" validate:"omitempty,max=2000"`
	ResumeURL        string   `json:"resumeUrl,omitempty" validate:"omitempty,url"`
	AvatarURL        string   `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	Skills           []string `gorm:"serializer:json" json:"skills,omitempty" validate:"omitempty,max=20,dive,min=1,max=50"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// RegisterRequest carries everything a new candidate submits. The password
// cap matches bcrypt's 72-byte input limit.
type RegisterRequest struct {
	Email            string   `json:"email" validate:"required,email"`
	Password         string   `json:"password" validate:"required,min=8,max=72"`
	FirstName        string   `json:"firstName" validate:"required,max=50"`
	LastName         string   `json:"lastName" validate:"required,max=50"`
	Phone            string   `json:"phone" validate:"omitempty,phone"`
	CurrentCTC       *float64 `json:"currentCTC" validate:"omitempty,gte=0"`
	ExpectedCTC      *float64 `json:"expectedCTC" validate:"omitempty,gte=0"`
	NoticePeriod     string   `json:"noticePeriod" validate:"omitempty,oneof=Yes No"`
	NoticePeriodDays *int     `json:"noticePeriodDays" validate:"omitempty,gte=0"`
	Bio              string   `json:"bio" validate:"omitempty,max=2000"`
	Experience       string   `json:"experience" validate:"omitempty,max=2000"`
	ResumeURL        string   `json:"resumeUrl" validate:"omitempty,url"`
	AvatarURL        string   `json:"avatarUrl" validate:"omitempty,url"`
	Skills           []string `json:"skills" validate:"omitempty,max=20,dive,min=1,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the allow-list for PUT /profile. Email and
// password are deliberately absent; unknown JSON keys are dropped by the
// decoder, so a disallowed field can never reach the store.
type UpdateProfileRequest struct {
	FirstName        *string   `json:"firstName" validate:"omitempty,min=1,max=50"`
	LastName         *string   `json:"lastName" validate:"omitempty,min=1,max=50"`
	Phone            *string   `json:"phone" validate:"omitempty,phone"`
	CurrentCTC       *float64  `json:"currentCTC" validate:"omitempty,gte=0"`
	ExpectedCTC      *float64  `json:"expectedCTC" validate:"omitempty,gte=0"`
	NoticePeriod     *string   `json:"noticePeriod" validate:"omitempty,oneof=Yes No"`
	NoticePeriodDays *int      `json:"noticePeriodDays" validate:"omitempty,gte=0"`
	Bio              *string   `json:"bio" validate:"omitempty,max=2000"`
	Experience       *string   `json:"experience" validate:"omitempty,max=2000"`
	ResumeURL        *string   `json:"resumeUrl" validate:"omitempty,url"`
	AvatarURL        *string   `json:"avatarUrl" validate:"omitempty,url"`
	Skills           *[]string `json:"skills" validate:"omitempty,max=20,dive,min=1,max=50"`
}

// Apply copies the fields present in the request onto the record.
func (r *UpdateProfileRequest) Apply(u *User) {
	if r.FirstName != nil {
		u.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		u.LastName = *r.LastName
	}
	if r.Phone != nil {
		u.Phone = *r.Phone
	}
	if r.CurrentCTC != nil {
		u.CurrentCTC = r.CurrentCTC
	}
	if r.ExpectedCTC != nil {
		u.ExpectedCTC = r.ExpectedCTC
	}
	if r.NoticePeriod != nil {
		u.NoticePeriod = *r.NoticePeriod
	}
	if r.NoticePeriodDays != nil {
		u.NoticePeriodDays = r.NoticePeriodDays
	}
	if r.Bio != nil {
		u.Bio = *r.Bio
	}
	if r.Experience != nil {
		u.Experience = *r.Experience
	}
	if r.ResumeURL != nil {
		u.ResumeURL = *r.ResumeURL
	}
	if r.AvatarURL != nil {
		u.AvatarURL = *r.AvatarURL
	}
	if r.Skills != nil {
		u.Skills = *r.Skills
	}
}
