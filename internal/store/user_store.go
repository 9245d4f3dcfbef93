// Package store is the credential store: one users table holding identity,
// password hash and profile attributes. All field validation for writes
// happens here so registration and profile updates enforce the same rules.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Somye55/colbin-recruitment-platform/internal/auth"
	"github.com/Somye55/colbin-recruitment-platform/internal/models"
	"github.com/Somye55/colbin-recruitment-platform/internal/validation"
)

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrNotFound       = errors.New("user not found")
)

// ValidationError carries the per-field failures of a rejected write.
type ValidationError struct {
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

type UserStore struct {
	db         *gorm.DB
	bcryptCost int
}

func NewUserStore(db *gorm.DB, bcryptCost int) *UserStore {
	return &UserStore{db: db, bcryptCost: bcryptCost}
}

// Register validates the request, hashes the password and inserts the
// record. Emails are lowercased before the unique index sees them, which is
// what makes uniqueness case-insensitive.
func (s *UserStore) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if fields := validation.Validate(req); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		Password:         hash,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Phone:            req.Phone,
		CurrentCTC:       req.CurrentCTC,
		ExpectedCTC:      req.ExpectedCTC,
		NoticePeriod:     req.NoticePeriod,
		NoticePeriodDays: req.NoticePeriodDays,
		Bio:              req.Bio,
		Experience:       req.Experience,
		ResumeURL:        req.ResumeURL,
		AvatarURL:        req.AvatarURL,
		Skills:           req.Skills,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// FindByEmail looks up a user without the password hash. Use
// FindByEmailWithPassword when the hash is needed for verification.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Omit("password").
		First(&user, "email = ?", strings.ToLower(email)).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

// FindByEmailWithPassword is the explicit opt-in projection that includes
// the hash, for login verification only.
func (s *UserStore) FindByEmailWithPassword(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "email = ?", strings.ToLower(email)).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Omit("password").First(&user, "id = ?", id).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

// UpdateFields applies the allow-listed fields onto the stored record,
// re-validates the merged result with the registration rules and persists
// it. Cross-field checks run on the merged record, so lowering expectedCTC
// below an already stored currentCTC is rejected here even though the
// request alone looked fine.
func (s *UserStore) UpdateFields(ctx context.Context, id string, req *models.UpdateProfileRequest) (*models.User, error) {
	if fields := validation.Validate(req); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	req.Apply(&user)
	if fields := validation.Validate(&user); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	user.Password = ""
	return &user, nil
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// fallback for drivers without error translation
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
