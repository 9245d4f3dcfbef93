package store_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"

	"github.com/Somye55/colbin-recruitment-platform/internal/auth"
	"github.com/Somye55/colbin-recruitment-platform/internal/db"
	"github.com/Somye55/colbin-recruitment-platform/internal/models"
	"github.com/Somye55/colbin-recruitment-platform/internal/store"
)

func newTestStore(t *testing.T) *store.UserStore {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	conn, err := db.Init(sqlite.Open("file:" + name + "?mode=memory&cache=shared"))
	require.NoError(t, err)
	return store.NewUserStore(conn, bcrypt.MinCost)
}

func validRegister() *models.RegisterRequest {
	return &models.RegisterRequest{
		Email:     "a@b.com",
		Password:  "Abcd123!",
		FirstName: "A",
		LastName:  "B",
	}
}

func TestRegister(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user, err := s.Register(ctx, validRegister())
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Empty(t, user.Password, "returned record must not carry the hash")
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRegisterHashNeverEqualsPlaintext(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Register(ctx, validRegister())
	require.NoError(t, err)

	stored, err := s.FindByEmailWithPassword(ctx, "a@b.com")
	require.NoError(t, err)
	assert.NotEqual(t, "Abcd123!", stored.Password)
	assert.True(t, auth.CheckPasswordHash(stored.Password, "Abcd123!"))
	assert.False(t, auth.CheckPasswordHash(stored.Password, "wrong"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Register(ctx, validRegister())
	require.NoError(t, err)

	_, err = s.Register(ctx, validRegister())
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)

	// case-insensitive: the lowered form collides too
	req := validRegister()
	req.Email = "A@B.COM"
	_, err = s.Register(ctx, req)
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)
}

func TestRegisterValidation(t *testing.T) {
	s := newTestStore(t)

	req := validRegister()
	req.Email = "nope"
	_, err := s.Register(context.Background(), req)

	var verr *store.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "email", verr.Fields[0].Field)
}

func TestFindProjections(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.Register(ctx, validRegister())
	require.NoError(t, err)

	byEmail, err := s.FindByEmail(ctx, "A@b.com")
	require.NoError(t, err)
	assert.Empty(t, byEmail.Password, "default projection excludes the hash")

	byID, err := s.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, byID.Password)
	assert.Equal(t, created.Email, byID.Email)

	withPassword, err := s.FindByEmailWithPassword(ctx, "a@b.com")
	require.NoError(t, err)
	assert.NotEmpty(t, withPassword.Password)
}

func TestFindNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.FindByEmail(ctx, "missing@b.com")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.FindByID(ctx, "no-such-id")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.Register(ctx, validRegister())
	require.NoError(t, err)

	first := "Asha"
	bio := "Ten years of backend work."
	skills := []string{"go", "postgres"}
	updated, err := s.UpdateFields(ctx, created.ID, &models.UpdateProfileRequest{
		FirstName: &first,
		Bio:       &bio,
		Skills:    &skills,
	})
	require.NoError(t, err)

	assert.Equal(t, "Asha", updated.FirstName)
	assert.Equal(t, "B", updated.LastName)
	assert.Equal(t, bio, updated.Bio)
	assert.Equal(t, skills, updated.Skills)
	assert.Empty(t, updated.Password)

	// hash survives an update untouched
	stored, err := s.FindByEmailWithPassword(ctx, "a@b.com")
	require.NoError(t, err)
	assert.True(t, auth.CheckPasswordHash(stored.Password, "Abcd123!"))
}

func TestUpdateFieldsMergedCTCInvariant(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	req := validRegister()
	current := 1200000.0
	expected := 1500000.0
	req.CurrentCTC = &current
	req.ExpectedCTC = &expected
	created, err := s.Register(ctx, req)
	require.NoError(t, err)

	// lowering expectedCTC below the stored currentCTC must fail even
	// though the update request alone carries no currentCTC
	lower := 1000000.0
	_, err = s.UpdateFields(ctx, created.ID, &models.UpdateProfileRequest{
		ExpectedCTC: &lower,
	})
	var verr *store.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "expectedCTC", verr.Fields[0].Field)

	// the record is unchanged
	fresh, err := s.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fresh.ExpectedCTC)
	assert.Equal(t, expected, *fresh.ExpectedCTC)
}

func TestUpdateFieldsNotFound(t *testing.T) {
	s := newTestStore(t)

	first := "X"
	_, err := s.UpdateFields(context.Background(), "no-such-id", &models.UpdateProfileRequest{
		FirstName: &first,
	})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateFieldsNoticePeriod(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.Register(ctx, validRegister())
	require.NoError(t, err)

	yes := "Yes"
	_, err = s.UpdateFields(ctx, created.ID, &models.UpdateProfileRequest{
		NoticePeriod: &yes,
	})
	var verr *store.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "noticePeriodDays", verr.Fields[0].Field)

	days := 30
	updated, err := s.UpdateFields(ctx, created.ID, &models.UpdateProfileRequest{
		NoticePeriod:     &yes,
		NoticePeriodDays: &days,
	})
	require.NoError(t, err)
	assert.Equal(t, "Yes", updated.NoticePeriod)
	require.NotNil(t, updated.NoticePeriodDays)
	assert.Equal(t, 30, *updated.NoticePeriodDays)
}
