package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/security"
	"Inkwell/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB, gender *fakeGender, mail *fakeMailer) UserService {
	return NewUserService(
		repository.NewUserRepo(db),
		repository.NewPostRepo(db),
		repository.NewLikeRepo(db),
		gender,
		mail,
	)
}

func validRegister() *dto.RegisterDTO {
	return &dto.RegisterDTO{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Password: "Sup3rsecret",
		Mobile:   "5551234567",
		Address:  "1 Main St",
		Country:  "US",
		State:    "CA",
		City:     "San Jose",
		Pincode:  "95101",
		Gender:   "Female",
	}
}

func TestRegisterSuccess(t *testing.T) {
	db := newTestDB(t)
	mail := &fakeMailer{}
	gender := &fakeGender{gender: "Male"}
	svc := newUserService(db, gender, mail)
	ctx := context.Background()

	id, err := svc.Register(ctx, validRegister())
	require.NoError(t, err)
	assert.NotZero(t, id)

	user, err := repository.NewUserRepo(db).GetUserByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Female", user.Gender)
	assert.Zero(t, gender.calls, "explicit gender skips inference")

	// 密码只存哈希
	assert.NotEqual(t, "Sup3rsecret", user.Password)
	assert.NoError(t, security.CheckPasswordHash("Sup3rsecret", user.Password))

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "jane@example.com", mail.sent[0].Recipient)
}

func TestRegisterInfersGenderWhenAbsent(t *testing.T) {
	db := newTestDB(t)
	gender := &fakeGender{gender: "Male"}
	svc := newUserService(db, gender, &fakeMailer{})
	ctx := context.Background()

	reg := validRegister()
	reg.Gender = ""

	_, err := svc.Register(ctx, reg)
	require.NoError(t, err)
	assert.Equal(t, 1, gender.calls)

	user, err := repository.NewUserRepo(db).GetUserByEmail(ctx, reg.Email)
	require.NoError(t, err)
	assert.Equal(t, "Male", user.Gender)
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db, &fakeGender{}, &fakeMailer{})
	ctx := context.Background()

	seedUser(t, db, "taken@example.com")

	cases := []struct {
		name    string
		edit    func(r *dto.RegisterDTO)
		field   string
		message string
	}{
		{"missing name", func(r *dto.RegisterDTO) { r.FullName = "" }, "full_name", "Full Name is required"},
		{"missing email", func(r *dto.RegisterDTO) { r.Email = "" }, "email", "Email is required"},
		{"invalid email", func(r *dto.RegisterDTO) { r.Email = "not-an-email" }, "email", "Invalid email address"},
		{"duplicate email", func(r *dto.RegisterDTO) { r.Email = "taken@example.com" }, "email", "User with this email already exists"},
		{"short password", func(r *dto.RegisterDTO) { r.Password = "Short1" }, "password", "Password must be at least 8 characters long"},
		{"no capital letter", func(r *dto.RegisterDTO) { r.Password = "alllowercase1" }, "password", "Password must contain at least one capital letter"},
		{"missing mobile", func(r *dto.RegisterDTO) { r.Mobile = "" }, "mobile", "Mobile is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg := validRegister()
			tc.edit(reg)

			_, err := svc.Register(ctx, reg)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.message, vErr.Fields[tc.field])
		})
	}
}

func TestRegisterMailFailureIsSwallowed(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db, &fakeGender{}, &fakeMailer{fail: true})

	id, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)
	assert.NotZero(t, id)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db, &fakeGender{}, &fakeMailer{})
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegister())
	require.NoError(t, err)

	result, err := svc.Login(ctx, &dto.CredentialDTO{Email: "jane@example.com", Password: "Sup3rsecret"})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", result.FullName)
	assert.NotZero(t, result.UserID)

	_, err = svc.Login(ctx, &dto.CredentialDTO{Email: "jane@example.com", Password: "wrongpass"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	_, err = svc.Login(ctx, &dto.CredentialDTO{Email: "nobody@example.com", Password: "Sup3rsecret"})
	assert.ErrorIs(t, err, ErrEmailNotRegistered)

	_, err = svc.Login(ctx, &dto.CredentialDTO{Email: "not-an-email", Password: "Sup3rsecret"})
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestUpdateUserEmailImmutable(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db, &fakeGender{}, &fakeMailer{})
	ctx := context.Background()

	user := seedUser(t, db, "alice@example.com")

	newEmail := "alice2@example.com"
	err := svc.UpdateUser(ctx, user.ID, &dto.UpdateUserDTO{Email: &newEmail})
	assert.ErrorIs(t, err, ErrEmailImmutable)
}

func TestUpdateUserWhitelist(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db, &fakeGender{}, &fakeMailer{})
	ctx := context.Background()

	user := seedUser(t, db, "alice@example.com")

	name := "Alice Cooper"
	city := "Detroit"
	require.NoError(t, svc.UpdateUser(ctx, user.ID, &dto.UpdateUserDTO{FullName: &name, City: &city}))

	got, err := repository.NewUserRepo(db).GetUserById(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", got.FullName)
	assert.Equal(t, "Detroit", got.City)
	assert.Equal(t, "alice@example.com", got.Email)

	weak := "weakpass"
	err = svc.UpdateUser(ctx, user.ID, &dto.UpdateUserDTO{Password: &weak})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "password")

	err = svc.UpdateUser(ctx, 999, &dto.UpdateUserDTO{FullName: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db, &fakeGender{}, &fakeMailer{})
	ctx := context.Background()

	user := seedUser(t, db, "alice@example.com")
	post := seedPost(t, db, user.ID, "post", time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))
	seedLike(t, db, user.ID, post.ID)

	assert.ErrorIs(t, svc.DeleteUser(ctx, 999), ErrUserNotFound)
	require.NoError(t, svc.DeleteUser(ctx, user.ID))

	var users, posts, likes int64
	require.NoError(t, db.Model(&model.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&model.Post{}).Count(&posts).Error)
	require.NoError(t, db.Model(&model.Like{}).Count(&likes).Error)
	assert.Zero(t, users)
	assert.Zero(t, posts)
	assert.Zero(t, likes)
}

func TestGetUsersOverview(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db, &fakeGender{}, &fakeMailer{})
	ctx := context.Background()

	author := seedUser(t, db, "author@example.com")
	fan := seedUser(t, db, "fan@example.com")
	post := seedPost(t, db, author.ID, "liked post", time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))
	seedLike(t, db, fan.ID, post.ID)

	overview, err := svc.GetUsersOverview(ctx)
	require.NoError(t, err)
	require.Len(t, overview, 2)

	byEmail := make(map[string]*dto.UserOverviewDTO, 2)
	for _, entry := range overview {
		byEmail[entry.Email] = entry
	}

	authorEntry := byEmail["author@example.com"]
	require.NotNil(t, authorEntry)
	assert.Equal(t, 1, authorEntry.TotalPosts)
	require.Len(t, authorEntry.Posts, 1)
	assert.Equal(t, "liked post", authorEntry.Posts[0].Title)
	assert.Equal(t, int64(1), authorEntry.Posts[0].Likes)

	fanEntry := byEmail["fan@example.com"]
	require.NotNil(t, fanEntry)
	assert.Zero(t, fanEntry.TotalPosts)
}
