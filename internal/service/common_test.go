package service

import (
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/mailer"
	"context"
	"io"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Post{}, &model.Like{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()

	user := &model.User{
		FullName: "Test User",
		Email:    email,
		Password: "$2a$10$notarealhashnotarealhashnotarealhash",
		Gender:   "Other",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPost(t *testing.T, db *gorm.DB, userID uint64, title string, createdAt time.Time) *model.Post {
	t.Helper()

	post := &model.Post{
		UserID:      userID,
		Title:       title,
		Description: "description of " + title,
		Content:     "content of " + title,
		Category:    "general",
		Image:       "http://files.local/" + title + ".png",
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func seedLike(t *testing.T, db *gorm.DB, userID, postID uint64) *model.Like {
	t.Helper()

	like := &model.Like{UserID: userID, PostID: postID}
	require.NoError(t, db.Create(like).Error)
	return like
}

type sentMail struct {
	Recipient   string
	Subject     string
	Body        string
	Attachments []mailer.Attachment
}

// fakeMailer 记录发送的邮件，fail 为真时统一报错
type fakeMailer struct {
	fail bool
	sent []sentMail
}

func (f *fakeMailer) Send(_ context.Context, recipient, subject, body string, attachments ...mailer.Attachment) error {
	if f.fail {
		return errors.New("smtp gateway unreachable")
	}
	f.sent = append(f.sent, sentMail{
		Recipient:   recipient,
		Subject:     subject,
		Body:        body,
		Attachments: attachments,
	})
	return nil
}

// fakeGender 返回固定推断结果
type fakeGender struct {
	gender string
	calls  int
}

func (f *fakeGender) InferGender(context.Context, string) string {
	f.calls++
	if f.gender == "" {
		return GenderFallback
	}
	return f.gender
}

// fakeImageStore 不真上传，按对象名拼一个 URL
type fakeImageStore struct {
	fail    bool
	uploads []string
}

func (f *fakeImageStore) Upload(_ context.Context, objectName string, _ io.Reader, _ int64, _ string) (string, error) {
	if f.fail {
		return "", errors.New("object storage unavailable")
	}
	f.uploads = append(f.uploads, objectName)
	return "http://files.local/" + objectName, nil
}
