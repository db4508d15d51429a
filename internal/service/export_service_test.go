package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/repository"
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newExportService(db *gorm.DB, mail *fakeMailer, now time.Time) ExportService {
	return &exportServiceImpl{
		userRepo: repository.NewUserRepo(db),
		postRepo: repository.NewPostRepo(db),
		likeRepo: repository.NewLikeRepo(db),
		mail:     mail,
		now:      func() time.Time { return now },
	}
}

func TestExportPostsCSVContent(t *testing.T) {
	db := newTestDB(t)
	mail := &fakeMailer{}
	now := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
	svc := newExportService(db, mail, now)
	ctx := context.Background()

	author := seedUser(t, db, "author@example.com")
	fanA := seedUser(t, db, "fan_a@example.com")
	fanB := seedUser(t, db, "fan_b@example.com")

	older := &model.Post{
		UserID:      author.ID,
		Title:       "Rich post",
		Description: "<p>Hello <b>world</b></p>",
		Content:     "<div>Some <i>content</i></div>",
		Category:    "general",
		Image:       "http://files.local/rich.png",
		CreatedAt:   time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(older).Error)
	seedPost(t, db, author.ID, "plain", time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC))

	seedLike(t, db, fanA.ID, older.ID)
	seedLike(t, db, fanB.ID, older.ID)

	result, err := svc.ExportPosts(ctx, &ExportRequest{UserID: author.ID, Download: true})
	require.NoError(t, err)

	assert.Equal(t, "posts_1_20260829103000.csv", result.Filename)
	assert.True(t, result.Download)
	assert.Equal(t, "CSV generated", result.Message)

	// BOM 在最前面，之后才是 CSV 文本
	require.True(t, bytes.HasPrefix(result.Content, utf8BOM))
	records, err := csv.NewReader(bytes.NewReader(result.Content[len(utf8BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, exportHeader, records[0])

	// 按创建时间倒序：先 newer 后 older
	assert.Equal(t, "plain", records[1][1])
	assert.Equal(t, "0", records[1][8])

	assert.Equal(t, "Rich post", records[2][1])
	assert.Equal(t, "Hello world", records[2][2])
	assert.Equal(t, "Some content", records[2][3])
	assert.Equal(t, "2", records[2][8])

	assert.Empty(t, mail.sent)
}

func TestExportPostsRequiresIdentifier(t *testing.T) {
	db := newTestDB(t)
	svc := newExportService(db, &fakeMailer{}, time.Now())

	_, err := svc.ExportPosts(context.Background(), &ExportRequest{})
	assert.ErrorIs(t, err, ErrMissingIdentifier)
}

func TestExportPostsUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newExportService(db, &fakeMailer{}, time.Now())

	_, err := svc.ExportPosts(context.Background(), &ExportRequest{Email: "ghost@example.com"})
	assert.ErrorIs(t, err, ErrUserEmailNotFound)
}

func TestExportPostsEmailsAttachment(t *testing.T) {
	db := newTestDB(t)
	mail := &fakeMailer{}
	now := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
	svc := newExportService(db, mail, now)
	ctx := context.Background()

	author := seedUser(t, db, "author@example.com")
	seedPost(t, db, author.ID, "post", time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC))

	result, err := svc.ExportPosts(ctx, &ExportRequest{Email: "author@example.com", SendEmail: true})
	require.NoError(t, err)

	assert.Equal(t, "CSV generated and emailed", result.Message)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "author@example.com", mail.sent[0].Recipient)
	require.Len(t, mail.sent[0].Attachments, 1)
	assert.Equal(t, result.Filename, mail.sent[0].Attachments[0].Filename)
	assert.Equal(t, result.Content, mail.sent[0].Attachments[0].Content)
}

func TestExportPostsMailFailureIsSwallowed(t *testing.T) {
	db := newTestDB(t)
	mail := &fakeMailer{fail: true}
	svc := newExportService(db, mail, time.Now())
	ctx := context.Background()

	author := seedUser(t, db, "author@example.com")
	seedPost(t, db, author.ID, "post", time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC))

	result, err := svc.ExportPosts(ctx, &ExportRequest{UserID: author.ID, SendEmail: true, Download: true})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Content)
	assert.True(t, result.Download)
}

func TestParseExportRequest(t *testing.T) {
	req := ParseExportRequest(&dto.ExportQueryDTO{
		UserID:    7,
		Download:  "yes",
		SendEmail: "0",
	})
	assert.Equal(t, uint64(7), req.UserID)
	assert.True(t, req.Download)
	assert.False(t, req.SendEmail)
}
