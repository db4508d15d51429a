package repository

import (
	"Inkwell/internal/model"
	"testing"
	"time"

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
