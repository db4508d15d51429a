package model

import (
	"time"
)

type Post struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	UserID      uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:varchar(1000)" json:"description"`
	Content     string    `gorm:"not null" json:"content"`
	Category    string    `gorm:"type:varchar(100)" json:"category"`
	Image       string    `gorm:"type:varchar(512)" json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 关联关系
	User  User   `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Likes []Like `gorm:"foreignKey:PostID;references:ID" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}

// PostWithLikes 读取时计算的聚合行，不落库
type PostWithLikes struct {
	Post
	TotalLikes int64 `json:"total_likes"`
}
