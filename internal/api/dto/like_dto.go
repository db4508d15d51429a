package dto

// CreateLikeDTO 点赞
type CreateLikeDTO struct {
	PostID uint64 `json:"post_id" validate:"required"`
	UserID uint64 `json:"user_id" validate:"required"`
}

// LikeDTO 点赞记录
type LikeDTO struct {
	ID        uint64 `json:"like_id"`
	PostID    uint64 `json:"post_id"`
	UserID    uint64 `json:"user_id"`
	CreatedAt string `json:"created_at"`
}

// LikedPostDTO 用户点赞过的帖子
type LikedPostDTO struct {
	LikeID      uint64 `json:"like_id"`
	LikedAt     string `json:"liked_at"`
	PostID      uint64 `json:"post_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	PostOwner   uint64 `json:"post_owner"`
	CreatedAt   string `json:"created_at"`
}
