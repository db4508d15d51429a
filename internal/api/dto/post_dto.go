package dto

// CreatePostDTO 创建帖子 - multipart 表单，图片另行读取
type CreatePostDTO struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description" validate:"required"`
	Content     string `form:"content" validate:"required"`
	Category    string `form:"category" validate:"required"`
	UserID      uint64 `form:"user_id" validate:"required"`
}

// UpdatePostDTO 更新帖子，仅允许白名单字段；user_id 为操作者
type UpdatePostDTO struct {
	UserID      uint64  `form:"user_id" validate:"required"`
	Title       *string `form:"title"`
	Description *string `form:"description"`
	Content     *string `form:"content"`
	Category    *string `form:"category"`
}

// PostDTO 帖子
type PostDTO struct {
	ID          uint64 `json:"id"`
	UserID      uint64 `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// PostFeedItemDTO 帖子及其点赞数
type PostFeedItemDTO struct {
	PostDTO
	TotalLikes int64 `json:"total_likes"`
}

// FeedQueryDTO 高级检索参数
type FeedQueryDTO struct {
	Page      int    `form:"page,default=1"`
	PageSize  int    `form:"page_size,default=10"`
	SortBy    string `form:"sort_by,default=created_at"`
	SortOrder string `form:"sort_order,default=desc"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	UserID    uint64 `form:"user"`
	MinLikes  *int   `form:"min_likes"`
	MaxLikes  *int   `form:"max_likes"`
	Search    string `form:"search"`
}

// FeedResponseDTO 高级检索响应
type FeedResponseDTO struct {
	Status        string             `json:"status"`
	Page          int                `json:"page"`
	PageSize      int                `json:"page_size"`
	TotalPosts    int64              `json:"total_posts"`
	PostsReturned int                `json:"posts_returned"`
	Posts         []*PostFeedItemDTO `json:"posts"`
}
