package repository

import (
	"Inkwell/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// FeedQuery 高级检索的查询参数，调用方已完成校验
type FeedQuery struct {
	StartDate *time.Time
	EndDate   *time.Time
	UserID    uint64
	Search    string
	MinLikes  *int
	MaxLikes  *int
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// FeedSortColumns sort_by 白名单到实际列的映射
var FeedSortColumns = map[string]string{
	"created_at":  "posts.created_at",
	"updated_at":  "posts.updated_at",
	"title":       "posts.title",
	"category":    "posts.category",
	"total_likes": "total_likes",
}

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPostById(ctx context.Context, id uint64) (*model.Post, error)
	GetPosts(ctx context.Context) ([]*model.Post, error)
	GetPostsByUserId(ctx context.Context, userID uint64) ([]*model.Post, error)
	ExistsById(ctx context.Context, id uint64) (bool, error)
	UpdatePostFields(ctx context.Context, id uint64, fields map[string]interface{}) error
	DeletePostCascade(ctx context.Context, id uint64) error
	FeedPosts(ctx context.Context, q *FeedQuery) ([]*model.PostWithLikes, error)
	CountFeedPosts(ctx context.Context, q *FeedQuery) (int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) GetPostById(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	result := s.db.WithContext(ctx).First(post, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return post, nil
}

func (s *PostRepoImpl) GetPosts(ctx context.Context) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) GetPostsByUserId(ctx context.Context, userID uint64) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) ExistsById(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// UpdatePostFields 只更新白名单列，调用方负责映射
func (s *PostRepoImpl) UpdatePostFields(ctx context.Context, id uint64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// DeletePostCascade 在一个事务内删除帖子及其点赞
func (s *PostRepoImpl) DeletePostCascade(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}

// buildFeedQuery 组装过滤+连接+分组后的基础查询，排序与分页由调用处追加。
// 所有调用方输入都走参数绑定，sort 列在服务层过白名单后才会进来。
func (s *PostRepoImpl) buildFeedQuery(ctx context.Context, q *FeedQuery) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&model.Post{}).
		Select("posts.*, COUNT(likes.id) AS total_likes").
		Joins("LEFT JOIN likes ON likes.post_id = posts.id")

	if q.StartDate != nil && q.EndDate != nil {
		query = query.Where("posts.created_at BETWEEN ? AND ?", *q.StartDate, *q.EndDate)
	}
	if q.UserID != 0 {
		query = query.Where("posts.user_id = ?", q.UserID)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where(
			"(posts.title LIKE ? OR posts.description LIKE ? OR posts.content LIKE ?)",
			pattern, pattern, pattern,
		)
	}

	query = query.Group("posts.id")

	// 聚合过滤必须在分组之后
	if q.MinLikes != nil {
		query = query.Having("COUNT(likes.id) >= ?", *q.MinLikes)
	}
	if q.MaxLikes != nil {
		query = query.Having("COUNT(likes.id) <= ?", *q.MaxLikes)
	}

	return query
}

// FeedPosts 过滤、连接、分组、排序、分页后的帖子列表，带点赞数
func (s *PostRepoImpl) FeedPosts(ctx context.Context, q *FeedQuery) ([]*model.PostWithLikes, error) {
	column, ok := FeedSortColumns[q.SortBy]
	if !ok {
		return nil, gorm.ErrInvalidField
	}
	direction := "DESC"
	if q.SortOrder == "asc" {
		direction = "ASC"
	}

	rows := make([]*model.PostWithLikes, 0)
	err := s.buildFeedQuery(ctx, q).
		Order(column + " " + direction).
		Order("posts.id ASC"). // 排序键相同时保证结果确定
		Limit(q.Limit).
		Offset(q.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountFeedPosts 统计过滤后的总数，忽略分页
func (s *PostRepoImpl) CountFeedPosts(ctx context.Context, q *FeedQuery) (int64, error) {
	var count int64
	sub := s.buildFeedQuery(ctx, q)
	err := s.db.WithContext(ctx).
		Table("(?) AS feed", sub).
		Count(&count).Error
	return count, err
}
