package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/repository"
	"context"
	"io"
	log "log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// ImageStore 帖子图片的附件存储
type ImageStore interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

// ImageUpload 上传的图片文件
type ImageUpload struct {
	Filename    string
	Reader      io.Reader
	Size        int64
	ContentType string
}

// feedDateLayouts 高级检索接受的日期格式
var feedDateLayouts = []string{time.DateTime, time.DateOnly}

type PostService interface {
	CreatePost(ctx context.Context, req *dto.CreatePostDTO, image *ImageUpload) (*model.Post, error)
	GetPosts(ctx context.Context) ([]*dto.PostDTO, error)
	UpdatePost(ctx context.Context, postID uint64, req *dto.UpdatePostDTO, image *ImageUpload) error
	DeletePost(ctx context.Context, postID uint64, userID uint64) error
	Feed(ctx context.Context, req *dto.FeedQueryDTO) (*dto.FeedResponseDTO, error)
}

type postServiceImpl struct {
	postRepo repository.PostRepo
	userRepo repository.UserRepo
	images   ImageStore
}

func NewPostService(postRepo repository.PostRepo, userRepo repository.UserRepo, images ImageStore) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		userRepo: userRepo,
		images:   images,
	}
}

// CreatePost 创建帖子，图片必传，上传失败视为致命错误
func (s *postServiceImpl) CreatePost(ctx context.Context, req *dto.CreatePostDTO, image *ImageUpload) (*model.Post, error) {
	fields := util.ValidateDTO(req)
	if fields == nil {
		fields = map[string]string{}
	}
	if image == nil {
		fields["image"] = "Image is required"
	}
	if len(fields) > 0 {
		return nil, NewValidationError(fields)
	}

	exists, err := s.userRepo.ExistsById(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, NewValidationError(map[string]string{"user_id": "User does not exist"})
	}

	imageURL, err := s.uploadImage(ctx, image)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Category:    req.Category,
		Image:       imageURL,
	}
	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postServiceImpl) uploadImage(ctx context.Context, image *ImageUpload) (string, error) {
	objectName := uuid.NewString() + filepath.Ext(image.Filename)
	url, err := s.images.Upload(ctx, objectName, image.Reader, image.Size, image.ContentType)
	if err != nil {
		log.ErrorContext(ctx, "image upload failed", "object", objectName, "err", err)
		return "", ErrImageUpload
	}
	return url, nil
}

func (s *postServiceImpl) GetPosts(ctx context.Context) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.GetPosts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.PostDTO, len(posts))
	for i, post := range posts {
		item, err := toPostDTO(post)
		if err != nil {
			return nil, err
		}
		out[i] = item
	}
	return out, nil
}

func toPostDTO(post *model.Post) (*dto.PostDTO, error) {
	item := &dto.PostDTO{}
	if err := copier.Copy(item, post); err != nil {
		return nil, err
	}
	item.CreatedAt = post.CreatedAt.Format(time.DateTime)
	item.UpdatedAt = post.UpdatedAt.Format(time.DateTime)
	return item, nil
}

// UpdatePost 白名单字段更新，仅帖子所有者可操作
func (s *postServiceImpl) UpdatePost(ctx context.Context, postID uint64, req *dto.UpdatePostDTO, image *ImageUpload) error {
	post, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	exists, err := s.userRepo.ExistsById(ctx, req.UserID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}

	if post.UserID != req.UserID {
		return ErrNotPostOwner
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if image != nil {
		imageURL, upErr := s.uploadImage(ctx, image)
		if upErr != nil {
			return upErr
		}
		fields["image"] = imageURL
	}

	return s.postRepo.UpdatePostFields(ctx, postID, fields)
}

// DeletePost 删除帖子并级联清理点赞，仅帖子所有者可操作
func (s *postServiceImpl) DeletePost(ctx context.Context, postID uint64, userID uint64) error {
	post, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	exists, err := s.userRepo.ExistsById(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}

	if post.UserID != userID {
		return ErrNotPostOwner
	}

	return s.postRepo.DeletePostCascade(ctx, postID)
}

// Feed 高级检索：过滤、搜索、点赞数聚合、排序、分页
func (s *postServiceImpl) Feed(ctx context.Context, req *dto.FeedQueryDTO) (*dto.FeedResponseDTO, error) {
	q, err := s.buildFeedQuery(req)
	if err != nil {
		return nil, err
	}

	rows, err := s.postRepo.FeedPosts(ctx, q)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountFeedPosts(ctx, q)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PostFeedItemDTO, len(rows))
	for i, row := range rows {
		base, err := toPostDTO(&row.Post)
		if err != nil {
			return nil, err
		}
		items[i] = &dto.PostFeedItemDTO{
			PostDTO:    *base,
			TotalLikes: row.TotalLikes,
		}
	}

	return &dto.FeedResponseDTO{
		Status:        "success",
		Page:          req.Page,
		PageSize:      req.PageSize,
		TotalPosts:    total,
		PostsReturned: len(items),
		Posts:         items,
	}, nil
}

func (s *postServiceImpl) buildFeedQuery(req *dto.FeedQueryDTO) (*repository.FeedQuery, error) {
	fields := map[string]string{}

	if req.Page < 1 {
		fields["page"] = "Page must be a positive integer"
	}
	if req.PageSize < 1 {
		fields["page_size"] = "Page Size must be a positive integer"
	}
	if _, ok := repository.FeedSortColumns[req.SortBy]; !ok {
		fields["sort_by"] = "Sort By must be one of: created_at, updated_at, title, category, total_likes"
	}
	if req.SortOrder != "asc" && req.SortOrder != "desc" {
		fields["sort_order"] = "Sort Order must be asc or desc"
	}

	var startDate, endDate *time.Time
	if req.StartDate != "" && req.EndDate != "" {
		start, err := parseFeedDate(req.StartDate)
		if err != nil {
			fields["start_date"] = "Invalid date format"
		} else {
			startDate = &start
		}
		end, err := parseFeedDate(req.EndDate)
		if err != nil {
			fields["end_date"] = "Invalid date format"
		} else {
			endDate = &end
		}
	}

	if len(fields) > 0 {
		return nil, NewValidationError(fields)
	}

	return &repository.FeedQuery{
		StartDate: startDate,
		EndDate:   endDate,
		UserID:    req.UserID,
		Search:    req.Search,
		MinLikes:  req.MinLikes,
		MaxLikes:  req.MaxLikes,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Limit:     req.PageSize,
		Offset:    (req.Page - 1) * req.PageSize,
	}, nil
}

func parseFeedDate(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range feedDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
