package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/repository"
	"context"
	"time"
)

type LikeService interface {
	LikePost(ctx context.Context, req *dto.CreateLikeDTO) (*dto.LikeDTO, error)
	GetLikes(ctx context.Context) ([]*dto.LikeDTO, error)
	DeleteLike(ctx context.Context, likeID uint64) error
	GetUserLikedPosts(ctx context.Context, userID uint64) ([]*dto.LikedPostDTO, error)
}

type likeServiceImpl struct {
	likeRepo repository.LikeRepo
	postRepo repository.PostRepo
	userRepo repository.UserRepo
}

func NewLikeService(likeRepo repository.LikeRepo, postRepo repository.PostRepo, userRepo repository.UserRepo) LikeService {
	return &likeServiceImpl{
		likeRepo: likeRepo,
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// LikePost 点赞，同一用户对同一帖子至多一条记录
func (s *likeServiceImpl) LikePost(ctx context.Context, req *dto.CreateLikeDTO) (*dto.LikeDTO, error) {
	if fields := util.ValidateDTO(req); fields != nil {
		return nil, NewValidationError(fields)
	}

	postExists, err := s.postRepo.ExistsById(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if !postExists {
		return nil, ErrPostNotFound
	}

	userExists, err := s.userRepo.ExistsById(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, ErrUserNotFound
	}

	liked, err := s.likeRepo.CheckLikeExists(ctx, req.UserID, req.PostID)
	if err != nil {
		return nil, err
	}
	if liked {
		return nil, ErrActionDuplicate
	}

	like := &model.Like{
		PostID: req.PostID,
		UserID: req.UserID,
	}
	if err = s.likeRepo.CreateLike(ctx, like); err != nil {
		return nil, err
	}

	return toLikeDTO(like), nil
}

func toLikeDTO(like *model.Like) *dto.LikeDTO {
	return &dto.LikeDTO{
		ID:        like.ID,
		PostID:    like.PostID,
		UserID:    like.UserID,
		CreatedAt: like.CreatedAt.Format(time.DateTime),
	}
}

func (s *likeServiceImpl) GetLikes(ctx context.Context) ([]*dto.LikeDTO, error) {
	likes, err := s.likeRepo.GetLikes(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.LikeDTO, len(likes))
	for i, like := range likes {
		out[i] = toLikeDTO(like)
	}
	return out, nil
}

func (s *likeServiceImpl) DeleteLike(ctx context.Context, likeID uint64) error {
	like, err := s.likeRepo.GetLikeById(ctx, likeID)
	if err != nil {
		return err
	}
	if like == nil {
		return ErrLikeNotFound
	}

	return s.likeRepo.DeleteLike(ctx, likeID)
}

// GetUserLikedPosts 用户点赞过的帖子，按点赞时间倒序
func (s *likeServiceImpl) GetUserLikedPosts(ctx context.Context, userID uint64) ([]*dto.LikedPostDTO, error) {
	exists, err := s.userRepo.ExistsById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	likes, err := s.likeRepo.GetLikesByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.LikedPostDTO, 0, len(likes))
	for _, like := range likes {
		post, err := s.postRepo.GetPostById(ctx, like.PostID)
		if err != nil {
			return nil, err
		}
		if post == nil {
			continue
		}
		out = append(out, &dto.LikedPostDTO{
			LikeID:      like.ID,
			LikedAt:     like.CreatedAt.Format(time.DateTime),
			PostID:      post.ID,
			Title:       post.Title,
			Description: post.Description,
			Content:     post.Content,
			Category:    post.Category,
			Image:       post.Image,
			PostOwner:   post.UserID,
			CreatedAt:   post.CreatedAt.Format(time.DateTime),
		})
	}
	return out, nil
}
