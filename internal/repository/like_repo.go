package repository

import (
	"Inkwell/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type LikeRepo interface {
	CreateLike(ctx context.Context, like *model.Like) error
	GetLikeById(ctx context.Context, id uint64) (*model.Like, error)
	GetLikes(ctx context.Context) ([]*model.Like, error)
	GetLikesByUserId(ctx context.Context, userID uint64) ([]*model.Like, error)
	DeleteLike(ctx context.Context, id uint64) error
	CheckLikeExists(ctx context.Context, userID, postID uint64) (bool, error)
	CountByPostId(ctx context.Context, postID uint64) (int64, error)
}

type LikeRepoImpl struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) LikeRepo {
	return &LikeRepoImpl{db: db}
}

func (s *LikeRepoImpl) CreateLike(ctx context.Context, like *model.Like) error {
	return s.db.WithContext(ctx).Create(like).Error
}

func (s *LikeRepoImpl) GetLikeById(ctx context.Context, id uint64) (*model.Like, error) {
	like := &model.Like{}
	result := s.db.WithContext(ctx).First(like, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return like, nil
}

func (s *LikeRepoImpl) GetLikes(ctx context.Context) ([]*model.Like, error) {
	likes := make([]*model.Like, 0)
	result := s.db.WithContext(ctx).Find(&likes)
	if result.Error != nil {
		return nil, result.Error
	}
	return likes, nil
}

func (s *LikeRepoImpl) GetLikesByUserId(ctx context.Context, userID uint64) ([]*model.Like, error) {
	likes := make([]*model.Like, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&likes)
	if result.Error != nil {
		return nil, result.Error
	}
	return likes, nil
}

func (s *LikeRepoImpl) DeleteLike(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Like{}, id).Error
}

func (s *LikeRepoImpl) CheckLikeExists(ctx context.Context, userID, postID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (s *LikeRepoImpl) CountByPostId(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}
