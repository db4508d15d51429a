package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeSvc service.LikeService
}

func NewLikeHandler(likeSvc service.LikeService) *LikeHandler {
	return &LikeHandler{
		likeSvc: likeSvc,
	}
}

func (s *LikeHandler) LikePost(c *gin.Context) {
	var req dto.CreateLikeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	like, err := s.likeSvc.LikePost(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"like_id": like.ID})
}

func (s *LikeHandler) GetLikes(c *gin.Context) {
	likes, err := s.likeSvc.GetLikes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, likes)
}

func (s *LikeHandler) DeleteLike(c *gin.Context) {
	likeID, err := strconv.ParseUint(c.Param("like_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.likeSvc.DeleteLike(c.Request.Context(), likeID); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessMessage(c, "Like deleted successfully")
}

func (s *LikeHandler) GetUserLikedPosts(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	posts, err := s.likeSvc.GetUserLikedPosts(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, posts)
}
