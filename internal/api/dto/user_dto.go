package dto

import "time"

// RegisterDTO 注册
type RegisterDTO struct {
	FullName string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Mobile   string `json:"mobile" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Country  string `json:"country" validate:"required"`
	State    string `json:"state" validate:"required"`
	City     string `json:"city" validate:"required"`
	Pincode  string `json:"pincode" validate:"required"`
	Gender   string `json:"gender"`
}

// CredentialDTO 登录凭证
type CredentialDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResultDTO 登录结果
type LoginResultDTO struct {
	UserID   uint64 `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// UpdateUserDTO 更新用户，仅允许白名单字段；email 不可修改
type UpdateUserDTO struct {
	Email    *string `json:"email"`
	FullName *string `json:"name"`
	Password *string `json:"password"`
	Mobile   *string `json:"mobile"`
	Address  *string `json:"address"`
	Country  *string `json:"country"`
	State    *string `json:"state"`
	City     *string `json:"city"`
	Pincode  *string `json:"pincode"`
	Gender   *string `json:"gender"`
}

// UserDTO 用户
type UserDTO struct {
	ID        uint64    `json:"user_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Address   string    `json:"address"`
	Country   string    `json:"country"`
	State     string    `json:"state"`
	City      string    `json:"city"`
	Pincode   string    `json:"pincode"`
	Gender    string    `json:"gender"`
	CreatedAt time.Time `json:"created_at"`
}

// UserOverviewDTO 用户及其帖子和点赞数
type UserOverviewDTO struct {
	UserID     uint64              `json:"user_id"`
	Name       string              `json:"name"`
	Email      string              `json:"email"`
	TotalPosts int                 `json:"total_posts"`
	Posts      []PostOverviewEntry `json:"posts"`
}

// PostOverviewEntry 概览中的帖子条目
type PostOverviewEntry struct {
	Title string `json:"title"`
	Likes int64  `json:"likes"`
}
