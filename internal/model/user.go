package model

import (
	"time"
)

type User struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	FullName  string `gorm:"type:varchar(100);not null" json:"full_name"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex:idx_email" json:"email"`
	Password  string `gorm:"type:varchar(255);not null" json:"-"`
	Mobile    string `gorm:"type:varchar(30)" json:"mobile"`
	Address   string `gorm:"type:varchar(255)" json:"address"`
	Country   string `gorm:"type:varchar(100)" json:"country"`
	State     string `gorm:"type:varchar(100)" json:"state"`
	City      string `gorm:"type:varchar(100)" json:"city"`
	Pincode   string `gorm:"type:varchar(20)" json:"pincode"`
	Gender    string `gorm:"type:varchar(20)" json:"gender"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联关系
	Posts []Post `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Likes []Like `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
