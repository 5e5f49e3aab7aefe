package db

import "gorm.io/gorm"

// Comment 定义了评论模型
type Comment struct {
	gorm.Model
	Text   string `gorm:"type:text;not null"`
	UserID uint
	User   User
	PostID uint
}
