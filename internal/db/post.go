package db

import "gorm.io/gorm"

// Post 定义了文章模型。
// Date 为创建时生成的展示用日期字符串，编辑文章不会重新生成。
type Post struct {
	gorm.Model
	Title    string `gorm:"unique;not null"`
	Subtitle string
	Date     string `gorm:"not null"`
	Body     string `gorm:"type:text;not null"`
	ImageURL string
	UserID   uint
	User     User
	Comments []Comment
}
