package service

import (
	"errors"
	"strings"

	"github.com/penlog/internal/db"
	"gorm.io/gorm"
)

var ErrCommentEmpty = errors.New("comment text is empty")

// CommentService wraps comment related database operations.
type CommentService struct {
	db *gorm.DB
}

// NewCommentService creates a CommentService instance.
func NewCommentService(gdb *gorm.DB) *CommentService {
	return &CommentService{db: gdb}
}

// CreateForPost persists a comment bound to the given post and author.
func (s *CommentService) CreateForPost(postID, authorID uint, text string) (*db.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrCommentEmpty
	}

	var post db.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	comment := db.Comment{
		Text:   text,
		UserID: authorID,
		PostID: post.ID,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	return &comment, nil
}
