package service

import (
	"errors"
	"strings"
	"time"

	"github.com/penlog/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrTitleTaken   = errors.New("post title already exists")
)

// 文章创建日期的展示格式，如 "August 30, 2026"
const postDateLayout = "January 2, 2006"

// PostService wraps post related database operations.
type PostService struct {
	db *gorm.DB
}

// PostInput represents fields accepted when creating or updating a post.
type PostInput struct {
	Title    string
	Subtitle string
	Body     string
	ImageURL string
	AuthorID uint
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb}
}

// ListAll returns all posts with their authors preloaded.
// 与原始行为保持一致：不施加排序，按存储默认顺序返回。
func (s *PostService) ListAll() ([]db.Post, error) {
	var posts []db.Post
	if err := s.db.Preload("User").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Get fetches a post by id with its author and comments preloaded.
func (s *PostService) Get(id uint) (*db.Post, error) {
	var post db.Post
	err := s.db.Preload("User").Preload("Comments").Preload("Comments.User").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create persists a post, stamping the creation date.
func (s *PostService) Create(input PostInput) (*db.Post, error) {
	title := strings.TrimSpace(input.Title)
	if err := s.checkTitle(title, 0); err != nil {
		return nil, err
	}

	post := db.Post{
		Title:    title,
		Subtitle: strings.TrimSpace(input.Subtitle),
		Date:     time.Now().Format(postDateLayout),
		Body:     input.Body,
		ImageURL: strings.TrimSpace(input.ImageURL),
		UserID:   input.AuthorID,
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}

	return &post, nil
}

// Update applies updates to an existing post. Date 与 ID 保持不变。
func (s *PostService) Update(id uint, input PostInput) (*db.Post, error) {
	var existing db.Post
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if err := s.checkTitle(title, existing.ID); err != nil {
		return nil, err
	}

	existing.Title = title
	existing.Subtitle = strings.TrimSpace(input.Subtitle)
	existing.Body = input.Body
	existing.ImageURL = strings.TrimSpace(input.ImageURL)
	if input.AuthorID != 0 {
		existing.UserID = input.AuthorID
	}

	if err := s.db.Save(&existing).Error; err != nil {
		return nil, err
	}

	return &existing, nil
}

// Delete removes a post and its comments in a single transaction.
func (s *PostService) Delete(id uint) error {
	var existing db.Post
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	// 级联删除：评论随文章一并删除
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", existing.ID).Delete(&db.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&existing).Error
	})
}

// checkTitle 校验标题在其他文章中不存在，作为唯一索引之外的前置检查。
func (s *PostService) checkTitle(title string, selfID uint) error {
	var other db.Post
	err := s.db.Where("title = ?", title).First(&other).Error
	if err == nil {
		if other.ID != selfID {
			return ErrTitleTaken
		}
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
