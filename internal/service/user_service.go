package service

import (
	"errors"
	"strings"

	"github.com/penlog/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrUnknownEmail  = errors.New("no account for email")
	ErrWrongPassword = errors.New("password does not match")
	ErrUserNotFound  = errors.New("user not found")
)

// UserService wraps user related database operations.
type UserService struct {
	db *gorm.DB
}

// RegisterInput represents fields accepted when registering a user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// NewUserService creates a UserService instance.
func NewUserService(gdb *gorm.DB) *UserService {
	return &UserService{db: gdb}
}

// Register creates a user with a bcrypt hashed password.
// 邮箱按存储值精确匹配（区分大小写），重复时返回 ErrEmailTaken。
func (s *UserService) Register(input RegisterInput) (*db.User, error) {
	email := strings.TrimSpace(input.Email)

	var existing db.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// bcrypt.DefaultCost（工作因子 10），库内部生成随机盐并嵌入哈希串
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := db.User{
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		Password: string(hashed),
		Role:     db.RoleUser,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Authenticate verifies credentials and returns the matching user.
// 刻意区分"查无此邮箱"与"密码错误"两种失败，对应登录页的不同提示。
func (s *UserService) Authenticate(email, password string) (*db.User, error) {
	var user db.User
	if err := s.db.Where("email = ?", strings.TrimSpace(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownEmail
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}

	return &user, nil
}

// Get fetches a user by id.
func (s *UserService) Get(id uint) (*db.User, error) {
	var user db.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
