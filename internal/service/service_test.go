package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/penlog/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.User{}, &db.Post{}, &db.Comment{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return gdb
}

func mustRegister(t *testing.T, users *UserService, name, email, password string) *db.User {
	t.Helper()
	user, err := users.Register(RegisterInput{Name: name, Email: email, Password: password})
	if err != nil {
		t.Fatalf("failed to register %s: %v", email, err)
	}
	return user
}

func mustCreatePost(t *testing.T, posts *PostService, input PostInput) *db.Post {
	t.Helper()
	post, err := posts.Create(input)
	if err != nil {
		t.Fatalf("failed to create post %q: %v", input.Title, err)
	}
	return post
}
