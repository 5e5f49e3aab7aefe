package main

import (
	"fmt"
	"log"
	"os"

	"github.com/penlog/internal/db"
)

func main() {
	// 初始化数据库
	gdb, err := db.Open(os.Getenv("DATABASE_PATH"))
	if err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Admin"
	}
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@penlog.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	// 检查是否已存在管理员
	var count int64
	gdb.Model(&db.User{}).Where("role = ?", db.RoleAdmin).Count(&count)
	if count > 0 {
		fmt.Println("管理员已存在，无需初始化")
		return
	}

	if err := db.EnsureAdmin(gdb, name, email, password); err != nil {
		log.Fatal("创建管理员失败:", err)
	}

	fmt.Println("默认管理员创建成功")
	fmt.Println("邮箱:", email)
	fmt.Println("密码:", password)
}
