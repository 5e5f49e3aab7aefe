package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/penlog/internal/config"
	"github.com/penlog/internal/db"
	"github.com/penlog/internal/router"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	gdb, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// 按配置引导管理员账号
	if err := db.EnsureAdmin(gdb, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to ensure admin account: %v", err)
	}

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(gdb, cfg)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
