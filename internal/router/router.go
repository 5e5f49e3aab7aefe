package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/penlog/internal/config"
	"github.com/penlog/internal/handler"
	"gorm.io/gorm"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(gdb *gorm.DB, cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("penlog_session", store))

	// 加载模板
	r.LoadHTMLGlob(cfg.TemplateGlob)

	api := handler.NewAPI(gdb)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 公开路由
	r.GET("/", api.ShowHome)
	r.GET("/register", api.ShowRegisterPage)
	r.POST("/register", api.Register)
	r.GET("/login", api.ShowLoginPage)
	r.POST("/login", api.Login)
	r.GET("/logout", api.Logout)
	r.GET("/post/:id", api.ShowPost)
	r.POST("/post/:id", api.CreateComment)
	r.GET("/about", api.ShowAbout)
	r.GET("/contact", api.ShowContact)

	// 仅管理员可用的文章维护路由
	admin := r.Group("")
	admin.Use(api.AdminRequired())
	{
		admin.GET("/new-post", api.ShowNewPost)
		admin.POST("/new-post", api.CreatePost)
		admin.GET("/edit-post/:id", api.ShowEditPost)
		admin.POST("/edit-post/:id", api.UpdatePost)
		admin.GET("/delete/:id", api.DeletePost)
	}

	return r
}
