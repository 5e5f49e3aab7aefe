package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/penlog/internal/db"
	"github.com/penlog/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db       *gorm.DB
	users    *service.UserService
	posts    *service.PostService
	comments *service.CommentService
}

const (
	sessionUserIDKey      = "user_id"
	currentUserContextKey = "__current_user"
)

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB) *API {
	return &API{
		db:       gdb,
		users:    service.NewUserService(gdb),
		posts:    service.NewPostService(gdb),
		comments: service.NewCommentService(gdb),
	}
}

// currentUser 返回当前会话绑定的用户，匿名访问返回 nil。
// 会话只保存用户 ID，身份信息每个请求都重新从存储解析。
func (a *API) currentUser(c *gin.Context) *db.User {
	if cached, exists := c.Get(currentUserContextKey); exists {
		user, _ := cached.(*db.User)
		return user
	}

	var user *db.User
	session := sessions.Default(c)
	if id, ok := session.Get(sessionUserIDKey).(uint); ok {
		if resolved, err := a.users.Get(id); err == nil {
			user = resolved
		}
	}

	c.Set(currentUserContextKey, user)
	return user
}

// AdminRequired 仅放行管理员角色，其余请求（含匿名）一律 403。
func (a *API) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.currentUser(c).IsAdmin() {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// renderHTML 渲染模板时自动附加当前用户、闪现消息与年份。
func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	user := a.currentUser(c)
	payload["user"] = user
	payload["loggedIn"] = user != nil
	payload["isAdmin"] = user.IsAdmin()
	payload["flashes"] = takeFlashes(c)
	payload["year"] = time.Now().Year()

	c.HTML(status, template, payload)
}
