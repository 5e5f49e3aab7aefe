package handler

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/penlog/internal/db"
	"github.com/penlog/internal/service"
)

// ShowRegisterPage 渲染注册页面
func (a *API) ShowRegisterPage(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "register.html", gin.H{
		"title": "注册",
	})
}

// Register 处理注册请求，成功后直接建立会话，无需再登录一次
func (a *API) Register(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")

	if name == "" || email == "" || password == "" {
		setFlash(c, "请填写姓名、邮箱和密码")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	user, err := a.users.Register(service.RegisterInput{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			setFlash(c, "这个邮箱已经注册过了，要不要直接登录?")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if !a.establishSession(c, user) {
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// ShowLoginPage 渲染登录页面
func (a *API) ShowLoginPage(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "login.html", gin.H{
		"title": "登录",
	})
}

// Login 处理用户登录请求。
// 查无账号与密码错误给出不同提示，沿用原站点的交互取舍。
func (a *API) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := a.users.Authenticate(email, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownEmail):
			setFlash(c, "查无此邮箱账号")
		case errors.Is(err, service.ErrWrongPassword):
			setFlash(c, "密码错误")
		default:
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if !a.establishSession(c, user) {
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Logout 处理用户登出，无会话时同样成功
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}

// establishSession 将用户 ID 写入会话。
func (a *API) establishSession(c *gin.Context, user *db.User) bool {
	session := sessions.Default(c)
	session.Set(sessionUserIDKey, user.ID)
	if err := session.Save(); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return false
	}
	c.Set(currentUserContextKey, user)
	return true
}
