package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/penlog/internal/db"
	"github.com/penlog/internal/service"
	"github.com/penlog/internal/view"
)

// ShowHome 渲染首页文章列表
func (a *API) ShowHome(c *gin.Context) {
	posts, err := a.posts.ListAll()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "index.html", gin.H{
			"title": "首页",
			"error": "获取文章列表失败",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "index.html", gin.H{
		"title": "首页",
		"posts": posts,
	})
}

// ShowPost 渲染文章详情与评论
func (a *API) ShowPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	post, err := a.posts.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	a.renderHTML(c, http.StatusOK, "post.html", gin.H{
		"title":    post.Title,
		"post":     post,
		"bodyHTML": renderMarkdown(post.Body),
		"comments": buildCommentViews(post.Comments),
	})
}

// CreateComment 处理文章页的评论提交。
// 匿名提交不落库，提示后重定向到登录页。
func (a *API) CreateComment(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	user := a.currentUser(c)
	if user == nil {
		setFlash(c, "您尚未注册或登录")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if _, err := a.comments.CreateForPost(id, user.ID, c.PostForm("comment")); err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, service.ErrCommentEmpty):
			setFlash(c, "评论内容不能为空")
			c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", id))
		default:
			c.AbortWithStatus(http.StatusInternalServerError)
		}
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", id))
}

// ShowNewPost 渲染新建文章表单
func (a *API) ShowNewPost(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "make_post.html", gin.H{
		"title":      "创建文章",
		"formAction": "/new-post",
	})
}

// CreatePost 创建新文章，作者绑定当前会话用户
func (a *API) CreatePost(c *gin.Context) {
	input := postInputFromForm(c)
	input.AuthorID = a.currentUser(c).ID

	if _, err := a.posts.Create(input); err != nil {
		if errors.Is(err, service.ErrTitleTaken) {
			setFlash(c, "这个标题已经存在，换一个试试")
			c.Redirect(http.StatusFound, "/new-post")
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// ShowEditPost 渲染编辑表单并预填现有内容
func (a *API) ShowEditPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	post, err := a.posts.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	a.renderHTML(c, http.StatusOK, "make_post.html", gin.H{
		"title":      "编辑文章",
		"post":       post,
		"formAction": fmt.Sprintf("/edit-post/%d", post.ID),
	})
}

// UpdatePost 就地覆盖可变字段，创建日期保持不变
func (a *API) UpdatePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	post, err := a.posts.Update(id, postInputFromForm(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, service.ErrTitleTaken):
			setFlash(c, "这个标题已经存在，换一个试试")
			c.Redirect(http.StatusFound, fmt.Sprintf("/edit-post/%d", id))
		default:
			c.AbortWithStatus(http.StatusInternalServerError)
		}
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.ID))
}

// DeletePost 删除文章及其评论后回到首页
func (a *API) DeletePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	if err := a.posts.Delete(id); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// commentView 为模板准备的单条评论数据
type commentView struct {
	Text       string
	AuthorName string
	AvatarURL  string
}

func buildCommentViews(comments []db.Comment) []commentView {
	views := make([]commentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, commentView{
			Text:       comment.Text,
			AuthorName: comment.User.Name,
			AvatarURL:  view.GravatarURL(comment.User.Email),
		})
	}
	return views
}

func postInputFromForm(c *gin.Context) service.PostInput {
	input := service.PostInput{
		Title:    c.PostForm("title"),
		Subtitle: c.PostForm("subtitle"),
		Body:     c.PostForm("body"),
		ImageURL: c.PostForm("img_url"),
	}
	if authorID, err := parseUintForm(c, "author_id"); err == nil {
		input.AuthorID = authorID
	}
	return input
}
