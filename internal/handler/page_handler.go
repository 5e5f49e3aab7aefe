package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ShowAbout 渲染关于页面
func (a *API) ShowAbout(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "about.html", gin.H{
		"title": "关于",
	})
}

// ShowContact 渲染联系页面
func (a *API) ShowContact(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "contact.html", gin.H{
		"title": "联系",
	})
}
