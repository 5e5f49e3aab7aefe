package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/penlog/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubHTMLRender struct{}

type stubHTMLInstance struct {
	name string
	data interface{}
}

func (r *stubHTMLRender) Instance(name string, data interface{}) render.Render {
	return &stubHTMLInstance{name: name, data: data}
}

func (r *stubHTMLInstance) Render(http.ResponseWriter) error {
	return nil
}

func (r *stubHTMLInstance) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.User{}, &db.Post{}, &db.Comment{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return gdb
}

func newTestRouter(t *testing.T, gdb *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := NewAPI(gdb)

	router := gin.New()
	router.HTMLRender = &stubHTMLRender{}
	router.Use(sessions.Sessions("penlog_session", cookie.NewStore([]byte("test-secret"))))

	router.GET("/", api.ShowHome)
	router.GET("/register", api.ShowRegisterPage)
	router.POST("/register", api.Register)
	router.GET("/login", api.ShowLoginPage)
	router.POST("/login", api.Login)
	router.GET("/logout", api.Logout)
	router.GET("/post/:id", api.ShowPost)
	router.POST("/post/:id", api.CreateComment)
	router.GET("/about", api.ShowAbout)
	router.GET("/contact", api.ShowContact)

	admin := router.Group("")
	admin.Use(api.AdminRequired())
	{
		admin.GET("/new-post", api.ShowNewPost)
		admin.POST("/new-post", api.CreatePost)
		admin.GET("/edit-post/:id", api.ShowEditPost)
		admin.POST("/edit-post/:id", api.UpdatePost)
		admin.GET("/delete/:id", api.DeletePost)
	}

	return router
}

// browser 在多次请求间携带会话 cookie，模拟同一个访问者。
type browser struct {
	router  *gin.Engine
	cookies map[string]*http.Cookie
}

func newBrowser(router *gin.Engine) *browser {
	return &browser{router: router, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(t *testing.T, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range b.cookies {
		req.AddCookie(c)
	}

	recorder := httptest.NewRecorder()
	b.router.ServeHTTP(recorder, req)

	for _, c := range recorder.Result().Cookies() {
		b.cookies[c.Name] = c
	}
	return recorder
}

func registerAlice(t *testing.T, b *browser) {
	t.Helper()
	rec := b.do(t, http.MethodPost, "/register", url.Values{
		"name":     {"Alice"},
		"email":    {"alice@x.com"},
		"password": {"pw123"},
	})
	if rec.Code != http.StatusFound {
		t.Fatalf("expected register redirect, got %d", rec.Code)
	}
}

func seedAdmin(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	if err := db.EnsureAdmin(gdb, "Admin", "admin@penlog.local", "admin123"); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
}

func loginAdmin(t *testing.T, b *browser) {
	t.Helper()
	rec := b.do(t, http.MethodPost, "/login", url.Values{
		"email":    {"admin@penlog.local"},
		"password": {"admin123"},
	})
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/" {
		t.Fatalf("expected admin login redirect to /, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}
