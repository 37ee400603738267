// File: internal/router/router.go
package router

import (
	"project-hub/internal/cache"
	"project-hub/internal/database"
	"project-hub/internal/guard"
	"project-hub/internal/handler"
	"project-hub/internal/handler/assistant"
	"project-hub/internal/handler/auth"
	"project-hub/internal/handler/projects"
	"project-hub/internal/handler/tasks"
	"project-hub/internal/handler/users"
	"project-hub/internal/middleware"
	"project-hub/internal/service"

	"github.com/labstack/echo/v4"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, tokens *service.TokenService, ai *service.Assistant, cookie auth.CookieConfig) {
	g := guard.New(db)
	requireAuth := middleware.RequireAuth(tokens)

	api := e.Group("/api")

	// 註冊與登入不需要 token
	api.POST("/auth/register", auth.RegisterHandler(db, tokens, cookie))
	api.POST("/auth/login", auth.LoginHandler(db, tokens, cookie))

	// 以下皆需登入
	authed := api.Group("", requireAuth)
	authed.GET("/ping", handler.PingHandler(db, cch))
	authed.POST("/auth/logout", auth.LogoutHandler(tokens, cookie))

	me := authed.Group("/users/me")
	me.GET("", users.GetMeHandler(db))
	me.DELETE("", users.DeleteMeHandler(db, tokens, cookie))

	p := authed.Group("/projects")
	p.GET("", projects.ListProjectsHandler(db))
	p.POST("", projects.CreateProjectHandler(db))
	p.PUT("/:id", projects.UpdateProjectHandler(db, g))
	p.DELETE("/:id", projects.DeleteProjectHandler(db, g))

	t := authed.Group("/tasks")
	t.GET("", tasks.ListTasksHandler(db))
	t.POST("", tasks.CreateTaskHandler(db, g))
	t.PUT("/:id", tasks.UpdateTaskHandler(db, g))
	t.DELETE("/:id", tasks.DeleteTaskHandler(db, g))

	a := authed.Group("/ai")
	a.POST("/suggestions", assistant.SuggestionsHandler(db, ai))
	a.POST("/analyze", assistant.AnalyzeHandler(db, ai))
}
