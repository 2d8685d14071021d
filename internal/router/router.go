package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/mentortrack/backend/api/handler"
)

type Handlers struct {
	Auth       *apiHandler.AuthHandler
	Dashboard  *apiHandler.DashboardHandler
	Task       *apiHandler.TaskHandler
	Mentorship *apiHandler.MentorshipHandler
	Resource   *apiHandler.ResourceHandler
	Session    *apiHandler.SessionHandler
	Health     *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	// Public surface
	r.GET("/", handlers.Health.Root)
	r.GET("/health", handlers.Health.Check)
	r.POST("/signup", handlers.Auth.Signup)
	r.POST("/login", handlers.Auth.Login)
	r.GET("/logout", handlers.Auth.Logout)

	// Dashboards
	r.GET("/mentor-dashboard", authMiddleware(handlers.Dashboard.Mentor))
	r.GET("/mentee-dashboard", authMiddleware(handlers.Dashboard.Mentee))

	// Tasks
	r.POST("/api/tasks/create", authMiddleware(handlers.Task.Create))
	r.POST("/api/tasks/{id}/update-status", authMiddleware(handlers.Task.UpdateStatus))

	// Resources
	r.POST("/api/resources/create", authMiddleware(handlers.Resource.Create))

	// Mentorships
	r.POST("/api/mentorships/create", authMiddleware(handlers.Mentorship.Create))
	r.POST("/api/mentorships/{id}/progress", authMiddleware(handlers.Mentorship.UpdateProgress))
	r.POST("/api/mentorships/{id}/end", authMiddleware(handlers.Mentorship.End))
	r.GET("/api/mentorships/{id}/tasks", authMiddleware(handlers.Task.List))
	r.GET("/api/mentorships/{id}/sessions", authMiddleware(handlers.Session.ListUpcoming))

	return r
}
