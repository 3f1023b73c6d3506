package router

import (
	"github.com/lifestream/backend/internal/interfaces/http/handler"
)

// UserRoutes builds the identity route group. Register, login, and
// refresh are public; the JWT middleware skip list must match.
func UserRoutes(authHandler *handler.AuthHandler, userHandler *handler.UserHandler) *DomainGroup {
	users := NewDomainGroup("users", "/users")

	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.POST("/refresh", authHandler.RefreshToken)
	users.POST("/logout", authHandler.Logout)

	users.GET("/profile", userHandler.Profile)
	users.PUT("/update/:id", userHandler.Update)
	users.DELETE("/delete/:id", userHandler.Delete)
	users.PATCH("/toggle-role", userHandler.ToggleRole)

	return users
}

// RequestRoutes builds the blood request route group. Static paths are
// declared before the :id parameter routes.
func RequestRoutes(requestHandler *handler.BloodRequestHandler) *DomainGroup {
	requests := NewDomainGroup("donation", "/requests")

	requests.POST("", requestHandler.Create)
	requests.GET("", requestHandler.List)
	requests.GET("/history", requestHandler.History)
	requests.GET("/my-requests", requestHandler.MyRequests)
	requests.GET("/:id", requestHandler.GetByID)
	requests.PATCH("/:id/fulfill", requestHandler.Fulfill)
	requests.PATCH("/:id/cancel", requestHandler.Cancel)

	return requests
}

// SystemRoutes builds the system route group (health under /api/v1)
func SystemRoutes(systemHandler *handler.SystemHandler) *DomainGroup {
	system := NewDomainGroup("system", "")

	system.GET("/health", systemHandler.Health)

	return system
}
