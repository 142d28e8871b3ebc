package routes

import (
	"net/http"

	"worknest_backend/internal/handlers"
	"worknest_backend/ws"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes attaches every route group to the engine. Handlers own
// their own sub-groups; this is the single place the URL layout lives.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, wsHandler *ws.WebSocketHandler, authMW gin.HandlerFunc) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		h.AuthHandler.RegisterRoutes(api)
		h.UserHandler.RegisterRoutes(api, authMW)
		h.JobHandler.RegisterRoutes(api, authMW)
		h.ApplicationHandler.RegisterRoutes(api, authMW)
		h.InterviewHandler.RegisterRoutes(api, authMW)
	}

	// Artifact serving sits outside the versioned API group; the URLs the
	// storage layer hands out are rooted at /files.
	h.FileHandler.RegisterRoutes(router)

	// Signaling side channel for interview rooms
	router.GET("/ws/interview", wsHandler.ServeWS)
}
