package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-lifeline/classifier"
	"go-lifeline/fanout"
	"go-lifeline/handlers"
	"go-lifeline/rooms"
)

func SetupRouter(gw *classifier.Gateway, registry *rooms.Registry, dispatcher *fanout.Dispatcher) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to Lifeline!",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// triage api
	api := r.Group("/api")
	{
		api.POST("/triage/classify", func(c *gin.Context) {
			handlers.ClassifyRequest(c, gw)
		})
		api.POST("/triage/resources", func(c *gin.Context) {
			handlers.PredictResources(c, gw)
		})
		api.POST("/chat", func(c *gin.Context) {
			handlers.Chat(c, gw)
		})
	}

	// realtime channel: handshake, per-session events, stats
	realtime := r.Group("/api/realtime")
	{
		realtime.GET("/connect", func(c *gin.Context) {
			handlers.RealtimeConnect(c, registry)
		})
		realtime.GET("/stats", func(c *gin.Context) {
			handlers.RealtimeStats(c, registry)
		})
		realtime.POST("/:sessionId/join-request", func(c *gin.Context) {
			handlers.JoinRequestRoom(c, registry)
		})
		realtime.POST("/:sessionId/join-chat", func(c *gin.Context) {
			handlers.JoinChatRoom(c, registry)
		})
		realtime.POST("/:sessionId/private-message", func(c *gin.Context) {
			handlers.PrivateMessage(c, registry, dispatcher)
		})
		realtime.POST("/:sessionId/typing", func(c *gin.Context) {
			handlers.Typing(c, registry, dispatcher)
		})
	}

	// notification fanout, called by the request/notification services
	notify := r.Group("/api/notify")
	{
		notify.POST("/request/:id/status", func(c *gin.Context) {
			handlers.NotifyRequestStatus(c, dispatcher)
		})
		notify.POST("/request/:id/updated", func(c *gin.Context) {
			handlers.NotifyRequestUpdated(c, dispatcher)
		})
		notify.POST("/user/:id", func(c *gin.Context) {
			handlers.NotifyUser(c, dispatcher)
		})
		notify.POST("/admins", func(c *gin.Context) {
			handlers.BroadcastToAdmins(c, dispatcher)
		})
	}

	return r
}
