package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"CoBag/internal/handler"
	"CoBag/internal/middleware"
)

func Register(h *server.Hertz) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.CORSMiddleware())
	h.Use(middleware.OpenTelemetryMiddleware())
	// 纯 Bearer token API 不吃 cookie，浏览器表单入口上线后再挂
	// h.Use(middleware.CSRFMiddleware())

	v1 := h.Group("/v1")

	// 认证相关路由
	auth := v1.Group("/auth")
	auth.Use(middleware.AuthRateLimitMiddleware())
	{
		auth.POST("/exchange", handler.ExchangeIdentity)
		auth.POST("/token/refresh", handler.RefreshToken)
	}

	// 用户相关路由
	users := v1.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/me", handler.GetProfile)
		users.PUT("/me", handler.UpdateProfile)
	}

	// 行程路由
	trips := v1.Group("/trips")
	trips.Use(middleware.AuthMiddleware(), middleware.GeneralRateLimitMiddleware())
	{
		trips.POST("", handler.CreateTrip)
		trips.GET("", handler.ListMyTrips)
		trips.GET("/:trip_id", handler.GetTrip)
		trips.POST("/:trip_id/close", handler.CloseTrip)
		trips.GET("/:trip_id/candidates", handler.ListTripCandidates)
	}

	// 货件路由
	shipments := v1.Group("/shipments")
	shipments.Use(middleware.AuthMiddleware(), middleware.GeneralRateLimitMiddleware())
	{
		shipments.POST("", handler.CreateShipment)
		shipments.GET("", handler.ListMyShipments)
		shipments.GET("/:shipment_id", handler.GetShipment)
		shipments.POST("/:shipment_id/close", handler.CloseShipment)
		shipments.GET("/:shipment_id/candidates", handler.ListShipmentCandidates)
	}

	// 匹配生命周期路由
	matches := v1.Group("/matches")
	matches.Use(middleware.AuthMiddleware(), middleware.GeneralRateLimitMiddleware())
	{
		matches.POST("", middleware.ProposeRateLimitMiddleware(), handler.ProposeMatch)
		matches.GET("", handler.ListMyMatches)
		matches.GET("/:match_id", handler.GetMatch)
		matches.POST("/:match_id/accept", handler.AcceptMatch)
		matches.POST("/:match_id/reject", handler.RejectMatch)
		matches.POST("/:match_id/checkpoints/:checkpoint", handler.ConfirmCheckpoint)
		matches.GET("/:match_id/events", handler.StreamMatchEvents)

		// 会话
		matches.POST("/:match_id/messages", handler.SendMessage)
		matches.GET("/:match_id/messages", handler.ListMessages)
		matches.POST("/:match_id/messages/read", handler.MarkMessagesRead)
	}

	// 通知摘要
	notifications := v1.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("/summary", handler.GetNotificationSummary)
	}
}
