package router

import (
	"vidshare-go/internal/api/handler"
	"vidshare-go/internal/api/middleware"
	"vidshare-go/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	tokens utils.TokenIssuer,
	authLimiter *middleware.IPRateLimiter,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	meHandler *handler.MeHandler,
	videoHandler *handler.VideoHandler,
	searchHandler *handler.SearchHandler,
	commentHandler *handler.CommentHandler,
) {
	authRequired := middleware.AuthRequired(tokens)
	api := r.Group("/api", middleware.OptionalAuth(tokens))

	// --- 认证模块 ---
	auth := api.Group("/auth", middleware.RateLimit(authLimiter))
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/signin", authHandler.Signin)
	}

	// --- 账号模块 ---
	users := api.Group("/users")
	{
		users.GET("", userHandler.ListUsers)
		users.POST("", userHandler.CreateUser)
		users.GET("/:id", userHandler.GetUser)

		usersAuth := users.Group("", authRequired)
		{
			usersAuth.GET("/subscriptions", userHandler.Subscriptions)
			usersAuth.PUT("/:id", userHandler.UpdateUser)
			usersAuth.DELETE("/:id", userHandler.DeleteUser)
			usersAuth.POST("/:id/subscribe", userHandler.ToggleSubscribe)
		}

		me := users.Group("/me", authRequired)
		{
			me.GET("/history", meHandler.History)
			me.GET("/liked-videos", meHandler.LikedVideos)
			me.GET("/watch-later", meHandler.WatchLater)
			me.POST("/watch-later/:videoId", meHandler.AddWatchLater)
			me.DELETE("/watch-later/:videoId", meHandler.RemoveWatchLater)
			me.GET("/notifications", meHandler.Notifications)
			me.POST("/notifications/mark-read", meHandler.MarkNotificationsRead)
		}
	}

	// --- 视频模块 ---
	videos := api.Group("/videos")
	{
		videos.GET("/search", searchHandler.SearchVideos)
		videos.GET("", videoHandler.ListVideos)
		videos.GET("/:id", videoHandler.GetVideo)

		videosAuth := videos.Group("", authRequired)
		{
			videosAuth.GET("/by-channels", videoHandler.ByChannels)
			videosAuth.POST("", videoHandler.CreateVideo)
			videosAuth.PUT("/:id", videoHandler.UpdateVideo)
			videosAuth.DELETE("/:id", videoHandler.DeleteVideo)
			videosAuth.POST("/:id/like", videoHandler.ToggleLike)
			videosAuth.POST("/:id/view", videoHandler.RecordView)
			videosAuth.POST("/:id/history", videoHandler.RecordHistory)
		}
	}

	// --- 评论模块 ---
	comments := api.Group("/comments")
	{
		comments.GET("", commentHandler.ListComments)
		comments.GET("/:id", commentHandler.GetComment)
		comments.GET("/video/:videoId", commentHandler.VideoComments)

		commentsAuth := comments.Group("", authRequired)
		{
			commentsAuth.POST("", commentHandler.CreateComment)
			commentsAuth.PUT("/:id", commentHandler.UpdateComment)
			commentsAuth.DELETE("/:id", commentHandler.DeleteComment)
		}
	}
}
