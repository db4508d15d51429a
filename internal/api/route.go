package api

import (
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "pong",
			})
		})

		userGroup := apiGroup.Group("/users")
		{
			userGroup.POST("", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.GET("", group.UserHandler.GetUsers)
			userGroup.GET("/overview", group.UserHandler.GetUsersOverview)
			userGroup.PUT("/:user_id", group.UserHandler.UpdateUser)
			userGroup.DELETE("/:user_id", group.UserHandler.DeleteUser)
		}

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.POST("", group.PostHandler.CreatePost)
			postGroup.GET("", group.PostHandler.GetPosts)
			postGroup.GET("/feed", group.PostHandler.Feed)
			postGroup.GET("/export", group.ExportHandler.ExportPosts)
			postGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
			postGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
		}

		likeGroup := apiGroup.Group("/likes")
		{
			likeGroup.POST("", group.LikeHandler.LikePost)
			likeGroup.GET("", group.LikeHandler.GetLikes)
			likeGroup.DELETE("/:like_id", group.LikeHandler.DeleteLike)
			likeGroup.GET("/user/:user_id", group.LikeHandler.GetUserLikedPosts)
		}
	}

	return r
}
