package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/coursebase/catalog-api/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(courseHandler *CourseHandler, limiter *middleware.RateLimiter, tm *middleware.TokenManager, allowedOrigins string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	config := cors.DefaultConfig()
	if allowedOrigins != "" {
		config.AllowOrigins = strings.Split(allowedOrigins, ",")
	} else {
		config.AllowAllOrigins = true
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "OPTIONS"}
	r.Use(cors.New(config))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		courses := api.Group("/courses")
		courses.Use(middleware.OptionalAuth(tm))
		if limiter != nil {
			courses.Use(limiter.Limit("courses", 120, 1*time.Minute))
		}
		{
			courses.GET("", courseHandler.List)
			courses.GET("/all", courseHandler.ListAll)
			courses.GET("/summaries", courseHandler.Summaries)
			courses.GET("/trending", courseHandler.Trending)
			courses.GET("/:id", courseHandler.Details)
		}
	}

	return r
}
