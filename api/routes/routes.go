package routes

import (
	"net/http"

	"github.com/ArowuTest/committee-manager/internal/handlers"
	"github.com/ArowuTest/committee-manager/internal/middleware"
	"github.com/ArowuTest/committee-manager/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies holds all handler instances needed for routing
type HandlerDependencies struct {
	AuthHandler      *handlers.AuthHandler
	CommitteeHandler *handlers.CommitteeHandler
	Tokens           *jwt.TokenService
}

// SetupRouter sets up the router
func SetupRouter(deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		public.POST("/auth/login", deps.AuthHandler.Login)

		public.GET("/committee", deps.CommitteeHandler.GetStatus)
		public.GET("/committee/members", deps.CommitteeHandler.GetMembers)
	}

	protected := router.Group("/api/v1/committee")
	protected.Use(middleware.JWTAuthMiddleware(deps.Tokens))
	{
		protected.POST("/members", deps.CommitteeHandler.AddMember)
		protected.POST("/payments", deps.CommitteeHandler.CollectPayment)
		protected.POST("/draws", deps.CommitteeHandler.ConductLuckyDraw)
	}

	return router
}
