package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"budokan-backend-go/internal/middleware"
	"budokan-backend-go/internal/store"
	"budokan-backend-go/internal/token"
)

// SetupRoutes wires every handler under /api/v1 plus the /health and /metrics
// endpoints. Global middleware (logging, recovery, CORS) is applied to the
// router before this is called.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	tokens *token.Manager,
	identity *store.IdentityStore,
	commerce *store.CommerceStore,
	memberships *store.MembershipStore,
	sessions *store.SessionRequestStore,
	content *store.ContentStore,
) {
	authMW := middleware.NewAuthMiddleware(tokens)

	authHandler := NewAuthHandler(identity, tokens)
	userHandler := NewUserHandler(identity, content)
	productHandler := NewProductHandler(commerce)
	commerceHandler := NewCommerceHandler(commerce)
	membershipHandler := NewMembershipHandler(memberships)
	sessionHandler := NewSessionHandler(sessions, content)
	contentHandler := NewContentHandler(content, memberships)

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authMW.VerifyToken(), authHandler.Logout)
		}

		usersGroup := apiV1.Group("/users", authMW.VerifyToken())
		{
			usersGroup.GET("/me", userHandler.Me)
			usersGroup.POST("/me/progress", userHandler.UpdateProgress)
		}

		productsGroup := apiV1.Group("/products")
		{
			productsGroup.GET("", productHandler.List)
			productsGroup.GET("/:id", productHandler.Get)

			teacherGroup := productsGroup.Group("", authMW.VerifyToken(), authMW.RequireTeacher())
			{
				teacherGroup.POST("", productHandler.Create)
				teacherGroup.PATCH("/:id", productHandler.Update)
				teacherGroup.DELETE("/:id", productHandler.Delete)
				teacherGroup.GET("/sales", productHandler.Sales)
			}
		}

		cartGroup := apiV1.Group("/cart", authMW.VerifyToken())
		{
			cartGroup.GET("", commerceHandler.Cart)
			cartGroup.POST("/items", commerceHandler.AddToCart)
			cartGroup.PUT("/items/:productId", commerceHandler.UpdateQuantity)
			cartGroup.DELETE("/items/:productId", commerceHandler.RemoveFromCart)
		}

		ordersGroup := apiV1.Group("/orders", authMW.VerifyToken())
		{
			ordersGroup.POST("", commerceHandler.Checkout)
			ordersGroup.GET("", commerceHandler.Orders)
			ordersGroup.GET("/products", commerceHandler.PurchasedProducts)
		}

		membershipGroup := apiV1.Group("/membership")
		{
			membershipGroup.GET("/plans", membershipHandler.Plans)
			membershipGroup.GET("", authMW.VerifyToken(), membershipHandler.Mine)
			membershipGroup.POST("/subscribe", authMW.VerifyToken(), membershipHandler.Subscribe)
			membershipGroup.POST("/cancel", authMW.VerifyToken(), membershipHandler.Cancel)
			membershipGroup.GET("/entitlement", authMW.VerifyToken(), membershipHandler.Entitlement)
		}

		sessionsGroup := apiV1.Group("/sessions", authMW.VerifyToken())
		{
			sessionsGroup.POST("", sessionHandler.Create)
			sessionsGroup.GET("", sessionHandler.Mine)
			sessionsGroup.GET("/pending", authMW.RequireTeacher(), sessionHandler.Pending)
			sessionsGroup.GET("/queue", authMW.RequireTeacher(), sessionHandler.Queue)
			sessionsGroup.GET("/:id", sessionHandler.Get)
			sessionsGroup.POST("/:id/approve", authMW.RequireTeacher(), sessionHandler.Approve)
			sessionsGroup.POST("/:id/reject", authMW.RequireTeacher(), sessionHandler.Reject)
		}

		apiV1.GET("/techniques", contentHandler.Techniques)
		apiV1.GET("/techniques/:id", authMW.VerifyToken(), contentHandler.Technique)
		apiV1.GET("/training", contentHandler.Courses)
		apiV1.GET("/training/:id", authMW.VerifyToken(), contentHandler.Course)
		apiV1.GET("/events", contentHandler.Events)
		apiV1.GET("/testimonials", contentHandler.Testimonials)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("API routes configured under /api/v1")
}
