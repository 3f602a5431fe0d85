package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"merchant-portal.backend/internal/domain/entities"
	"merchant-portal.backend/internal/interfaces/http/handlers"
	"merchant-portal.backend/internal/interfaces/http/middleware"
)

const serviceVersion = "1.0.0"

type routeDeps struct {
	authHandler     *handlers.AuthHandler
	merchantHandler *handlers.MerchantHandler
	batchHandler    *handlers.BatchHandler
	dfspHandler     *handlers.DFSPHandler
	auditHandler    *handlers.AuditHandler
	authMiddleware  gin.HandlerFunc
}

// applyCORSMiddleware allows the portal frontend to call the API from
// another origin during development.
func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Idempotency-Key, X-Request-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "merchant-portal-backend",
			"version": serviceVersion,
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, deps routeDeps) {
	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", deps.authHandler.Login)

		authed := auth.Group("")
		authed.Use(deps.authMiddleware)
		{
			authed.POST("/register",
				middleware.RequirePermission(entities.PermissionUserManage),
				deps.authHandler.Register)
			authed.POST("/logout", deps.authHandler.Logout)
			authed.GET("/profile", deps.authHandler.Profile)
		}
	}

	merchants := v1.Group("/merchants")
	merchants.Use(deps.authMiddleware)
	{
		merchants.POST("",
			middleware.RequirePermission(entities.PermissionMerchantCreate),
			middleware.IdempotencyMiddleware(),
			deps.merchantHandler.CreateDraft)

		merchants.PUT("/:id/business",
			middleware.RequirePermission(entities.PermissionMerchantEdit),
			middleware.IdempotencyMiddleware(),
			deps.merchantHandler.SaveBusinessInfo)
		merchants.PUT("/:id/location",
			middleware.RequirePermission(entities.PermissionMerchantEdit),
			middleware.IdempotencyMiddleware(),
			deps.merchantHandler.SaveLocation)
		merchants.PUT("/:id/owner",
			middleware.RequirePermission(entities.PermissionMerchantEdit),
			middleware.IdempotencyMiddleware(),
			deps.merchantHandler.SaveOwner)
		merchants.PUT("/:id/contact",
			middleware.RequirePermission(entities.PermissionMerchantEdit),
			middleware.IdempotencyMiddleware(),
			deps.merchantHandler.SaveContact)

		merchants.POST("/:id/submit",
			middleware.RequirePermission(entities.PermissionMerchantEdit),
			deps.merchantHandler.Submit)

		merchants.POST("/batch",
			middleware.RequirePermission(entities.PermissionMerchantReview),
			deps.batchHandler.Execute)

		merchants.GET("/:id", deps.merchantHandler.Get)
		merchants.GET("", deps.merchantHandler.List)
	}

	dfsps := v1.Group("/dfsps")
	dfsps.Use(deps.authMiddleware)
	{
		dfsps.POST("",
			middleware.RequirePermission(entities.PermissionDFSPManage),
			deps.dfspHandler.Create)
		dfsps.PUT("/:id",
			middleware.RequirePermission(entities.PermissionDFSPManage),
			deps.dfspHandler.Update)
		dfsps.GET("/:id", deps.dfspHandler.Get)
		dfsps.GET("", deps.dfspHandler.List)
	}

	audit := v1.Group("/audit-logs")
	audit.Use(deps.authMiddleware)
	{
		audit.GET("",
			middleware.RequirePermission(entities.PermissionAuditView),
			deps.auditHandler.List)
	}
}
