package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"klagedok/internal/domain"
	"klagedok/internal/handler"
	"klagedok/internal/middleware"
	"klagedok/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	corsOrigins []string,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	caseH *handler.CaseHandler,
	docH *handler.DocumentHandler,
	accessH *handler.AccessHandler,
	reportH *handler.ReportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Case routes
	cases := protected.Group("/cases")
	cases.GET("", caseH.List)
	cases.GET("/:id", caseH.Get)
	cases.GET("/:id/documents", docH.ListByCase)
	cases.GET("/:id/writers", accessH.Writers)

	// Report routes - caseworker or reviewer capability required
	reports := cases.Group("/:id/reports")
	reports.Use(middleware.RequireCapability(domain.CapabilityCaseworker, domain.CapabilityReviewer))
	reports.GET("/access-matrix.xlsx", reportH.AccessMatrixXLSX)
	reports.GET("/access-matrix.csv", reportH.AccessMatrixCSV)

	// Document routes
	docs := protected.Group("/documents")
	docs.POST("", docH.Create)
	docs.GET("/:id", docH.Get)
	docs.GET("/:id/access", accessH.Evaluate)
	docs.PUT("/:id/content", docH.UploadContent)
	docs.PATCH("/:id/name", docH.Rename)
	docs.PATCH("/:id/kind", docH.ChangeKind)
	docs.POST("/:id/finish", docH.Finish)
	docs.DELETE("/:id", docH.Remove)

	return r
}
