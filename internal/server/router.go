// Package server wires services and handlers into the HTTP API.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"wealthdesk/internal/config"
	_ "wealthdesk/internal/docs" // Import swagger docs
	"wealthdesk/internal/handlers"
	"wealthdesk/internal/middleware"
	"wealthdesk/internal/models"
	"wealthdesk/internal/repository"
	"wealthdesk/internal/services"
)

// Services is the set of business services behind the API.
type Services struct {
	Auth      services.AuthServicer
	Clients   services.ClientServicer
	Notes     services.NoteServicer
	Tasks     services.TaskServicer
	Folios    services.FolioServicer
	Holdings  services.HoldingServicer
	Dashboard services.DashboardServicer
	Reports   services.ReportServicer
	Audit     services.AuditServicer
}

// NewServices builds every service over repos. now drives "today" for notes,
// holdings and reports.
func NewServices(repos *repository.Repositories, now repository.Clock, cfg *config.Config) *Services {
	return &Services{
		Auth:      services.NewAuthService(),
		Clients:   services.NewClientService(repos),
		Notes:     services.NewNoteService(repos, now),
		Tasks:     services.NewTaskService(repos),
		Folios:    services.NewFolioService(repos),
		Holdings:  services.NewHoldingService(repos, now),
		Dashboard: services.NewDashboardService(repos),
		Reports:   services.NewReportService(repos, now, cfg),
		Audit:     services.NewAuditService(),
	}
}

// NewRouter registers every route on a new gin engine.
func NewRouter(svc *Services) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.Auth)
	clientHandler := handlers.NewClientHandler(svc.Clients, svc.Audit)
	noteHandler := handlers.NewNoteHandler(svc.Notes)
	taskHandler := handlers.NewTaskHandler(svc.Tasks)
	folioHandler := handlers.NewFolioHandler(svc.Folios)
	holdingHandler := handlers.NewHoldingHandler(svc.Holdings, svc.Audit)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard)
	reportHandler := handlers.NewReportHandler(svc.Reports)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/auth/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/me", authHandler.Me)
	protected.GET("/dashboard", dashboardHandler.GetDashboard)
	protected.GET("/portfolio/summary", holdingHandler.GetFirmSummary)

	clients := protected.Group("/clients")
	clients.GET("", clientHandler.ListClients)
	clients.POST("", clientHandler.CreateClient)
	clients.GET("/export", clientHandler.ExportClients)
	clients.POST("/import", clientHandler.ImportClients)
	clients.GET("/:id", clientHandler.GetClient)
	clients.PUT("/:id", clientHandler.UpdateClient)
	clients.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), clientHandler.DeleteClient)
	clients.POST("/:id/archive", clientHandler.ArchiveClient)
	clients.GET("/:id/notes", noteHandler.ListNotes)
	clients.POST("/:id/notes", noteHandler.AddNote)
	clients.GET("/:id/folios", folioHandler.ListFolios)
	clients.POST("/:id/folios", folioHandler.AddFolio)
	clients.GET("/:id/holdings", holdingHandler.ListHoldings)
	clients.POST("/:id/holdings", holdingHandler.AddHolding)
	clients.GET("/:id/portfolio", holdingHandler.GetPortfolio)
	clients.GET("/:id/report/:format", reportHandler.GetReport)

	notes := protected.Group("/notes")
	notes.PUT("/:id", noteHandler.UpdateNote)
	notes.DELETE("/:id", noteHandler.DeleteNote)

	folios := protected.Group("/folios")
	folios.PUT("/:id", folioHandler.UpdateFolio)
	folios.DELETE("/:id", folioHandler.DeleteFolio)

	holdings := protected.Group("/holdings")
	holdings.GET("/:id", holdingHandler.GetHolding)
	holdings.PUT("/:id", holdingHandler.UpdateHolding)
	holdings.PATCH("/:id/price", holdingHandler.UpdatePrice)
	holdings.DELETE("/:id", holdingHandler.DeleteHolding)

	tasks := protected.Group("/tasks")
	tasks.GET("", taskHandler.ListTasks)
	tasks.POST("", taskHandler.CreateTask)
	tasks.GET("/board", taskHandler.TaskBoard)
	tasks.GET("/:id", taskHandler.GetTask)
	tasks.PUT("/:id", taskHandler.UpdateTask)
	tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
	tasks.DELETE("/:id", taskHandler.DeleteTask)

	return router
}
