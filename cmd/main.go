package main

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"goat-dashboard/internal/auth"
	"goat-dashboard/internal/handler"
	"goat-dashboard/internal/insights"
	"goat-dashboard/internal/lead"
	"goat-dashboard/internal/middleware"
	"goat-dashboard/internal/model"
	"goat-dashboard/pkg/config"
	"goat-dashboard/pkg/database"
	"goat-dashboard/pkg/jwtutil"
	"goat-dashboard/pkg/logger"
	"goat-dashboard/prometheus"
	"gorm.io/gorm"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load("goat-dashboard")
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	log.Info("Starting dashboard service...", cfg.LogConfig()...)

	// Initialize database
	db, err := database.InitDB(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	if err := database.MigrateModels(
		&model.User{},
		&model.Client{},
		&model.Project{},
		&model.Shoot{},
		&model.ShootAssignment{},
		&model.Task{},
		&model.TimeLog{},
		&model.EditingTask{},
		&model.Comment{},
		&model.Lead{},
		&model.Invoice{},
		&model.Revenue{},
		&model.Expense{},
		&model.Script{},
		&model.ScriptVersion{},
		&model.Notification{},
		&model.FAQ{},
	); err != nil {
		log.Fatal("Failed to migrate models", zap.Error(err))
	}
	log.Info("Database schema migrated")

	if err := seedFixtureUsers(db); err != nil {
		log.Fatal("Failed to seed fixture users", zap.Error(err))
	}

	// Authentication against the fixture credential table
	provider, err := auth.NewStaticProvider(auth.DashboardUsers())
	if err != nil {
		log.Fatal("Failed to build credential provider", zap.Error(err))
	}
	authService := auth.NewService(provider)
	jwt := jwtutil.NewJWTUtil(&cfg.JWT)

	leadService := lead.NewService(lead.NewGormStore(db))
	insightsService := insights.NewService(insights.NewGormStore(db))

	authHandler := handler.NewAuthHandler(authService, jwt)
	leadHandler := handler.NewLeadHandler(leadService)
	insightsHandler := handler.NewInsightsHandler(insightsService)
	revenueHandler := handler.NewRevenueHandler(insightsService)

	// Initialize Echo framework
	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(prometheus.MetricsMiddleware())

	// Public routes - no authentication required
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.MetricsHandler)

	// Authentication routes
	authGroup := e.Group("/auth")
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/verify", authHandler.Verify)

	// API routes - all require authentication
	api := e.Group("/api")
	api.Use(middleware.AuthMiddleware(jwt))

	// Lead pipeline
	leads := api.Group("/leads")
	leads.GET("", leadHandler.ListLeads)
	leads.POST("", leadHandler.CreateLead)
	leads.GET("/:id", leadHandler.GetLead)
	leads.PUT("/:id", leadHandler.UpdateLead)
	leads.DELETE("/:id", leadHandler.DeleteLead)
	leads.PUT("/:id/status", leadHandler.UpdateLeadStatus)
	leads.POST("/:id/assign", leadHandler.AssignLead)

	// Dashboard insights and revenue analytics
	api.GET("/insights", insightsHandler.GetInsights)
	revenue := api.Group("/revenue")
	revenue.GET("/overview", revenueHandler.Overview)
	revenue.GET("/by-client", revenueHandler.ByClient)
	revenue.GET("/trends", revenueHandler.Trends)
	revenue.GET("", handler.ListRevenue)
	revenue.POST("", handler.CreateRevenue)

	expenses := api.Group("/expenses")
	expenses.GET("", handler.ListExpenses)
	expenses.POST("", handler.CreateExpense)

	// Clients
	clients := api.Group("/clients")
	clients.GET("", handler.ListClients)
	clients.POST("", handler.CreateClient)
	clients.GET("/:id", handler.GetClient)
	clients.PUT("/:id", handler.UpdateClient)
	clients.DELETE("/:id", handler.DeleteClient)

	// Projects
	projects := api.Group("/projects")
	projects.GET("", handler.ListProjects)
	projects.POST("", handler.CreateProject)
	projects.GET("/:id", handler.GetProject)
	projects.PUT("/:id", handler.UpdateProject)
	projects.DELETE("/:id", handler.DeleteProject)

	// Shoots and crew assignment
	shoots := api.Group("/shoots")
	shoots.GET("", handler.ListShoots)
	shoots.POST("", handler.CreateShoot)
	shoots.GET("/:id", handler.GetShoot)
	shoots.PUT("/:id", handler.UpdateShoot)
	shoots.DELETE("/:id", handler.DeleteShoot)
	shoots.POST("/:id/assign-team", handler.AssignShootTeam)

	// Tasks and time logs
	tasks := api.Group("/tasks")
	tasks.GET("", handler.ListTasks)
	tasks.POST("", handler.CreateTask)
	tasks.GET("/:id", handler.GetTask)
	tasks.PUT("/:id", handler.UpdateTask)
	tasks.DELETE("/:id", handler.DeleteTask)
	tasks.PUT("/:id/status", handler.UpdateTaskStatus)
	tasks.GET("/:id/time-logs", handler.ListTaskTimeLogs)
	tasks.POST("/:id/time-logs", handler.CreateTaskTimeLog)

	// Editing workflow
	editing := api.Group("/editing-tasks")
	editing.GET("", handler.ListEditingTasks)
	editing.POST("", handler.CreateEditingTask)
	editing.GET("/:id", handler.GetEditingTask)
	editing.PUT("/:id", handler.UpdateEditingTask)
	editing.DELETE("/:id", handler.DeleteEditingTask)
	editing.GET("/:id/comments", handler.ListEditingTaskComments)
	editing.POST("/:id/comments", handler.CreateEditingTaskComment)

	// Invoices
	invoices := api.Group("/invoices")
	invoices.GET("", handler.ListInvoices)
	invoices.POST("", handler.CreateInvoice)
	invoices.GET("/:id", handler.GetInvoice)
	invoices.PUT("/:id", handler.UpdateInvoice)

	// Scripts and generation
	scripts := api.Group("/scripts")
	scripts.GET("", handler.ListScripts)
	scripts.POST("", handler.CreateScript)
	scripts.GET("/:id", handler.GetScript)
	scripts.PUT("/:id", handler.UpdateScript)
	scripts.DELETE("/:id", handler.DeleteScript)
	scripts.POST("/:id/versions", handler.CreateScriptVersion)
	api.POST("/ai/generate-script", handler.GenerateScript)

	// Notifications
	notifications := api.Group("/notifications")
	notifications.GET("", handler.ListNotifications)
	notifications.POST("", handler.CreateNotification)
	notifications.PUT("/:id/read", handler.MarkNotificationRead)
	notifications.DELETE("/:id", handler.DeleteNotification)

	// FAQ
	faqs := api.Group("/faqs")
	faqs.GET("", handler.ListFAQs)
	faqs.POST("", handler.CreateFAQ)
	faqs.GET("/:id", handler.GetFAQ)
	faqs.PUT("/:id", handler.UpdateFAQ)
	faqs.DELETE("/:id", handler.DeleteFAQ)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}

// seedFixtureUsers makes sure the fixture identities exist as user rows so
// that assignee and creator preloads resolve
func seedFixtureUsers(db *gorm.DB) error {
	for _, seed := range auth.DashboardUsers() {
		user := model.User{
			ID:          seed.ID,
			Email:       seed.Email,
			Name:        seed.Name,
			Role:        seed.Role,
			Designation: seed.Designation,
		}
		if err := db.Where("id = ?", seed.ID).FirstOrCreate(&user).Error; err != nil {
			return err
		}
	}
	return nil
}
