package main

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/masindi/relief-coordination-api/internal/config"
	"github.com/masindi/relief-coordination-api/internal/constants"
	"github.com/masindi/relief-coordination-api/internal/database"
	"github.com/masindi/relief-coordination-api/internal/handlers"
	"github.com/masindi/relief-coordination-api/internal/middleware"
	"github.com/masindi/relief-coordination-api/internal/models"
	"github.com/masindi/relief-coordination-api/internal/repository"
	"github.com/masindi/relief-coordination-api/internal/services"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg, logger); err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		logger.Fatal("failed to add indexes", zap.Error(err))
	}
	if err := database.SeedCategories(database.GetDB()); err != nil {
		logger.Fatal("failed to seed categories", zap.Error(err))
	}

	r := gin.Default()

	store, err := newSessionStore(cfg)
	if err != nil {
		logger.Fatal("failed to create session store", zap.Error(err))
	}
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	incidentRepo := repository.NewIncidentRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	authService := services.NewAuthService(userRepo)
	incidentService := services.NewIncidentService(incidentRepo)
	donationService := services.NewDonationService(donationRepo, categoryRepo)
	volunteerService := services.NewVolunteerService(taskRepo, incidentRepo)
	dashboardService := services.NewDashboardService(userRepo, incidentRepo, donationRepo, taskRepo)

	accountHandler := handlers.NewAccountHandler(authService)
	incidentHandler := handlers.NewIncidentHandler(incidentService)
	donationHandler := handlers.NewDonationHandler(donationService)
	volunteerHandler := handlers.NewVolunteerHandler(volunteerService)
	homeHandler := handlers.NewHomeHandler(dashboardService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Relief coordination service is running",
		})
	})

	r.GET("/", homeHandler.Index)

	account := r.Group("/account")
	{
		account.POST("/register", accountHandler.Register)
		account.POST("/login", accountHandler.Login)
		account.GET("/logout", accountHandler.Logout)
		account.GET("/me", middleware.RequireAuth(), accountHandler.Me)
	}

	incident := r.Group("/incident")
	{
		incident.POST("/report", middleware.RequireAuth(), incidentHandler.Report)
		incident.GET("/list", incidentHandler.List)
		incident.GET("/details/:id", incidentHandler.Details)
	}

	donation := r.Group("/donation")
	{
		donation.POST("/donate", middleware.RequireAuth(), donationHandler.Donate)
		donation.GET("/my-donations", middleware.RequireAuth(), donationHandler.MyDonations)
		donation.GET("/all", donationHandler.All)
		donation.GET("/categories", donationHandler.Categories)
	}

	volunteer := r.Group("/volunteer")
	{
		volunteer.GET("/tasks", volunteerHandler.Tasks)
		volunteer.GET("/task-details/:id", volunteerHandler.TaskDetails)
		volunteer.POST("/join-task/:id", middleware.RequireAuth(), volunteerHandler.JoinTask)
		volunteer.GET("/my-assignments", middleware.RequireAuth(), volunteerHandler.MyAssignments)
		volunteer.POST("/update-hours/:id", middleware.RequireAuth(), volunteerHandler.UpdateHours)
		volunteer.POST("/create-task", middleware.RequireAuth(), middleware.RequireRole(models.RoleAdmin), volunteerHandler.CreateTask)
	}

	logger.Info("server starting", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

// newSessionStore uses Redis when configured, falling back to the cookie store.
func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	isProduction := cfg.GinMode == "release"

	var store sessions.Store
	if cfg.RedisHost != "" {
		redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
		rs, err := redisStore.NewStore(
			10,
			"tcp",
			redisAddr,
			"",
			"",
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			return nil, err
		}
		store = rs
	} else {
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // Lax
	})

	return store, nil
}
