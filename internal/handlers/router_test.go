package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/masindi/relief-coordination-api/internal/constants"
	"github.com/masindi/relief-coordination-api/internal/database"
	"github.com/masindi/relief-coordination-api/internal/middleware"
	"github.com/masindi/relief-coordination-api/internal/models"
	"github.com/masindi/relief-coordination-api/internal/repository"
	"github.com/masindi/relief-coordination-api/internal/services"
)

// testEnv wires the full router over an in-memory database, mirroring the
// production route table.
type testEnv struct {
	db               *gorm.DB
	router           *gin.Engine
	authService      *services.AuthService
	incidentService  *services.IncidentService
	donationService  *services.DonationService
	volunteerService *services.VolunteerService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.DisasterIncident{},
		&models.ResourceCategory{},
		&models.Donation{},
		&models.VolunteerTask{},
		&models.VolunteerAssignment{},
	)
	require.NoError(t, err)

	database.SetDB(db)

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

	accountHandler := NewAccountHandler(authService)
	incidentHandler := NewIncidentHandler(incidentService)
	donationHandler := NewDonationHandler(donationService)
	volunteerHandler := NewVolunteerHandler(volunteerService)
	homeHandler := NewHomeHandler(dashboardService)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

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

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &testEnv{
		db:               db,
		router:           r,
		authService:      authService,
		incidentService:  incidentService,
		donationService:  donationService,
		volunteerService: volunteerService,
	}
}

// do performs a request against the test router, JSON-encoding the body.
func (env *testEnv) do(t *testing.T, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// register creates an account through the HTTP surface and returns its session cookies.
func (env *testEnv) register(t *testing.T, email string, role models.UserRole) []*http.Cookie {
	t.Helper()

	w := env.do(t, http.MethodPost, "/account/register", map[string]interface{}{
		"email":      email,
		"password":   "supersecret",
		"first_name": "Thandi",
		"last_name":  "Ngwenya",
		"role":       string(role),
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
	return cookies
}

func (env *testEnv) createCategory(t *testing.T, name string) *models.ResourceCategory {
	t.Helper()

	category := &models.ResourceCategory{
		Name:        name,
		Description: "Test category",
	}
	require.NoError(t, env.db.Create(category).Error)
	return category
}
