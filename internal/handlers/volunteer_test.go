package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/masindi/relief-coordination-api/internal/models"
)

// VolunteerHandlerTestSuite defines the test suite for VolunteerHandler
type VolunteerHandlerTestSuite struct {
	suite.Suite
	env *testEnv
}

// SetupTest runs before each test
func (suite *VolunteerHandlerTestSuite) SetupTest() {
	suite.env = setupTestEnv(suite.T())
}

// createTask inserts a task directly, defaulting to an open task starting tomorrow.
func (suite *VolunteerHandlerTestSuite) createTask(title string, required int) *models.VolunteerTask {
	task := &models.VolunteerTask{
		Title:              title,
		Description:        "Help out",
		TaskType:           "Logistics",
		Location:           "Community hall",
		RequiredVolunteers: required,
		StartDate:          time.Now().Add(24 * time.Hour),
		EndDate:            time.Now().Add(48 * time.Hour),
		Status:             models.TaskStatusOpen,
	}
	suite.Require().NoError(suite.env.db.Create(task).Error)
	return task
}

func (suite *VolunteerHandlerTestSuite) reloadTask(id uuid.UUID) *models.VolunteerTask {
	var task models.VolunteerTask
	suite.Require().NoError(suite.env.db.First(&task, "id = ?", id).Error)
	return &task
}

func (suite *VolunteerHandlerTestSuite) TestTasks_OpenFutureSoonestFirst() {
	t := suite.T()

	later := suite.createTask("Later", 5)
	suite.Require().NoError(suite.env.db.Model(later).Update("start_date", time.Now().Add(72*time.Hour)).Error)
	suite.createTask("Soon", 5)

	// Tasks that already started or are no longer Open stay out of the listing.
	past := suite.createTask("Past", 5)
	suite.Require().NoError(suite.env.db.Model(past).Update("start_date", time.Now().Add(-time.Hour)).Error)
	closed := suite.createTask("Closed", 5)
	suite.Require().NoError(suite.env.db.Model(closed).Update("status", models.TaskStatusInProgress).Error)

	w := suite.env.do(t, http.MethodGet, "/volunteer/tasks", nil, nil)
	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Tasks []struct {
			Title string `json:"title"`
		} `json:"tasks"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Tasks, 2)
	suite.Equal("Soon", body.Tasks[0].Title)
	suite.Equal("Later", body.Tasks[1].Title)
}

func (suite *VolunteerHandlerTestSuite) TestTaskDetails_NotFound() {
	t := suite.T()

	w := suite.env.do(t, http.MethodGet, "/volunteer/task-details/"+uuid.NewString(), nil, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *VolunteerHandlerTestSuite) TestJoinTask_Success() {
	t := suite.T()

	cookies := suite.env.register(t, "volunteer@example.com", models.RoleVolunteer)
	task := suite.createTask("Distribute food", 3)

	w := suite.env.do(t, http.MethodPost, "/volunteer/join-task/"+task.ID.String(), nil, cookies)
	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/volunteer/my-assignments", w.Header().Get("Location"))

	reloaded := suite.reloadTask(task.ID)
	suite.Equal(1, reloaded.CurrentVolunteers)
	suite.Equal(models.TaskStatusOpen, reloaded.Status)

	var count int64
	suite.Require().NoError(suite.env.db.Model(&models.VolunteerAssignment{}).
		Where("task_id = ?", task.ID).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *VolunteerHandlerTestSuite) TestJoinTask_TwiceIsRejected() {
	t := suite.T()

	cookies := suite.env.register(t, "volunteer@example.com", models.RoleVolunteer)
	task := suite.createTask("Distribute food", 3)

	suite.env.do(t, http.MethodPost, "/volunteer/join-task/"+task.ID.String(), nil, cookies)
	w := suite.env.do(t, http.MethodPost, "/volunteer/join-task/"+task.ID.String(), nil, cookies)

	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/volunteer/task-details/"+task.ID.String(), w.Header().Get("Location"))

	// Counter and assignment rows are untouched by the rejected attempt.
	suite.Equal(1, suite.reloadTask(task.ID).CurrentVolunteers)
	var count int64
	suite.Require().NoError(suite.env.db.Model(&models.VolunteerAssignment{}).
		Where("task_id = ?", task.ID).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *VolunteerHandlerTestSuite) TestJoinTask_FullTaskIsRejected() {
	t := suite.T()

	first := suite.env.register(t, "first@example.com", models.RoleVolunteer)
	second := suite.env.register(t, "second@example.com", models.RoleVolunteer)
	task := suite.createTask("Small crew", 1)

	w := suite.env.do(t, http.MethodPost, "/volunteer/join-task/"+task.ID.String(), nil, first)
	suite.Equal(http.StatusFound, w.Code)

	// Filling the task flips it to InProgress.
	reloaded := suite.reloadTask(task.ID)
	suite.Equal(1, reloaded.CurrentVolunteers)
	suite.Equal(models.TaskStatusInProgress, reloaded.Status)

	w = suite.env.do(t, http.MethodPost, "/volunteer/join-task/"+task.ID.String(), nil, second)
	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/volunteer/task-details/"+task.ID.String(), w.Header().Get("Location"))

	reloaded = suite.reloadTask(task.ID)
	suite.Equal(1, reloaded.CurrentVolunteers)
	var count int64
	suite.Require().NoError(suite.env.db.Model(&models.VolunteerAssignment{}).
		Where("task_id = ?", task.ID).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *VolunteerHandlerTestSuite) TestJoinTask_NotFound() {
	t := suite.T()

	cookies := suite.env.register(t, "volunteer@example.com", models.RoleVolunteer)
	w := suite.env.do(t, http.MethodPost, "/volunteer/join-task/"+uuid.NewString(), nil, cookies)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *VolunteerHandlerTestSuite) TestMyAssignments_CarriesJoinFlash() {
	t := suite.T()

	cookies := suite.env.register(t, "volunteer@example.com", models.RoleVolunteer)
	task := suite.createTask("Distribute food", 3)

	w := suite.env.do(t, http.MethodPost, "/volunteer/join-task/"+task.ID.String(), nil, cookies)
	suite.Equal(http.StatusFound, w.Code)
	// The join response re-sets the session cookie with the flash inside it.
	if updated := w.Result().Cookies(); len(updated) > 0 {
		cookies = updated
	}

	w = suite.env.do(t, http.MethodGet, "/volunteer/my-assignments", nil, cookies)
	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Assignments []struct {
			Status string `json:"status"`
			Task   *struct {
				Title string `json:"title"`
			} `json:"task"`
		} `json:"assignments"`
		Messages map[string][]string `json:"messages"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Assignments, 1)
	suite.Equal(string(models.AssignmentStatusAssigned), body.Assignments[0].Status)
	suite.Require().NotNil(body.Assignments[0].Task)
	suite.Equal("Distribute food", body.Assignments[0].Task.Title)
	suite.NotEmpty(body.Messages["success"])
}

func (suite *VolunteerHandlerTestSuite) TestUpdateHours_Owner() {
	t := suite.T()

	cookies := suite.env.register(t, "volunteer@example.com", models.RoleVolunteer)
	task := suite.createTask("Distribute food", 3)
	suite.env.do(t, http.MethodPost, "/volunteer/join-task/"+task.ID.String(), nil, cookies)

	var assignment models.VolunteerAssignment
	suite.Require().NoError(suite.env.db.First(&assignment, "task_id = ?", task.ID).Error)

	w := suite.env.do(t, http.MethodPost, "/volunteer/update-hours/"+assignment.ID.String(), map[string]interface{}{
		"hours_worked": 6.5,
		"notes":        "Loaded trucks all morning",
	}, cookies)
	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/volunteer/my-assignments", w.Header().Get("Location"))

	suite.Require().NoError(suite.env.db.First(&assignment, "id = ?", assignment.ID).Error)
	suite.Require().NotNil(assignment.HoursWorked)
	suite.Equal(6.5, *assignment.HoursWorked)
	suite.Equal("Loaded trucks all morning", assignment.Notes)
	suite.Equal(models.AssignmentStatusCompleted, assignment.Status)
}

func (suite *VolunteerHandlerTestSuite) TestUpdateHours_ZeroHoursAccepted() {
	t := suite.T()

	cookies := suite.env.register(t, "volunteer@example.com", models.RoleVolunteer)
	task := suite.createTask("Distribute food", 3)
	suite.env.do(t, http.MethodPost, "/volunteer/join-task/"+task.ID.String(), nil, cookies)

	var assignment models.VolunteerAssignment
	suite.Require().NoError(suite.env.db.First(&assignment, "task_id = ?", task.ID).Error)

	// Zero is the bottom of the allowed range, not a missing value.
	w := suite.env.do(t, http.MethodPost, "/volunteer/update-hours/"+assignment.ID.String(), map[string]interface{}{
		"hours_worked": 0,
		"notes":        "Shift cancelled before it started",
	}, cookies)
	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/volunteer/my-assignments", w.Header().Get("Location"))

	suite.Require().NoError(suite.env.db.First(&assignment, "id = ?", assignment.ID).Error)
	suite.Require().NotNil(assignment.HoursWorked)
	suite.Equal(0.0, *assignment.HoursWorked)
	suite.Equal(models.AssignmentStatusCompleted, assignment.Status)
}

func (suite *VolunteerHandlerTestSuite) TestUpdateHours_NonOwnerForbidden() {
	t := suite.T()

	owner := suite.env.register(t, "owner@example.com", models.RoleVolunteer)
	intruder := suite.env.register(t, "intruder@example.com", models.RoleVolunteer)
	task := suite.createTask("Distribute food", 3)
	suite.env.do(t, http.MethodPost, "/volunteer/join-task/"+task.ID.String(), nil, owner)

	var assignment models.VolunteerAssignment
	suite.Require().NoError(suite.env.db.First(&assignment, "task_id = ?", task.ID).Error)

	w := suite.env.do(t, http.MethodPost, "/volunteer/update-hours/"+assignment.ID.String(), map[string]interface{}{
		"hours_worked": 2.0,
	}, intruder)
	suite.Equal(http.StatusForbidden, w.Code)

	suite.Require().NoError(suite.env.db.First(&assignment, "id = ?", assignment.ID).Error)
	suite.Nil(assignment.HoursWorked)
	suite.Equal(models.AssignmentStatusAssigned, assignment.Status)
}

func (suite *VolunteerHandlerTestSuite) TestUpdateHours_AdminAllowed() {
	t := suite.T()

	owner := suite.env.register(t, "owner@example.com", models.RoleVolunteer)
	admin := suite.env.register(t, "admin@example.com", models.RoleAdmin)
	task := suite.createTask("Distribute food", 3)
	suite.env.do(t, http.MethodPost, "/volunteer/join-task/"+task.ID.String(), nil, owner)

	var assignment models.VolunteerAssignment
	suite.Require().NoError(suite.env.db.First(&assignment, "task_id = ?", task.ID).Error)

	w := suite.env.do(t, http.MethodPost, "/volunteer/update-hours/"+assignment.ID.String(), map[string]interface{}{
		"hours_worked": 4.0,
	}, admin)
	suite.Equal(http.StatusFound, w.Code)

	suite.Require().NoError(suite.env.db.First(&assignment, "id = ?", assignment.ID).Error)
	suite.Require().NotNil(assignment.HoursWorked)
	suite.Equal(4.0, *assignment.HoursWorked)
}

func (suite *VolunteerHandlerTestSuite) TestUpdateHours_NotFound() {
	t := suite.T()

	cookies := suite.env.register(t, "volunteer@example.com", models.RoleVolunteer)
	w := suite.env.do(t, http.MethodPost, "/volunteer/update-hours/"+uuid.NewString(), map[string]interface{}{
		"hours_worked": 1.0,
	}, cookies)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *VolunteerHandlerTestSuite) TestCreateTask_AdminOnly() {
	t := suite.T()

	volunteer := suite.env.register(t, "volunteer@example.com", models.RoleVolunteer)
	admin := suite.env.register(t, "admin@example.com", models.RoleAdmin)

	payload := map[string]interface{}{
		"title":               "Sandbag the riverbank",
		"description":         "Flood defences along the east bank",
		"task_type":           "Flood response",
		"location":            "East bank",
		"required_volunteers": 10,
		"start_date":          time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"end_date":            time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	}

	w := suite.env.do(t, http.MethodPost, "/volunteer/create-task", payload, volunteer)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.env.do(t, http.MethodPost, "/volunteer/create-task", payload, admin)
	suite.Equal(http.StatusCreated, w.Code)

	var created struct {
		ID     uuid.UUID `json:"id"`
		Status string    `json:"status"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.Equal(string(models.TaskStatusOpen), created.Status)

	task := suite.reloadTask(created.ID)
	suite.Equal("Sandbag the riverbank", task.Title)
	suite.Equal(0, task.CurrentVolunteers)
}

func (suite *VolunteerHandlerTestSuite) TestReliefFlow_EndToEnd() {
	t := suite.T()

	admin := suite.env.register(t, "admin@example.com", models.RoleAdmin)
	volunteer := suite.env.register(t, "a@b.com", models.RoleVolunteer)

	// Report an incident.
	w := suite.env.do(t, http.MethodPost, "/incident/report", map[string]interface{}{
		"title":         "Flood",
		"description":   "River burst its banks",
		"incident_type": "Flood",
		"location":      "Lower fields",
		"severity":      "High",
	}, volunteer)
	suite.Equal(http.StatusFound, w.Code)

	var incident models.DisasterIncident
	suite.Require().NoError(suite.env.db.First(&incident, "title = ?", "Flood").Error)

	// Admin creates a one-person task against it.
	w = suite.env.do(t, http.MethodPost, "/volunteer/create-task", map[string]interface{}{
		"incident_id":         incident.ID.String(),
		"title":               "Evacuate livestock",
		"description":         "Move animals to high ground",
		"task_type":           "Evacuation",
		"location":            "Lower fields",
		"required_volunteers": 1,
		"start_date":          time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"end_date":            time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	}, admin)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var created struct {
		ID uuid.UUID `json:"id"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))

	// Volunteer joins; the task fills and flips to InProgress.
	w = suite.env.do(t, http.MethodPost, "/volunteer/join-task/"+created.ID.String(), nil, volunteer)
	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/volunteer/my-assignments", w.Header().Get("Location"))

	task := suite.reloadTask(created.ID)
	suite.Equal(models.TaskStatusInProgress, task.Status)
	suite.Equal(1, task.CurrentVolunteers)

	var assignments []models.VolunteerAssignment
	suite.Require().NoError(suite.env.db.Where("task_id = ?", created.ID).Find(&assignments).Error)
	suite.Require().Len(assignments, 1)
	suite.Equal(models.AssignmentStatusAssigned, assignments[0].Status)
}

// TestVolunteerHandlerTestSuite runs the test suite
func TestVolunteerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VolunteerHandlerTestSuite))
}
