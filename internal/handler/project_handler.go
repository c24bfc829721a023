package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"goat-dashboard/internal/model"
	"goat-dashboard/pkg/database"
	"goat-dashboard/pkg/logger"
	"goat-dashboard/prometheus"
)

// ProjectRequest defines the structure for project creation/update requests
type ProjectRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ClientID    string     `json:"client_id"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// projectWithCounts decorates a project with its open and total task counts
type projectWithCounts struct {
	model.Project
	TaskCount     int64 `json:"task_count"`
	OpenTaskCount int64 `json:"open_task_count"`
}

// ListProjects handles retrieving projects with optional filtering
func ListProjects(c echo.Context) error {
	log := logger.FromContext(c)

	db := database.GetDB()
	query := db.Preload("Client")

	if clientID := c.QueryParam("client_id"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if status := c.QueryParam("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var projects []model.Project
	if result := query.Order("created_at desc").Find(&projects); result.Error != nil {
		log.Error("Failed to list projects", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve projects"})
	}

	decorated := make([]projectWithCounts, 0, len(projects))
	for _, project := range projects {
		entry := projectWithCounts{Project: project}
		db.Model(&model.Task{}).Where("project_id = ?", project.ID).Count(&entry.TaskCount)
		db.Model(&model.Task{}).
			Where("project_id = ? AND status IN ?", project.ID, []string{model.TaskStatusPending, model.TaskStatusInProgress}).
			Count(&entry.OpenTaskCount)
		decorated = append(decorated, entry)
	}

	log.Info("Projects retrieved successfully", zap.Int("count", len(decorated)))
	return c.JSON(http.StatusOK, decorated)
}

// GetProject handles retrieving a single project by ID
func GetProject(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var project model.Project
	result := database.GetDB().Preload("Client").First(&project, "id = ?", id)
	if result.Error != nil {
		log.Warn("Project not found", zap.String("project_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Project not found"})
	}

	return c.JSON(http.StatusOK, project)
}

// CreateProject handles creating a new project
func CreateProject(c echo.Context) error {
	log := logger.FromContext(c)

	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" || req.ClientID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and client_id are required"})
	}

	// The referenced client must exist
	var client model.Client
	if result := database.GetDB().First(&client, "id = ?", req.ClientID); result.Error != nil {
		log.Warn("Client not found for project", zap.String("client_id", req.ClientID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Client not found"})
	}

	project := model.Project{
		Name:        req.Name,
		Description: req.Description,
		ClientID:    req.ClientID,
		Status:      req.Status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&project); result.Error != nil {
		log.Error("Failed to create project", zap.String("name", req.Name), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create project"})
	}

	log.Info("Project created successfully",
		zap.String("project_id", project.ID),
		zap.String("name", project.Name),
		zap.String("client_id", project.ClientID))
	return c.JSON(http.StatusCreated, project)
}

// UpdateProject handles updating an existing project
func UpdateProject(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("project_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var project model.Project
	result := database.GetDB().First(&project, "id = ?", id)
	if result.Error != nil {
		log.Warn("Project not found for update", zap.String("project_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Project not found"})
	}

	project.Name = req.Name
	project.Description = req.Description
	if req.ClientID != "" {
		project.ClientID = req.ClientID
	}
	if req.Status != "" {
		project.Status = req.Status
	}
	project.StartDate = req.StartDate
	project.EndDate = req.EndDate

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&project); result.Error != nil {
		log.Error("Failed to update project", zap.String("project_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update project"})
	}

	log.Info("Project updated successfully", zap.String("project_id", id))
	return c.JSON(http.StatusOK, project)
}

// DeleteProject handles deleting a project
func DeleteProject(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := database.GetDB().Delete(&model.Project{}, "id = ?", id)
	if result.Error != nil {
		log.Error("Failed to delete project", zap.String("project_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete project"})
	}
	if result.RowsAffected == 0 {
		log.Warn("Project not found for deletion", zap.String("project_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Project not found"})
	}

	log.Info("Project deleted successfully", zap.String("project_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Project deleted successfully"})
}
