package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"goat-dashboard/internal/model"
	"goat-dashboard/pkg/database"
	"goat-dashboard/pkg/logger"
	"goat-dashboard/prometheus"
)

// EditingTaskRequest defines the structure for editing task creation/update requests
type EditingTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ShootID     *string    `json:"shoot_id"`
	AssigneeID  *string    `json:"assignee_id"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

func editingTaskQuery(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Assignee").
		Preload("Shoot.Client").
		Preload("Comments.User")
}

// ListEditingTasks handles retrieving editing tasks with optional filtering
func ListEditingTasks(c echo.Context) error {
	log := logger.FromContext(c)

	query := editingTaskQuery(database.GetDB())

	if assigneeID := c.QueryParam("assignee_id"); assigneeID != "" {
		query = query.Where("assignee_id = ?", assigneeID)
	}
	if status := c.QueryParam("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if priority := c.QueryParam("priority"); priority != "" {
		query = query.Where("priority = ?", priority)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var tasks []model.EditingTask
	if result := query.Order("created_at desc").Find(&tasks); result.Error != nil {
		log.Error("Failed to list editing tasks", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve editing tasks"})
	}

	log.Info("Editing tasks retrieved successfully", zap.Int("count", len(tasks)))
	return c.JSON(http.StatusOK, tasks)
}

// GetEditingTask handles retrieving a single editing task by ID
func GetEditingTask(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var task model.EditingTask
	result := editingTaskQuery(database.GetDB()).First(&task, "id = ?", id)
	if result.Error != nil {
		log.Warn("Editing task not found", zap.String("editing_task_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Editing task not found"})
	}

	return c.JSON(http.StatusOK, task)
}

// CreateEditingTask handles creating a new editing task. Fresh tasks start
// in the "editing" status.
func CreateEditingTask(c echo.Context) error {
	log := logger.FromContext(c)

	var req EditingTaskRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	if req.Priority != "" && !model.ValidPriority(req.Priority) {
		log.Warn("Invalid editing task priority", zap.String("priority", req.Priority))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid priority"})
	}

	task := model.EditingTask{
		Title:       req.Title,
		Description: req.Description,
		ShootID:     req.ShootID,
		AssigneeID:  req.AssigneeID,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&task); result.Error != nil {
		log.Error("Failed to create editing task", zap.String("title", req.Title), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create editing task"})
	}

	log.Info("Editing task created successfully",
		zap.String("editing_task_id", task.ID),
		zap.String("title", task.Title))
	return c.JSON(http.StatusCreated, task)
}

// UpdateEditingTask handles updating an editing task. Moving to "approved"
// stamps ApprovedAt; leaving it clears the stamp.
func UpdateEditingTask(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req EditingTaskRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("editing_task_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Status != "" && !model.ValidEditingStatus(req.Status) {
		log.Warn("Invalid editing status requested",
			zap.String("editing_task_id", id),
			zap.String("status", req.Status))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid editing status"})
	}
	if req.Priority != "" && !model.ValidPriority(req.Priority) {
		log.Warn("Invalid editing task priority", zap.String("priority", req.Priority))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid priority"})
	}

	var task model.EditingTask
	result := database.GetDB().First(&task, "id = ?", id)
	if result.Error != nil {
		log.Warn("Editing task not found for update", zap.String("editing_task_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Editing task not found"})
	}

	task.Title = req.Title
	task.Description = req.Description
	task.ShootID = req.ShootID
	task.AssigneeID = req.AssigneeID
	if req.Priority != "" {
		task.Priority = req.Priority
	}
	task.DueDate = req.DueDate

	if req.Status != "" && req.Status != task.Status {
		task.Status = req.Status
		if req.Status == model.EditingStatusApproved {
			now := time.Now()
			task.ApprovedAt = &now
		} else {
			task.ApprovedAt = nil
		}
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&task); result.Error != nil {
		log.Error("Failed to update editing task", zap.String("editing_task_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update editing task"})
	}

	log.Info("Editing task updated successfully",
		zap.String("editing_task_id", id),
		zap.String("status", task.Status))
	return c.JSON(http.StatusOK, task)
}

// ListEditingTaskComments handles retrieving an editing task's comments
func ListEditingTaskComments(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var task model.EditingTask
	if result := database.GetDB().First(&task, "id = ?", id); result.Error != nil {
		log.Warn("Editing task not found", zap.String("editing_task_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Editing task not found"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var comments []model.Comment
	if result := database.GetDB().
		Preload("User").
		Where("editing_task_id = ?", id).
		Order("timestamp asc").
		Find(&comments); result.Error != nil {
		log.Error("Failed to list comments", zap.String("editing_task_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve comments"})
	}

	return c.JSON(http.StatusOK, comments)
}

// CreateEditingTaskComment adds review feedback to an editing task
func CreateEditingTaskComment(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req struct {
		Content string `json:"content"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("editing_task_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "content is required"})
	}

	var task model.EditingTask
	if result := database.GetDB().First(&task, "id = ?", id); result.Error != nil {
		log.Warn("Editing task not found for comment", zap.String("editing_task_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Editing task not found"})
	}

	userID, _ := c.Get("user_id").(string)

	comment := model.Comment{
		EditingTaskID: id,
		UserID:        userID,
		Content:       req.Content,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&comment); result.Error != nil {
		log.Error("Failed to create comment", zap.String("editing_task_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create comment"})
	}

	log.Info("Comment added",
		zap.String("editing_task_id", id),
		zap.String("comment_id", comment.ID))
	return c.JSON(http.StatusCreated, comment)
}

// DeleteEditingTask handles deleting an editing task
func DeleteEditingTask(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := database.GetDB().Delete(&model.EditingTask{}, "id = ?", id)
	if result.Error != nil {
		log.Error("Failed to delete editing task", zap.String("editing_task_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete editing task"})
	}
	if result.RowsAffected == 0 {
		log.Warn("Editing task not found for deletion", zap.String("editing_task_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Editing task not found"})
	}

	log.Info("Editing task deleted successfully", zap.String("editing_task_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Editing task deleted successfully"})
}
