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

// TaskRequest defines the structure for task creation/update requests
type TaskRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Priority       string     `json:"priority"`
	ProjectID      *string    `json:"project_id"`
	AssigneeID     *string    `json:"assignee_id"`
	DueDate        *time.Time `json:"due_date"`
	EstimatedHours *float64   `json:"estimated_hours"`
}

// TimeLogRequest defines the structure for time log creation requests
type TimeLogRequest struct {
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Duration  *float64   `json:"duration"`
	Notes     string     `json:"notes"`
}

func taskQuery(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Assignee").
		Preload("Creator").
		Preload("Project").
		Preload("TimeLogs")
}

// ListTasks handles retrieving tasks with optional filtering
func ListTasks(c echo.Context) error {
	log := logger.FromContext(c)

	query := taskQuery(database.GetDB())

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
	var tasks []model.Task
	if result := query.Order("created_at desc").Find(&tasks); result.Error != nil {
		log.Error("Failed to list tasks", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve tasks"})
	}

	log.Info("Tasks retrieved successfully", zap.Int("count", len(tasks)))
	return c.JSON(http.StatusOK, tasks)
}

// GetTask handles retrieving a single task by ID
func GetTask(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var task model.Task
	result := taskQuery(database.GetDB()).First(&task, "id = ?", id)
	if result.Error != nil {
		log.Warn("Task not found", zap.String("task_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Task not found"})
	}

	return c.JSON(http.StatusOK, task)
}

// CreateTask handles creating a new task. Fresh tasks start pending with
// medium priority unless the request says otherwise.
func CreateTask(c echo.Context) error {
	log := logger.FromContext(c)

	var req TaskRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	if req.Priority != "" && !model.ValidPriority(req.Priority) {
		log.Warn("Invalid task priority", zap.String("priority", req.Priority))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid priority"})
	}

	creatorID, _ := c.Get("user_id").(string)

	task := model.Task{
		Title:          req.Title,
		Description:    req.Description,
		Priority:       req.Priority,
		ProjectID:      req.ProjectID,
		AssigneeID:     req.AssigneeID,
		CreatorID:      creatorID,
		DueDate:        req.DueDate,
		EstimatedHours: req.EstimatedHours,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&task); result.Error != nil {
		log.Error("Failed to create task", zap.String("title", req.Title), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create task"})
	}

	log.Info("Task created successfully",
		zap.String("task_id", task.ID),
		zap.String("title", task.Title))
	return c.JSON(http.StatusCreated, task)
}

// UpdateTask handles updating a task's fields. Status changes go through
// UpdateTaskStatus.
func UpdateTask(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req TaskRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("task_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Priority != "" && !model.ValidPriority(req.Priority) {
		log.Warn("Invalid task priority", zap.String("priority", req.Priority))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid priority"})
	}

	var task model.Task
	result := database.GetDB().First(&task, "id = ?", id)
	if result.Error != nil {
		log.Warn("Task not found for update", zap.String("task_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Task not found"})
	}

	task.Title = req.Title
	task.Description = req.Description
	if req.Priority != "" {
		task.Priority = req.Priority
	}
	task.ProjectID = req.ProjectID
	task.AssigneeID = req.AssigneeID
	task.DueDate = req.DueDate
	task.EstimatedHours = req.EstimatedHours

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&task); result.Error != nil {
		log.Error("Failed to update task", zap.String("task_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update task"})
	}

	log.Info("Task updated successfully", zap.String("task_id", id))
	return c.JSON(http.StatusOK, task)
}

// UpdateTaskStatus changes a task's status. Completing a task stamps
// CompletedAt; leaving completed clears it.
func UpdateTaskStatus(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("task_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if !model.ValidTaskStatus(req.Status) {
		log.Warn("Invalid task status requested",
			zap.String("task_id", id),
			zap.String("status", req.Status))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid task status"})
	}

	var task model.Task
	result := database.GetDB().First(&task, "id = ?", id)
	if result.Error != nil {
		log.Warn("Task not found for status change", zap.String("task_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Task not found"})
	}

	task.Status = req.Status
	if req.Status == model.TaskStatusCompleted {
		now := time.Now()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&task); result.Error != nil {
		log.Error("Failed to update task status", zap.String("task_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update task status"})
	}

	log.Info("Task status changed",
		zap.String("task_id", id),
		zap.String("status", task.Status))
	return c.JSON(http.StatusOK, task)
}

// ListTaskTimeLogs handles retrieving a task's time logs
func ListTaskTimeLogs(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var task model.Task
	if result := database.GetDB().First(&task, "id = ?", id); result.Error != nil {
		log.Warn("Task not found", zap.String("task_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Task not found"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var logs []model.TimeLog
	if result := database.GetDB().
		Preload("User").
		Where("task_id = ?", id).
		Order("start_time desc").
		Find(&logs); result.Error != nil {
		log.Error("Failed to list time logs", zap.String("task_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve time logs"})
	}

	return c.JSON(http.StatusOK, logs)
}

// CreateTaskTimeLog records time against a task. A log with a duration
// accumulates the task's actual hours.
func CreateTaskTimeLog(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req TimeLogRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("task_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	db := database.GetDB()
	var task model.Task
	if result := db.First(&task, "id = ?", id); result.Error != nil {
		log.Warn("Task not found for time log", zap.String("task_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Task not found"})
	}

	userID, _ := c.Get("user_id").(string)

	entry := model.TimeLog{
		TaskID:    id,
		UserID:    userID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Duration:  req.Duration,
		Notes:     req.Notes,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		if req.Duration != nil {
			return tx.Model(&task).
				Update("actual_hours", gorm.Expr("actual_hours + ?", *req.Duration)).Error
		}
		return nil
	})
	if err != nil {
		log.Error("Failed to create time log", zap.String("task_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create time log"})
	}

	log.Info("Time log recorded",
		zap.String("task_id", id),
		zap.String("time_log_id", entry.ID))
	return c.JSON(http.StatusCreated, entry)
}

// DeleteTask handles deleting a task
func DeleteTask(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := database.GetDB().Delete(&model.Task{}, "id = ?", id)
	if result.Error != nil {
		log.Error("Failed to delete task", zap.String("task_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete task"})
	}
	if result.RowsAffected == 0 {
		log.Warn("Task not found for deletion", zap.String("task_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Task not found"})
	}

	log.Info("Task deleted successfully", zap.String("task_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Task deleted successfully"})
}
