package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"goat-dashboard/internal/model"
	"goat-dashboard/pkg/database"
	"goat-dashboard/pkg/logger"
	"goat-dashboard/prometheus"
)

// ListNotifications handles retrieving notifications with optional filtering
func ListNotifications(c echo.Context) error {
	log := logger.FromContext(c)

	query := database.GetDB()

	if userID := c.QueryParam("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if notifType := c.QueryParam("type"); notifType != "" {
		query = query.Where("type = ?", notifType)
	}
	if isRead := c.QueryParam("is_read"); isRead != "" {
		read, err := strconv.ParseBool(isRead)
		if err == nil {
			query = query.Where("is_read = ?", read)
		} else {
			log.Warn("Invalid is_read parameter", zap.String("value", isRead), zap.Error(err))
		}
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var notifications []model.Notification
	if result := query.Order("created_at desc").Find(&notifications); result.Error != nil {
		log.Error("Failed to list notifications", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve notifications"})
	}

	return c.JSON(http.StatusOK, notifications)
}

// CreateNotification handles creating a notification
func CreateNotification(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		UserID    string `json:"user_id"`
		Title     string `json:"title"`
		Message   string `json:"message"`
		Type      string `json:"type"`
		ActionURL string `json:"action_url"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.UserID == "" || req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id and title are required"})
	}
	if req.Type != "" && !model.ValidNotificationType(req.Type) {
		log.Warn("Invalid notification type", zap.String("type", req.Type))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid notification type"})
	}

	notification := model.Notification{
		UserID:    req.UserID,
		Title:     req.Title,
		Message:   req.Message,
		Type:      req.Type,
		ActionURL: req.ActionURL,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&notification); result.Error != nil {
		log.Error("Failed to create notification", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create notification"})
	}

	log.Info("Notification created",
		zap.String("notification_id", notification.ID),
		zap.String("user_id", notification.UserID),
		zap.String("type", notification.Type))
	return c.JSON(http.StatusCreated, notification)
}

// MarkNotificationRead marks a notification as read
func MarkNotificationRead(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var notification model.Notification
	result := database.GetDB().First(&notification, "id = ?", id)
	if result.Error != nil {
		log.Warn("Notification not found", zap.String("notification_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Notification not found"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := database.GetDB().Model(&notification).Update("is_read", true).Error; err != nil {
		log.Error("Failed to mark notification read", zap.String("notification_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update notification"})
	}

	notification.IsRead = true
	log.Info("Notification marked read", zap.String("notification_id", id))
	return c.JSON(http.StatusOK, notification)
}

// DeleteNotification handles deleting a notification
func DeleteNotification(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := database.GetDB().Delete(&model.Notification{}, "id = ?", id)
	if result.Error != nil {
		log.Error("Failed to delete notification", zap.String("notification_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete notification"})
	}
	if result.RowsAffected == 0 {
		log.Warn("Notification not found for deletion", zap.String("notification_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Notification not found"})
	}

	log.Info("Notification deleted", zap.String("notification_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Notification deleted successfully"})
}
