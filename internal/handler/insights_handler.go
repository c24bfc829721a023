package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"goat-dashboard/internal/insights"
	"goat-dashboard/internal/model"
	"goat-dashboard/pkg/database"
	"goat-dashboard/pkg/logger"
	"goat-dashboard/prometheus"
)

// InsightsHandler serves the composite dashboard insights payload
type InsightsHandler struct {
	svc *insights.Service
}

func NewInsightsHandler(svc *insights.Service) *InsightsHandler {
	return &InsightsHandler{svc: svc}
}

// GetInsights assembles the dashboard insights: team workload and lead
// conversion from the aggregation service, plus task completion and the
// upcoming shoot schedule for the next seven days.
func (h *InsightsHandler) GetInsights(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordInsightRequest("composite")
	ctx := c.Request().Context()

	workload, err := h.svc.TeamWorkload(ctx)
	if err != nil {
		log.Error("Failed to compute team workload", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to compute insights"})
	}

	conversionRate, err := h.svc.LeadConversionRate(ctx)
	if err != nil {
		log.Error("Failed to compute lead conversion rate", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to compute insights"})
	}

	db := database.GetDB().WithContext(ctx)
	now := time.Now()
	weekAgo := now.AddDate(0, 0, -7)
	weekAhead := now.AddDate(0, 0, 7)

	defer prometheus.TrackDBOperation("query")(time.Now())

	// Task completion over the trailing week
	var completedThisWeek int64
	if err := db.Model(&model.Task{}).
		Where("status = ? AND completed_at >= ?", model.TaskStatusCompleted, weekAgo).
		Count(&completedThisWeek).Error; err != nil {
		log.Error("Failed to count completed tasks", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to compute insights"})
	}

	var createdThisWeek int64
	if err := db.Model(&model.Task{}).
		Where("created_at >= ?", weekAgo).
		Count(&createdThisWeek).Error; err != nil {
		log.Error("Failed to count created tasks", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to compute insights"})
	}

	completionRate := float64(0)
	if createdThisWeek > 0 {
		completionRate = float64(completedThisWeek) / float64(createdThisWeek) * 100
	}

	// Shoots scheduled in the next seven days
	var upcomingShoots []model.Shoot
	if err := db.
		Preload("Client").
		Preload("Assignments.User").
		Where("start_date >= ? AND start_date <= ?", now, weekAhead).
		Order("start_date asc").
		Find(&upcomingShoots).Error; err != nil {
		log.Error("Failed to load upcoming shoots", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to compute insights"})
	}

	log.Info("Insights computed",
		zap.Int("workload_entries", len(workload)),
		zap.Int("upcoming_shoots", len(upcomingShoots)))

	return c.JSON(http.StatusOK, echo.Map{
		"team_workload":        workload,
		"lead_conversion_rate": conversionRate,
		"weekly_tasks": echo.Map{
			"completed":       completedThisWeek,
			"created":         createdThisWeek,
			"completion_rate": completionRate,
		},
		"upcoming_shoots": upcomingShoots,
	})
}
