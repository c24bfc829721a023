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

// FAQRequest defines the structure for FAQ creation/update requests
type FAQRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Order    int    `json:"order"`
	IsActive *bool  `json:"is_active"`
}

// ListFAQs handles retrieving FAQ entries with optional filtering
func ListFAQs(c echo.Context) error {
	log := logger.FromContext(c)

	query := database.GetDB()

	if category := c.QueryParam("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if isActive := c.QueryParam("is_active"); isActive != "" {
		active, err := strconv.ParseBool(isActive)
		if err == nil {
			query = query.Where("is_active = ?", active)
		} else {
			log.Warn("Invalid is_active parameter", zap.String("value", isActive), zap.Error(err))
		}
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var faqs []model.FAQ
	if result := query.Order("category asc, display_order asc").Find(&faqs); result.Error != nil {
		log.Error("Failed to list FAQs", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve FAQs"})
	}

	return c.JSON(http.StatusOK, faqs)
}

// GetFAQ handles retrieving a single FAQ entry by ID
func GetFAQ(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var faq model.FAQ
	result := database.GetDB().First(&faq, "id = ?", id)
	if result.Error != nil {
		log.Warn("FAQ not found", zap.String("faq_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "FAQ not found"})
	}

	return c.JSON(http.StatusOK, faq)
}

// CreateFAQ handles creating a FAQ entry
func CreateFAQ(c echo.Context) error {
	log := logger.FromContext(c)

	var req FAQRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Question == "" || req.Answer == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "question and answer are required"})
	}

	faq := model.FAQ{
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
		Order:    req.Order,
	}
	if req.IsActive != nil {
		faq.IsActive = *req.IsActive
	} else {
		faq.IsActive = true
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&faq); result.Error != nil {
		log.Error("Failed to create FAQ", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create FAQ"})
	}

	log.Info("FAQ created",
		zap.String("faq_id", faq.ID),
		zap.String("category", faq.Category))
	return c.JSON(http.StatusCreated, faq)
}

// UpdateFAQ handles updating a FAQ entry
func UpdateFAQ(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req FAQRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("faq_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var faq model.FAQ
	result := database.GetDB().First(&faq, "id = ?", id)
	if result.Error != nil {
		log.Warn("FAQ not found for update", zap.String("faq_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "FAQ not found"})
	}

	faq.Question = req.Question
	faq.Answer = req.Answer
	faq.Category = req.Category
	faq.Order = req.Order
	if req.IsActive != nil {
		faq.IsActive = *req.IsActive
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&faq); result.Error != nil {
		log.Error("Failed to update FAQ", zap.String("faq_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update FAQ"})
	}

	log.Info("FAQ updated", zap.String("faq_id", id))
	return c.JSON(http.StatusOK, faq)
}

// DeleteFAQ handles deleting a FAQ entry
func DeleteFAQ(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := database.GetDB().Delete(&model.FAQ{}, "id = ?", id)
	if result.Error != nil {
		log.Error("Failed to delete FAQ", zap.String("faq_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete FAQ"})
	}
	if result.RowsAffected == 0 {
		log.Warn("FAQ not found for deletion", zap.String("faq_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "FAQ not found"})
	}

	log.Info("FAQ deleted", zap.String("faq_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "FAQ deleted successfully"})
}
