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

// ShootRequest defines the structure for shoot creation/update requests
type ShootRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ClientID    string    `json:"client_id"`
	Location    string    `json:"location"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Status      string    `json:"status"`
	Budget      *float64  `json:"budget"`
	Notes       string    `json:"notes"`
}

// TeamAssignment is one member of an assign-team request
type TeamAssignment struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

func shootQuery(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Client").
		Preload("Assignments.User").
		Preload("EditingTasks")
}

// ListShoots handles retrieving shoots with optional filtering
func ListShoots(c echo.Context) error {
	log := logger.FromContext(c)

	query := shootQuery(database.GetDB())

	if clientID := c.QueryParam("client_id"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if status := c.QueryParam("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if from := c.QueryParam("from"); from != "" {
		query = query.Where("start_date >= ?", from)
	}
	if to := c.QueryParam("to"); to != "" {
		query = query.Where("start_date <= ?", to)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var shoots []model.Shoot
	if result := query.Order("start_date asc").Find(&shoots); result.Error != nil {
		log.Error("Failed to list shoots", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve shoots"})
	}

	log.Info("Shoots retrieved successfully", zap.Int("count", len(shoots)))
	return c.JSON(http.StatusOK, shoots)
}

// GetShoot handles retrieving a single shoot by ID
func GetShoot(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var shoot model.Shoot
	result := shootQuery(database.GetDB()).First(&shoot, "id = ?", id)
	if result.Error != nil {
		log.Warn("Shoot not found", zap.String("shoot_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Shoot not found"})
	}

	return c.JSON(http.StatusOK, shoot)
}

// CreateShoot handles scheduling a new shoot
func CreateShoot(c echo.Context) error {
	log := logger.FromContext(c)

	var req ShootRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Title == "" || req.ClientID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and client_id are required"})
	}

	var client model.Client
	if result := database.GetDB().First(&client, "id = ?", req.ClientID); result.Error != nil {
		log.Warn("Client not found for shoot", zap.String("client_id", req.ClientID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Client not found"})
	}

	shoot := model.Shoot{
		Title:       req.Title,
		Description: req.Description,
		ClientID:    req.ClientID,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
		Budget:      req.Budget,
		Notes:       req.Notes,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&shoot); result.Error != nil {
		log.Error("Failed to create shoot", zap.String("title", req.Title), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create shoot"})
	}

	log.Info("Shoot created successfully",
		zap.String("shoot_id", shoot.ID),
		zap.String("title", shoot.Title))
	return c.JSON(http.StatusCreated, shoot)
}

// UpdateShoot handles updating an existing shoot
func UpdateShoot(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req ShootRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("shoot_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var shoot model.Shoot
	result := database.GetDB().First(&shoot, "id = ?", id)
	if result.Error != nil {
		log.Warn("Shoot not found for update", zap.String("shoot_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Shoot not found"})
	}

	shoot.Title = req.Title
	shoot.Description = req.Description
	if req.ClientID != "" {
		shoot.ClientID = req.ClientID
	}
	shoot.Location = req.Location
	shoot.StartDate = req.StartDate
	shoot.EndDate = req.EndDate
	if req.Status != "" {
		shoot.Status = req.Status
	}
	shoot.Budget = req.Budget
	shoot.Notes = req.Notes

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&shoot); result.Error != nil {
		log.Error("Failed to update shoot", zap.String("shoot_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update shoot"})
	}

	log.Info("Shoot updated successfully", zap.String("shoot_id", id))
	return c.JSON(http.StatusOK, shoot)
}

// AssignShootTeam replaces the shoot's crew assignments with the given set
// in one transaction, then returns the refreshed shoot
func AssignShootTeam(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req struct {
		Assignments []TeamAssignment `json:"assignments"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("shoot_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	db := database.GetDB()
	var shoot model.Shoot
	if result := db.First(&shoot, "id = ?", id); result.Error != nil {
		log.Warn("Shoot not found for team assignment", zap.String("shoot_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Shoot not found"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shoot_id = ?", id).Delete(&model.ShootAssignment{}).Error; err != nil {
			return err
		}
		for _, assignment := range req.Assignments {
			record := model.ShootAssignment{
				ShootID: id,
				UserID:  assignment.UserID,
				Role:    assignment.Role,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("Failed to assign shoot team", zap.String("shoot_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to assign team"})
	}

	var refreshed model.Shoot
	if result := shootQuery(db).First(&refreshed, "id = ?", id); result.Error != nil {
		log.Error("Failed to reload shoot after team assignment", zap.String("shoot_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to reload shoot"})
	}

	log.Info("Shoot team assigned",
		zap.String("shoot_id", id),
		zap.Int("team_size", len(req.Assignments)))
	return c.JSON(http.StatusOK, refreshed)
}

// DeleteShoot handles deleting a shoot
func DeleteShoot(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := database.GetDB().Delete(&model.Shoot{}, "id = ?", id)
	if result.Error != nil {
		log.Error("Failed to delete shoot", zap.String("shoot_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete shoot"})
	}
	if result.RowsAffected == 0 {
		log.Warn("Shoot not found for deletion", zap.String("shoot_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Shoot not found"})
	}

	log.Info("Shoot deleted successfully", zap.String("shoot_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Shoot deleted successfully"})
}
