package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"goat-dashboard/internal/model"
	"goat-dashboard/internal/scriptgen"
	"goat-dashboard/pkg/database"
	"goat-dashboard/pkg/logger"
	"goat-dashboard/prometheus"
)

// ScriptRequest defines the structure for script creation/update requests
type ScriptRequest struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	ProjectID *string `json:"project_id"`
	ClientID  *string `json:"client_id"`
}

// ListScripts handles retrieving scripts with optional filtering
func ListScripts(c echo.Context) error {
	log := logger.FromContext(c)

	query := database.GetDB().Preload("Versions")

	if projectID := c.QueryParam("project_id"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if clientID := c.QueryParam("client_id"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var scripts []model.Script
	if result := query.Order("created_at desc").Find(&scripts); result.Error != nil {
		log.Error("Failed to list scripts", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve scripts"})
	}

	log.Info("Scripts retrieved successfully", zap.Int("count", len(scripts)))
	return c.JSON(http.StatusOK, scripts)
}

// GetScript handles retrieving a single script with its versions
func GetScript(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var script model.Script
	result := database.GetDB().Preload("Versions").First(&script, "id = ?", id)
	if result.Error != nil {
		log.Warn("Script not found", zap.String("script_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Script not found"})
	}

	return c.JSON(http.StatusOK, script)
}

// CreateScript handles creating a new script. Version 1 is snapshotted in
// the same transaction.
func CreateScript(c echo.Context) error {
	log := logger.FromContext(c)

	var req ScriptRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Title == "" || req.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and content are required"})
	}

	script := model.Script{
		Title:     req.Title,
		Content:   req.Content,
		ProjectID: req.ProjectID,
		ClientID:  req.ClientID,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&script).Error; err != nil {
			return err
		}
		version := model.ScriptVersion{
			ScriptID: script.ID,
			Version:  1,
			Content:  script.Content,
			Changes:  "Initial version",
		}
		return tx.Create(&version).Error
	})
	if err != nil {
		log.Error("Failed to create script", zap.String("title", req.Title), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create script"})
	}

	log.Info("Script created successfully",
		zap.String("script_id", script.ID),
		zap.String("title", script.Title))
	return c.JSON(http.StatusCreated, script)
}

// UpdateScript handles updating a script's title and associations. Content
// changes go through CreateScriptVersion so history is kept.
func UpdateScript(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req ScriptRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("script_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var script model.Script
	result := database.GetDB().First(&script, "id = ?", id)
	if result.Error != nil {
		log.Warn("Script not found for update", zap.String("script_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Script not found"})
	}

	script.Title = req.Title
	script.ProjectID = req.ProjectID
	script.ClientID = req.ClientID

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&script); result.Error != nil {
		log.Error("Failed to update script", zap.String("script_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update script"})
	}

	log.Info("Script updated successfully", zap.String("script_id", id))
	return c.JSON(http.StatusOK, script)
}

// CreateScriptVersion appends the next version snapshot and syncs the
// script's content to it
func CreateScriptVersion(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req struct {
		Content string `json:"content"`
		Changes string `json:"changes"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("script_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "content is required"})
	}

	db := database.GetDB()
	var script model.Script
	if result := db.First(&script, "id = ?", id); result.Error != nil {
		log.Warn("Script not found for versioning", zap.String("script_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Script not found"})
	}

	var version model.ScriptVersion
	defer prometheus.TrackDBOperation("insert")(time.Now())
	err := db.Transaction(func(tx *gorm.DB) error {
		var latest model.ScriptVersion
		next := 1
		err := tx.Where("script_id = ?", id).Order("version desc").First(&latest).Error
		switch {
		case err == nil:
			next = latest.Version + 1
		case errors.Is(err, gorm.ErrRecordNotFound):
			// first version
		default:
			return err
		}

		version = model.ScriptVersion{
			ScriptID: id,
			Version:  next,
			Content:  req.Content,
			Changes:  req.Changes,
		}
		if err := tx.Create(&version).Error; err != nil {
			return err
		}
		return tx.Model(&script).Update("content", req.Content).Error
	})
	if err != nil {
		log.Error("Failed to create script version", zap.String("script_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create script version"})
	}

	log.Info("Script version created",
		zap.String("script_id", id),
		zap.Int("version", version.Version))
	return c.JSON(http.StatusCreated, version)
}

// DeleteScript handles deleting a script and its versions
func DeleteScript(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("script_id = ?", id).Delete(&model.ScriptVersion{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Script{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("Script not found for deletion", zap.String("script_id", id))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Script not found"})
		}
		log.Error("Failed to delete script", zap.String("script_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete script"})
	}

	log.Info("Script deleted successfully", zap.String("script_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Script deleted successfully"})
}

// GenerateScript renders a templated script from a prompt
func GenerateScript(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.ScriptGenerationCounter.Inc()

	var req scriptgen.Request
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	result, err := scriptgen.Generate(req)
	if err != nil {
		if errors.Is(err, scriptgen.ErrInvalidOption) {
			log.Warn("Invalid script generation options",
				zap.String("type", req.Type),
				zap.String("tone", req.Tone),
				zap.String("duration", req.Duration))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		log.Error("Failed to generate script", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to generate script"})
	}

	log.Info("Script generated",
		zap.String("type", result.Metadata.Type),
		zap.String("tone", result.Metadata.Tone),
		zap.Int("word_count", result.Metadata.WordCount))
	return c.JSON(http.StatusOK, result)
}
