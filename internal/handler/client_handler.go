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

// ClientRequest defines the structure for client creation/update requests
type ClientRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Company       string `json:"company"`
	Address       string `json:"address"`
	ContactPerson string `json:"contact_person"`
}

// clientWithCounts decorates a client with its related record counts
type clientWithCounts struct {
	model.Client
	ProjectCount int64 `json:"project_count"`
	ShootCount   int64 `json:"shoot_count"`
	InvoiceCount int64 `json:"invoice_count"`
}

// ListClients handles retrieving clients with optional search
func ListClients(c echo.Context) error {
	log := logger.FromContext(c)

	db := database.GetDB()
	query := db.Model(&model.Client{})

	// Case-insensitive search over name, company and email
	if search := c.QueryParam("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR company ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
		log.Info("Searching clients", zap.String("search", search))
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var clients []model.Client
	if result := query.Order("name asc").Find(&clients); result.Error != nil {
		log.Error("Failed to list clients", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve clients"})
	}

	decorated := make([]clientWithCounts, 0, len(clients))
	for _, client := range clients {
		entry := clientWithCounts{Client: client}
		db.Model(&model.Project{}).Where("client_id = ?", client.ID).Count(&entry.ProjectCount)
		db.Model(&model.Shoot{}).Where("client_id = ?", client.ID).Count(&entry.ShootCount)
		db.Model(&model.Invoice{}).Where("client_id = ?", client.ID).Count(&entry.InvoiceCount)
		decorated = append(decorated, entry)
	}

	log.Info("Clients retrieved successfully", zap.Int("count", len(decorated)))
	return c.JSON(http.StatusOK, decorated)
}

// GetClient handles retrieving a single client by ID
func GetClient(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var client model.Client
	result := database.GetDB().First(&client, "id = ?", id)
	if result.Error != nil {
		log.Warn("Client not found", zap.String("client_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Client not found"})
	}

	return c.JSON(http.StatusOK, client)
}

// CreateClient handles creating a new client
func CreateClient(c echo.Context) error {
	log := logger.FromContext(c)

	var req ClientRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	// Client names are unique
	var count int64
	database.GetDB().Model(&model.Client{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		log.Warn("Client with this name already exists", zap.String("name", req.Name))
		return c.JSON(http.StatusConflict, echo.Map{"error": "Client with this name already exists"})
	}

	client := model.Client{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Company:       req.Company,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&client); result.Error != nil {
		log.Error("Failed to create client", zap.String("name", req.Name), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create client"})
	}

	log.Info("Client created successfully",
		zap.String("client_id", client.ID),
		zap.String("name", client.Name))
	return c.JSON(http.StatusCreated, client)
}

// UpdateClient handles updating an existing client
func UpdateClient(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req ClientRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("client_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var client model.Client
	result := database.GetDB().First(&client, "id = ?", id)
	if result.Error != nil {
		log.Warn("Client not found for update", zap.String("client_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Client not found"})
	}

	if req.Name != client.Name {
		var count int64
		database.GetDB().Model(&model.Client{}).Where("name = ? AND id != ?", req.Name, id).Count(&count)
		if count > 0 {
			log.Warn("Client with this name already exists", zap.String("name", req.Name))
			return c.JSON(http.StatusConflict, echo.Map{"error": "Client with this name already exists"})
		}
	}

	client.Name = req.Name
	client.Email = req.Email
	client.Phone = req.Phone
	client.Company = req.Company
	client.Address = req.Address
	client.ContactPerson = req.ContactPerson

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&client); result.Error != nil {
		log.Error("Failed to update client", zap.String("client_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update client"})
	}

	log.Info("Client updated successfully", zap.String("client_id", id))
	return c.JSON(http.StatusOK, client)
}

// DeleteClient handles deleting a client
func DeleteClient(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := database.GetDB().Delete(&model.Client{}, "id = ?", id)
	if result.Error != nil {
		log.Error("Failed to delete client", zap.String("client_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete client"})
	}
	if result.RowsAffected == 0 {
		log.Warn("Client not found for deletion", zap.String("client_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Client not found"})
	}

	log.Info("Client deleted successfully", zap.String("client_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Client deleted successfully"})
}
