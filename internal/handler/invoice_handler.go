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

// InvoiceRequest defines the structure for invoice creation/update requests
type InvoiceRequest struct {
	ClientID      string    `json:"client_id"`
	InvoiceNumber string    `json:"invoice_number"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	DueDate       time.Time `json:"due_date"`
	Description   string    `json:"description"`
}

// ListInvoices handles retrieving invoices with optional filtering
func ListInvoices(c echo.Context) error {
	log := logger.FromContext(c)

	query := database.GetDB().Preload("Client")

	if clientID := c.QueryParam("client_id"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if status := c.QueryParam("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var invoices []model.Invoice
	if result := query.Order("created_at desc").Find(&invoices); result.Error != nil {
		log.Error("Failed to list invoices", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve invoices"})
	}

	log.Info("Invoices retrieved successfully", zap.Int("count", len(invoices)))
	return c.JSON(http.StatusOK, invoices)
}

// GetInvoice handles retrieving a single invoice by ID
func GetInvoice(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var invoice model.Invoice
	result := database.GetDB().Preload("Client").First(&invoice, "id = ?", id)
	if result.Error != nil {
		log.Warn("Invoice not found", zap.String("invoice_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Invoice not found"})
	}

	return c.JSON(http.StatusOK, invoice)
}

// CreateInvoice handles creating a new invoice
func CreateInvoice(c echo.Context) error {
	log := logger.FromContext(c)

	var req InvoiceRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.ClientID == "" || req.InvoiceNumber == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "client_id and invoice_number are required"})
	}

	var client model.Client
	if result := database.GetDB().First(&client, "id = ?", req.ClientID); result.Error != nil {
		log.Warn("Client not found for invoice", zap.String("client_id", req.ClientID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Client not found"})
	}

	// Invoice numbers are unique
	var count int64
	database.GetDB().Model(&model.Invoice{}).Where("invoice_number = ?", req.InvoiceNumber).Count(&count)
	if count > 0 {
		log.Warn("Invoice number already exists", zap.String("invoice_number", req.InvoiceNumber))
		return c.JSON(http.StatusConflict, echo.Map{"error": "Invoice with this number already exists"})
	}

	invoice := model.Invoice{
		ClientID:      req.ClientID,
		InvoiceNumber: req.InvoiceNumber,
		Amount:        req.Amount,
		Status:        req.Status,
		DueDate:       req.DueDate,
		Description:   req.Description,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&invoice); result.Error != nil {
		log.Error("Failed to create invoice",
			zap.String("invoice_number", req.InvoiceNumber),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create invoice"})
	}

	log.Info("Invoice created successfully",
		zap.String("invoice_id", invoice.ID),
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.Float64("amount", invoice.Amount))
	return c.JSON(http.StatusCreated, invoice)
}

// UpdateInvoice handles updating an invoice. Marking an invoice paid stamps
// PaidAt; moving it back clears the stamp.
func UpdateInvoice(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req InvoiceRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("invoice_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var invoice model.Invoice
	result := database.GetDB().First(&invoice, "id = ?", id)
	if result.Error != nil {
		log.Warn("Invoice not found for update", zap.String("invoice_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Invoice not found"})
	}

	invoice.Amount = req.Amount
	invoice.DueDate = req.DueDate
	invoice.Description = req.Description

	if req.Status != "" && req.Status != invoice.Status {
		invoice.Status = req.Status
		if req.Status == model.InvoiceStatusPaid {
			now := time.Now()
			invoice.PaidAt = &now
		} else {
			invoice.PaidAt = nil
		}
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&invoice); result.Error != nil {
		log.Error("Failed to update invoice", zap.String("invoice_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update invoice"})
	}

	log.Info("Invoice updated successfully",
		zap.String("invoice_id", id),
		zap.String("status", invoice.Status))
	return c.JSON(http.StatusOK, invoice)
}
