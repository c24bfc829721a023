package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"goat-dashboard/internal/lead"
	"goat-dashboard/internal/model"
	"goat-dashboard/pkg/database"
	"goat-dashboard/pkg/logger"
	"goat-dashboard/prometheus"
)

// LeadHandler serves the lead pipeline endpoints. Lifecycle mutations go
// through the lead service; plain field updates and deletes go straight to
// the database.
type LeadHandler struct {
	svc *lead.Service
}

func NewLeadHandler(svc *lead.Service) *LeadHandler {
	return &LeadHandler{svc: svc}
}

// LeadRequest defines the structure for lead creation/update requests
type LeadRequest struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Company    string   `json:"company"`
	Source     string   `json:"source"`
	Value      *float64 `json:"value"`
	Notes      string   `json:"notes"`
	AssigneeID *string  `json:"assignee_id"`
}

// ListLeads handles retrieving leads with optional filtering
func (h *LeadHandler) ListLeads(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordLeadOperation("list")

	var filter lead.ListFilter
	if status := c.QueryParam("status"); status != "" {
		filter.Status = &status
		log.Info("Filtering leads by status", zap.String("status", status))
	}
	if assigneeID := c.QueryParam("assignee_id"); assigneeID != "" {
		filter.AssigneeID = &assigneeID
	}
	if source := c.QueryParam("source"); source != "" {
		filter.Source = &source
	}

	leads, err := h.svc.List(c.Request().Context(), filter)
	if err != nil {
		log.Error("Failed to list leads", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve leads"})
	}

	log.Info("Leads retrieved successfully", zap.Int("count", len(leads)))
	return c.JSON(http.StatusOK, leads)
}

// GetLead handles retrieving a single lead by ID
func (h *LeadHandler) GetLead(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	prometheus.RecordLeadOperation("get")

	l, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, lead.ErrNotFound) {
			log.Warn("Lead not found", zap.String("lead_id", id))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Lead not found"})
		}
		log.Error("Failed to get lead", zap.String("lead_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve lead"})
	}

	return c.JSON(http.StatusOK, l)
}

// CreateLead handles creating a new lead. New leads always start in the
// "new" status regardless of the request body.
func (h *LeadHandler) CreateLead(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordLeadOperation("create")

	var req LeadRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if req.Name == "" {
		log.Warn("Lead creation without a name")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	creatorID, _ := c.Get("user_id").(string)

	l, err := h.svc.Create(c.Request().Context(), lead.CreateParams{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Company:    req.Company,
		Source:     req.Source,
		Value:      req.Value,
		Notes:      req.Notes,
		AssigneeID: req.AssigneeID,
		CreatorID:  creatorID,
	})
	if err != nil {
		log.Error("Failed to create lead", zap.String("name", req.Name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create lead"})
	}

	log.Info("Lead created successfully",
		zap.String("lead_id", l.ID),
		zap.String("name", l.Name),
		zap.String("source", l.Source))
	return c.JSON(http.StatusCreated, l)
}

// UpdateLead handles updating a lead's contact fields. Status changes must
// go through UpdateLeadStatus.
func (h *LeadHandler) UpdateLead(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	prometheus.RecordLeadOperation("update")

	var req LeadRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("lead_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	var l model.Lead
	if result := database.GetDB().First(&l, "id = ?", id); result.Error != nil {
		log.Warn("Lead not found for update", zap.String("lead_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Lead not found"})
	}

	l.Name = req.Name
	l.Email = req.Email
	l.Phone = req.Phone
	l.Company = req.Company
	l.Source = req.Source
	l.Value = req.Value
	l.Notes = req.Notes

	if result := database.GetDB().Save(&l); result.Error != nil {
		log.Error("Failed to update lead", zap.String("lead_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update lead"})
	}

	log.Info("Lead updated successfully", zap.String("lead_id", id))
	return c.JSON(http.StatusOK, l)
}

// UpdateLeadStatus transitions a lead through its lifecycle
func (h *LeadHandler) UpdateLeadStatus(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	prometheus.RecordLeadOperation("status_change")

	var req struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("lead_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	l, err := h.svc.SetStatus(c.Request().Context(), id, req.Status, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, lead.ErrInvalidStatus):
			log.Warn("Invalid lead status requested",
				zap.String("lead_id", id),
				zap.String("status", req.Status))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid lead status"})
		case errors.Is(err, lead.ErrNotFound):
			log.Warn("Lead not found for status change", zap.String("lead_id", id))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Lead not found"})
		default:
			log.Error("Failed to change lead status", zap.String("lead_id", id), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update lead status"})
		}
	}

	log.Info("Lead status changed",
		zap.String("lead_id", id),
		zap.String("status", l.Status))
	return c.JSON(http.StatusOK, l)
}

// AssignLead sets the lead's assignee without touching its status
func (h *LeadHandler) AssignLead(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	prometheus.RecordLeadOperation("assign")

	var req struct {
		AssigneeID string `json:"assignee_id"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("lead_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.AssigneeID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "assignee_id is required"})
	}

	l, err := h.svc.Assign(c.Request().Context(), id, req.AssigneeID)
	if err != nil {
		if errors.Is(err, lead.ErrNotFound) {
			log.Warn("Lead not found for assignment", zap.String("lead_id", id))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Lead not found"})
		}
		log.Error("Failed to assign lead", zap.String("lead_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to assign lead"})
	}

	log.Info("Lead assigned",
		zap.String("lead_id", id),
		zap.String("assignee_id", req.AssigneeID))
	return c.JSON(http.StatusOK, l)
}

// DeleteLead handles deleting a lead
func (h *LeadHandler) DeleteLead(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	prometheus.RecordLeadOperation("delete")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := database.GetDB().Delete(&model.Lead{}, "id = ?", id)
	if result.Error != nil {
		log.Error("Failed to delete lead", zap.String("lead_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete lead"})
	}
	if result.RowsAffected == 0 {
		log.Warn("Lead not found for deletion", zap.String("lead_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Lead not found"})
	}

	log.Info("Lead deleted successfully", zap.String("lead_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Lead deleted successfully"})
}
