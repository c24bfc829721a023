package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"goat-dashboard/internal/insights"
	"goat-dashboard/internal/model"
	"goat-dashboard/pkg/database"
	"goat-dashboard/pkg/logger"
	"goat-dashboard/prometheus"
)

// RevenueHandler serves the revenue analytics views and the raw
// revenue/expense row endpoints
type RevenueHandler struct {
	svc *insights.Service
}

func NewRevenueHandler(svc *insights.Service) *RevenueHandler {
	return &RevenueHandler{svc: svc}
}

// yearParam reads the "year" query parameter, defaulting to the current year
func yearParam(c echo.Context) int {
	if raw := c.QueryParam("year"); raw != "" {
		if year, err := strconv.Atoi(raw); err == nil {
			return year
		}
	}
	return time.Now().Year()
}

// Overview returns the year's totals, growth, monthly trends and per-client
// breakdown in one payload
func (h *RevenueHandler) Overview(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordInsightRequest("revenue_overview")
	ctx := c.Request().Context()
	year := yearParam(c)

	summary, err := h.svc.ProfitVsExpense(ctx, year)
	if err != nil {
		log.Error("Failed to compute profit summary", zap.Int("year", year), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to compute revenue overview"})
	}

	growth, err := h.svc.RevenueGrowth(ctx, year)
	if err != nil {
		log.Error("Failed to compute revenue growth", zap.Int("year", year), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to compute revenue overview"})
	}

	trends, err := h.svc.MonthlyTrends(ctx, year)
	if err != nil {
		log.Error("Failed to compute monthly trends", zap.Int("year", year), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to compute revenue overview"})
	}

	byClient, err := h.svc.RevenueByClient(ctx, year)
	if err != nil {
		log.Error("Failed to compute revenue by client", zap.Int("year", year), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to compute revenue overview"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"year":           year,
		"total_revenue":  summary.Revenue,
		"total_expenses": summary.Expenses,
		"profit":         summary.Profit,
		"revenue_growth": growth,
		"monthly_trends": trends,
		"by_client":      byClient,
	})
}

// ByClient returns the year's revenue grouped by client, largest first
func (h *RevenueHandler) ByClient(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordInsightRequest("revenue_by_client")
	year := yearParam(c)

	byClient, err := h.svc.RevenueByClient(c.Request().Context(), year)
	if err != nil {
		log.Error("Failed to compute revenue by client", zap.Int("year", year), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to compute revenue by client"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"year":      year,
		"by_client": byClient,
	})
}

// Trends returns year-over-year revenue and profit growth rates across a
// year window (default: the last three years)
func (h *RevenueHandler) Trends(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordInsightRequest("revenue_trends")

	endYear := time.Now().Year()
	startYear := endYear - 2
	if raw := c.QueryParam("start_year"); raw != "" {
		if year, err := strconv.Atoi(raw); err == nil {
			startYear = year
		}
	}
	if raw := c.QueryParam("end_year"); raw != "" {
		if year, err := strconv.Atoi(raw); err == nil {
			endYear = year
		}
	}
	if startYear > endYear {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_year must not be after end_year"})
	}

	rates, err := h.svc.YearlyGrowthRates(c.Request().Context(), startYear, endYear)
	if err != nil {
		log.Error("Failed to compute growth rates",
			zap.Int("start_year", startYear),
			zap.Int("end_year", endYear),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to compute revenue trends"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"start_year":   startYear,
		"end_year":     endYear,
		"growth_rates": rates,
	})
}

// ListRevenue handles retrieving revenue rows with year/month filters
func ListRevenue(c echo.Context) error {
	log := logger.FromContext(c)

	query := database.GetDB().Preload("Client")
	if year := c.QueryParam("year"); year != "" {
		query = query.Where("year = ?", year)
	}
	if month := c.QueryParam("month"); month != "" {
		query = query.Where("month = ?", month)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var rows []model.Revenue
	if result := query.Order("year desc, month desc").Find(&rows); result.Error != nil {
		log.Error("Failed to list revenue rows", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve revenue"})
	}

	return c.JSON(http.StatusOK, rows)
}

// CreateRevenue records a revenue row. Rows are immutable once created;
// there is no update or delete endpoint.
func CreateRevenue(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		Amount      float64 `json:"amount"`
		ClientID    *string `json:"client_id"`
		Month       int     `json:"month"`
		Year        int     `json:"year"`
		Description string  `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Month < 1 || req.Month > 12 || req.Year == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "month (1-12) and year are required"})
	}

	row := model.Revenue{
		Amount:      req.Amount,
		ClientID:    req.ClientID,
		Month:       req.Month,
		Year:        req.Year,
		Description: req.Description,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&row); result.Error != nil {
		log.Error("Failed to create revenue row", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create revenue"})
	}

	log.Info("Revenue recorded",
		zap.String("revenue_id", row.ID),
		zap.Float64("amount", row.Amount),
		zap.Int("year", row.Year),
		zap.Int("month", row.Month))
	return c.JSON(http.StatusCreated, row)
}

// ListExpenses handles retrieving expense rows with year/month filters
func ListExpenses(c echo.Context) error {
	log := logger.FromContext(c)

	query := database.GetDB()
	if year := c.QueryParam("year"); year != "" {
		query = query.Where("year = ?", year)
	}
	if month := c.QueryParam("month"); month != "" {
		query = query.Where("month = ?", month)
	}
	if category := c.QueryParam("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var rows []model.Expense
	if result := query.Order("year desc, month desc").Find(&rows); result.Error != nil {
		log.Error("Failed to list expense rows", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve expenses"})
	}

	return c.JSON(http.StatusOK, rows)
}

// CreateExpense records an expense row. Rows are immutable once created.
func CreateExpense(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		Amount      float64 `json:"amount"`
		Category    string  `json:"category"`
		Month       int     `json:"month"`
		Year        int     `json:"year"`
		Description string  `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Month < 1 || req.Month > 12 || req.Year == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "month (1-12) and year are required"})
	}

	row := model.Expense{
		Amount:      req.Amount,
		Category:    req.Category,
		Month:       req.Month,
		Year:        req.Year,
		Description: req.Description,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&row); result.Error != nil {
		log.Error("Failed to create expense row", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create expense"})
	}

	log.Info("Expense recorded",
		zap.String("expense_id", row.ID),
		zap.Float64("amount", row.Amount),
		zap.String("category", row.Category))
	return c.JSON(http.StatusCreated, row)
}
