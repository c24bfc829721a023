package insights

import (
	"context"
	"math"
	"sort"

	"goat-dashboard/internal/model"
)

// Row shapes returned by grouped-aggregate store queries.
type (
	// ClientRevenueRow is one group of the revenue-by-client aggregate.
	// ClientID is nil for revenue rows recorded without a client.
	ClientRevenueRow struct {
		ClientID *string
		Total    float64
		Count    int64
	}

	// MonthlySumRow is one group of a per-month sum
	MonthlySumRow struct {
		Month int
		Total float64
	}

	// YearlySumRow is one group of a per-year sum
	YearlySumRow struct {
		Year  int
		Total float64
	}

	// AssigneeCountRow is one group of the open-task workload aggregate
	AssigneeCountRow struct {
		AssigneeID *string
		Count      int64
	}
)

//go:generate mockgen -source=service.go -destination=store_mock.go -package=insights
type Store interface {
	ClientRevenueSums(ctx context.Context, year int) ([]ClientRevenueRow, error)
	ClientsByID(ctx context.Context, ids []string) ([]*model.Client, error)
	RevenueTotal(ctx context.Context, year int) (float64, error)
	ExpenseTotal(ctx context.Context, year int) (float64, error)
	MonthlyRevenueSums(ctx context.Context, year int) ([]MonthlySumRow, error)
	MonthlyExpenseSums(ctx context.Context, year int) ([]MonthlySumRow, error)
	YearlyRevenueSums(ctx context.Context, startYear, endYear int) ([]YearlySumRow, error)
	YearlyExpenseSums(ctx context.Context, startYear, endYear int) ([]YearlySumRow, error)
	OpenTaskCounts(ctx context.Context) ([]AssigneeCountRow, error)
	UsersByID(ctx context.Context, ids []string) ([]*model.User, error)
	LeadTotals(ctx context.Context) (total, converted int64, err error)
}

// ClientRevenue is a revenue-by-client rollup entry
type ClientRevenue struct {
	ClientID         string  `json:"client_id"`
	ClientName       string  `json:"client_name"`
	Company          string  `json:"company"`
	TotalRevenue     float64 `json:"total_revenue"`
	TransactionCount int64   `json:"transaction_count"`
}

// ProfitSummary is a profit-vs-expense rollup for one period
type ProfitSummary struct {
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

// MonthlyTrend is one month of the yearly trend view
type MonthlyTrend struct {
	Month    int     `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

// WorkloadEntry is one assignee of the open-task workload view
type WorkloadEntry struct {
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	Designation string `json:"designation"`
	TaskCount   int64  `json:"task_count"`
}

// YearGrowth is a year-over-year growth entry
type YearGrowth struct {
	Year          int     `json:"year"`
	RevenueGrowth float64 `json:"revenue_growth"`
	ProfitGrowth  float64 `json:"profit_growth"`
}

// Service derives analytics views from raw revenue/expense/task/lead rows.
// Every method is a pure function of the rows the store returns; nothing is
// cached or mutated, so concurrent reads are always safe.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// RevenueByClient groups the year's revenue rows by client, joins client
// display fields in memory, and sorts by total descending. A group whose
// client record is missing falls back to "Unknown". Ties keep the store's
// row order.
func (s *Service) RevenueByClient(ctx context.Context, year int) ([]ClientRevenue, error) {
	rows, err := s.store.ClientRevenueSums(ctx, year)
	if err != nil {
		return nil, err
	}

	// Batch-fetch display records for exactly the keys in the aggregate.
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		if r.ClientID != nil {
			ids = append(ids, *r.ClientID)
		}
	}

	byID := make(map[string]*model.Client, len(ids))
	if len(ids) > 0 {
		clients, err := s.store.ClientsByID(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, c := range clients {
			byID[c.ID] = c
		}
	}

	result := make([]ClientRevenue, 0, len(rows))
	for _, r := range rows {
		entry := ClientRevenue{
			ClientName:       "Unknown",
			TotalRevenue:     r.Total,
			TransactionCount: r.Count,
		}
		if r.ClientID != nil {
			entry.ClientID = *r.ClientID
			if c, ok := byID[*r.ClientID]; ok {
				entry.ClientName = c.Name
				entry.Company = c.Company
			}
		}
		result = append(result, entry)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalRevenue > result[j].TotalRevenue
	})
	return result, nil
}

// RevenueGrowth returns the year-over-year revenue growth percentage,
// rounded to two decimals. A previous year with no revenue yields 0 rather
// than a division by zero.
func (s *Service) RevenueGrowth(ctx context.Context, year int) (float64, error) {
	current, err := s.store.RevenueTotal(ctx, year)
	if err != nil {
		return 0, err
	}
	previous, err := s.store.RevenueTotal(ctx, year-1)
	if err != nil {
		return 0, err
	}
	if previous == 0 {
		return 0, nil
	}
	return round2((current - previous) / previous * 100), nil
}

// ProfitVsExpense returns the year's revenue, expenses and profit
func (s *Service) ProfitVsExpense(ctx context.Context, year int) (ProfitSummary, error) {
	revenue, err := s.store.RevenueTotal(ctx, year)
	if err != nil {
		return ProfitSummary{}, err
	}
	expenses, err := s.store.ExpenseTotal(ctx, year)
	if err != nil {
		return ProfitSummary{}, err
	}
	return ProfitSummary{
		Revenue:  revenue,
		Expenses: expenses,
		Profit:   revenue - expenses,
	}, nil
}

// MonthlyTrends returns exactly 12 entries for the year. Months without rows
// carry zero revenue and expenses.
func (s *Service) MonthlyTrends(ctx context.Context, year int) ([]MonthlyTrend, error) {
	revenueRows, err := s.store.MonthlyRevenueSums(ctx, year)
	if err != nil {
		return nil, err
	}
	expenseRows, err := s.store.MonthlyExpenseSums(ctx, year)
	if err != nil {
		return nil, err
	}

	revenueByMonth := make(map[int]float64, len(revenueRows))
	for _, r := range revenueRows {
		revenueByMonth[r.Month] = r.Total
	}
	expensesByMonth := make(map[int]float64, len(expenseRows))
	for _, r := range expenseRows {
		expensesByMonth[r.Month] = r.Total
	}

	trends := make([]MonthlyTrend, 12)
	for i := range trends {
		month := i + 1
		revenue := revenueByMonth[month]
		expenses := expensesByMonth[month]
		trends[i] = MonthlyTrend{
			Month:    month,
			Revenue:  revenue,
			Expenses: expenses,
			Profit:   revenue - expenses,
		}
	}
	return trends, nil
}

// TeamWorkload groups open tasks by assignee, joins user display fields, and
// sorts by count descending. Tasks whose assignee record is missing show as
// "Unassigned".
func (s *Service) TeamWorkload(ctx context.Context) ([]WorkloadEntry, error) {
	rows, err := s.store.OpenTaskCounts(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		if r.AssigneeID != nil {
			ids = append(ids, *r.AssigneeID)
		}
	}

	byID := make(map[string]*model.User, len(ids))
	if len(ids) > 0 {
		users, err := s.store.UsersByID(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			byID[u.ID] = u
		}
	}

	result := make([]WorkloadEntry, 0, len(rows))
	for _, r := range rows {
		entry := WorkloadEntry{
			UserName:  "Unassigned",
			TaskCount: r.Count,
		}
		if r.AssigneeID != nil {
			entry.UserID = *r.AssigneeID
			if u, ok := byID[*r.AssigneeID]; ok {
				entry.UserName = u.Name
				entry.Designation = u.Designation
			}
		}
		result = append(result, entry)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TaskCount > result[j].TaskCount
	})
	return result, nil
}

// LeadConversionRate returns converted/total leads as a percentage rounded
// to two decimals, or 0 when there are no leads.
func (s *Service) LeadConversionRate(ctx context.Context) (float64, error) {
	total, converted, err := s.store.LeadTotals(ctx)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	return round2(float64(converted) / float64(total) * 100), nil
}

// YearlyGrowthRates computes year-over-year revenue and profit growth for
// every consecutive year pair in [startYear, endYear]. Years with no revenue
// (or no profit) in the earlier year yield 0 growth for that pair.
func (s *Service) YearlyGrowthRates(ctx context.Context, startYear, endYear int) ([]YearGrowth, error) {
	revenueRows, err := s.store.YearlyRevenueSums(ctx, startYear, endYear)
	if err != nil {
		return nil, err
	}
	expenseRows, err := s.store.YearlyExpenseSums(ctx, startYear, endYear)
	if err != nil {
		return nil, err
	}

	expensesByYear := make(map[int]float64, len(expenseRows))
	for _, r := range expenseRows {
		expensesByYear[r.Year] = r.Total
	}

	rates := make([]YearGrowth, 0, len(revenueRows))
	for i := 1; i < len(revenueRows); i++ {
		current, previous := revenueRows[i], revenueRows[i-1]

		var revenueGrowth float64
		if previous.Total != 0 {
			revenueGrowth = round2((current.Total - previous.Total) / previous.Total * 100)
		}

		currentProfit := current.Total - expensesByYear[current.Year]
		previousProfit := previous.Total - expensesByYear[previous.Year]
		var profitGrowth float64
		if previousProfit != 0 {
			profitGrowth = round2((currentProfit - previousProfit) / previousProfit * 100)
		}

		rates = append(rates, YearGrowth{
			Year:          current.Year,
			RevenueGrowth: revenueGrowth,
			ProfitGrowth:  profitGrowth,
		})
	}
	return rates, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
