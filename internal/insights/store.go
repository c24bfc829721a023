package insights

import (
	"context"
	"time"

	"gorm.io/gorm"

	"goat-dashboard/internal/model"
	"goat-dashboard/prometheus"
)

// GormStore runs the grouped-aggregate queries behind the analytics views
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ClientRevenueSums(ctx context.Context, year int) ([]ClientRevenueRow, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var rows []ClientRevenueRow
	err := s.db.WithContext(ctx).
		Model(&model.Revenue{}).
		Select("client_id, SUM(amount) AS total, COUNT(id) AS count").
		Where("year = ?", year).
		Group("client_id").
		Scan(&rows).Error
	return rows, err
}

func (s *GormStore) ClientsByID(ctx context.Context, ids []string) ([]*model.Client, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var clients []*model.Client
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&clients).Error
	return clients, err
}

func (s *GormStore) RevenueTotal(ctx context.Context, year int) (float64, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var total float64
	err := s.db.WithContext(ctx).
		Model(&model.Revenue{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("year = ?", year).
		Scan(&total).Error
	return total, err
}

func (s *GormStore) ExpenseTotal(ctx context.Context, year int) (float64, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var total float64
	err := s.db.WithContext(ctx).
		Model(&model.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("year = ?", year).
		Scan(&total).Error
	return total, err
}

func (s *GormStore) MonthlyRevenueSums(ctx context.Context, year int) ([]MonthlySumRow, error) {
	return s.monthlySums(ctx, &model.Revenue{}, year)
}

func (s *GormStore) MonthlyExpenseSums(ctx context.Context, year int) ([]MonthlySumRow, error) {
	return s.monthlySums(ctx, &model.Expense{}, year)
}

func (s *GormStore) monthlySums(ctx context.Context, m interface{}, year int) ([]MonthlySumRow, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var rows []MonthlySumRow
	err := s.db.WithContext(ctx).
		Model(m).
		Select("month, SUM(amount) AS total").
		Where("year = ?", year).
		Group("month").
		Order("month asc").
		Scan(&rows).Error
	return rows, err
}

func (s *GormStore) YearlyRevenueSums(ctx context.Context, startYear, endYear int) ([]YearlySumRow, error) {
	return s.yearlySums(ctx, &model.Revenue{}, startYear, endYear)
}

func (s *GormStore) YearlyExpenseSums(ctx context.Context, startYear, endYear int) ([]YearlySumRow, error) {
	return s.yearlySums(ctx, &model.Expense{}, startYear, endYear)
}

func (s *GormStore) yearlySums(ctx context.Context, m interface{}, startYear, endYear int) ([]YearlySumRow, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var rows []YearlySumRow
	err := s.db.WithContext(ctx).
		Model(m).
		Select("year, SUM(amount) AS total").
		Where("year >= ? AND year <= ?", startYear, endYear).
		Group("year").
		Order("year asc").
		Scan(&rows).Error
	return rows, err
}

func (s *GormStore) OpenTaskCounts(ctx context.Context) ([]AssigneeCountRow, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var rows []AssigneeCountRow
	err := s.db.WithContext(ctx).
		Model(&model.Task{}).
		Select("assignee_id, COUNT(id) AS count").
		Where("status IN ?", []string{model.TaskStatusPending, model.TaskStatusInProgress}).
		Group("assignee_id").
		Scan(&rows).Error
	return rows, err
}

func (s *GormStore) UsersByID(ctx context.Context, ids []string) ([]*model.User, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var users []*model.User
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}

func (s *GormStore) LeadTotals(ctx context.Context) (int64, int64, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Lead{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}

	var converted int64
	err := s.db.WithContext(ctx).
		Model(&model.Lead{}).
		Where("status = ?", model.LeadStatusConverted).
		Count(&converted).Error
	return total, converted, err
}
