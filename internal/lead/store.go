package lead

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"goat-dashboard/internal/model"
	"goat-dashboard/prometheus"
)

// GormStore is the database-backed Store implementation
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateLead(ctx context.Context, l *model.Lead) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())
	return s.db.WithContext(ctx).Create(l).Error
}

func (s *GormStore) GetLead(ctx context.Context, id string) (*model.Lead, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var l model.Lead
	result := s.db.WithContext(ctx).
		Preload("Assignee").
		Preload("Creator").
		First(&l, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &l, nil
}

func (s *GormStore) UpdateLead(ctx context.Context, id string, fields map[string]interface{}) (*model.Lead, error) {
	defer prometheus.TrackDBOperation("update")(time.Now())

	result := s.db.WithContext(ctx).Model(&model.Lead{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetLead(ctx, id)
}

func (s *GormStore) ListLeads(ctx context.Context, filter ListFilter) ([]*model.Lead, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	query := s.db.WithContext(ctx).
		Preload("Assignee").
		Preload("Creator")

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.Source != nil {
		query = query.Where("source = ?", *filter.Source)
	}

	var leads []*model.Lead
	if err := query.Order("created_at desc").Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}
