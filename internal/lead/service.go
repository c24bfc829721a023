package lead

import (
	"context"
	"errors"
	"fmt"
	"time"

	"goat-dashboard/internal/model"
)

var (
	// ErrInvalidStatus is returned before any mutation when the requested
	// status is not one of the enumerated lead statuses.
	ErrInvalidStatus = errors.New("invalid lead status")

	// ErrNotFound is returned when the referenced lead does not exist
	ErrNotFound = errors.New("lead not found")
)

//go:generate mockgen -source=service.go -destination=store_mock.go -package=lead
type Store interface {
	CreateLead(ctx context.Context, l *model.Lead) error
	GetLead(ctx context.Context, id string) (*model.Lead, error)
	// UpdateLead persists only the given fields on the lead row.
	UpdateLead(ctx context.Context, id string, fields map[string]interface{}) (*model.Lead, error)
	ListLeads(ctx context.Context, filter ListFilter) ([]*model.Lead, error)
}

// ListFilter narrows lead listings. Nil fields are ignored.
type ListFilter struct {
	Status     *string
	AssigneeID *string
	Source     *string
}

// Service enforces the lead lifecycle: status values are validated up front,
// converted/rejected transitions stamp their timestamps, and assignment never
// touches the status. Transitions are not restricted to an adjacency table;
// any enumerated status is reachable from any other.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// CreateParams carries the fields accepted when creating a lead
type CreateParams struct {
	Name       string
	Email      string
	Phone      string
	Company    string
	Source     string
	Value      *float64
	Notes      string
	AssigneeID *string
	CreatorID  string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*model.Lead, error) {
	l := &model.Lead{
		Name:       params.Name,
		Email:      params.Email,
		Phone:      params.Phone,
		Company:    params.Company,
		Source:     params.Source,
		Value:      params.Value,
		Notes:      params.Notes,
		Status:     model.LeadStatusNew,
		AssigneeID: params.AssigneeID,
		CreatorID:  params.CreatorID,
	}
	if err := s.store.CreateLead(ctx, l); err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}
	return l, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*model.Lead, error) {
	return s.store.ListLeads(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id string) (*model.Lead, error) {
	return s.store.GetLead(ctx, id)
}

// SetStatus transitions the lead to status. Transitioning to "converted"
// stamps ConvertedAt; transitioning to "rejected" stamps RejectedAt and
// stores reason (which may be empty). An unknown status fails with
// ErrInvalidStatus before the store is touched.
func (s *Service) SetStatus(ctx context.Context, id, status string, reason string) (*model.Lead, error) {
	if !model.ValidLeadStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if _, err := s.store.GetLead(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{"status": status}
	switch status {
	case model.LeadStatusConverted:
		fields["converted_at"] = s.now()
	case model.LeadStatusRejected:
		fields["rejected_at"] = s.now()
		fields["reason"] = reason
	}

	updated, err := s.store.UpdateLead(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("update lead status: %w", err)
	}
	return updated, nil
}

// Assign sets the lead's assignee without changing its status. Allowed from
// any state.
func (s *Service) Assign(ctx context.Context, id, assigneeID string) (*model.Lead, error) {
	if _, err := s.store.GetLead(ctx, id); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateLead(ctx, id, map[string]interface{}{"assignee_id": assigneeID})
	if err != nil {
		return nil, fmt.Errorf("assign lead: %w", err)
	}
	return updated, nil
}
