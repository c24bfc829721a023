package lead_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"goat-dashboard/internal/lead"
	"goat-dashboard/internal/model"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := lead.NewMockStore(ctrl)
	store.EXPECT().
		CreateLead(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l *model.Lead) error {
			l.ID = "lead_1"
			l.CreatedAt = time.Now()
			return nil
		})

	svc := lead.NewService(store)
	got, err := svc.Create(context.Background(), lead.CreateParams{
		Name:      "TechCorp Contact",
		Email:     "contact@techcorp.com",
		Source:    "referral",
		CreatorID: "user_2",
	})

	require.NoError(t, err)
	assert.Equal(t, "lead_1", got.ID)
	assert.Equal(t, model.LeadStatusNew, got.Status)
	assert.Nil(t, got.ConvertedAt)
	assert.Nil(t, got.RejectedAt)
}

func TestService_SetStatus(t *testing.T) {
	type testCase struct {
		name        string
		status      string
		reason      string
		setupMock   func(m *lead.MockStore)
		checkFields func(t *testing.T, fields map[string]interface{})
		wantErr     error
	}

	existing := &model.Lead{ID: "lead_1", Status: model.LeadStatusQualified}

	tests := []testCase{
		{
			name:   "ConvertedStampsTimestamp",
			status: model.LeadStatusConverted,
			checkFields: func(t *testing.T, fields map[string]interface{}) {
				stamped, ok := fields["converted_at"].(time.Time)
				require.True(t, ok, "converted_at must be stamped")
				assert.WithinDuration(t, time.Now(), stamped, time.Minute)
				assert.NotContains(t, fields, "rejected_at")
				assert.NotContains(t, fields, "reason")
			},
		},
		{
			name:   "RejectedStampsTimestampAndReason",
			status: model.LeadStatusRejected,
			reason: "budget cut",
			checkFields: func(t *testing.T, fields map[string]interface{}) {
				stamped, ok := fields["rejected_at"].(time.Time)
				require.True(t, ok, "rejected_at must be stamped")
				assert.WithinDuration(t, time.Now(), stamped, time.Minute)
				assert.Equal(t, "budget cut", fields["reason"])
				assert.NotContains(t, fields, "converted_at")
			},
		},
		{
			name:   "ContactedStampsNothing",
			status: model.LeadStatusContacted,
			checkFields: func(t *testing.T, fields map[string]interface{}) {
				assert.Equal(t, map[string]interface{}{"status": model.LeadStatusContacted}, fields)
			},
		},
		{
			name:   "UnknownStatusRejectedBeforeStore",
			status: "not-a-real-status",
			setupMock: func(m *lead.MockStore) {
				// No store calls expected: validation fails first.
			},
			wantErr: lead.ErrInvalidStatus,
		},
		{
			name:   "LeadNotFound",
			status: model.LeadStatusContacted,
			setupMock: func(m *lead.MockStore) {
				m.EXPECT().GetLead(gomock.Any(), "lead_1").Return(nil, lead.ErrNotFound)
			},
			wantErr: lead.ErrNotFound,
		},
		{
			name:   "StorageErrorSurfaced",
			status: model.LeadStatusQualified,
			setupMock: func(m *lead.MockStore) {
				m.EXPECT().GetLead(gomock.Any(), "lead_1").Return(existing, nil)
				m.EXPECT().
					UpdateLead(gomock.Any(), "lead_1", gomock.Any()).
					Return(nil, errors.New("connection reset"))
			},
			wantErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := lead.NewMockStore(ctrl)

			var captured map[string]interface{}
			if tt.checkFields != nil {
				// Wrap the mock setup so the fields map is captured for inspection.
				store.EXPECT().GetLead(gomock.Any(), "lead_1").Return(existing, nil)
				store.EXPECT().
					UpdateLead(gomock.Any(), "lead_1", gomock.Any()).
					DoAndReturn(func(_ context.Context, id string, fields map[string]interface{}) (*model.Lead, error) {
						captured = fields
						status := fields["status"].(string)
						return &model.Lead{ID: id, Status: status}, nil
					})
			} else if tt.setupMock != nil {
				tt.setupMock(store)
			}

			svc := lead.NewService(store)
			got, err := svc.SetStatus(context.Background(), "lead_1", tt.status, tt.reason)

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, lead.ErrInvalidStatus) || errors.Is(tt.wantErr, lead.ErrNotFound) {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.status, got.Status)
			tt.checkFields(t, captured)
		})
	}
}

func TestService_Assign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := &model.Lead{ID: "lead_1", Status: model.LeadStatusConverted}

	store := lead.NewMockStore(ctrl)
	store.EXPECT().GetLead(gomock.Any(), "lead_1").Return(existing, nil)
	store.EXPECT().
		UpdateLead(gomock.Any(), "lead_1", gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, fields map[string]interface{}) (*model.Lead, error) {
			// Assignment must never touch the status.
			assert.Equal(t, map[string]interface{}{"assignee_id": "user_3"}, fields)
			assignee := fields["assignee_id"].(string)
			return &model.Lead{ID: id, Status: existing.Status, AssigneeID: &assignee}, nil
		})

	svc := lead.NewService(store)
	got, err := svc.Assign(context.Background(), "lead_1", "user_3")

	require.NoError(t, err)
	require.NotNil(t, got.AssigneeID)
	assert.Equal(t, "user_3", *got.AssigneeID)
	assert.Equal(t, model.LeadStatusConverted, got.Status)
}

func TestService_Assign_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := lead.NewMockStore(ctrl)
	store.EXPECT().GetLead(gomock.Any(), "missing").Return(nil, lead.ErrNotFound)

	svc := lead.NewService(store)
	_, err := svc.Assign(context.Background(), "missing", "user_3")

	assert.ErrorIs(t, err, lead.ErrNotFound)
}
