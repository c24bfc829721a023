package insights_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"goat-dashboard/internal/insights"
	"goat-dashboard/internal/model"
)

func strPtr(s string) *string { return &s }

func TestService_RevenueByClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Rows [{A,100},{B,300},{A,50}] aggregate to A=150 (2 txns), B=300 (1 txn)
	// and come back from the store as one group per client.
	store := insights.NewMockStore(ctrl)
	store.EXPECT().
		ClientRevenueSums(gomock.Any(), 2024).
		Return([]insights.ClientRevenueRow{
			{ClientID: strPtr("client_a"), Total: 150, Count: 2},
			{ClientID: strPtr("client_b"), Total: 300, Count: 1},
		}, nil)
	store.EXPECT().
		ClientsByID(gomock.Any(), []string{"client_a", "client_b"}).
		Return([]*model.Client{
			{ID: "client_a", Name: "TechCorp Solutions", Company: "TechCorp Solutions"},
			{ID: "client_b", Name: "Fashion Forward", Company: "Fashion Forward Inc."},
		}, nil)

	svc := insights.NewService(store)
	got, err := svc.RevenueByClient(context.Background(), 2024)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Fashion Forward", got[0].ClientName)
	assert.Equal(t, float64(300), got[0].TotalRevenue)
	assert.Equal(t, int64(1), got[0].TransactionCount)
	assert.Equal(t, "TechCorp Solutions", got[1].ClientName)
	assert.Equal(t, float64(150), got[1].TotalRevenue)
	assert.Equal(t, int64(2), got[1].TransactionCount)
}

func TestService_RevenueByClient_MissingClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := insights.NewMockStore(ctrl)
	store.EXPECT().
		ClientRevenueSums(gomock.Any(), 2024).
		Return([]insights.ClientRevenueRow{
			{ClientID: strPtr("gone"), Total: 500, Count: 3},
			{ClientID: nil, Total: 200, Count: 1},
		}, nil)
	store.EXPECT().
		ClientsByID(gomock.Any(), []string{"gone"}).
		Return([]*model.Client{}, nil)

	svc := insights.NewService(store)
	got, err := svc.RevenueByClient(context.Background(), 2024)

	require.NoError(t, err)
	require.Len(t, got, 2)
	// Missing display record defaults, not an error.
	assert.Equal(t, "Unknown", got[0].ClientName)
	assert.Equal(t, "", got[0].Company)
	assert.Equal(t, "Unknown", got[1].ClientName)
	assert.Equal(t, "", got[1].ClientID)
}

func TestService_RevenueByClient_StableTies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := insights.NewMockStore(ctrl)
	store.EXPECT().
		ClientRevenueSums(gomock.Any(), 2024).
		Return([]insights.ClientRevenueRow{
			{ClientID: strPtr("first"), Total: 100, Count: 1},
			{ClientID: strPtr("second"), Total: 100, Count: 1},
		}, nil)
	store.EXPECT().
		ClientsByID(gomock.Any(), gomock.Any()).
		Return([]*model.Client{
			{ID: "first", Name: "First"},
			{ID: "second", Name: "Second"},
		}, nil)

	svc := insights.NewService(store)
	got, err := svc.RevenueByClient(context.Background(), 2024)

	require.NoError(t, err)
	// Equal totals keep the store's row order.
	assert.Equal(t, "First", got[0].ClientName)
	assert.Equal(t, "Second", got[1].ClientName)
}

func TestService_RevenueGrowth(t *testing.T) {
	type testCase struct {
		name     string
		current  float64
		previous float64
		want     float64
	}

	tests := []testCase{
		{name: "Growth", current: 150000, previous: 100000, want: 50},
		{name: "Decline", current: 90000, previous: 120000, want: -25},
		{name: "Rounded", current: 100, previous: 300, want: -66.67},
		{name: "ZeroPreviousYear", current: 50000, previous: 0, want: 0},
		{name: "BothZero", current: 0, previous: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := insights.NewMockStore(ctrl)
			store.EXPECT().RevenueTotal(gomock.Any(), 2024).Return(tt.current, nil)
			store.EXPECT().RevenueTotal(gomock.Any(), 2023).Return(tt.previous, nil)

			svc := insights.NewService(store)
			got, err := svc.RevenueGrowth(context.Background(), 2024)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_ProfitVsExpense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := insights.NewMockStore(ctrl)
	store.EXPECT().RevenueTotal(gomock.Any(), 2024).Return(float64(80000), nil)
	store.EXPECT().ExpenseTotal(gomock.Any(), 2024).Return(float64(30000), nil)

	svc := insights.NewService(store)
	got, err := svc.ProfitVsExpense(context.Background(), 2024)

	require.NoError(t, err)
	assert.Equal(t, insights.ProfitSummary{Revenue: 80000, Expenses: 30000, Profit: 50000}, got)
}

func TestService_MonthlyTrends(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Only March has data; the other 11 months must still be present, zeroed.
	store := insights.NewMockStore(ctrl)
	store.EXPECT().
		MonthlyRevenueSums(gomock.Any(), 2024).
		Return([]insights.MonthlySumRow{{Month: 3, Total: 5000}}, nil)
	store.EXPECT().
		MonthlyExpenseSums(gomock.Any(), 2024).
		Return([]insights.MonthlySumRow{{Month: 3, Total: 2000}}, nil)

	svc := insights.NewService(store)
	got, err := svc.MonthlyTrends(context.Background(), 2024)

	require.NoError(t, err)
	require.Len(t, got, 12)
	for i, trend := range got {
		assert.Equal(t, i+1, trend.Month)
		if trend.Month == 3 {
			assert.Equal(t, float64(5000), trend.Revenue)
			assert.Equal(t, float64(2000), trend.Expenses)
			assert.Equal(t, float64(3000), trend.Profit)
			continue
		}
		assert.Zero(t, trend.Revenue)
		assert.Zero(t, trend.Expenses)
		assert.Zero(t, trend.Profit)
	}
}

func TestService_TeamWorkload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := insights.NewMockStore(ctrl)
	store.EXPECT().
		OpenTaskCounts(gomock.Any()).
		Return([]insights.AssigneeCountRow{
			{AssigneeID: strPtr("user_1"), Count: 2},
			{AssigneeID: nil, Count: 5},
			{AssigneeID: strPtr("user_3"), Count: 4},
		}, nil)
	store.EXPECT().
		UsersByID(gomock.Any(), []string{"user_1", "user_3"}).
		Return([]*model.User{
			{ID: "user_1", Name: "Alex Johnson", Designation: "Content Creator"},
			{ID: "user_3", Name: "Sarah Chen", Designation: "Video Editor"},
		}, nil)

	svc := insights.NewService(store)
	got, err := svc.TeamWorkload(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Unassigned", got[0].UserName)
	assert.Equal(t, int64(5), got[0].TaskCount)
	assert.Equal(t, "Sarah Chen", got[1].UserName)
	assert.Equal(t, "Video Editor", got[1].Designation)
	assert.Equal(t, "Alex Johnson", got[2].UserName)
}

func TestService_LeadConversionRate(t *testing.T) {
	type testCase struct {
		name      string
		total     int64
		converted int64
		want      float64
	}

	tests := []testCase{
		{name: "ThreeOfTen", total: 10, converted: 3, want: 30},
		{name: "Rounded", total: 3, converted: 1, want: 33.33},
		{name: "NoLeads", total: 0, converted: 0, want: 0},
		{name: "AllConverted", total: 4, converted: 4, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := insights.NewMockStore(ctrl)
			store.EXPECT().LeadTotals(gomock.Any()).Return(tt.total, tt.converted, nil)

			svc := insights.NewService(store)
			got, err := svc.LeadConversionRate(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_YearlyGrowthRates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := insights.NewMockStore(ctrl)
	store.EXPECT().
		YearlyRevenueSums(gomock.Any(), 2022, 2024).
		Return([]insights.YearlySumRow{
			{Year: 2022, Total: 100000},
			{Year: 2023, Total: 150000},
			{Year: 2024, Total: 120000},
		}, nil)
	store.EXPECT().
		YearlyExpenseSums(gomock.Any(), 2022, 2024).
		Return([]insights.YearlySumRow{
			{Year: 2022, Total: 50000},
			{Year: 2023, Total: 50000},
			{Year: 2024, Total: 60000},
		}, nil)

	svc := insights.NewService(store)
	got, err := svc.YearlyGrowthRates(context.Background(), 2022, 2024)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, insights.YearGrowth{Year: 2023, RevenueGrowth: 50, ProfitGrowth: 100}, got[0])
	assert.Equal(t, insights.YearGrowth{Year: 2024, RevenueGrowth: -20, ProfitGrowth: -40}, got[1])
}
