package fund

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_CreateExpense(t *testing.T) {
	startupID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name      string
		params    CreateExpenseParams
		setupMock func(repo *MockRepository)
		wantErr   error
	}{
		{
			name: "Success",
			params: CreateExpenseParams{
				Title:     "AWS hosting",
				Amount:    decimal.NewFromInt(120),
				Category:  CategorySoftware,
				StartupID: startupID,
				CreatedBy: userID,
			},
			setupMock: func(repo *MockRepository) {
				repo.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "MissingTitle",
			params: CreateExpenseParams{
				Amount:    decimal.NewFromInt(120),
				Category:  CategorySoftware,
				StartupID: startupID,
				CreatedBy: userID,
			},
			wantErr: ErrMissingFields,
		},
		{
			name: "NegativeAmount",
			params: CreateExpenseParams{
				Title:     "AWS hosting",
				Amount:    decimal.NewFromInt(-1),
				Category:  CategorySoftware,
				StartupID: startupID,
				CreatedBy: userID,
			},
			wantErr: ErrInvalidAmount,
		},
		{
			// A receipt the parser could not price comes in with a zero
			// total and must still be recorded.
			name: "ZeroAmountUnpricedReceipt",
			params: CreateExpenseParams{
				Title:     "Receipt - Cafe Milano",
				Category:  CategoryMiscellaneous,
				Vendor:    Vendor{Name: "Cafe Milano"},
				ReceiptData: &ReceiptData{
					Confidence: 0.4,
					BillType:   "receipt",
				},
				StartupID: startupID,
				CreatedBy: userID,
			},
			setupMock: func(repo *MockRepository) {
				repo.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "UnknownCategory",
			params: CreateExpenseParams{
				Title:     "AWS hosting",
				Amount:    decimal.NewFromInt(120),
				Category:  "Snacks",
				StartupID: startupID,
				CreatedBy: userID,
			},
			wantErr: ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			expense, err := NewService(repo).CreateExpense(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ExpensePending, expense.Status)
			assert.False(t, expense.Date.IsZero())
		})
	}
}

func TestService_Expenses_Pagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	startupID := uuid.New()

	created := &Expense{
		ID:       uuid.New(),
		Title:    "Ad campaign",
		Amount:   decimal.NewFromInt(250),
		Category: CategoryMarketing,
	}

	repo.EXPECT().
		ListExpenses(gomock.Any(), startupID, ExpenseFilter{Page: 1, Limit: 10}).
		Return([]*Expense{created}, 25, nil)

	page, err := NewService(repo).Expenses(context.Background(), startupID, ExpenseFilter{})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Expenses, 1)
	assert.True(t, page.Expenses[0].Amount.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, CategoryMarketing, page.Expenses[0].Category)
}

func TestService_RecordSpending(t *testing.T) {
	ctx := context.Background()
	budgetID := uuid.New()

	budget := &Budget{
		ID:          budgetID,
		Name:        "Q3 budget",
		TotalAmount: decimal.NewFromInt(1000),
		Categories: []BudgetCategory{
			{Category: CategoryMarketing, AllocatedAmount: decimal.NewFromInt(1000)},
		},
		Status: BudgetActive,
	}

	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	tx := NewMockSpendingTx(ctrl)

	repo.EXPECT().BeginSpending(gomock.Any(), budgetID).Return(tx, nil).Times(3)
	tx.EXPECT().Budget().Return(budget).Times(3)
	tx.EXPECT().Update(gomock.Any(), budget).Return(nil).Times(3)
	tx.EXPECT().Commit().Return(nil).Times(3)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	service := NewService(repo)

	updated, err := service.RecordSpending(ctx, budgetID, CategoryMarketing, decimal.NewFromInt(600))
	require.NoError(t, err)
	assert.True(t, updated.Categories[0].SpentAmount.Equal(decimal.NewFromInt(600)))
	assert.True(t, updated.Categories[0].RemainingAmount().Equal(decimal.NewFromInt(400)))
	assert.Equal(t, BudgetActive, updated.Status)

	updated, err = service.RecordSpending(ctx, budgetID, CategoryMarketing, decimal.NewFromInt(400))
	require.NoError(t, err)
	assert.True(t, updated.Categories[0].SpentAmount.Equal(decimal.NewFromInt(1000)))
	assert.True(t, updated.Categories[0].RemainingAmount().IsZero())
	assert.Equal(t, BudgetActive, updated.Status, "spend equal to the total is not exceeded")

	updated, err = service.RecordSpending(ctx, budgetID, CategoryMarketing, decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.Equal(t, BudgetExceeded, updated.Status)
}

func TestService_RecordSpending_CategoryNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	tx := NewMockSpendingTx(ctrl)
	budgetID := uuid.New()

	budget := &Budget{
		ID:          budgetID,
		TotalAmount: decimal.NewFromInt(1000),
		Categories: []BudgetCategory{
			{Category: CategoryMarketing, AllocatedAmount: decimal.NewFromInt(1000)},
		},
		Status: BudgetActive,
	}

	repo.EXPECT().BeginSpending(gomock.Any(), budgetID).Return(tx, nil)
	tx.EXPECT().Budget().Return(budget)
	tx.EXPECT().Rollback().Return(nil)

	_, err := NewService(repo).RecordSpending(context.Background(), budgetID, CategoryLegal, decimal.NewFromInt(10))

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestService_RecordSpending_BudgetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	budgetID := uuid.New()

	repo.EXPECT().BeginSpending(gomock.Any(), budgetID).Return(nil, ErrBudgetNotFound)

	_, err := NewService(repo).RecordSpending(context.Background(), budgetID, CategoryMarketing, decimal.NewFromInt(10))

	assert.ErrorIs(t, err, ErrBudgetNotFound)
}

func TestService_BudgetVsActual(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	startupID := uuid.New()

	budget := &Budget{
		ID:        uuid.New(),
		Name:      "Q3 budget",
		StartDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
		Categories: []BudgetCategory{
			{Category: CategoryMarketing, AllocatedAmount: decimal.NewFromInt(1000)},
			{Category: CategoryOffice, AllocatedAmount: decimal.NewFromInt(500)},
		},
		Status: BudgetActive,
	}

	repo.EXPECT().ActiveBudgets(gomock.Any(), startupID).Return([]*Budget{budget}, nil)
	repo.EXPECT().
		ExpenseTotalsByCategory(gomock.Any(), startupID, budget.StartDate, budget.EndDate).
		Return(map[ExpenseCategory]decimal.Decimal{
			CategoryMarketing: decimal.NewFromInt(1200),
			CategoryOffice:    decimal.NewFromInt(100),
		}, nil)

	comparisons, err := NewService(repo).BudgetVsActual(context.Background(), startupID, nil)

	require.NoError(t, err)
	require.Len(t, comparisons, 1)
	require.Len(t, comparisons[0].Categories, 2)

	marketing := comparisons[0].Categories[0]
	assert.Equal(t, "Over Budget", marketing.Status)
	assert.True(t, marketing.Variance.Equal(decimal.NewFromInt(200)))
	assert.True(t, marketing.VariancePercent.Equal(decimal.NewFromInt(20)))

	office := comparisons[0].Categories[1]
	assert.Equal(t, "Under Budget", office.Status)
	assert.True(t, office.Variance.Equal(decimal.NewFromInt(-400)))
}

func TestService_FundingSources_Totals(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	startupID := uuid.New()

	repo.EXPECT().ListFundingSources(gomock.Any(), startupID).Return([]*FundingSource{
		{Amount: decimal.NewFromInt(50000), ReceivedAmount: decimal.NewFromInt(30000)},
		{Amount: decimal.NewFromInt(20000), ReceivedAmount: decimal.NewFromInt(20000)},
	}, nil)

	overview, err := NewService(repo).FundingSources(context.Background(), startupID)

	require.NoError(t, err)
	assert.True(t, overview.TotalCommitted.Equal(decimal.NewFromInt(70000)))
	assert.True(t, overview.TotalReceived.Equal(decimal.NewFromInt(50000)))
	assert.True(t, overview.TotalRemaining.Equal(decimal.NewFromInt(20000)))
}

func TestService_UpdateInvestor(t *testing.T) {
	ctx := context.Background()
	campaignID := uuid.New()

	newCampaign := func() *FundraisingCampaign {
		return &FundraisingCampaign{
			ID:           campaignID,
			Name:         "Seed round",
			TargetAmount: decimal.NewFromInt(500000),
			Status:       CampaignActive,
			Investors: []CampaignInvestor{
				{Name: "Alpha Ventures", CommittedAmount: decimal.NewFromInt(100000), Status: InvestorCommitted},
				{Name: "Beta Capital", CommittedAmount: decimal.NewFromInt(50000), Status: InvestorDueDiligence},
			},
		}
	}

	t.Run("CommitRecomputesRaisedAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)
		tx := NewMockCampaignTx(ctrl)
		campaign := newCampaign()

		repo.EXPECT().BeginInvestorUpdate(gomock.Any(), campaignID).Return(tx, nil)
		tx.EXPECT().Campaign().Return(campaign)
		tx.EXPECT().Update(gomock.Any(), campaign).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		updated, err := NewService(repo).UpdateInvestor(ctx, campaignID, InvestorUpdateParams{
			Name:   "Beta Capital",
			Status: InvestorCommitted,
		})

		require.NoError(t, err)
		assert.Equal(t, InvestorCommitted, updated.Investors[1].Status)
		assert.NotNil(t, updated.Investors[1].LastContact)
		assert.True(t, updated.RaisedAmount().Equal(decimal.NewFromInt(150000)))
	})

	t.Run("DeclineExcludedFromRaisedAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)
		tx := NewMockCampaignTx(ctrl)
		campaign := newCampaign()

		repo.EXPECT().BeginInvestorUpdate(gomock.Any(), campaignID).Return(tx, nil)
		tx.EXPECT().Campaign().Return(campaign)
		tx.EXPECT().Update(gomock.Any(), campaign).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		updated, err := NewService(repo).UpdateInvestor(ctx, campaignID, InvestorUpdateParams{
			Name:   "Alpha Ventures",
			Status: InvestorDeclined,
		})

		require.NoError(t, err)
		assert.True(t, updated.RaisedAmount().IsZero())
	})

	t.Run("UnknownInvestor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)
		tx := NewMockCampaignTx(ctrl)

		repo.EXPECT().BeginInvestorUpdate(gomock.Any(), campaignID).Return(tx, nil)
		tx.EXPECT().Campaign().Return(newCampaign())
		tx.EXPECT().Rollback().Return(nil)

		_, err := NewService(repo).UpdateInvestor(ctx, campaignID, InvestorUpdateParams{
			Name:   "Gamma Fund",
			Status: InvestorInterested,
		})

		assert.ErrorIs(t, err, ErrInvestorNotFound)
	})
}

func TestService_GenerateReport_CashFlowWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	startupID := uuid.New()
	userID := uuid.New()

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().SettledExpenses(gomock.Any(), startupID, from, to).Return([]*Expense{
		{Amount: decimal.NewFromInt(500), Category: CategoryMarketing, Status: ExpenseApproved},
	}, nil)
	repo.EXPECT().ReceivedFunding(gomock.Any(), startupID, from, to).Return(nil, nil)
	repo.EXPECT().OverlappingBudgets(gomock.Any(), startupID, from, to).Return(nil, nil)
	repo.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Return(nil)

	report, err := NewService(repo).GenerateReport(context.Background(), GenerateReportParams{
		Type:        ReportMonthly,
		PeriodStart: from,
		PeriodEnd:   to,
		StartupID:   startupID,
		GeneratedBy: userID,
	})

	require.NoError(t, err)
	assert.True(t, report.Summary.TotalIncome.IsZero())
	assert.True(t, report.Summary.TotalExpenses.Equal(decimal.NewFromInt(500)))
	assert.True(t, report.Summary.NetCashFlow.Equal(decimal.NewFromInt(-500)))

	require.NotEmpty(t, report.Insights)
	cashFlow := report.Insights[0]
	assert.Equal(t, "Cash Flow", cashFlow.Type)
	assert.Equal(t, SeverityWarning, cashFlow.Severity)
}

func TestService_GenerateReport_BudgetVariance(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	startupID := uuid.New()
	userID := uuid.New()

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().SettledExpenses(gomock.Any(), startupID, from, to).Return([]*Expense{
		{Amount: decimal.NewFromInt(500), Category: CategoryMarketing, Status: ExpenseApproved},
	}, nil)
	repo.EXPECT().ReceivedFunding(gomock.Any(), startupID, from, to).Return([]*FundingSource{
		{ReceivedAmount: decimal.NewFromInt(10000), Status: FundingReceived},
	}, nil)
	repo.EXPECT().OverlappingBudgets(gomock.Any(), startupID, from, to).Return([]*Budget{
		{Categories: []BudgetCategory{
			{Category: CategoryMarketing, AllocatedAmount: decimal.NewFromInt(100)},
		}},
	}, nil)
	repo.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Return(nil)

	report, err := NewService(repo).GenerateReport(context.Background(), GenerateReportParams{
		Type:        ReportMonthly,
		PeriodStart: from,
		PeriodEnd:   to,
		StartupID:   startupID,
		GeneratedBy: userID,
	})

	require.NoError(t, err)
	require.Len(t, report.CategoryBreakdown, 1)

	line := report.CategoryBreakdown[0]
	assert.True(t, line.Budgeted.Equal(decimal.NewFromInt(100)))
	assert.True(t, line.Variance.Equal(decimal.NewFromInt(400)))
	assert.True(t, line.Percentage.Equal(decimal.NewFromInt(500)))

	require.Len(t, report.Insights, 1, "income covers expenses, so the only insight is the variance")
	assert.Equal(t, "Budget Variance", report.Insights[0].Type)
	assert.Equal(t, SeverityCritical, report.Insights[0].Severity)
}

func TestService_DashboardData_BudgetAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	startupID := uuid.New()

	budgets := []*Budget{
		{
			ID:             uuid.New(),
			Name:           "Growth",
			AlertThreshold: 80,
			Categories: []BudgetCategory{
				{Category: CategoryMarketing, AllocatedAmount: decimal.NewFromInt(1000), SpentAmount: decimal.NewFromInt(850)},
				{Category: CategoryOffice, AllocatedAmount: decimal.NewFromInt(1000), SpentAmount: decimal.NewFromInt(100)},
			},
			Status: BudgetActive,
		},
		{
			ID:             uuid.New(),
			Name:           "Infra",
			AlertThreshold: 80,
			Categories: []BudgetCategory{
				{Category: CategorySoftware, AllocatedAmount: decimal.NewFromInt(500), SpentAmount: decimal.NewFromInt(600)},
			},
			Status: BudgetActive,
		},
	}

	repo.EXPECT().MonthExpenseTotal(gomock.Any(), startupID, gomock.Any()).Return(decimal.NewFromInt(1550), nil)
	repo.EXPECT().ActiveBudgets(gomock.Any(), startupID).Return(budgets, nil)
	repo.EXPECT().TotalReceivedFunding(gomock.Any(), startupID).Return(decimal.NewFromInt(50000), nil)
	repo.EXPECT().RecentExpenses(gomock.Any(), startupID, 10).Return(nil, nil)

	dashboard, err := NewService(repo).DashboardData(context.Background(), startupID)

	require.NoError(t, err)
	assert.Equal(t, 2, dashboard.ActiveBudgets)
	assert.True(t, dashboard.TotalFunding.Equal(decimal.NewFromInt(50000)))

	require.Len(t, dashboard.BudgetAlerts, 2)
	assert.Equal(t, CategoryMarketing, dashboard.BudgetAlerts[0].Category)
	assert.Equal(t, SeverityWarning, dashboard.BudgetAlerts[0].Severity)
	assert.Equal(t, CategorySoftware, dashboard.BudgetAlerts[1].Category)
	assert.Equal(t, SeverityCritical, dashboard.BudgetAlerts[1].Severity)
}
