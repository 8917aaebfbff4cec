package fund

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=fund

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseFilter narrows expense listings. Zero values mean "no filter".
type ExpenseFilter struct {
	Category ExpenseCategory
	Status   ExpenseStatus
	From     *time.Time
	To       *time.Time
	Page     int
	Limit    int
}

type ExpensePage struct {
	Expenses   []*Expense
	Total      int
	Page       int
	TotalPages int
}

// CategoryStat is the per-category rollup used by expense analytics.
type CategoryStat struct {
	Category ExpenseCategory
	Total    decimal.Decimal
	Count    int
	Average  decimal.Decimal
}

// MonthStat is the per-month rollup used by expense analytics.
type MonthStat struct {
	Year  int
	Month time.Month
	Total decimal.Decimal
	Count int
}

type Analytics struct {
	ByCategory []CategoryStat
	ByMonth    []MonthStat
	Recent     []*Expense
}

// CategoryComparison is one category of a budget compared against the
// expenses actually recorded in the budget's window.
type CategoryComparison struct {
	Category        ExpenseCategory
	Budgeted        decimal.Decimal
	Actual          decimal.Decimal
	Variance        decimal.Decimal
	VariancePercent decimal.Decimal
	Status          string
}

type BudgetComparison struct {
	BudgetID   uuid.UUID
	BudgetName string
	Period     BudgetPeriod
	StartDate  time.Time
	EndDate    time.Time
	Categories []CategoryComparison
}

// FundingOverview pairs the source list with its aggregate totals.
type FundingOverview struct {
	Sources        []*FundingSource
	TotalCommitted decimal.Decimal
	TotalReceived  decimal.Decimal
	TotalRemaining decimal.Decimal
}

type BudgetAlert struct {
	BudgetID        uuid.UUID
	BudgetName      string
	Category        ExpenseCategory
	UtilizationRate decimal.Decimal
	AlertThreshold  int
	Severity        Severity
}

type Dashboard struct {
	MonthlyExpenses    decimal.Decimal
	ActiveBudgets      int
	TotalFunding       decimal.Decimal
	RecentTransactions []*Expense
	BudgetAlerts       []BudgetAlert
}

// SpendingTx is a budget held under a row lock for a read-modify-write
// spend update. Commit or Rollback must always be called.
type SpendingTx interface {
	Budget() *Budget
	Update(ctx context.Context, budget *Budget) error
	Commit() error
	Rollback() error
}

// CampaignTx is a campaign held under a row lock for an investor update.
type CampaignTx interface {
	Campaign() *FundraisingCampaign
	Update(ctx context.Context, campaign *FundraisingCampaign) error
	Commit() error
	Rollback() error
}

type Repository interface {
	CreateExpense(ctx context.Context, expense *Expense) error
	ListExpenses(ctx context.Context, startupID uuid.UUID, filter ExpenseFilter) ([]*Expense, int, error)
	CategoryTotals(ctx context.Context, startupID uuid.UUID, since time.Time) ([]CategoryStat, error)
	MonthlyTotals(ctx context.Context, startupID uuid.UUID, since time.Time) ([]MonthStat, error)
	RecentExpenses(ctx context.Context, startupID uuid.UUID, limit int) ([]*Expense, error)
	ExpenseTotalsByCategory(ctx context.Context, startupID uuid.UUID, from, to time.Time) (map[ExpenseCategory]decimal.Decimal, error)
	SettledExpenses(ctx context.Context, startupID uuid.UUID, from, to time.Time) ([]*Expense, error)
	MonthExpenseTotal(ctx context.Context, startupID uuid.UUID, monthStart time.Time) (decimal.Decimal, error)

	CreateBudget(ctx context.Context, budget *Budget) error
	GetBudget(ctx context.Context, id uuid.UUID) (*Budget, error)
	ListBudgets(ctx context.Context, startupID uuid.UUID) ([]*Budget, error)
	ActiveBudgets(ctx context.Context, startupID uuid.UUID) ([]*Budget, error)
	OverlappingBudgets(ctx context.Context, startupID uuid.UUID, from, to time.Time) ([]*Budget, error)
	BeginSpending(ctx context.Context, budgetID uuid.UUID) (SpendingTx, error)

	CreateFundingSource(ctx context.Context, source *FundingSource) error
	ListFundingSources(ctx context.Context, startupID uuid.UUID) ([]*FundingSource, error)
	ReceivedFunding(ctx context.Context, startupID uuid.UUID, from, to time.Time) ([]*FundingSource, error)
	TotalReceivedFunding(ctx context.Context, startupID uuid.UUID) (decimal.Decimal, error)

	CreateCampaign(ctx context.Context, campaign *FundraisingCampaign) error
	ListCampaigns(ctx context.Context, startupID uuid.UUID) ([]*FundraisingCampaign, error)
	BeginInvestorUpdate(ctx context.Context, campaignID uuid.UUID) (CampaignTx, error)

	CreateReport(ctx context.Context, report *FinancialReport) error
	ListReports(ctx context.Context, startupID uuid.UUID) ([]*FinancialReport, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateExpenseParams struct {
	Title              string
	Description        string
	Amount             decimal.Decimal
	Category           ExpenseCategory
	Subcategory        string
	Date               time.Time
	PaymentMethod      string
	Vendor             Vendor
	ReceiptURL         string
	ReceiptData        *ReceiptData
	Tags               []string
	IsRecurring        bool
	RecurringFrequency string
	ProjectID          *uuid.UUID
	StartupID          uuid.UUID
	CreatedBy          uuid.UUID
}

func (s *Service) CreateExpense(ctx context.Context, params CreateExpenseParams) (*Expense, error) {
	if params.Title == "" || params.StartupID == uuid.Nil || params.CreatedBy == uuid.Nil {
		return nil, ErrMissingFields
	}

	// Zero is allowed: a receipt the parser could not price is still
	// recorded, with the amount corrected later.
	if params.Amount.IsNegative() {
		return nil, ErrInvalidAmount
	}

	if !ValidCategory(params.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrMissingFields, params.Category)
	}

	if params.Date.IsZero() {
		params.Date = time.Now()
	}

	expense := Expense{
		ID:                 uuid.New(),
		Title:              params.Title,
		Description:        params.Description,
		Amount:             params.Amount,
		Category:           params.Category,
		Subcategory:        params.Subcategory,
		Date:               params.Date,
		PaymentMethod:      params.PaymentMethod,
		Vendor:             params.Vendor,
		ReceiptURL:         params.ReceiptURL,
		ReceiptData:        params.ReceiptData,
		Tags:               params.Tags,
		IsRecurring:        params.IsRecurring,
		RecurringFrequency: params.RecurringFrequency,
		ProjectID:          params.ProjectID,
		StartupID:          params.StartupID,
		CreatedBy:          params.CreatedBy,
		Status:             ExpensePending,
		CreatedAt:          time.Now(),
	}

	if err := s.repo.CreateExpense(ctx, &expense); err != nil {
		return nil, fmt.Errorf("creating expense: %w", err)
	}

	return &expense, nil
}

func (s *Service) Expenses(ctx context.Context, startupID uuid.UUID, filter ExpenseFilter) (*ExpensePage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	expenses, total, err := s.repo.ListExpenses(ctx, startupID, filter)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	return &ExpensePage{
		Expenses:   expenses,
		Total:      total,
		Page:       filter.Page,
		TotalPages: (total + filter.Limit - 1) / filter.Limit,
	}, nil
}

// ExpenseAnalytics rolls up spending by category over the requested
// period and by month over the trailing year, plus the five most
// recent expenses.
func (s *Service) ExpenseAnalytics(ctx context.Context, startupID uuid.UUID, period string) (*Analytics, error) {
	now := time.Now()

	var since time.Time
	switch period {
	case "week":
		since = now.AddDate(0, 0, -7)
	case "quarter":
		since = now.AddDate(0, -3, 0)
	case "year":
		since = now.AddDate(-1, 0, 0)
	default:
		since = now.AddDate(0, -1, 0)
	}

	byCategory, err := s.repo.CategoryTotals(ctx, startupID, since)
	if err != nil {
		return nil, fmt.Errorf("aggregating by category: %w", err)
	}

	byMonth, err := s.repo.MonthlyTotals(ctx, startupID, now.AddDate(-1, 0, 0))
	if err != nil {
		return nil, fmt.Errorf("aggregating by month: %w", err)
	}

	recent, err := s.repo.RecentExpenses(ctx, startupID, 5)
	if err != nil {
		return nil, fmt.Errorf("fetching recent expenses: %w", err)
	}

	return &Analytics{ByCategory: byCategory, ByMonth: byMonth, Recent: recent}, nil
}

type CreateBudgetParams struct {
	Name           string
	Description    string
	TotalAmount    decimal.Decimal
	Period         BudgetPeriod
	StartDate      time.Time
	EndDate        time.Time
	Categories     []BudgetCategory
	AlertThreshold int
	StartupID      uuid.UUID
	ProjectID      *uuid.UUID
	CreatedBy      uuid.UUID
}

func (s *Service) CreateBudget(ctx context.Context, params CreateBudgetParams) (*Budget, error) {
	if params.Name == "" || params.StartupID == uuid.Nil || params.CreatedBy == uuid.Nil {
		return nil, ErrMissingFields
	}

	if !params.TotalAmount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	for _, c := range params.Categories {
		if !ValidCategory(c.Category) {
			return nil, fmt.Errorf("%w: unknown category %q", ErrMissingFields, c.Category)
		}
	}

	if params.AlertThreshold <= 0 || params.AlertThreshold > 100 {
		params.AlertThreshold = 80
	}

	budget := Budget{
		ID:             uuid.New(),
		Name:           params.Name,
		Description:    params.Description,
		TotalAmount:    params.TotalAmount,
		Period:         params.Period,
		StartDate:      params.StartDate,
		EndDate:        params.EndDate,
		Categories:     params.Categories,
		AlertThreshold: params.AlertThreshold,
		Status:         BudgetActive,
		StartupID:      params.StartupID,
		ProjectID:      params.ProjectID,
		CreatedBy:      params.CreatedBy,
		CreatedAt:      time.Now(),
	}

	if err := s.repo.CreateBudget(ctx, &budget); err != nil {
		return nil, fmt.Errorf("creating budget: %w", err)
	}

	return &budget, nil
}

func (s *Service) Budgets(ctx context.Context, startupID uuid.UUID) ([]*Budget, error) {
	return s.repo.ListBudgets(ctx, startupID)
}

// RecordSpending adds amount to the named category of a budget. The
// whole read-modify-write runs inside one locked transaction so
// concurrent updates against the same budget serialize instead of
// losing increments. The budget flips to Exceeded once total spend
// across categories passes the total amount.
func (s *Service) RecordSpending(ctx context.Context, budgetID uuid.UUID, category ExpenseCategory, amount decimal.Decimal) (*Budget, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	tx, err := s.repo.BeginSpending(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	budget := tx.Budget()

	idx := -1
	for i := range budget.Categories {
		if budget.Categories[i].Category == category {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrCategoryNotFound
	}

	budget.Categories[idx].SpentAmount = budget.Categories[idx].SpentAmount.Add(amount)

	if budget.TotalSpent().GreaterThan(budget.TotalAmount) {
		budget.Status = BudgetExceeded
	}

	if err := tx.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("updating budget: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing spending update: %w", err)
	}

	return budget, nil
}

// BudgetVsActual compares each active budget's allocations against the
// expenses actually recorded inside its date window. When budgetID is
// set, only that budget is compared.
func (s *Service) BudgetVsActual(ctx context.Context, startupID uuid.UUID, budgetID *uuid.UUID) ([]BudgetComparison, error) {
	var (
		budgets []*Budget
		err     error
	)

	if budgetID != nil {
		budget, err := s.repo.GetBudget(ctx, *budgetID)
		if err != nil {
			return nil, err
		}
		budgets = []*Budget{budget}
	} else {
		budgets, err = s.repo.ActiveBudgets(ctx, startupID)
		if err != nil {
			return nil, fmt.Errorf("listing active budgets: %w", err)
		}
	}

	comparisons := make([]BudgetComparison, 0, len(budgets))

	for _, budget := range budgets {
		actuals, err := s.repo.ExpenseTotalsByCategory(ctx, startupID, budget.StartDate, budget.EndDate)
		if err != nil {
			return nil, fmt.Errorf("aggregating actuals for budget %s: %w", budget.ID, err)
		}

		comparison := BudgetComparison{
			BudgetID:   budget.ID,
			BudgetName: budget.Name,
			Period:     budget.Period,
			StartDate:  budget.StartDate,
			EndDate:    budget.EndDate,
		}

		for _, c := range budget.Categories {
			actual := actuals[c.Category]
			variance := actual.Sub(c.AllocatedAmount)

			line := CategoryComparison{
				Category: c.Category,
				Budgeted: c.AllocatedAmount,
				Actual:   actual,
				Variance: variance,
				Status:   "Under Budget",
			}
			if c.AllocatedAmount.IsPositive() {
				line.VariancePercent = variance.Div(c.AllocatedAmount).Mul(decimal.NewFromInt(100)).Round(2)
			}
			if variance.IsPositive() {
				line.Status = "Over Budget"
			}

			comparison.Categories = append(comparison.Categories, line)
		}

		comparisons = append(comparisons, comparison)
	}

	return comparisons, nil
}

type CreateFundingSourceParams struct {
	Name           string
	Type           FundingType
	Amount         decimal.Decimal
	Currency       string
	ReceivedAmount decimal.Decimal
	DateReceived   *time.Time
	ExpectedDate   *time.Time
	Terms          FundingTerms
	Investor       Investor
	Status         FundingStatus
	StartupID      uuid.UUID
	CreatedBy      uuid.UUID
}

func (s *Service) CreateFundingSource(ctx context.Context, params CreateFundingSourceParams) (*FundingSource, error) {
	if params.Name == "" || params.StartupID == uuid.Nil || params.CreatedBy == uuid.Nil {
		return nil, ErrMissingFields
	}

	if !params.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	if params.Status == "" {
		params.Status = FundingPending
	}
	if params.Currency == "" {
		params.Currency = "USD"
	}

	source := FundingSource{
		ID:             uuid.New(),
		Name:           params.Name,
		Type:           params.Type,
		Amount:         params.Amount,
		Currency:       params.Currency,
		ReceivedAmount: params.ReceivedAmount,
		DateReceived:   params.DateReceived,
		ExpectedDate:   params.ExpectedDate,
		Terms:          params.Terms,
		Investor:       params.Investor,
		Status:         params.Status,
		StartupID:      params.StartupID,
		CreatedBy:      params.CreatedBy,
		CreatedAt:      time.Now(),
	}

	if err := s.repo.CreateFundingSource(ctx, &source); err != nil {
		return nil, fmt.Errorf("creating funding source: %w", err)
	}

	return &source, nil
}

func (s *Service) FundingSources(ctx context.Context, startupID uuid.UUID) (*FundingOverview, error) {
	sources, err := s.repo.ListFundingSources(ctx, startupID)
	if err != nil {
		return nil, fmt.Errorf("listing funding sources: %w", err)
	}

	overview := FundingOverview{
		Sources:        sources,
		TotalCommitted: decimal.Zero,
		TotalReceived:  decimal.Zero,
		TotalRemaining: decimal.Zero,
	}

	for _, src := range sources {
		overview.TotalCommitted = overview.TotalCommitted.Add(src.Amount)
		overview.TotalReceived = overview.TotalReceived.Add(src.ReceivedAmount)
		overview.TotalRemaining = overview.TotalRemaining.Add(src.RemainingAmount())
	}

	return &overview, nil
}

type CreateCampaignParams struct {
	Name            string
	Description     string
	Type            CampaignType
	TargetAmount    decimal.Decimal
	Currency        string
	Valuation       Valuation
	StartDate       time.Time
	TargetCloseDate *time.Time
	Milestones      []Milestone
	StartupID       uuid.UUID
	CreatedBy       uuid.UUID
}

func (s *Service) CreateCampaign(ctx context.Context, params CreateCampaignParams) (*FundraisingCampaign, error) {
	if params.Name == "" || params.StartupID == uuid.Nil || params.CreatedBy == uuid.Nil {
		return nil, ErrMissingFields
	}

	if !params.TargetAmount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	if params.StartDate.IsZero() {
		params.StartDate = time.Now()
	}
	if params.Currency == "" {
		params.Currency = "USD"
	}

	campaign := FundraisingCampaign{
		ID:              uuid.New(),
		Name:            params.Name,
		Description:     params.Description,
		Type:            params.Type,
		TargetAmount:    params.TargetAmount,
		Currency:        params.Currency,
		Valuation:       params.Valuation,
		StartDate:       params.StartDate,
		TargetCloseDate: params.TargetCloseDate,
		Status:          CampaignPlanning,
		Milestones:      params.Milestones,
		StartupID:       params.StartupID,
		CreatedBy:       params.CreatedBy,
		CreatedAt:       time.Now(),
	}

	if err := s.repo.CreateCampaign(ctx, &campaign); err != nil {
		return nil, fmt.Errorf("creating campaign: %w", err)
	}

	return &campaign, nil
}

func (s *Service) Campaigns(ctx context.Context, startupID uuid.UUID) ([]*FundraisingCampaign, error) {
	return s.repo.ListCampaigns(ctx, startupID)
}

type InvestorUpdateParams struct {
	Name            string
	Status          InvestorStatus
	CommittedAmount *decimal.Decimal
	Notes           string
}

// UpdateInvestor changes one investor's pipeline status on a campaign.
// The raised amount is never written: it is always recomputed from the
// committed investors, so the update and the derived total cannot
// drift apart.
func (s *Service) UpdateInvestor(ctx context.Context, campaignID uuid.UUID, params InvestorUpdateParams) (*FundraisingCampaign, error) {
	if params.Name == "" || params.Status == "" {
		return nil, ErrMissingFields
	}

	tx, err := s.repo.BeginInvestorUpdate(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	campaign := tx.Campaign()

	idx := -1
	for i := range campaign.Investors {
		if campaign.Investors[i].Name == params.Name {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrInvestorNotFound
	}

	now := time.Now()
	campaign.Investors[idx].Status = params.Status
	campaign.Investors[idx].LastContact = &now
	if params.CommittedAmount != nil {
		campaign.Investors[idx].CommittedAmount = *params.CommittedAmount
	}
	if params.Notes != "" {
		campaign.Investors[idx].Notes = params.Notes
	}

	if err := tx.Update(ctx, campaign); err != nil {
		return nil, fmt.Errorf("updating campaign: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing investor update: %w", err)
	}

	return campaign, nil
}

// AddInvestor appends a new investor to a campaign's pipeline.
func (s *Service) AddInvestor(ctx context.Context, campaignID uuid.UUID, investor CampaignInvestor) (*FundraisingCampaign, error) {
	if investor.Name == "" {
		return nil, ErrMissingFields
	}
	if investor.Status == "" {
		investor.Status = InvestorInterested
	}

	tx, err := s.repo.BeginInvestorUpdate(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	campaign := tx.Campaign()
	campaign.Investors = append(campaign.Investors, investor)

	if err := tx.Update(ctx, campaign); err != nil {
		return nil, fmt.Errorf("updating campaign: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing investor update: %w", err)
	}

	return campaign, nil
}

type GenerateReportParams struct {
	Title       string
	Type        ReportType
	PeriodStart time.Time
	PeriodEnd   time.Time
	StartupID   uuid.UUID
	GeneratedBy uuid.UUID
}

// GenerateReport computes a financial snapshot for the window and
// persists it. Income is the received portion of funding sources in
// the window; expenses count only Approved and Reimbursed records.
// Each spending category is matched against the first overlapping
// budget that allocates it. The stored report is immutable; running
// the same window again writes a second record.
func (s *Service) GenerateReport(ctx context.Context, params GenerateReportParams) (*FinancialReport, error) {
	if params.StartupID == uuid.Nil || params.GeneratedBy == uuid.Nil {
		return nil, ErrMissingFields
	}
	if params.PeriodStart.IsZero() || params.PeriodEnd.IsZero() || params.PeriodEnd.Before(params.PeriodStart) {
		return nil, fmt.Errorf("%w: invalid report period", ErrMissingFields)
	}
	if params.Type == "" {
		params.Type = ReportCustom
	}
	if params.Title == "" {
		params.Title = fmt.Sprintf("%s Report %s - %s", params.Type,
			params.PeriodStart.Format("2006-01-02"), params.PeriodEnd.Format("2006-01-02"))
	}

	expenses, err := s.repo.SettledExpenses(ctx, params.StartupID, params.PeriodStart, params.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("loading expenses: %w", err)
	}

	funding, err := s.repo.ReceivedFunding(ctx, params.StartupID, params.PeriodStart, params.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("loading funding: %w", err)
	}

	budgets, err := s.repo.OverlappingBudgets(ctx, params.StartupID, params.PeriodStart, params.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("loading budgets: %w", err)
	}

	totalExpenses := decimal.Zero
	spentByCategory := make(map[ExpenseCategory]decimal.Decimal)
	var categoryOrder []ExpenseCategory

	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Amount)
		if _, seen := spentByCategory[e.Category]; !seen {
			categoryOrder = append(categoryOrder, e.Category)
		}
		spentByCategory[e.Category] = spentByCategory[e.Category].Add(e.Amount)
	}

	totalIncome := decimal.Zero
	for _, f := range funding {
		totalIncome = totalIncome.Add(f.ReceivedAmount)
	}

	breakdown := make([]CategoryLine, 0, len(categoryOrder))
	totalBudgeted := decimal.Zero

	for _, category := range categoryOrder {
		spent := spentByCategory[category]
		budgeted := budgetedAmount(budgets, category)
		totalBudgeted = totalBudgeted.Add(budgeted)

		line := CategoryLine{
			Category: category,
			Budgeted: budgeted,
			Spent:    spent,
			Variance: spent.Sub(budgeted),
		}
		if budgeted.IsPositive() {
			line.Percentage = spent.Div(budgeted).Mul(decimal.NewFromInt(100)).Round(2)
		}

		breakdown = append(breakdown, line)
	}

	summary := ReportSummary{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		NetCashFlow:   totalIncome.Sub(totalExpenses),
	}
	if totalBudgeted.IsPositive() {
		summary.BudgetUtilization = totalExpenses.Div(totalBudgeted).Mul(decimal.NewFromInt(100)).Round(2)
	}

	report := FinancialReport{
		ID:                uuid.New(),
		Title:             params.Title,
		Type:              params.Type,
		PeriodStart:       params.PeriodStart,
		PeriodEnd:         params.PeriodEnd,
		Summary:           summary,
		CategoryBreakdown: breakdown,
		Insights:          deriveInsights(summary, breakdown),
		StartupID:         params.StartupID,
		GeneratedBy:       params.GeneratedBy,
		CreatedAt:         time.Now(),
	}

	if err := s.repo.CreateReport(ctx, &report); err != nil {
		return nil, fmt.Errorf("saving report: %w", err)
	}

	return &report, nil
}

func (s *Service) Reports(ctx context.Context, startupID uuid.UUID) ([]*FinancialReport, error) {
	return s.repo.ListReports(ctx, startupID)
}

// budgetedAmount finds the allocation for a category in the first
// budget that carries it. Overlapping budgets are not merged.
func budgetedAmount(budgets []*Budget, category ExpenseCategory) decimal.Decimal {
	for _, b := range budgets {
		for _, c := range b.Categories {
			if c.Category == category {
				return c.AllocatedAmount
			}
		}
	}

	return decimal.Zero
}

func deriveInsights(summary ReportSummary, breakdown []CategoryLine) []Insight {
	var insights []Insight

	if summary.TotalExpenses.GreaterThan(summary.TotalIncome) {
		insights = append(insights, Insight{
			Type:     "Cash Flow",
			Message:  fmt.Sprintf("Expenses (%s) exceed income (%s) for this period", summary.TotalExpenses, summary.TotalIncome),
			Severity: SeverityWarning,
		})
	}

	for _, line := range breakdown {
		if !line.Variance.IsPositive() {
			continue
		}

		severity := SeverityWarning
		if line.Variance.GreaterThan(line.Budgeted.Mul(decimal.NewFromFloat(0.2))) {
			severity = SeverityCritical
		}

		insights = append(insights, Insight{
			Type:     "Budget Variance",
			Message:  fmt.Sprintf("%s spending is %s over budget", line.Category, line.Variance),
			Severity: severity,
		})
	}

	return insights
}

// DashboardData assembles the landing-page snapshot: current-month
// spend, active budget count, lifetime received funding, the ten most
// recent transactions, and utilization alerts for budgets whose spend
// has crossed their alert threshold.
func (s *Service) DashboardData(ctx context.Context, startupID uuid.UUID) (*Dashboard, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	monthly, err := s.repo.MonthExpenseTotal(ctx, startupID, monthStart)
	if err != nil {
		return nil, fmt.Errorf("summing monthly expenses: %w", err)
	}

	budgets, err := s.repo.ActiveBudgets(ctx, startupID)
	if err != nil {
		return nil, fmt.Errorf("listing active budgets: %w", err)
	}

	funding, err := s.repo.TotalReceivedFunding(ctx, startupID)
	if err != nil {
		return nil, fmt.Errorf("summing received funding: %w", err)
	}

	recent, err := s.repo.RecentExpenses(ctx, startupID, 10)
	if err != nil {
		return nil, fmt.Errorf("fetching recent transactions: %w", err)
	}

	var alerts []BudgetAlert
	hundred := decimal.NewFromInt(100)

	for _, budget := range budgets {
		for _, c := range budget.Categories {
			if !c.AllocatedAmount.IsPositive() {
				continue
			}

			utilization := c.SpentAmount.Div(c.AllocatedAmount).Mul(hundred)
			if utilization.LessThan(decimal.NewFromInt(int64(budget.AlertThreshold))) {
				continue
			}

			severity := SeverityWarning
			if utilization.GreaterThanOrEqual(hundred) {
				severity = SeverityCritical
			}

			alerts = append(alerts, BudgetAlert{
				BudgetID:        budget.ID,
				BudgetName:      budget.Name,
				Category:        c.Category,
				UtilizationRate: utilization.Round(2),
				AlertThreshold:  budget.AlertThreshold,
				Severity:        severity,
			})
		}
	}

	return &Dashboard{
		MonthlyExpenses:    monthly,
		ActiveBudgets:      len(budgets),
		TotalFunding:       funding,
		RecentTransactions: recent,
		BudgetAlerts:       alerts,
	}, nil
}
