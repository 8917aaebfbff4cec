package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/foundx/foundx/internal/fund"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectExpenseColumns = `id, title, description, amount, category, subcategory, date,
payment_method, vendor_name, vendor_contact, vendor_address, receipt_url,
receipt_confidence, receipt_text, receipt_bill_type, tags, is_recurring,
recurring_frequency, project_id, startup_id, created_by, approved_by, status,
created_at, updated_at`

func scanExpense(s scanner) (*fund.Expense, error) {
	var (
		expense     fund.Expense
		confidence  sql.NullFloat64
		receiptText sql.NullString
		billType    sql.NullString
		tags        []byte
		projectID   uuid.NullUUID
		approvedBy  uuid.NullUUID
		updatedAt   sql.NullTime
	)

	err := s.Scan(&expense.ID, &expense.Title, &expense.Description, &expense.Amount,
		&expense.Category, &expense.Subcategory, &expense.Date, &expense.PaymentMethod,
		&expense.Vendor.Name, &expense.Vendor.Contact, &expense.Vendor.Address,
		&expense.ReceiptURL, &confidence, &receiptText, &billType, &tags,
		&expense.IsRecurring, &expense.RecurringFrequency, &projectID,
		&expense.StartupID, &expense.CreatedBy, &approvedBy, &expense.Status,
		&expense.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if confidence.Valid || receiptText.Valid || billType.Valid {
		expense.ReceiptData = &fund.ReceiptData{
			Confidence:    confidence.Float64,
			ExtractedText: receiptText.String,
			BillType:      billType.String,
		}
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &expense.Tags); err != nil {
			return nil, fmt.Errorf("decoding tags: %w", err)
		}
	}
	if projectID.Valid {
		expense.ProjectID = &projectID.UUID
	}
	if approvedBy.Valid {
		expense.ApprovedBy = &approvedBy.UUID
	}
	if updatedAt.Valid {
		expense.UpdatedAt = &updatedAt.Time
	}

	return &expense, nil
}

func (s *Store) CreateExpense(ctx context.Context, expense *fund.Expense) error {
	tags, err := json.Marshal(expense.Tags)
	if err != nil {
		return fmt.Errorf("encoding tags: %w", err)
	}

	var (
		confidence  sql.NullFloat64
		receiptText sql.NullString
		billType    sql.NullString
	)
	if expense.ReceiptData != nil {
		confidence = sql.NullFloat64{Float64: expense.ReceiptData.Confidence, Valid: true}
		receiptText = sql.NullString{String: expense.ReceiptData.ExtractedText, Valid: true}
		billType = sql.NullString{String: expense.ReceiptData.BillType, Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO expenses (id, title, description, amount, category, subcategory,
			date, payment_method, vendor_name, vendor_contact, vendor_address,
			receipt_url, receipt_confidence, receipt_text, receipt_bill_type, tags,
			is_recurring, recurring_frequency, project_id, startup_id, created_by,
			approved_by, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24)`,
		expense.ID, expense.Title, expense.Description, expense.Amount, expense.Category,
		expense.Subcategory, expense.Date, expense.PaymentMethod, expense.Vendor.Name,
		expense.Vendor.Contact, expense.Vendor.Address, expense.ReceiptURL, confidence,
		receiptText, billType, tags, expense.IsRecurring, expense.RecurringFrequency,
		uuidOrNil(expense.ProjectID), expense.StartupID, expense.CreatedBy,
		uuidOrNil(expense.ApprovedBy), expense.Status, expense.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting expense: %w", err)
	}

	return nil
}

func (s *Store) ListExpenses(ctx context.Context, startupID uuid.UUID, filter fund.ExpenseFilter) ([]*fund.Expense, int, error) {
	where := "WHERE startup_id = $1"
	args := []any{startupID}

	if filter.Category != "" {
		args = append(args, filter.Category)
		where += " AND category = $" + strconv.Itoa(len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += " AND status = $" + strconv.Itoa(len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where += " AND date >= $" + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where += " AND date <= $" + strconv.Itoa(len(args))
	}

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM expenses "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting expenses: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf("SELECT %s FROM expenses %s ORDER BY date DESC LIMIT $%d OFFSET $%d",
		selectExpenseColumns, where, len(args)-1, len(args))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying expenses: %w", err)
	}
	defer rows.Close()

	expenses, err := collectExpenses(rows)
	if err != nil {
		return nil, 0, err
	}

	return expenses, total, nil
}

func (s *Store) CategoryTotals(ctx context.Context, startupID uuid.UUID, since time.Time) ([]fund.CategoryStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category, SUM(amount), COUNT(*), AVG(amount)
		FROM expenses
		WHERE startup_id = $1 AND date >= $2
		GROUP BY category
		ORDER BY SUM(amount) DESC`, startupID, since)
	if err != nil {
		return nil, fmt.Errorf("aggregating expenses by category: %w", err)
	}
	defer rows.Close()

	var stats []fund.CategoryStat
	for rows.Next() {
		var stat fund.CategoryStat
		if err := rows.Scan(&stat.Category, &stat.Total, &stat.Count, &stat.Average); err != nil {
			return nil, fmt.Errorf("scanning category stat: %w", err)
		}
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}

func (s *Store) MonthlyTotals(ctx context.Context, startupID uuid.UUID, since time.Time) ([]fund.MonthStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT EXTRACT(YEAR FROM date)::int, EXTRACT(MONTH FROM date)::int, SUM(amount), COUNT(*)
		FROM expenses
		WHERE startup_id = $1 AND date >= $2
		GROUP BY 1, 2
		ORDER BY 1, 2`, startupID, since)
	if err != nil {
		return nil, fmt.Errorf("aggregating expenses by month: %w", err)
	}
	defer rows.Close()

	var stats []fund.MonthStat
	for rows.Next() {
		var (
			stat  fund.MonthStat
			month int
		)
		if err := rows.Scan(&stat.Year, &month, &stat.Total, &stat.Count); err != nil {
			return nil, fmt.Errorf("scanning month stat: %w", err)
		}
		stat.Month = time.Month(month)
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}

func (s *Store) RecentExpenses(ctx context.Context, startupID uuid.UUID, limit int) ([]*fund.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf("SELECT %s FROM expenses WHERE startup_id = $1 ORDER BY date DESC LIMIT $2", selectExpenseColumns),
		startupID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent expenses: %w", err)
	}
	defer rows.Close()

	return collectExpenses(rows)
}

func (s *Store) ExpenseTotalsByCategory(ctx context.Context, startupID uuid.UUID, from, to time.Time) (map[fund.ExpenseCategory]decimal.Decimal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category, SUM(amount)
		FROM expenses
		WHERE startup_id = $1 AND date >= $2 AND date <= $3
		GROUP BY category`, startupID, from, to)
	if err != nil {
		return nil, fmt.Errorf("aggregating expense totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[fund.ExpenseCategory]decimal.Decimal)
	for rows.Next() {
		var (
			category fund.ExpenseCategory
			total    decimal.Decimal
		)
		if err := rows.Scan(&category, &total); err != nil {
			return nil, fmt.Errorf("scanning expense total: %w", err)
		}
		totals[category] = total
	}

	return totals, rows.Err()
}

func (s *Store) SettledExpenses(ctx context.Context, startupID uuid.UUID, from, to time.Time) ([]*fund.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT %s FROM expenses
			WHERE startup_id = $1 AND date >= $2 AND date <= $3 AND status IN ('Approved', 'Reimbursed')
			ORDER BY date`, selectExpenseColumns),
		startupID, from, to)
	if err != nil {
		return nil, fmt.Errorf("querying settled expenses: %w", err)
	}
	defer rows.Close()

	return collectExpenses(rows)
}

func (s *Store) MonthExpenseTotal(ctx context.Context, startupID uuid.UUID, monthStart time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE startup_id = $1 AND date >= $2",
		startupID, monthStart).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing month expenses: %w", err)
	}

	return total, nil
}

func collectExpenses(rows *sql.Rows) ([]*fund.Expense, error) {
	var expenses []*fund.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}
		expenses = append(expenses, expense)
	}

	return expenses, rows.Err()
}

const selectBudgetColumns = `id, name, description, total_amount, period, start_date, end_date,
categories, alert_threshold, status, startup_id, project_id, created_by, created_at, updated_at`

func scanBudget(s scanner) (*fund.Budget, error) {
	var (
		budget     fund.Budget
		categories []byte
		projectID  uuid.NullUUID
		updatedAt  sql.NullTime
	)

	err := s.Scan(&budget.ID, &budget.Name, &budget.Description, &budget.TotalAmount,
		&budget.Period, &budget.StartDate, &budget.EndDate, &categories,
		&budget.AlertThreshold, &budget.Status, &budget.StartupID, &projectID,
		&budget.CreatedBy, &budget.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(categories, &budget.Categories); err != nil {
		return nil, fmt.Errorf("decoding budget categories: %w", err)
	}
	if projectID.Valid {
		budget.ProjectID = &projectID.UUID
	}
	if updatedAt.Valid {
		budget.UpdatedAt = &updatedAt.Time
	}

	return &budget, nil
}

func (s *Store) CreateBudget(ctx context.Context, budget *fund.Budget) error {
	categories, err := json.Marshal(budget.Categories)
	if err != nil {
		return fmt.Errorf("encoding budget categories: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO budgets (id, name, description, total_amount, period, start_date,
			end_date, categories, alert_threshold, status, startup_id, project_id,
			created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		budget.ID, budget.Name, budget.Description, budget.TotalAmount, budget.Period,
		budget.StartDate, budget.EndDate, categories, budget.AlertThreshold,
		budget.Status, budget.StartupID, uuidOrNil(budget.ProjectID), budget.CreatedBy,
		budget.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting budget: %w", err)
	}

	return nil
}

func (s *Store) GetBudget(ctx context.Context, id uuid.UUID) (*fund.Budget, error) {
	row := s.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM budgets WHERE id = $1", selectBudgetColumns), id)

	budget, err := scanBudget(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fund.ErrBudgetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying budget: %w", err)
	}

	return budget, nil
}

func (s *Store) ListBudgets(ctx context.Context, startupID uuid.UUID) ([]*fund.Budget, error) {
	return s.queryBudgets(ctx,
		fmt.Sprintf("SELECT %s FROM budgets WHERE startup_id = $1 ORDER BY created_at DESC", selectBudgetColumns),
		startupID)
}

func (s *Store) ActiveBudgets(ctx context.Context, startupID uuid.UUID) ([]*fund.Budget, error) {
	return s.queryBudgets(ctx,
		fmt.Sprintf("SELECT %s FROM budgets WHERE startup_id = $1 AND status = 'Active' ORDER BY created_at DESC", selectBudgetColumns),
		startupID)
}

func (s *Store) OverlappingBudgets(ctx context.Context, startupID uuid.UUID, from, to time.Time) ([]*fund.Budget, error) {
	return s.queryBudgets(ctx,
		fmt.Sprintf(`SELECT %s FROM budgets
			WHERE startup_id = $1 AND start_date <= $3 AND end_date >= $2
			ORDER BY created_at`, selectBudgetColumns),
		startupID, from, to)
}

func (s *Store) queryBudgets(ctx context.Context, query string, args ...any) ([]*fund.Budget, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*fund.Budget
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning budget: %w", err)
		}
		budgets = append(budgets, budget)
	}

	return budgets, rows.Err()
}

type spendingTx struct {
	tx     *sql.Tx
	budget *fund.Budget
}

// BeginSpending opens a transaction and locks the budget row so the
// read-modify-write spend update cannot race a concurrent one.
func (s *Store) BeginSpending(ctx context.Context, budgetID uuid.UUID) (fund.SpendingTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}

	row := tx.QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM budgets WHERE id = $1 FOR UPDATE", selectBudgetColumns), budgetID)

	budget, err := scanBudget(row)
	if err != nil {
		tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fund.ErrBudgetNotFound
		}
		return nil, fmt.Errorf("locking budget: %w", err)
	}

	return &spendingTx{tx: tx, budget: budget}, nil
}

func (t *spendingTx) Budget() *fund.Budget {
	return t.budget
}

func (t *spendingTx) Update(ctx context.Context, budget *fund.Budget) error {
	categories, err := json.Marshal(budget.Categories)
	if err != nil {
		return fmt.Errorf("encoding budget categories: %w", err)
	}

	_, err = t.tx.ExecContext(ctx,
		"UPDATE budgets SET categories = $2, status = $3, updated_at = NOW() WHERE id = $1",
		budget.ID, categories, budget.Status)
	if err != nil {
		return fmt.Errorf("updating budget: %w", err)
	}

	return nil
}

func (t *spendingTx) Commit() error {
	return t.tx.Commit()
}

func (t *spendingTx) Rollback() error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}

	return nil
}

const selectFundingColumns = `id, name, type, amount, currency, received_amount, date_received,
expected_date, terms, investor_name, investor_contact, investor_type, status,
startup_id, created_by, created_at, updated_at`

func scanFundingSource(s scanner) (*fund.FundingSource, error) {
	var (
		source       fund.FundingSource
		dateReceived sql.NullTime
		expectedDate sql.NullTime
		terms        []byte
		updatedAt    sql.NullTime
	)

	err := s.Scan(&source.ID, &source.Name, &source.Type, &source.Amount, &source.Currency,
		&source.ReceivedAmount, &dateReceived, &expectedDate, &terms,
		&source.Investor.Name, &source.Investor.Contact, &source.Investor.Type,
		&source.Status, &source.StartupID, &source.CreatedBy, &source.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if len(terms) > 0 {
		if err := json.Unmarshal(terms, &source.Terms); err != nil {
			return nil, fmt.Errorf("decoding funding terms: %w", err)
		}
	}
	if dateReceived.Valid {
		source.DateReceived = &dateReceived.Time
	}
	if expectedDate.Valid {
		source.ExpectedDate = &expectedDate.Time
	}
	if updatedAt.Valid {
		source.UpdatedAt = &updatedAt.Time
	}

	return &source, nil
}

func (s *Store) CreateFundingSource(ctx context.Context, source *fund.FundingSource) error {
	terms, err := json.Marshal(source.Terms)
	if err != nil {
		return fmt.Errorf("encoding funding terms: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO funding_sources (id, name, type, amount, currency, received_amount,
			date_received, expected_date, terms, investor_name, investor_contact,
			investor_type, status, startup_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		source.ID, source.Name, source.Type, source.Amount, source.Currency,
		source.ReceivedAmount, source.DateReceived, source.ExpectedDate, terms,
		source.Investor.Name, source.Investor.Contact, source.Investor.Type,
		source.Status, source.StartupID, source.CreatedBy, source.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting funding source: %w", err)
	}

	return nil
}

func (s *Store) ListFundingSources(ctx context.Context, startupID uuid.UUID) ([]*fund.FundingSource, error) {
	return s.queryFundingSources(ctx,
		fmt.Sprintf("SELECT %s FROM funding_sources WHERE startup_id = $1 ORDER BY created_at DESC", selectFundingColumns),
		startupID)
}

func (s *Store) ReceivedFunding(ctx context.Context, startupID uuid.UUID, from, to time.Time) ([]*fund.FundingSource, error) {
	return s.queryFundingSources(ctx,
		fmt.Sprintf(`SELECT %s FROM funding_sources
			WHERE startup_id = $1 AND status = 'Received'
				AND date_received >= $2 AND date_received <= $3
			ORDER BY date_received`, selectFundingColumns),
		startupID, from, to)
}

func (s *Store) TotalReceivedFunding(ctx context.Context, startupID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(received_amount), 0) FROM funding_sources WHERE startup_id = $1",
		startupID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing received funding: %w", err)
	}

	return total, nil
}

func (s *Store) queryFundingSources(ctx context.Context, query string, args ...any) ([]*fund.FundingSource, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying funding sources: %w", err)
	}
	defer rows.Close()

	var sources []*fund.FundingSource
	for rows.Next() {
		source, err := scanFundingSource(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning funding source: %w", err)
		}
		sources = append(sources, source)
	}

	return sources, rows.Err()
}

const selectCampaignColumns = `id, name, description, type, target_amount, currency,
valuation_pre, valuation_post, start_date, target_close_date, status, investors,
milestones, startup_id, created_by, created_at, updated_at`

func scanCampaign(s scanner) (*fund.FundraisingCampaign, error) {
	var (
		campaign   fund.FundraisingCampaign
		closeDate  sql.NullTime
		investors  []byte
		milestones []byte
		updatedAt  sql.NullTime
	)

	err := s.Scan(&campaign.ID, &campaign.Name, &campaign.Description, &campaign.Type,
		&campaign.TargetAmount, &campaign.Currency, &campaign.Valuation.Pre,
		&campaign.Valuation.Post, &campaign.StartDate, &closeDate, &campaign.Status,
		&investors, &milestones, &campaign.StartupID, &campaign.CreatedBy,
		&campaign.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if len(investors) > 0 {
		if err := json.Unmarshal(investors, &campaign.Investors); err != nil {
			return nil, fmt.Errorf("decoding investors: %w", err)
		}
	}
	if len(milestones) > 0 {
		if err := json.Unmarshal(milestones, &campaign.Milestones); err != nil {
			return nil, fmt.Errorf("decoding milestones: %w", err)
		}
	}
	if closeDate.Valid {
		campaign.TargetCloseDate = &closeDate.Time
	}
	if updatedAt.Valid {
		campaign.UpdatedAt = &updatedAt.Time
	}

	return &campaign, nil
}

func (s *Store) CreateCampaign(ctx context.Context, campaign *fund.FundraisingCampaign) error {
	investors, err := json.Marshal(campaign.Investors)
	if err != nil {
		return fmt.Errorf("encoding investors: %w", err)
	}
	milestones, err := json.Marshal(campaign.Milestones)
	if err != nil {
		return fmt.Errorf("encoding milestones: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO fundraising_campaigns (id, name, description, type, target_amount,
			currency, valuation_pre, valuation_post, start_date, target_close_date,
			status, investors, milestones, startup_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		campaign.ID, campaign.Name, campaign.Description, campaign.Type,
		campaign.TargetAmount, campaign.Currency, campaign.Valuation.Pre,
		campaign.Valuation.Post, campaign.StartDate, campaign.TargetCloseDate,
		campaign.Status, investors, milestones, campaign.StartupID,
		campaign.CreatedBy, campaign.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting campaign: %w", err)
	}

	return nil
}

func (s *Store) ListCampaigns(ctx context.Context, startupID uuid.UUID) ([]*fund.FundraisingCampaign, error) {
	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf("SELECT %s FROM fundraising_campaigns WHERE startup_id = $1 ORDER BY created_at DESC", selectCampaignColumns),
		startupID)
	if err != nil {
		return nil, fmt.Errorf("querying campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []*fund.FundraisingCampaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning campaign: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, rows.Err()
}

type campaignTx struct {
	tx       *sql.Tx
	campaign *fund.FundraisingCampaign
}

// BeginInvestorUpdate locks the campaign row for an investor-list
// rewrite, mirroring the budget spending transaction.
func (s *Store) BeginInvestorUpdate(ctx context.Context, campaignID uuid.UUID) (fund.CampaignTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}

	row := tx.QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM fundraising_campaigns WHERE id = $1 FOR UPDATE", selectCampaignColumns), campaignID)

	campaign, err := scanCampaign(row)
	if err != nil {
		tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fund.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("locking campaign: %w", err)
	}

	return &campaignTx{tx: tx, campaign: campaign}, nil
}

func (t *campaignTx) Campaign() *fund.FundraisingCampaign {
	return t.campaign
}

func (t *campaignTx) Update(ctx context.Context, campaign *fund.FundraisingCampaign) error {
	investors, err := json.Marshal(campaign.Investors)
	if err != nil {
		return fmt.Errorf("encoding investors: %w", err)
	}

	_, err = t.tx.ExecContext(ctx,
		"UPDATE fundraising_campaigns SET investors = $2, status = $3, updated_at = NOW() WHERE id = $1",
		campaign.ID, investors, campaign.Status)
	if err != nil {
		return fmt.Errorf("updating campaign: %w", err)
	}

	return nil
}

func (t *campaignTx) Commit() error {
	return t.tx.Commit()
}

func (t *campaignTx) Rollback() error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}

	return nil
}

const selectReportColumns = `id, title, type, period_start, period_end, total_income,
total_expenses, net_cash_flow, budget_utilization, category_breakdown, insights,
startup_id, generated_by, created_at`

func scanReport(s scanner) (*fund.FinancialReport, error) {
	var (
		report    fund.FinancialReport
		breakdown []byte
		insights  []byte
	)

	err := s.Scan(&report.ID, &report.Title, &report.Type, &report.PeriodStart,
		&report.PeriodEnd, &report.Summary.TotalIncome, &report.Summary.TotalExpenses,
		&report.Summary.NetCashFlow, &report.Summary.BudgetUtilization, &breakdown,
		&insights, &report.StartupID, &report.GeneratedBy, &report.CreatedAt)
	if err != nil {
		return nil, err
	}

	if len(breakdown) > 0 {
		if err := json.Unmarshal(breakdown, &report.CategoryBreakdown); err != nil {
			return nil, fmt.Errorf("decoding category breakdown: %w", err)
		}
	}
	if len(insights) > 0 {
		if err := json.Unmarshal(insights, &report.Insights); err != nil {
			return nil, fmt.Errorf("decoding insights: %w", err)
		}
	}

	return &report, nil
}

func (s *Store) CreateReport(ctx context.Context, report *fund.FinancialReport) error {
	breakdown, err := json.Marshal(report.CategoryBreakdown)
	if err != nil {
		return fmt.Errorf("encoding category breakdown: %w", err)
	}
	insights, err := json.Marshal(report.Insights)
	if err != nil {
		return fmt.Errorf("encoding insights: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO financial_reports (id, title, type, period_start, period_end,
			total_income, total_expenses, net_cash_flow, budget_utilization,
			category_breakdown, insights, startup_id, generated_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		report.ID, report.Title, report.Type, report.PeriodStart, report.PeriodEnd,
		report.Summary.TotalIncome, report.Summary.TotalExpenses,
		report.Summary.NetCashFlow, report.Summary.BudgetUtilization, breakdown,
		insights, report.StartupID, report.GeneratedBy, report.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting report: %w", err)
	}

	return nil
}

func (s *Store) ListReports(ctx context.Context, startupID uuid.UUID) ([]*fund.FinancialReport, error) {
	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf("SELECT %s FROM financial_reports WHERE startup_id = $1 ORDER BY created_at DESC", selectReportColumns),
		startupID)
	if err != nil {
		return nil, fmt.Errorf("querying reports: %w", err)
	}
	defer rows.Close()

	var reports []*fund.FinancialReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning report: %w", err)
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}

func uuidOrNil(id *uuid.UUID) any {
	if id == nil {
		return nil
	}

	return *id
}
