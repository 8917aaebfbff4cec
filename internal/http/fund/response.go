package fund

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/foundx/foundx/internal/fund"
)

type vendorResponse struct {
	Name    string `json:"name,omitempty"`
	Contact string `json:"contact,omitempty"`
	Address string `json:"address,omitempty"`
}

type receiptDataResponse struct {
	Confidence    float64 `json:"confidence"`
	ExtractedText string  `json:"extractedText,omitempty"`
	BillType      string  `json:"billType,omitempty"`
}

type expenseResponse struct {
	ID                 uuid.UUID            `json:"id"`
	Title              string               `json:"title"`
	Description        string               `json:"description,omitempty"`
	Amount             decimal.Decimal      `json:"amount"`
	Category           fund.ExpenseCategory `json:"category"`
	Subcategory        string               `json:"subcategory,omitempty"`
	Date               time.Time            `json:"date"`
	PaymentMethod      string               `json:"paymentMethod,omitempty"`
	Vendor             vendorResponse       `json:"vendor"`
	ReceiptURL         string               `json:"receiptUrl,omitempty"`
	ReceiptData        *receiptDataResponse `json:"receiptData,omitempty"`
	Tags               []string             `json:"tags,omitempty"`
	IsRecurring        bool                 `json:"isRecurring"`
	RecurringFrequency string               `json:"recurringFrequency,omitempty"`
	ProjectID          *uuid.UUID           `json:"projectId,omitempty"`
	StartupID          uuid.UUID            `json:"startupId"`
	CreatedBy          uuid.UUID            `json:"createdBy"`
	ApprovedBy         *uuid.UUID           `json:"approvedBy,omitempty"`
	Status             fund.ExpenseStatus   `json:"status"`
	CreatedAt          time.Time            `json:"createdAt"`
}

func toExpenseResponse(e *fund.Expense) expenseResponse {
	resp := expenseResponse{
		ID:                 e.ID,
		Title:              e.Title,
		Description:        e.Description,
		Amount:             e.Amount,
		Category:           e.Category,
		Subcategory:        e.Subcategory,
		Date:               e.Date,
		PaymentMethod:      e.PaymentMethod,
		Vendor:             vendorResponse(e.Vendor),
		ReceiptURL:         e.ReceiptURL,
		Tags:               e.Tags,
		IsRecurring:        e.IsRecurring,
		RecurringFrequency: e.RecurringFrequency,
		ProjectID:          e.ProjectID,
		StartupID:          e.StartupID,
		CreatedBy:          e.CreatedBy,
		ApprovedBy:         e.ApprovedBy,
		Status:             e.Status,
		CreatedAt:          e.CreatedAt,
	}

	if e.ReceiptData != nil {
		resp.ReceiptData = &receiptDataResponse{
			Confidence:    e.ReceiptData.Confidence,
			ExtractedText: e.ReceiptData.ExtractedText,
			BillType:      e.ReceiptData.BillType,
		}
	}

	return resp
}

func toExpenseResponseList(expenses []*fund.Expense) []expenseResponse {
	resp := make([]expenseResponse, 0, len(expenses))
	for _, e := range expenses {
		resp = append(resp, toExpenseResponse(e))
	}

	return resp
}

// budgetCategoryResponse exposes the derived remaining amount so
// clients never have to compute it.
type budgetCategoryResponse struct {
	Category        fund.ExpenseCategory `json:"category"`
	AllocatedAmount decimal.Decimal      `json:"allocatedAmount"`
	SpentAmount     decimal.Decimal      `json:"spentAmount"`
	RemainingAmount decimal.Decimal      `json:"remainingAmount"`
}

type budgetResponse struct {
	ID             uuid.UUID                `json:"id"`
	Name           string                   `json:"name"`
	Description    string                   `json:"description,omitempty"`
	TotalAmount    decimal.Decimal          `json:"totalAmount"`
	Period         fund.BudgetPeriod        `json:"period"`
	StartDate      time.Time                `json:"startDate"`
	EndDate        time.Time                `json:"endDate"`
	Categories     []budgetCategoryResponse `json:"categories"`
	AlertThreshold int                      `json:"alertThreshold"`
	Status         fund.BudgetStatus        `json:"status"`
	StartupID      uuid.UUID                `json:"startupId"`
	ProjectID      *uuid.UUID               `json:"projectId,omitempty"`
	CreatedAt      time.Time                `json:"createdAt"`
}

func toBudgetResponse(b *fund.Budget) budgetResponse {
	resp := budgetResponse{
		ID:             b.ID,
		Name:           b.Name,
		Description:    b.Description,
		TotalAmount:    b.TotalAmount,
		Period:         b.Period,
		StartDate:      b.StartDate,
		EndDate:        b.EndDate,
		Categories:     make([]budgetCategoryResponse, 0, len(b.Categories)),
		AlertThreshold: b.AlertThreshold,
		Status:         b.Status,
		StartupID:      b.StartupID,
		ProjectID:      b.ProjectID,
		CreatedAt:      b.CreatedAt,
	}
	for _, c := range b.Categories {
		resp.Categories = append(resp.Categories, budgetCategoryResponse{
			Category:        c.Category,
			AllocatedAmount: c.AllocatedAmount,
			SpentAmount:     c.SpentAmount,
			RemainingAmount: c.RemainingAmount(),
		})
	}

	return resp
}

type fundingSourceResponse struct {
	ID              uuid.UUID          `json:"id"`
	Name            string             `json:"name"`
	Type            fund.FundingType   `json:"type"`
	Amount          decimal.Decimal    `json:"amount"`
	Currency        string             `json:"currency"`
	ReceivedAmount  decimal.Decimal    `json:"receivedAmount"`
	RemainingAmount decimal.Decimal    `json:"remainingAmount"`
	DateReceived    *time.Time         `json:"dateReceived,omitempty"`
	ExpectedDate    *time.Time         `json:"expectedDate,omitempty"`
	Terms           fund.FundingTerms  `json:"terms"`
	Investor        investorResponse   `json:"investor"`
	Status          fund.FundingStatus `json:"status"`
	StartupID       uuid.UUID          `json:"startupId"`
	CreatedAt       time.Time          `json:"createdAt"`
}

type investorResponse struct {
	Name    string `json:"name,omitempty"`
	Contact string `json:"contact,omitempty"`
	Type    string `json:"type,omitempty"`
}

func toFundingSourceResponse(f *fund.FundingSource) fundingSourceResponse {
	return fundingSourceResponse{
		ID:              f.ID,
		Name:            f.Name,
		Type:            f.Type,
		Amount:          f.Amount,
		Currency:        f.Currency,
		ReceivedAmount:  f.ReceivedAmount,
		RemainingAmount: f.RemainingAmount(),
		DateReceived:    f.DateReceived,
		ExpectedDate:    f.ExpectedDate,
		Terms:           f.Terms,
		Investor:        investorResponse(f.Investor),
		Status:          f.Status,
		StartupID:       f.StartupID,
		CreatedAt:       f.CreatedAt,
	}
}

type campaignResponse struct {
	ID              uuid.UUID               `json:"id"`
	Name            string                  `json:"name"`
	Description     string                  `json:"description,omitempty"`
	Type            fund.CampaignType       `json:"type"`
	TargetAmount    decimal.Decimal         `json:"targetAmount"`
	RaisedAmount    decimal.Decimal         `json:"raisedAmount"`
	Currency        string                  `json:"currency"`
	Valuation       fund.Valuation          `json:"valuation"`
	StartDate       time.Time               `json:"startDate"`
	TargetCloseDate *time.Time              `json:"targetCloseDate,omitempty"`
	Status          fund.CampaignStatus     `json:"status"`
	Investors       []fund.CampaignInvestor `json:"investors"`
	Milestones      []fund.Milestone        `json:"milestones"`
	StartupID       uuid.UUID               `json:"startupId"`
	CreatedAt       time.Time               `json:"createdAt"`
}

func toCampaignResponse(c *fund.FundraisingCampaign) campaignResponse {
	investors := c.Investors
	if investors == nil {
		investors = []fund.CampaignInvestor{}
	}
	milestones := c.Milestones
	if milestones == nil {
		milestones = []fund.Milestone{}
	}

	return campaignResponse{
		ID:              c.ID,
		Name:            c.Name,
		Description:     c.Description,
		Type:            c.Type,
		TargetAmount:    c.TargetAmount,
		RaisedAmount:    c.RaisedAmount(),
		Currency:        c.Currency,
		Valuation:       c.Valuation,
		StartDate:       c.StartDate,
		TargetCloseDate: c.TargetCloseDate,
		Status:          c.Status,
		Investors:       investors,
		Milestones:      milestones,
		StartupID:       c.StartupID,
		CreatedAt:       c.CreatedAt,
	}
}

type reportResponse struct {
	ID                uuid.UUID           `json:"id"`
	Title             string              `json:"title"`
	Type              fund.ReportType     `json:"type"`
	PeriodStart       time.Time           `json:"periodStart"`
	PeriodEnd         time.Time           `json:"periodEnd"`
	Summary           fund.ReportSummary  `json:"summary"`
	CategoryBreakdown []fund.CategoryLine `json:"categoryBreakdown"`
	Insights          []fund.Insight      `json:"insights"`
	StartupID         uuid.UUID           `json:"startupId"`
	GeneratedBy       uuid.UUID           `json:"generatedBy"`
	CreatedAt         time.Time           `json:"createdAt"`
}

func toReportResponse(r *fund.FinancialReport) reportResponse {
	breakdown := r.CategoryBreakdown
	if breakdown == nil {
		breakdown = []fund.CategoryLine{}
	}
	insights := r.Insights
	if insights == nil {
		insights = []fund.Insight{}
	}

	return reportResponse{
		ID:                r.ID,
		Title:             r.Title,
		Type:              r.Type,
		PeriodStart:       r.PeriodStart,
		PeriodEnd:         r.PeriodEnd,
		Summary:           r.Summary,
		CategoryBreakdown: breakdown,
		Insights:          insights,
		StartupID:         r.StartupID,
		GeneratedBy:       r.GeneratedBy,
		CreatedAt:         r.CreatedAt,
	}
}
