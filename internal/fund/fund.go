package fund

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBudgetNotFound   = errors.New("budget not found")
	ErrCategoryNotFound = errors.New("category not found in budget")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrInvestorNotFound = errors.New("investor not found in campaign")
	ErrMissingFields    = errors.New("required fields are missing")
	ErrInvalidAmount    = errors.New("invalid amount")
)

// ExpenseCategory is the closed set of spending buckets.
type ExpenseCategory string

const (
	CategoryDevelopment   ExpenseCategory = "Development"
	CategoryMarketing     ExpenseCategory = "Marketing"
	CategoryOperations    ExpenseCategory = "Operations"
	CategoryLegal         ExpenseCategory = "Legal"
	CategoryEquipment     ExpenseCategory = "Equipment"
	CategoryTravel        ExpenseCategory = "Travel"
	CategoryOffice        ExpenseCategory = "Office"
	CategoryUtilities     ExpenseCategory = "Utilities"
	CategorySoftware      ExpenseCategory = "Software"
	CategoryConsulting    ExpenseCategory = "Consulting"
	CategoryResearch      ExpenseCategory = "Research"
	CategoryMiscellaneous ExpenseCategory = "Miscellaneous"
)

// ValidCategory reports whether c is one of the known expense categories.
func ValidCategory(c ExpenseCategory) bool {
	switch c {
	case CategoryDevelopment, CategoryMarketing, CategoryOperations, CategoryLegal,
		CategoryEquipment, CategoryTravel, CategoryOffice, CategoryUtilities,
		CategorySoftware, CategoryConsulting, CategoryResearch, CategoryMiscellaneous:
		return true
	}

	return false
}

// ExpenseStatus is the approval state of an expense.
type ExpenseStatus string

const (
	ExpensePending    ExpenseStatus = "Pending"
	ExpenseApproved   ExpenseStatus = "Approved"
	ExpenseRejected   ExpenseStatus = "Rejected"
	ExpenseReimbursed ExpenseStatus = "Reimbursed"
)

type Vendor struct {
	Name    string
	Contact string
	Address string
}

// ReceiptData carries what the bill parser extracted from a receipt.
type ReceiptData struct {
	Confidence    float64
	ExtractedText string
	BillType      string
}

type Expense struct {
	ID                 uuid.UUID
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
	ApprovedBy         *uuid.UUID
	Status             ExpenseStatus
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

// BudgetPeriod is the time basis of a budget.
type BudgetPeriod string

const (
	PeriodMonthly      BudgetPeriod = "Monthly"
	PeriodQuarterly    BudgetPeriod = "Quarterly"
	PeriodYearly       BudgetPeriod = "Yearly"
	PeriodProjectBased BudgetPeriod = "Project-based"
)

// BudgetStatus is the lifecycle state of a budget. Active flips to
// Exceeded when total spend passes the total amount.
type BudgetStatus string

const (
	BudgetActive    BudgetStatus = "Active"
	BudgetPaused    BudgetStatus = "Paused"
	BudgetCompleted BudgetStatus = "Completed"
	BudgetExceeded  BudgetStatus = "Exceeded"
)

// BudgetCategory is a named allocation bucket. The remaining amount is
// never stored; it is always allocated minus spent.
type BudgetCategory struct {
	Category        ExpenseCategory `json:"category"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount"`
	SpentAmount     decimal.Decimal `json:"spentAmount"`
}

func (c BudgetCategory) RemainingAmount() decimal.Decimal {
	return c.AllocatedAmount.Sub(c.SpentAmount)
}

type Budget struct {
	ID             uuid.UUID
	Name           string
	Description    string
	TotalAmount    decimal.Decimal
	Period         BudgetPeriod
	StartDate      time.Time
	EndDate        time.Time
	Categories     []BudgetCategory
	AlertThreshold int
	Status         BudgetStatus
	StartupID      uuid.UUID
	ProjectID      *uuid.UUID
	CreatedBy      uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// TotalSpent sums the spend across all categories.
func (b *Budget) TotalSpent() decimal.Decimal {
	total := decimal.Zero
	for _, c := range b.Categories {
		total = total.Add(c.SpentAmount)
	}

	return total
}

// FundingType is the origin of a funding source.
type FundingType string

const (
	FundingBootstrapping   FundingType = "Bootstrapping"
	FundingFriendsFamily   FundingType = "Friends & Family"
	FundingAngel           FundingType = "Angel Investment"
	FundingVentureCapital  FundingType = "Venture Capital"
	FundingCrowdfunding    FundingType = "Crowdfunding"
	FundingGovernmentGrant FundingType = "Government Grant"
	FundingBankLoan        FundingType = "Bank Loan"
	FundingRevenue         FundingType = "Revenue"
	FundingOther           FundingType = "Other"
)

type FundingStatus string

const (
	FundingPending   FundingStatus = "Pending"
	FundingCommitted FundingStatus = "Committed"
	FundingReceived  FundingStatus = "Received"
	FundingRejected  FundingStatus = "Rejected"
	FundingCancelled FundingStatus = "Cancelled"
)

// FundingTerms captures the conditions attached to a funding source.
type FundingTerms struct {
	EquityPercentage float64  `json:"equityPercentage,omitempty"`
	ValuationCap     float64  `json:"valuationCap,omitempty"`
	InterestRate     float64  `json:"interestRate,omitempty"`
	PaybackPeriod    int      `json:"paybackPeriod,omitempty"`
	Conditions       []string `json:"conditions,omitempty"`
}

type Investor struct {
	Name    string
	Contact string
	Type    string
}

type FundingSource struct {
	ID             uuid.UUID
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
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// RemainingAmount is the portion of the committed amount not yet
// received. Always derived, never stored.
func (f *FundingSource) RemainingAmount() decimal.Decimal {
	return f.Amount.Sub(f.ReceivedAmount)
}

// CampaignType is the round being raised.
type CampaignType string

const (
	CampaignSeed         CampaignType = "Seed"
	CampaignSeriesA      CampaignType = "Series A"
	CampaignSeriesB      CampaignType = "Series B"
	CampaignSeriesC      CampaignType = "Series C"
	CampaignBridge       CampaignType = "Bridge"
	CampaignCrowdfunding CampaignType = "Crowdfunding"
	CampaignGrant        CampaignType = "Grant"
)

type CampaignStatus string

const (
	CampaignPlanning CampaignStatus = "Planning"
	CampaignActive   CampaignStatus = "Active"
	CampaignPaused   CampaignStatus = "Paused"
	CampaignClosed   CampaignStatus = "Closed"
	CampaignFailed   CampaignStatus = "Failed"
)

// InvestorStatus tracks an investor through the pipeline.
type InvestorStatus string

const (
	InvestorInterested   InvestorStatus = "Interested"
	InvestorDueDiligence InvestorStatus = "Due Diligence"
	InvestorCommitted    InvestorStatus = "Committed"
	InvestorDeclined     InvestorStatus = "Declined"
)

// CampaignInvestor is one entry in a campaign's investor pipeline. The
// wire key "commitedAmount" matches the established client contract.
type CampaignInvestor struct {
	Name            string          `json:"name"`
	Type            string          `json:"type,omitempty"`
	ContactInfo     string          `json:"contactInfo,omitempty"`
	CommittedAmount decimal.Decimal `json:"commitedAmount"`
	Status          InvestorStatus  `json:"status"`
	LastContact     *time.Time      `json:"lastContact,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

type Milestone struct {
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	TargetDate    *time.Time `json:"targetDate,omitempty"`
	Completed     bool       `json:"completed"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
}

type Valuation struct {
	Pre  decimal.Decimal `json:"pre"`
	Post decimal.Decimal `json:"post"`
}

type FundraisingCampaign struct {
	ID              uuid.UUID
	Name            string
	Description     string
	Type            CampaignType
	TargetAmount    decimal.Decimal
	Currency        string
	Valuation       Valuation
	StartDate       time.Time
	TargetCloseDate *time.Time
	Status          CampaignStatus
	Investors       []CampaignInvestor
	Milestones      []Milestone
	StartupID       uuid.UUID
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// RaisedAmount is the sum of all committed investor amounts. Derived
// from the investor list, never independently mutable.
func (c *FundraisingCampaign) RaisedAmount() decimal.Decimal {
	total := decimal.Zero

	for _, inv := range c.Investors {
		if inv.Status == InvestorCommitted {
			total = total.Add(inv.CommittedAmount)
		}
	}

	return total
}

// ReportType is the kind of financial report.
type ReportType string

const (
	ReportMonthly   ReportType = "Monthly"
	ReportQuarterly ReportType = "Quarterly"
	ReportYearly    ReportType = "Yearly"
	ReportCustom    ReportType = "Custom"
)

type Severity string

const (
	SeverityInfo     Severity = "Info"
	SeverityWarning  Severity = "Warning"
	SeverityCritical Severity = "Critical"
)

type Insight struct {
	Type     string   `json:"type"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// CategoryLine is one row of a report's category breakdown.
type CategoryLine struct {
	Category   ExpenseCategory `json:"category"`
	Budgeted   decimal.Decimal `json:"budgeted"`
	Spent      decimal.Decimal `json:"spent"`
	Variance   decimal.Decimal `json:"variance"`
	Percentage decimal.Decimal `json:"percentage"`
}

type ReportSummary struct {
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpenses     decimal.Decimal `json:"totalExpenses"`
	NetCashFlow       decimal.Decimal `json:"netCashFlow"`
	BudgetUtilization decimal.Decimal `json:"budgetUtilization"`
}

// FinancialReport is an immutable snapshot of a period. There is no
// update path; regenerating the same window produces a new record.
type FinancialReport struct {
	ID                uuid.UUID
	Title             string
	Type              ReportType
	PeriodStart       time.Time
	PeriodEnd         time.Time
	Summary           ReportSummary
	CategoryBreakdown []CategoryLine
	Insights          []Insight
	StartupID         uuid.UUID
	GeneratedBy       uuid.UUID
	CreatedAt         time.Time
}
