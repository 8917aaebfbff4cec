package fund

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/foundx/foundx/internal/fund"
	"github.com/foundx/foundx/internal/http/middleware"
	"github.com/foundx/foundx/internal/http/respond"
	"github.com/foundx/foundx/internal/importer"
	"github.com/foundx/foundx/internal/receipt"
)

// maxUploadSize caps receipt and statement uploads at 10 MiB.
const maxUploadSize = 10 << 20

type Handler struct {
	svc     *fund.Service
	bills   *receipt.Client
	imports *importer.Service
}

func NewHandler(svc *fund.Service, bills *receipt.Client, imports *importer.Service) *Handler {
	return &Handler{svc: svc, bills: bills, imports: imports}
}

// Routes are mounted under /funds/startup/{startupID} and all require
// an authenticated user.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/expenses", h.createExpense)
	r.Get("/expenses", h.listExpenses)
	r.Get("/expenses/analytics", h.expenseAnalytics)
	r.Post("/expenses/from-receipt", h.createFromReceiptImages)
	r.Post("/expenses/from-receipt-file", h.createFromReceiptFiles)
	r.Post("/expenses/import", h.importExpenses)
	r.Post("/budgets", h.createBudget)
	r.Get("/budgets", h.listBudgets)
	r.Put("/budgets/{budgetID}/spending", h.recordSpending)
	r.Get("/budget-vs-actual", h.budgetVsActual)
	r.Post("/funding-sources", h.createFundingSource)
	r.Get("/funding-sources", h.listFundingSources)
	r.Post("/fundraising-campaigns", h.createCampaign)
	r.Get("/fundraising-campaigns", h.listCampaigns)
	r.Post("/fundraising-campaigns/{campaignID}/investors", h.addInvestor)
	r.Put("/fundraising-campaigns/{campaignID}/investors", h.updateInvestor)
	r.Post("/financial-reports", h.generateReport)
	r.Get("/financial-reports", h.listReports)
	r.Get("/dashboard", h.dashboard)
}

func (h *Handler) startupID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "startupID"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid startup id")
		return uuid.Nil, false
	}

	return id, true
}

type vendorRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

type createExpenseRequest struct {
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount"`
	Category           string          `json:"category"`
	Subcategory        string          `json:"subcategory"`
	Date               string          `json:"date"`
	PaymentMethod      string          `json:"paymentMethod"`
	Vendor             vendorRequest   `json:"vendor"`
	ReceiptURL         string          `json:"receiptUrl"`
	Tags               []string        `json:"tags"`
	IsRecurring        bool            `json:"isRecurring"`
	RecurringFrequency string          `json:"recurringFrequency"`
	ProjectID          *uuid.UUID      `json:"projectId"`
}

func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	startupID, ok := h.startupID(w, r)
	if !ok {
		return
	}
	usr, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing access token")
		return
	}

	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid date")
		return
	}

	params := fund.CreateExpenseParams{
		Title:              req.Title,
		Description:        req.Description,
		Amount:             req.Amount,
		Category:           fund.ExpenseCategory(req.Category),
		Subcategory:        req.Subcategory,
		PaymentMethod:      req.PaymentMethod,
		Vendor:             fund.Vendor(req.Vendor),
		ReceiptURL:         req.ReceiptURL,
		Tags:               req.Tags,
		IsRecurring:        req.IsRecurring,
		RecurringFrequency: req.RecurringFrequency,
		ProjectID:          req.ProjectID,
		StartupID:          startupID,
		CreatedBy:          usr.ID,
	}
	if date != nil {
		params.Date = *date
	}

	expense, err := h.svc.CreateExpense(r.Context(), params)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respond.Data(w, http.StatusCreated, toExpenseResponse(expense), "expense created successfully")
}

type expensePageResponse struct {
	Expenses   []expenseResponse `json:"expenses"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
}

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	startupID, ok := h.startupID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	filter := fund.ExpenseFilter{
		Category: fund.ExpenseCategory(q.Get("category")),
		Status:   fund.ExpenseStatus(q.Get("status")),
		Page:     intQuery(q.Get("page")),
		Limit:    intQuery(q.Get("limit")),
	}

	var err error
	if filter.From, err = parseOptionalDate(q.Get("startDate")); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid startDate")
		return
	}
	if filter.To, err = parseOptionalDate(q.Get("endDate")); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid endDate")
		return
	}

	page, err := h.svc.Expenses(r.Context(), startupID, filter)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	resp := expensePageResponse{
		Expenses:   toExpenseResponseList(page.Expenses),
		Total:      page.Total,
		Page:       page.Page,
		TotalPages: page.TotalPages,
	}
	respond.Data(w, http.StatusOK, resp, "expenses fetched successfully")
}

type categoryStatResponse struct {
	Category fund.ExpenseCategory `json:"category"`
	Total    decimal.Decimal      `json:"total"`
	Count    int                  `json:"count"`
	Average  decimal.Decimal      `json:"average"`
}

type monthStatResponse struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

type analyticsResponse struct {
	ByCategory []categoryStatResponse `json:"byCategory"`
	ByMonth    []monthStatResponse    `json:"byMonth"`
	Recent     []expenseResponse      `json:"recentExpenses"`
}

func (h *Handler) expenseAnalytics(w http.ResponseWriter, r *http.Request) {
	startupID, ok := h.startupID(w, r)
	if !ok {
		return
	}

	analytics, err := h.svc.ExpenseAnalytics(r.Context(), startupID, r.URL.Query().Get("period"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	resp := analyticsResponse{
		ByCategory: make([]categoryStatResponse, 0, len(analytics.ByCategory)),
		ByMonth:    make([]monthStatResponse, 0, len(analytics.ByMonth)),
		Recent:     toExpenseResponseList(analytics.Recent),
	}
	for _, s := range analytics.ByCategory {
		resp.ByCategory = append(resp.ByCategory, categoryStatResponse{
			Category: s.Category,
			Total:    s.Total,
			Count:    s.Count,
			Average:  s.Average,
		})
	}
	for _, m := range analytics.ByMonth {
		resp.ByMonth = append(resp.ByMonth, monthStatResponse{
			Year:  m.Year,
			Month: int(m.Month),
			Total: m.Total,
			Count: m.Count,
		})
	}

	respond.Data(w, http.StatusOK, resp, "expense analytics fetched successfully")
}

type fromReceiptRequest struct {
	Images   []string `json:"images"`
	Category string   `json:"category"`
}

// createFromReceiptImages forwards base64 receipt images to the bill
// parser and records one expense per extracted bill.
func (h *Handler) createFromReceiptImages(w http.ResponseWriter, r *http.Request) {
	startupID, ok := h.startupID(w, r)
	if !ok {
		return
	}
	usr, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing access token")
		return
	}

	var req fromReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Images) == 0 {
		respond.Error(w, http.StatusBadRequest, "at least one image is required")
		return
	}

	bills, err := h.bills.ParseImages(r.Context(), req.Images)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	expenses, err := h.recordBills(r, bills, req.Category, startupID, usr.ID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respond.Data(w, http.StatusCreated, toExpenseResponseList(expenses), "expenses created from receipts")
}

func (h *Handler) createFromReceiptFiles(w http.ResponseWriter, r *http.Request) {
	startupID, ok := h.startupID(w, r)
	if !ok {
		return
	}
	usr, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing access token")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		respond.Error(w, http.StatusBadRequest, "at least one file is required")
		return
	}

	files := make([]receipt.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "could not read uploaded file")
			return
		}
		defer f.Close()
		files = append(files, receipt.File{Name: fh.Filename, Content: f})
	}

	bills, err := h.bills.ParseFiles(r.Context(), files)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	expenses, err := h.recordBills(r, bills, r.FormValue("category"), startupID, usr.ID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respond.Data(w, http.StatusCreated, toExpenseResponseList(expenses), "expenses created from receipts")
}

func (h *Handler) recordBills(r *http.Request, bills []receipt.ParsedBill, category string, startupID, createdBy uuid.UUID) ([]*fund.Expense, error) {
	if category == "" {
		category = string(fund.CategoryMiscellaneous)
	}

	expenses := make([]*fund.Expense, 0, len(bills))
	for _, bill := range bills {
		params := fund.CreateExpenseParams{
			Title:    fmt.Sprintf("Receipt - %s", bill.VendorName),
			Amount:   bill.TotalAmount,
			Category: fund.ExpenseCategory(category),
			Vendor:   fund.Vendor{Name: bill.VendorName},
			ReceiptData: &fund.ReceiptData{
				Confidence:    bill.Confidence,
				ExtractedText: bill.ExtractedText,
				BillType:      bill.BillType,
			},
			StartupID: startupID,
			CreatedBy: createdBy,
		}
		if bill.BillDate != nil {
			params.Date = *bill.BillDate
		}

		expense, err := h.svc.CreateExpense(r.Context(), params)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	return expenses, nil
}

// importExpenses ingests a bank or card statement export and records
// one expense per spend row.
func (h *Handler) importExpenses(w http.ResponseWriter, r *http.Request) {
	startupID, ok := h.startupID(w, r)
	if !ok {
		return
	}
	usr, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing access token")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "statement file is required")
		return
	}
	defer file.Close()

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatStatement
	}

	rows, err := h.imports.Import(format, file)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	expenses := make([]*fund.Expense, 0, len(rows))
	for _, params := range rows {
		params.StartupID = startupID
		params.CreatedBy = usr.ID

		expense, err := h.svc.CreateExpense(r.Context(), params)
		if err != nil {
			h.respondServiceError(w, err)
			return
		}
		expenses = append(expenses, expense)
	}

	respond.Data(w, http.StatusCreated, toExpenseResponseList(expenses), fmt.Sprintf("%d expenses imported", len(expenses)))
}

type budgetCategoryRequest struct {
	Category        string          `json:"category"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount"`
}

type createBudgetRequest struct {
	Name           string                  `json:"name"`
	Description    string                  `json:"description"`
	TotalAmount    decimal.Decimal         `json:"totalAmount"`
	Period         string                  `json:"period"`
	StartDate      string                  `json:"startDate"`
	EndDate        string                  `json:"endDate"`
	Categories     []budgetCategoryRequest `json:"categories"`
	AlertThreshold int                     `json:"alertThreshold"`
	ProjectID      *uuid.UUID              `json:"projectId"`
}

func (h *Handler) createBudget(w http.ResponseWriter, r *http.Request) {
	startupID, ok := h.startupID(w, r)
	if !ok {
		return
	}
	usr, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing access token")
		return
	}

	var req createBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil || startDate == nil {
		respond.Error(w, http.StatusBadRequest, "invalid startDate")
		return
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil || endDate == nil {
		respond.Error(w, http.StatusBadRequest, "invalid endDate")
		return
	}

	categories := make([]fund.BudgetCategory, 0, len(req.Categories))
	for _, c := range req.Categories {
		categories = append(categories, fund.BudgetCategory{
			Category:        fund.ExpenseCategory(c.Category),
			AllocatedAmount: c.AllocatedAmount,
		})
	}

	budget, err := h.svc.CreateBudget(r.Context(), fund.CreateBudgetParams{
		Name:           req.Name,
		Description:    req.Description,
		TotalAmount:    req.TotalAmount,
		Period:         fund.BudgetPeriod(req.Period),
		StartDate:      *startDate,
		EndDate:        *endDate,
		Categories:     categories,
		AlertThreshold: req.AlertThreshold,
		StartupID:      startupID,
		ProjectID:      req.ProjectID,
		CreatedBy:      usr.ID,
	})
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respond.Data(w, http.StatusCreated, toBudgetResponse(budget), "budget created successfully")
}

func (h *Handler) listBudgets(w http.ResponseWriter, r *http.Request) {
	startupID, ok := h.startupID(w, r)
	if !ok {
		return
	}

	budgets, err := h.svc.Budgets(r.Context(), startupID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	status := r.URL.Query().Get("status")
	period := r.URL.Query().Get("period")

	resp := make([]budgetResponse, 0, len(budgets))
	for _, b := range budgets {
		if status != "" && string(b.Status) != status {
			continue
		}
		if period != "" && string(b.Period) != period {
			continue
		}
		resp = append(resp, toBudgetResponse(b))
	}
	respond.Data(w, http.StatusOK, resp, "budgets fetched successfully")
}

type recordSpendingRequest struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

func (h *Handler) recordSpending(w http.ResponseWriter, r *http.Request) {
	budgetID, err := uuid.Parse(chi.URLParam(r, "budgetID"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid budget id")
		return
	}

	var req recordSpendingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	budget, err := h.svc.RecordSpending(r.Context(), budgetID, fund.ExpenseCategory(req.Category), req.Amount)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respond.Data(w, http.StatusOK, toBudgetResponse(budget), "budget spending updated")
}

type categoryComparisonResponse struct {
	Category        fund.ExpenseCategory `json:"category"`
	Budgeted        decimal.Decimal      `json:"budgetedAmount"`
	Actual          decimal.Decimal      `json:"actualAmount"`
	Variance        decimal.Decimal      `json:"variance"`
	VariancePercent decimal.Decimal      `json:"variancePercentage"`
	Status          string               `json:"status"`
}

type budgetComparisonResponse struct {
	BudgetID   uuid.UUID                    `json:"budgetId"`
	BudgetName string                       `json:"budgetName"`
	Period     fund.BudgetPeriod            `json:"period"`
	StartDate  time.Time                    `json:"startDate"`
	EndDate    time.Time                    `json:"endDate"`
	Categories []categoryComparisonResponse `json:"categories"`
}

func (h *Handler) budgetVsActual(w http.ResponseWriter, r *http.Request) {
	startupID, ok := h.startupID(w, r)
	if !ok {
		return
	}

	var budgetID *uuid.UUID
	if raw := r.URL.Query().Get("budgetId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid budgetId")
			return
		}
		budgetID = &id
	}

	comparisons, err := h.svc.BudgetVsActual(r.Context(), startupID, budgetID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	resp := make([]budgetComparisonResponse, 0, len(comparisons))
	for _, c := range comparisons {
		categories := make([]categoryComparisonResponse, 0, len(c.Categories))
		for _, cat := range c.Categories {
			categories = append(categories, categoryComparisonResponse{
				Category:        cat.Category,
				Budgeted:        cat.Budgeted,
				Actual:          cat.Actual,
				Variance:        cat.Variance,
				VariancePercent: cat.VariancePercent,
				Status:          cat.Status,
			})
		}
		resp = append(resp, budgetComparisonResponse{
			BudgetID:   c.BudgetID,
			BudgetName: c.BudgetName,
			Period:     c.Period,
			StartDate:  c.StartDate,
			EndDate:    c.EndDate,
			Categories: categories,
		})
	}
	respond.Data(w, http.StatusOK, resp, "budget comparison fetched successfully")
}

type investorRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Type    string `json:"type"`
}

type createFundingSourceRequest struct {
	Name           string            `json:"name"`
	Type           string            `json:"type"`
	Amount         decimal.Decimal   `json:"amount"`
	Currency       string            `json:"currency"`
	ReceivedAmount decimal.Decimal   `json:"receivedAmount"`
	DateReceived   string            `json:"dateReceived"`
	ExpectedDate   string            `json:"expectedDate"`
	Terms          fund.FundingTerms `json:"terms"`
	Investor       investorRequest   `json:"investor"`
	Status         string            `json:"status"`
}

func (h *Handler) createFundingSource(w http.ResponseWriter, r *http.Request) {
	startupID, ok := h.startupID(w, r)
	if !ok {
		return
	}
	usr, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing access token")
		return
	}

	var req createFundingSourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dateReceived, err := parseOptionalDate(req.DateReceived)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid dateReceived")
		return
	}
	expectedDate, err := parseOptionalDate(req.ExpectedDate)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid expectedDate")
		return
	}

	source, err := h.svc.CreateFundingSource(r.Context(), fund.CreateFundingSourceParams{
		Name:           req.Name,
		Type:           fund.FundingType(req.Type),
		Amount:         req.Amount,
		Currency:       req.Currency,
		ReceivedAmount: req.ReceivedAmount,
		DateReceived:   dateReceived,
		ExpectedDate:   expectedDate,
		Terms:          req.Terms,
		Investor:       fund.Investor(req.Investor),
		Status:         fund.FundingStatus(req.Status),
		StartupID:      startupID,
		CreatedBy:      usr.ID,
	})
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respond.Data(w, http.StatusCreated, toFundingSourceResponse(source), "funding source created successfully")
}

type fundingOverviewResponse struct {
	Sources        []fundingSourceResponse `json:"sources"`
	TotalCommitted decimal.Decimal         `json:"totalCommitted"`
	TotalReceived  decimal.Decimal         `json:"totalReceived"`
	TotalRemaining decimal.Decimal         `json:"totalRemaining"`
}

func (h *Handler) listFundingSources(w http.ResponseWriter, r *http.Request) {
	startupID, ok := h.startupID(w, r)
	if !ok {
		return
	}

	overview, err := h.svc.FundingSources(r.Context(), startupID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	srcType := r.URL.Query().Get("type")
	status := r.URL.Query().Get("status")

	resp := fundingOverviewResponse{
		Sources:        make([]fundingSourceResponse, 0, len(overview.Sources)),
		TotalCommitted: overview.TotalCommitted,
		TotalReceived:  overview.TotalReceived,
		TotalRemaining: overview.TotalRemaining,
	}
	for _, s := range overview.Sources {
		if srcType != "" && string(s.Type) != srcType {
			continue
		}
		if status != "" && string(s.Status) != status {
			continue
		}
		resp.Sources = append(resp.Sources, toFundingSourceResponse(s))
	}
	respond.Data(w, http.StatusOK, resp, "funding sources fetched successfully")
}

type milestoneRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	TargetDate  string `json:"targetDate"`
}

type createCampaignRequest struct {
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Type            string             `json:"type"`
	TargetAmount    decimal.Decimal    `json:"targetAmount"`
	Currency        string             `json:"currency"`
	Valuation       fund.Valuation     `json:"valuation"`
	StartDate       string             `json:"startDate"`
	TargetCloseDate string             `json:"targetCloseDate"`
	Milestones      []milestoneRequest `json:"milestones"`
}

func (h *Handler) createCampaign(w http.ResponseWriter, r *http.Request) {
	startupID, ok := h.startupID(w, r)
	if !ok {
		return
	}
	usr, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing access token")
		return
	}

	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid startDate")
		return
	}
	closeDate, err := parseOptionalDate(req.TargetCloseDate)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid targetCloseDate")
		return
	}

	milestones := make([]fund.Milestone, 0, len(req.Milestones))
	for _, m := range req.Milestones {
		target, err := parseOptionalDate(m.TargetDate)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid milestone targetDate")
			return
		}
		milestones = append(milestones, fund.Milestone{
			Name:        m.Name,
			Description: m.Description,
			TargetDate:  target,
		})
	}

	params := fund.CreateCampaignParams{
		Name:            req.Name,
		Description:     req.Description,
		Type:            fund.CampaignType(req.Type),
		TargetAmount:    req.TargetAmount,
		Currency:        req.Currency,
		Valuation:       req.Valuation,
		TargetCloseDate: closeDate,
		Milestones:      milestones,
		StartupID:       startupID,
		CreatedBy:       usr.ID,
	}
	if startDate != nil {
		params.StartDate = *startDate
	}

	campaign, err := h.svc.CreateCampaign(r.Context(), params)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respond.Data(w, http.StatusCreated, toCampaignResponse(campaign), "fundraising campaign created successfully")
}

func (h *Handler) listCampaigns(w http.ResponseWriter, r *http.Request) {
	startupID, ok := h.startupID(w, r)
	if !ok {
		return
	}

	campaigns, err := h.svc.Campaigns(r.Context(), startupID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	resp := make([]campaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		resp = append(resp, toCampaignResponse(c))
	}
	respond.Data(w, http.StatusOK, resp, "fundraising campaigns fetched successfully")
}

type addInvestorRequest struct {
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	ContactInfo     string          `json:"contactInfo"`
	CommittedAmount decimal.Decimal `json:"commitedAmount"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes"`
}

func (h *Handler) addInvestor(w http.ResponseWriter, r *http.Request) {
	campaignID, err := uuid.Parse(chi.URLParam(r, "campaignID"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	var req addInvestorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	campaign, err := h.svc.AddInvestor(r.Context(), campaignID, fund.CampaignInvestor{
		Name:            req.Name,
		Type:            req.Type,
		ContactInfo:     req.ContactInfo,
		CommittedAmount: req.CommittedAmount,
		Status:          fund.InvestorStatus(req.Status),
		Notes:           req.Notes,
	})
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respond.Data(w, http.StatusOK, toCampaignResponse(campaign), "investor added to campaign")
}

type updateInvestorRequest struct {
	Name            string           `json:"name"`
	Status          string           `json:"status"`
	CommittedAmount *decimal.Decimal `json:"commitedAmount"`
	Notes           string           `json:"notes"`
}

func (h *Handler) updateInvestor(w http.ResponseWriter, r *http.Request) {
	campaignID, err := uuid.Parse(chi.URLParam(r, "campaignID"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	var req updateInvestorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	campaign, err := h.svc.UpdateInvestor(r.Context(), campaignID, fund.InvestorUpdateParams{
		Name:            req.Name,
		Status:          fund.InvestorStatus(req.Status),
		CommittedAmount: req.CommittedAmount,
		Notes:           req.Notes,
	})
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respond.Data(w, http.StatusOK, toCampaignResponse(campaign), "investor updated")
}

type generateReportRequest struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	PeriodStart string `json:"periodStart"`
	PeriodEnd   string `json:"periodEnd"`
}

func (h *Handler) generateReport(w http.ResponseWriter, r *http.Request) {
	startupID, ok := h.startupID(w, r)
	if !ok {
		return
	}
	usr, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing access token")
		return
	}

	var req generateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	start, err := parseOptionalDate(req.PeriodStart)
	if err != nil || start == nil {
		respond.Error(w, http.StatusBadRequest, "invalid periodStart")
		return
	}
	end, err := parseOptionalDate(req.PeriodEnd)
	if err != nil || end == nil {
		respond.Error(w, http.StatusBadRequest, "invalid periodEnd")
		return
	}

	report, err := h.svc.GenerateReport(r.Context(), fund.GenerateReportParams{
		Title:       req.Title,
		Type:        fund.ReportType(req.Type),
		PeriodStart: *start,
		PeriodEnd:   *end,
		StartupID:   startupID,
		GeneratedBy: usr.ID,
	})
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respond.Data(w, http.StatusCreated, toReportResponse(report), "financial report generated successfully")
}

func (h *Handler) listReports(w http.ResponseWriter, r *http.Request) {
	startupID, ok := h.startupID(w, r)
	if !ok {
		return
	}

	reports, err := h.svc.Reports(r.Context(), startupID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	resp := make([]reportResponse, 0, len(reports))
	for _, rep := range reports {
		resp = append(resp, toReportResponse(rep))
	}
	respond.Data(w, http.StatusOK, resp, "financial reports fetched successfully")
}

type budgetAlertResponse struct {
	BudgetID        uuid.UUID            `json:"budgetId"`
	BudgetName      string               `json:"budgetName"`
	Category        fund.ExpenseCategory `json:"category"`
	UtilizationRate decimal.Decimal      `json:"utilizationRate"`
	AlertThreshold  int                  `json:"alertThreshold"`
	Severity        fund.Severity        `json:"severity"`
}

type dashboardResponse struct {
	MonthlyExpenses    decimal.Decimal       `json:"monthlyExpenses"`
	ActiveBudgets      int                   `json:"activeBudgets"`
	TotalFunding       decimal.Decimal       `json:"totalFunding"`
	RecentTransactions []expenseResponse     `json:"recentTransactions"`
	BudgetAlerts       []budgetAlertResponse `json:"budgetAlerts"`
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	startupID, ok := h.startupID(w, r)
	if !ok {
		return
	}

	data, err := h.svc.DashboardData(r.Context(), startupID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	resp := dashboardResponse{
		MonthlyExpenses:    data.MonthlyExpenses,
		ActiveBudgets:      data.ActiveBudgets,
		TotalFunding:       data.TotalFunding,
		RecentTransactions: toExpenseResponseList(data.RecentTransactions),
		BudgetAlerts:       make([]budgetAlertResponse, 0, len(data.BudgetAlerts)),
	}
	for _, a := range data.BudgetAlerts {
		resp.BudgetAlerts = append(resp.BudgetAlerts, budgetAlertResponse{
			BudgetID:        a.BudgetID,
			BudgetName:      a.BudgetName,
			Category:        a.Category,
			UtilizationRate: a.UtilizationRate,
			AlertThreshold:  a.AlertThreshold,
			Severity:        a.Severity,
		})
	}
	respond.Data(w, http.StatusOK, resp, "dashboard data fetched successfully")
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fund.ErrMissingFields), errors.Is(err, fund.ErrInvalidAmount):
		respond.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, fund.ErrBudgetNotFound),
		errors.Is(err, fund.ErrCategoryNotFound),
		errors.Is(err, fund.ErrCampaignNotFound),
		errors.Is(err, fund.ErrInvestorNotFound):
		respond.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, receipt.ErrParserUnavailable):
		respond.Error(w, http.StatusBadGateway, err.Error())
	default:
		respond.Error(w, http.StatusInternalServerError, "something went wrong")
	}
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("unrecognized date %q", raw)
}

func intQuery(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}

	return n
}
