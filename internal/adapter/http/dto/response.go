package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/isabitech/branchbooks/internal/domain"
	"github.com/isabitech/branchbooks/internal/infrastructure/format"
	"github.com/isabitech/branchbooks/internal/usecase"
)

// Envelope is the uniform response shape, mirroring the upstream API so
// clients handle both the same way.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// RowResponse is one renderable line. Value is absent for pending and
// unavailable rows rather than reported as zero.
type RowResponse struct {
	Category  string           `json:"category"`
	Label     string           `json:"label"`
	Value     *decimal.Decimal `json:"value,omitempty"`
	Formatted string           `json:"formatted,omitempty"`
	Tag       domain.StatusTag `json:"tag,omitempty"`
	Status    string           `json:"status"`
}

// MetricResponse is a derived figure with its classification.
type MetricResponse struct {
	Value     decimal.Decimal  `json:"value"`
	Formatted string           `json:"formatted"`
	Tag       domain.StatusTag `json:"tag"`
}

// CompletionResponse reports paperwork completeness.
type CompletionResponse struct {
	Percentage decimal.Decimal `json:"percentage"`
	Complete   bool            `json:"complete"`
	Missing    []string        `json:"missing,omitempty"`
}

// RowFromViewModel converts a view-model row to a response row.
func RowFromViewModel(row usecase.Row, f *format.CurrencyFormatter) RowResponse {
	resp := RowResponse{
		Category: row.Category,
		Label:    row.Label,
		Tag:      row.Tag,
		Status:   string(row.Status),
	}
	if row.HasValue {
		v := row.Value
		resp.Value = &v
		resp.Formatted = f.FormatSigned(v)
	}
	return resp
}

// RowsFromViewModel converts a slice of view-model rows.
func RowsFromViewModel(rows []usecase.Row, f *format.CurrencyFormatter) []RowResponse {
	result := make([]RowResponse, len(rows))
	for i, row := range rows {
		result[i] = RowFromViewModel(row, f)
	}
	return result
}

// MetricFromViewModel converts a view-model metric to a response metric.
func MetricFromViewModel(m usecase.Metric, f *format.CurrencyFormatter) MetricResponse {
	return MetricResponse{
		Value:     m.Value,
		Formatted: f.FormatSigned(m.Value),
		Tag:       m.Tag,
	}
}

// MetricPtrFromViewModel converts an optional metric, preserving nil for
// figures whose dependencies never became ready.
func MetricPtrFromViewModel(m *usecase.Metric, f *format.CurrencyFormatter) *MetricResponse {
	if m == nil {
		return nil
	}
	resp := MetricFromViewModel(*m, f)
	return &resp
}

// CompletionFromViewModel converts completion state.
func CompletionFromViewModel(c usecase.Completion) CompletionResponse {
	return CompletionResponse{
		Percentage: c.Percentage,
		Complete:   c.Complete,
		Missing:    c.Missing,
	}
}

// DailySummaryResponse is the daily operations screen.
type DailySummaryResponse struct {
	BranchID    string              `json:"branchId"`
	Date        string              `json:"date"`
	Rows        []RowResponse       `json:"rows"`
	Totals      DailyTotalsResponse `json:"totals"`
	Completion  CompletionResponse  `json:"completion"`
	Submitted   bool                `json:"submitted"`
	SubmittedAt *time.Time          `json:"submittedAt,omitempty"`
}

// DailyTotalsResponse holds the derived daily figures. A null metric
// means its dependencies have no record yet.
type DailyTotalsResponse struct {
	OnlineCIH       *MetricResponse `json:"onlineCIH"`
	BankPosition    *MetricResponse `json:"bankPosition"`
	TSO             *MetricResponse `json:"tso"`
	LoanMovement    *MetricResponse `json:"loanMovement"`
	SavingsMovement *MetricResponse `json:"savingsMovement"`
}

// DailySummaryFromViewModel converts the daily summary view model.
func DailySummaryFromViewModel(s *usecase.DailySummary, f *format.CurrencyFormatter) *DailySummaryResponse {
	return &DailySummaryResponse{
		BranchID: s.BranchID,
		Date:     s.Date,
		Rows:     RowsFromViewModel(s.Rows, f),
		Totals: DailyTotalsResponse{
			OnlineCIH:       MetricPtrFromViewModel(s.Totals.OnlineCIH, f),
			BankPosition:    MetricPtrFromViewModel(s.Totals.BankPosition, f),
			TSO:             MetricPtrFromViewModel(s.Totals.TSO, f),
			LoanMovement:    MetricPtrFromViewModel(s.Totals.LoanMovement, f),
			SavingsMovement: MetricPtrFromViewModel(s.Totals.SavingsMovement, f),
		},
		Completion:  CompletionFromViewModel(s.Completion),
		Submitted:   s.Submitted,
		SubmittedAt: s.SubmittedAt,
	}
}

// LoanRegisterResponse is the loan register screen.
type LoanRegisterResponse struct {
	BranchID       string          `json:"branchId"`
	Date           string          `json:"date"`
	Rows           []RowResponse   `json:"rows"`
	NetChange      MetricResponse  `json:"netChange"`
	GrowthRate     decimal.Decimal `json:"growthRate"`
	CollectionRate decimal.Decimal `json:"collectionRate"`
}

// LoanRegisterFromViewModel converts the loan register view model.
func LoanRegisterFromViewModel(s *usecase.LoanRegisterSummary, f *format.CurrencyFormatter) *LoanRegisterResponse {
	return &LoanRegisterResponse{
		BranchID:       s.BranchID,
		Date:           s.Date,
		Rows:           RowsFromViewModel(s.Rows, f),
		NetChange:      MetricFromViewModel(s.NetChange, f),
		GrowthRate:     s.GrowthRate,
		CollectionRate: s.CollectionRate,
	}
}

// SavingsRegisterResponse is the savings register screen.
type SavingsRegisterResponse struct {
	BranchID   string          `json:"branchId"`
	Date       string          `json:"date"`
	Rows       []RowResponse   `json:"rows"`
	NetChange  MetricResponse  `json:"netChange"`
	GrowthRate decimal.Decimal `json:"growthRate"`
}

// SavingsRegisterFromViewModel converts the savings register view model.
func SavingsRegisterFromViewModel(s *usecase.SavingsRegisterSummary, f *format.CurrencyFormatter) *SavingsRegisterResponse {
	return &SavingsRegisterResponse{
		BranchID:   s.BranchID,
		Date:       s.Date,
		Rows:       RowsFromViewModel(s.Rows, f),
		NetChange:  MetricFromViewModel(s.NetChange, f),
		GrowthRate: s.GrowthRate,
	}
}

// DisbursementRollResponse is the monthly disbursement roll screen.
type DisbursementRollResponse struct {
	BranchID   string          `json:"branchId"`
	Month      string          `json:"month"`
	Year       string          `json:"year"`
	Rows       []RowResponse   `json:"rows"`
	NetChange  MetricResponse  `json:"netChange"`
	GrowthRate decimal.Decimal `json:"growthRate"`
}

// DisbursementRollFromViewModel converts the disbursement roll view model.
func DisbursementRollFromViewModel(s *usecase.DisbursementRollSummary, f *format.CurrencyFormatter) *DisbursementRollResponse {
	return &DisbursementRollResponse{
		BranchID:   s.BranchID,
		Month:      s.Month,
		Year:       s.Year,
		Rows:       RowsFromViewModel(s.Rows, f),
		NetChange:  MetricFromViewModel(s.NetChange, f),
		GrowthRate: s.GrowthRate,
	}
}

// ComplianceResponse is the shared shape of the EFCC and
// amount-need-tomorrow screens.
type ComplianceResponse struct {
	BranchID   string          `json:"branchId"`
	Date       string          `json:"date"`
	Kind       string          `json:"kind"`
	Rows       []RowResponse   `json:"rows"`
	NetChange  MetricResponse  `json:"netChange"`
	GrowthRate decimal.Decimal `json:"growthRate"`
}

// ComplianceFromViewModel converts a compliance view model.
func ComplianceFromViewModel(s *usecase.ComplianceSummary, f *format.CurrencyFormatter) *ComplianceResponse {
	return &ComplianceResponse{
		BranchID:   s.BranchID,
		Date:       s.Date,
		Kind:       s.Kind,
		Rows:       RowsFromViewModel(s.Rows, f),
		NetChange:  MetricFromViewModel(s.NetChange, f),
		GrowthRate: s.GrowthRate,
	}
}

// BranchResponse represents a branch in API responses.
type BranchResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Active bool   `json:"isActive"`
}

// BranchFromDomain converts a domain branch to a response.
func BranchFromDomain(b domain.Branch) BranchResponse {
	return BranchResponse{
		ID:     b.ID,
		Name:   b.Name,
		Code:   b.Code,
		Active: b.Active,
	}
}

// BranchesFromDomain converts domain branches to responses.
func BranchesFromDomain(branches []domain.Branch) []BranchResponse {
	result := make([]BranchResponse, len(branches))
	for i, b := range branches {
		result[i] = BranchFromDomain(b)
	}
	return result
}

// BranchStandingResponse is one branch's line on the dashboard.
type BranchStandingResponse struct {
	BranchID   string          `json:"branchId"`
	BranchName string          `json:"branchName"`
	BranchCode string          `json:"branchCode"`
	Status     string          `json:"status"`
	OnlineCIH  *MetricResponse `json:"onlineCIH"`
	TSO        *MetricResponse `json:"tso"`
	Submitted  bool            `json:"submitted"`
}

// DashboardResponse is the head-office consolidated view.
type DashboardResponse struct {
	Date             string                   `json:"date"`
	Branches         []BranchStandingResponse `json:"branches"`
	Totals           DashboardTotalsResponse  `json:"totals"`
	BranchesReported int                      `json:"branchesReported"`
	BranchCount      int                      `json:"branchCount"`
	Completion       CompletionResponse       `json:"completion"`
}

// DashboardTotalsResponse aggregates the reported branches.
type DashboardTotalsResponse struct {
	Collections   MetricResponse `json:"collections"`
	Disbursements MetricResponse `json:"disbursements"`
	OnlineCIH     MetricResponse `json:"onlineCIH"`
	TSO           MetricResponse `json:"tso"`
}

// DashboardFromViewModel converts the dashboard view model.
func DashboardFromViewModel(d *usecase.ConsolidatedDashboard, f *format.CurrencyFormatter) *DashboardResponse {
	branches := make([]BranchStandingResponse, len(d.Branches))
	for i, b := range d.Branches {
		branches[i] = BranchStandingResponse{
			BranchID:   b.BranchID,
			BranchName: b.BranchName,
			BranchCode: b.BranchCode,
			Status:     string(b.Status),
			OnlineCIH:  MetricPtrFromViewModel(b.OnlineCIH, f),
			TSO:        MetricPtrFromViewModel(b.TSO, f),
			Submitted:  b.Submitted,
		}
	}

	return &DashboardResponse{
		Date:     d.Date,
		Branches: branches,
		Totals: DashboardTotalsResponse{
			Collections:   MetricFromViewModel(d.Totals.Collections, f),
			Disbursements: MetricFromViewModel(d.Totals.Disbursements, f),
			OnlineCIH:     MetricFromViewModel(d.Totals.OnlineCIH, f),
			TSO:           MetricFromViewModel(d.Totals.TSO, f),
		},
		BranchesReported: d.BranchesReported,
		BranchCount:      d.BranchCount,
		Completion:       CompletionFromViewModel(d.Completion),
	}
}

// OperationResponse represents a daily operation in API responses.
type OperationResponse struct {
	ID          string          `json:"id"`
	BranchID    string          `json:"branchId"`
	Date        string          `json:"date"`
	OnlineCIH   decimal.Decimal `json:"onlineCIH"`
	TSO         decimal.Decimal `json:"tso"`
	Submitted   bool            `json:"submitted"`
	SubmittedAt *time.Time      `json:"submittedAt,omitempty"`
}

// OperationFromDomain converts a domain operation to a response.
func OperationFromDomain(op *domain.DailyOperation) *OperationResponse {
	return &OperationResponse{
		ID:          op.ID,
		BranchID:    op.BranchID,
		Date:        op.Date,
		OnlineCIH:   op.OnlineCIH,
		TSO:         op.TSO,
		Submitted:   op.Submitted(),
		SubmittedAt: op.SubmittedAt,
	}
}
