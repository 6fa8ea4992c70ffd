package dto

import (
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DailyQuery carries the branch-day natural key common to the per-branch
// read endpoints. Date defaults to today when omitted.
type DailyQuery struct {
	BranchID string `validate:"required"`
	Date     string
	Refresh  bool
}

// ParseDailyQuery extracts and validates the branch-day query parameters.
func ParseDailyQuery(r *http.Request) (DailyQuery, error) {
	q := DailyQuery{
		BranchID: r.URL.Query().Get("branchId"),
		Date:     r.URL.Query().Get("date"),
		Refresh:  parseRefresh(r),
	}
	return q, validate.Struct(q)
}

// MonthlyQuery carries the branch-month natural key for the disbursement
// roll endpoint.
type MonthlyQuery struct {
	BranchID string `validate:"required"`
	Month    string `validate:"required"`
	Year     string `validate:"required"`
	Refresh  bool
}

// ParseMonthlyQuery extracts and validates the branch-month query
// parameters.
func ParseMonthlyQuery(r *http.Request) (MonthlyQuery, error) {
	q := MonthlyQuery{
		BranchID: r.URL.Query().Get("branchId"),
		Month:    r.URL.Query().Get("month"),
		Year:     r.URL.Query().Get("year"),
		Refresh:  parseRefresh(r),
	}
	return q, validate.Struct(q)
}

// DashboardQuery carries the consolidated dashboard parameters. Date
// defaults to today when omitted.
type DashboardQuery struct {
	Date    string
	Refresh bool
}

// ParseDashboardQuery extracts the dashboard query parameters.
func ParseDashboardQuery(r *http.Request) DashboardQuery {
	return DashboardQuery{
		Date:    r.URL.Query().Get("date"),
		Refresh: parseRefresh(r),
	}
}

// SubmitOperationRequest is the body of the submit mutation. The branch
// and date identify which cached branch-day to invalidate afterwards.
type SubmitOperationRequest struct {
	BranchID string `json:"branchId" validate:"required"`
	Date     string `json:"date"     validate:"required"`
}

// Validate checks required fields.
func (r *SubmitOperationRequest) Validate() error {
	return validate.Struct(r)
}

func parseRefresh(r *http.Request) bool {
	return r.URL.Query().Get("refresh") == "true"
}
