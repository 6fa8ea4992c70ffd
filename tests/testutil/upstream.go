package testutil

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/isabitech/branchbooks/internal/domain"
)

// UpstreamStub is an in-process stand-in for the core-banking API. It
// speaks the same response envelope, reports seeded records, answers null
// for everything else, and counts the requests it serves so tests can
// assert on cache behavior.
type UpstreamStub struct {
	mu sync.Mutex

	branches        []domain.Branch
	cashbook1       map[string]*domain.Cashbook1
	cashbook2       map[string]*domain.Cashbook2
	bankStatement1  map[string]*domain.BankStatement1
	bankStatement2  map[string]*domain.BankStatement2
	loanRegisters   map[string]*domain.LoanRegister
	savings         map[string]*domain.SavingsRegister
	rolls           map[string]*domain.DisbursementRoll
	predictions     map[string]*domain.Prediction
	efcc            map[string]*domain.EFCCRecord
	amountTomorrow  map[string]*domain.AmountNeedTomorrow
	operations      map[string]*domain.DailyOperation
	submittedOps    map[string]bool
	requestsByPath  map[string]int
	failAllRequests bool
}

// NewUpstreamStub creates an empty stub.
func NewUpstreamStub() *UpstreamStub {
	return &UpstreamStub{
		cashbook1:      make(map[string]*domain.Cashbook1),
		cashbook2:      make(map[string]*domain.Cashbook2),
		bankStatement1: make(map[string]*domain.BankStatement1),
		bankStatement2: make(map[string]*domain.BankStatement2),
		loanRegisters:  make(map[string]*domain.LoanRegister),
		savings:        make(map[string]*domain.SavingsRegister),
		rolls:          make(map[string]*domain.DisbursementRoll),
		predictions:    make(map[string]*domain.Prediction),
		efcc:           make(map[string]*domain.EFCCRecord),
		amountTomorrow: make(map[string]*domain.AmountNeedTomorrow),
		operations:     make(map[string]*domain.DailyOperation),
		submittedOps:   make(map[string]bool),
		requestsByPath: make(map[string]int),
	}
}

func dayKey(branchID, date string) string { return branchID + ":" + date }

// SetBranches replaces the branch directory.
func (u *UpstreamStub) SetBranches(branches []domain.Branch) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.branches = branches
}

// FailAll makes every request answer 503 until re-enabled.
func (u *UpstreamStub) FailAll(fail bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.failAllRequests = fail
}

// Requests reports how many requests a path has served.
func (u *UpstreamStub) Requests(path string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.requestsByPath[path]
}

// SubmitCount reports how many submit attempts an operation received.
func (u *UpstreamStub) SubmitCount(operationID string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.requestsByPath["/operations/daily/"+operationID+"/submit"]
}

// SeedBranchDay seeds one fully reported branch-day with the canonical
// figures used across the suite: collections 150000, disbursements 95000,
// online cash in hand 55000.
func (u *UpstreamStub) SeedBranchDay(branchID, date string) *domain.DailyOperation {
	u.mu.Lock()
	defer u.mu.Unlock()

	k := dayKey(branchID, date)
	cb1 := &domain.Cashbook1{
		ID: "cb1-" + k, BranchID: branchID, Date: date,
		CBTotal1: decimal.NewFromInt(150000),
	}
	cb2 := &domain.Cashbook2{
		ID: "cb2-" + k, BranchID: branchID, Date: date,
		CBTotal2: decimal.NewFromInt(95000),
	}
	u.cashbook1[k] = cb1
	u.cashbook2[k] = cb2
	u.bankStatement1[k] = &domain.BankStatement1{
		ID: "bs1-" + k, BranchID: branchID, Date: date,
		BS1Total: decimal.NewFromInt(200000),
	}
	u.bankStatement2[k] = &domain.BankStatement2{
		ID: "bs2-" + k, BranchID: branchID, Date: date,
		BS2Total: decimal.NewFromInt(180000),
	}
	u.loanRegisters[k] = &domain.LoanRegister{
		ID: "loan-" + k, BranchID: branchID, Date: date,
		PreviousLoanTotal:            decimal.NewFromInt(200000),
		LoanDisbursementWithInterest: decimal.NewFromInt(50000),
		LoanCollection:               decimal.NewFromInt(30000),
		CurrentLoanBalance:           decimal.NewFromInt(220000),
	}
	u.savings[k] = &domain.SavingsRegister{
		ID: "sav-" + k, BranchID: branchID, Date: date,
		PreviousSavingsTotal:  decimal.NewFromInt(100000),
		NewDeposits:           decimal.NewFromInt(20000),
		Withdrawals:           decimal.NewFromInt(5000),
		CurrentSavingsBalance: decimal.NewFromInt(115000),
	}
	u.predictions[k] = &domain.Prediction{
		ID: "pred-" + k, BranchID: branchID, Date: date,
		EstimatedAmount: decimal.NewFromInt(75000),
	}
	u.efcc[k] = &domain.EFCCRecord{
		ID: "efcc-" + k, BranchID: branchID, Date: date,
		PreviousOwing:  decimal.NewFromInt(50000),
		AmountRemitted: decimal.NewFromInt(20000),
		NewOwing:       decimal.NewFromInt(10000),
		CurrentOwing:   decimal.NewFromInt(40000),
	}
	u.amountTomorrow[k] = &domain.AmountNeedTomorrow{
		ID: "ant-" + k, BranchID: branchID, Date: date,
		PreviousAmount: decimal.NewFromInt(80000),
		AmountNeeded:   decimal.NewFromInt(12000),
		CurrentAmount:  decimal.NewFromInt(92000),
	}
	op := &domain.DailyOperation{
		ID:        "op-" + k,
		BranchID:  branchID,
		Date:      date,
		OnlineCIH: decimal.NewFromInt(55000),
		TSO:       decimal.NewFromInt(315000),
		Cashbook1: cb1,
		Cashbook2: cb2,
		CreatedAt: time.Now().UTC(),
	}
	u.operations[k] = op
	return op
}

// SeedRoll seeds a monthly disbursement roll.
func (u *UpstreamStub) SeedRoll(branchID, month, year string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.rolls[branchID+":"+year+"-"+month] = &domain.DisbursementRoll{
		ID: "roll-" + branchID, BranchID: branchID, Month: month, Year: year,
		PreviousDisbursement: decimal.NewFromInt(300000),
		DailyAverage:         decimal.NewFromInt(15000),
		RollTotal:            decimal.NewFromInt(345000),
	}
}

// Handler returns the stub's HTTP handler.
func (u *UpstreamStub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /cashbooks/cb1", u.serveDaily("cashbook1", func(k string) (any, bool) {
		v, ok := u.cashbook1[k]
		return v, ok
	}))
	mux.HandleFunc("GET /cashbooks/cb2", u.serveDaily("cashbook2", func(k string) (any, bool) {
		v, ok := u.cashbook2[k]
		return v, ok
	}))
	mux.HandleFunc("GET /bank-statements/bs1", u.serveDaily("bankStatement1", func(k string) (any, bool) {
		v, ok := u.bankStatement1[k]
		return v, ok
	}))
	mux.HandleFunc("GET /bank-statements/bs2", u.serveDaily("bankStatement2", func(k string) (any, bool) {
		v, ok := u.bankStatement2[k]
		return v, ok
	}))
	mux.HandleFunc("GET /registers/loan", u.serveDaily("loanRegister", func(k string) (any, bool) {
		v, ok := u.loanRegisters[k]
		return v, ok
	}))
	mux.HandleFunc("GET /registers/savings", u.serveDaily("savingsRegister", func(k string) (any, bool) {
		v, ok := u.savings[k]
		return v, ok
	}))
	mux.HandleFunc("GET /predictions", u.serveDaily("prediction", func(k string) (any, bool) {
		v, ok := u.predictions[k]
		return v, ok
	}))
	mux.HandleFunc("GET /efcc", u.serveDaily("efccRecord", func(k string) (any, bool) {
		v, ok := u.efcc[k]
		return v, ok
	}))
	mux.HandleFunc("GET /amount-need-tomorrow", u.serveDaily("amountNeedTomorrow", func(k string) (any, bool) {
		v, ok := u.amountTomorrow[k]
		return v, ok
	}))
	mux.HandleFunc("GET /operations/daily", u.serveDaily("operations", func(k string) (any, bool) {
		v, ok := u.operations[k]
		return v, ok
	}))
	mux.HandleFunc("GET /disbursement-roll", func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		u.requestsByPath[r.URL.Path]++
		failing := u.failAllRequests
		q := r.URL.Query()
		roll, ok := u.rolls[q.Get("branchId")+":"+q.Get("year")+"-"+q.Get("month")]
		u.mu.Unlock()

		if failing {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		writeEnvelope(w, "disbursementRoll", roll, ok)
	})
	mux.HandleFunc("GET /branches", func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		u.requestsByPath[r.URL.Path]++
		failing := u.failAllRequests
		branches := u.branches
		u.mu.Unlock()

		if failing {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		writeEnvelope(w, "branches", branches, branches != nil)
	})
	mux.HandleFunc("PATCH /operations/daily/{operationId}/submit", func(w http.ResponseWriter, r *http.Request) {
		operationID := r.PathValue("operationId")

		u.mu.Lock()
		u.requestsByPath[r.URL.Path]++
		failing := u.failAllRequests
		var found bool
		for _, op := range u.operations {
			if op.ID == operationID {
				found = true
				break
			}
		}
		already := u.submittedOps[operationID]
		if found && !already && !failing {
			u.submittedOps[operationID] = true
		}
		u.mu.Unlock()

		switch {
		case failing:
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
		case !found:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "operation not found"})
		case already:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "operation already submitted"})
		default:
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    map[string]any{"operationId": operationID},
				"message": "submitted",
			})
		}
	})
	return mux
}

func (u *UpstreamStub) serveDaily(entity string, lookup func(key string) (any, bool)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		u.mu.Lock()
		u.requestsByPath[r.URL.Path]++
		failing := u.failAllRequests
		value, ok := lookup(dayKey(q.Get("branchId"), q.Get("date")))
		u.mu.Unlock()

		if failing {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		writeEnvelope(w, entity, value, ok)
	}
}

func writeEnvelope(w http.ResponseWriter, entity string, value any, found bool) {
	data := map[string]any{entity: nil}
	if found {
		data[entity] = value
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"data":    data,
		"message": "ok",
	})
}

// Submitted reports whether an operation has been accepted upstream.
func (u *UpstreamStub) Submitted(operationID string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.submittedOps[operationID]
}
