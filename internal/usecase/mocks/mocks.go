package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/isabitech/branchbooks/internal/domain"
)

// MockResourceSource is a mock implementation of usecase.ResourceSource.
// Unset funcs report "no record" so tests only wire what they exercise.
type MockResourceSource struct {
	mu    sync.Mutex
	calls map[string]int

	Cashbook1Func            func(ctx context.Context, branchID, date string) (*domain.Cashbook1, error)
	Cashbook2Func            func(ctx context.Context, branchID, date string) (*domain.Cashbook2, error)
	BankStatement1Func       func(ctx context.Context, branchID, date string) (*domain.BankStatement1, error)
	BankStatement2Func       func(ctx context.Context, branchID, date string) (*domain.BankStatement2, error)
	LoanRegisterFunc         func(ctx context.Context, branchID, date string) (*domain.LoanRegister, error)
	SavingsRegisterFunc      func(ctx context.Context, branchID, date string) (*domain.SavingsRegister, error)
	DisbursementRollFunc     func(ctx context.Context, branchID, month, year string) (*domain.DisbursementRoll, error)
	PredictionFunc           func(ctx context.Context, branchID, date string) (*domain.Prediction, error)
	EFCCRecordFunc           func(ctx context.Context, branchID, date string) (*domain.EFCCRecord, error)
	AmountNeedTomorrowFunc   func(ctx context.Context, branchID, date string) (*domain.AmountNeedTomorrow, error)
	DailyOperationFunc       func(ctx context.Context, branchID, date string) (*domain.DailyOperation, error)
	BranchesFunc             func(ctx context.Context) ([]domain.Branch, error)
	SubmitDailyOperationFunc func(ctx context.Context, operationID, idempotencyKey string) error
}

// NewMockResourceSource creates a new MockResourceSource.
func NewMockResourceSource() *MockResourceSource {
	return &MockResourceSource{calls: make(map[string]int)}
}

// Calls reports how many times the named getter was invoked.
func (m *MockResourceSource) Calls(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

// TotalCalls reports how many upstream reads were issued in total.
func (m *MockResourceSource) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

func (m *MockResourceSource) record(name string) {
	m.mu.Lock()
	m.calls[name]++
	m.mu.Unlock()
}

func (m *MockResourceSource) Cashbook1(ctx context.Context, branchID, date string) (*domain.Cashbook1, error) {
	m.record("cashbook1")
	if m.Cashbook1Func != nil {
		return m.Cashbook1Func(ctx, branchID, date)
	}
	return nil, nil
}

func (m *MockResourceSource) Cashbook2(ctx context.Context, branchID, date string) (*domain.Cashbook2, error) {
	m.record("cashbook2")
	if m.Cashbook2Func != nil {
		return m.Cashbook2Func(ctx, branchID, date)
	}
	return nil, nil
}

func (m *MockResourceSource) BankStatement1(ctx context.Context, branchID, date string) (*domain.BankStatement1, error) {
	m.record("bankstatement1")
	if m.BankStatement1Func != nil {
		return m.BankStatement1Func(ctx, branchID, date)
	}
	return nil, nil
}

func (m *MockResourceSource) BankStatement2(ctx context.Context, branchID, date string) (*domain.BankStatement2, error) {
	m.record("bankstatement2")
	if m.BankStatement2Func != nil {
		return m.BankStatement2Func(ctx, branchID, date)
	}
	return nil, nil
}

func (m *MockResourceSource) LoanRegister(ctx context.Context, branchID, date string) (*domain.LoanRegister, error) {
	m.record("loanregister")
	if m.LoanRegisterFunc != nil {
		return m.LoanRegisterFunc(ctx, branchID, date)
	}
	return nil, nil
}

func (m *MockResourceSource) SavingsRegister(ctx context.Context, branchID, date string) (*domain.SavingsRegister, error) {
	m.record("savingsregister")
	if m.SavingsRegisterFunc != nil {
		return m.SavingsRegisterFunc(ctx, branchID, date)
	}
	return nil, nil
}

func (m *MockResourceSource) DisbursementRoll(ctx context.Context, branchID, month, year string) (*domain.DisbursementRoll, error) {
	m.record("disbursementroll")
	if m.DisbursementRollFunc != nil {
		return m.DisbursementRollFunc(ctx, branchID, month, year)
	}
	return nil, nil
}

func (m *MockResourceSource) Prediction(ctx context.Context, branchID, date string) (*domain.Prediction, error) {
	m.record("prediction")
	if m.PredictionFunc != nil {
		return m.PredictionFunc(ctx, branchID, date)
	}
	return nil, nil
}

func (m *MockResourceSource) EFCCRecord(ctx context.Context, branchID, date string) (*domain.EFCCRecord, error) {
	m.record("efcc")
	if m.EFCCRecordFunc != nil {
		return m.EFCCRecordFunc(ctx, branchID, date)
	}
	return nil, nil
}

func (m *MockResourceSource) AmountNeedTomorrow(ctx context.Context, branchID, date string) (*domain.AmountNeedTomorrow, error) {
	m.record("amountneedtomorrow")
	if m.AmountNeedTomorrowFunc != nil {
		return m.AmountNeedTomorrowFunc(ctx, branchID, date)
	}
	return nil, nil
}

func (m *MockResourceSource) DailyOperation(ctx context.Context, branchID, date string) (*domain.DailyOperation, error) {
	m.record("operation")
	if m.DailyOperationFunc != nil {
		return m.DailyOperationFunc(ctx, branchID, date)
	}
	return nil, nil
}

func (m *MockResourceSource) Branches(ctx context.Context) ([]domain.Branch, error) {
	m.record("branches")
	if m.BranchesFunc != nil {
		return m.BranchesFunc(ctx)
	}
	return []domain.Branch{}, nil
}

func (m *MockResourceSource) SubmitDailyOperation(ctx context.Context, operationID, idempotencyKey string) error {
	m.record("submit")
	if m.SubmitDailyOperationFunc != nil {
		return m.SubmitDailyOperationFunc(ctx, operationID, idempotencyKey)
	}
	return nil
}

// MockCache is an in-memory implementation of usecase.Cache. TTLs are
// recorded but never enforced; expiry behavior belongs to the redis tests.
type MockCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
	ttls    map[string]time.Duration

	GetFunc func(ctx context.Context, key string) ([]byte, bool, error)
	SetFunc func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// NewMockCache creates a new MockCache.
func NewMockCache() *MockCache {
	return &MockCache{
		entries: make(map[string][]byte),
		ttls:    make(map[string]time.Duration),
	}
}

func (c *MockCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.GetFunc != nil {
		return c.GetFunc(ctx, key)
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	val, ok := c.entries[key]
	return val, ok, nil
}

func (c *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c.SetFunc != nil {
		return c.SetFunc(ctx, key, value, ttl)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	c.ttls[key] = ttl
	return nil
}

func (c *MockCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
		delete(c.ttls, k)
	}
	return nil
}

// Has reports whether a key is cached.
func (c *MockCache) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[key]
	return ok
}

// TTLOf returns the TTL recorded for a key.
func (c *MockCache) TTLOf(key string) time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ttls[key]
}

// MockIDGenerator is a mock implementation of usecase.IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
}

// NewMockIDGenerator creates a new MockIDGenerator.
func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (g *MockIDGenerator) Generate() string {
	if g.GenerateFunc != nil {
		return g.GenerateFunc()
	}
	return "test-id"
}

// MockClock is a fixed Clock for tests.
type MockClock struct {
	NowTime time.Time
}

func (c MockClock) Now() time.Time { return c.NowTime }
