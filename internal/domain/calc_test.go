package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNetPosition(t *testing.T) {
	tests := []struct {
		name     string
		inflow   int64
		outflow  int64
		expected int64
	}{
		{
			name:     "online CIH from cashbook totals",
			inflow:   150000,
			outflow:  95000,
			expected: 55000,
		},
		{
			name:     "deficit position",
			inflow:   40000,
			outflow:  60000,
			expected: -20000,
		},
		{
			name:     "flat position",
			inflow:   0,
			outflow:  0,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NetPosition(decimal.NewFromInt(tt.inflow), decimal.NewFromInt(tt.outflow))
			if !got.Equal(decimal.NewFromInt(tt.expected)) {
				t.Errorf("expected %d, got %s", tt.expected, got)
			}
		})
	}
}

func TestNetPosition_Antisymmetry(t *testing.T) {
	a := decimal.NewFromInt(150000)
	b := decimal.NewFromInt(95000)

	if !NetPosition(a, b).Equal(NetPosition(b, a).Neg()) {
		t.Error("expected netPosition(a,b) == -netPosition(b,a)")
	}
}

func TestNetChange_Antisymmetry(t *testing.T) {
	current := decimal.NewFromInt(220000)
	previous := decimal.NewFromInt(200000)

	if !NetChange(current, previous).Equal(NetChange(previous, current).Neg()) {
		t.Error("expected netChange(c,p) == -netChange(p,c)")
	}
	if !NetChange(current, previous).Equal(decimal.NewFromInt(20000)) {
		t.Errorf("expected 20000, got %s", NetChange(current, previous))
	}
}

func TestGrowthRate(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		expected string
	}{
		{
			name:     "disbursement roll month over month",
			current:  1150000,
			previous: 1000000,
			expected: "15",
		},
		{
			name:     "zero previous yields zero, not infinity",
			current:  50000,
			previous: 0,
			expected: "0",
		},
		{
			name:     "negative growth",
			current:  90000,
			previous: 100000,
			expected: "-10",
		},
		{
			name:     "no baseline and no current",
			current:  0,
			previous: 0,
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GrowthRate(decimal.NewFromInt(tt.current), decimal.NewFromInt(tt.previous))
			want, _ := decimal.NewFromString(tt.expected)
			if !got.Equal(want) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestCollectionRate(t *testing.T) {
	tests := []struct {
		name          string
		collected     int64
		previousTotal int64
		expected      string
	}{
		{
			name:          "loan collection against previous book",
			collected:     30000,
			previousTotal: 200000,
			expected:      "15",
		},
		{
			name:          "zero previous book",
			collected:     30000,
			previousTotal: 0,
			expected:      "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollectionRate(decimal.NewFromInt(tt.collected), decimal.NewFromInt(tt.previousTotal))
			want, _ := decimal.NewFromString(tt.expected)
			if !got.Equal(want) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestCompletionPercentage(t *testing.T) {
	tests := []struct {
		name     string
		flags    []bool
		expected string
	}{
		{
			name:     "one of two bank statements",
			flags:    []bool{true, false},
			expected: "50",
		},
		{
			name:     "all complete",
			flags:    []bool{true, true},
			expected: "100",
		},
		{
			name:     "none complete",
			flags:    []bool{false, false, false},
			expected: "0",
		},
		{
			name:     "no required components",
			flags:    nil,
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompletionPercentage(tt.flags)
			want, _ := decimal.NewFromString(tt.expected)
			if !got.Equal(want) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestOverallComplete(t *testing.T) {
	if !OverallComplete([]bool{true, true}) {
		t.Error("expected [true,true] to be complete")
	}
	if OverallComplete([]bool{true, false}) {
		t.Error("expected [true,false] to be incomplete")
	}
	if !OverallComplete(nil) {
		t.Error("expected empty flag set to be vacuously complete")
	}
}

func TestTagFor(t *testing.T) {
	if TagFor(decimal.NewFromInt(-1)) != TagDeficit {
		t.Error("expected negative amount to tag as deficit")
	}
	if TagFor(decimal.Zero) != TagSurplus {
		t.Error("expected zero to tag as surplus")
	}
	if TagFor(decimal.NewFromInt(55000)) != TagSurplus {
		t.Error("expected positive amount to tag as surplus")
	}
}
