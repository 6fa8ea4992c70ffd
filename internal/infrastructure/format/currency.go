// Package format renders monetary amounts for API responses.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyFormatter renders decimal amounts with a currency symbol and
// grouped thousands, e.g. "₦150,000.00".
type CurrencyFormatter struct {
	symbol  string
	code    string
	printer *message.Printer
}

// NewCurrencyFormatter builds a formatter for the given symbol and ISO code.
func NewCurrencyFormatter(symbol, code string) *CurrencyFormatter {
	return &CurrencyFormatter{
		symbol:  symbol,
		code:    code,
		printer: message.NewPrinter(language.English),
	}
}

// Code returns the ISO 4217 currency code.
func (f *CurrencyFormatter) Code() string {
	return f.code
}

// Format renders an amount with symbol, grouping and two decimal places.
func (f *CurrencyFormatter) Format(amount decimal.Decimal) string {
	v, _ := amount.Float64()
	return f.symbol + f.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatSigned renders like Format but keeps an explicit leading sign
// for negative amounts and prefixes positives with nothing.
func (f *CurrencyFormatter) FormatSigned(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + f.Format(amount.Neg())
	}
	return f.Format(amount)
}
