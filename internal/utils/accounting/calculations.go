package accounting

import (
	"fmt"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Stored scales of money amounts and fx rates.
const (
	AmountPlaces int32 = 2
	RatePlaces   int32 = 4
)

// BalanceTolerance is the largest debit/credit difference still treated as balanced.
var BalanceTolerance = decimal.RequireFromString("0.01")

// ConvertToBase converts a transaction-currency amount into base currency at rate,
// rounded to two decimal places.
func ConvertToBase(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(AmountPlaces)
}

// FitsScale reports whether d has no non-zero digits beyond places decimal places.
func FitsScale(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Round(places))
}

// IsBalanced reports whether two totals agree within BalanceTolerance.
func IsBalanced(debits, credits decimal.Decimal) bool {
	return debits.Sub(credits).Abs().LessThanOrEqual(BalanceTolerance)
}

// Totals sums the debit and credit columns of lines in both currencies.
type Totals struct {
	Debits      decimal.Decimal
	Credits     decimal.Decimal
	DebitsBase  decimal.Decimal
	CreditsBase decimal.Decimal
}

// SumLines accumulates the totals of lines.
func SumLines(lines []domain.JournalLine) Totals {
	t := Totals{Debits: decimal.Zero, Credits: decimal.Zero, DebitsBase: decimal.Zero, CreditsBase: decimal.Zero}
	for _, l := range lines {
		t.Debits = t.Debits.Add(l.DebitAmount)
		t.Credits = t.Credits.Add(l.CreditAmount)
		t.DebitsBase = t.DebitsBase.Add(l.DebitAmountBase)
		t.CreditsBase = t.CreditsBase.Add(l.CreditAmountBase)
	}
	return t
}

// ValidateJournalLines checks that lines form a postable double entry and returns
// every problem found. An empty journal yields only the "no lines" error.
func ValidateJournalLines(lines []domain.JournalLine) domain.ValidationResult {
	if len(lines) == 0 {
		return domain.ValidationResult{IsValid: false, Errors: []string{"journal has no lines"}}
	}

	errs := make([]string, 0)
	for i, l := range lines {
		n := l.LineNumber
		if n == 0 {
			n = i + 1
		}
		hasDebit := l.DebitAmount.IsPositive()
		hasCredit := l.CreditAmount.IsPositive()
		switch {
		case hasDebit && hasCredit:
			errs = append(errs, fmt.Sprintf("line %d: cannot have both debit and credit amounts", n))
		case !hasDebit && !hasCredit:
			errs = append(errs, fmt.Sprintf("line %d: must have either a debit or a credit amount", n))
		}
	}

	t := SumLines(lines)
	if !IsBalanced(t.Debits, t.Credits) {
		errs = append(errs, fmt.Sprintf("debits (%s) do not equal credits (%s)",
			t.Debits.StringFixed(2), t.Credits.StringFixed(2)))
	}
	if !IsBalanced(t.DebitsBase, t.CreditsBase) {
		errs = append(errs, fmt.Sprintf("base currency debits (%s) do not equal base currency credits (%s)",
			t.DebitsBase.StringFixed(2), t.CreditsBase.StringFixed(2)))
	}

	return domain.ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
