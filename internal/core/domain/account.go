package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the five account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account is an entry in the chart of accounts.
type Account struct {
	AccountID   string      `json:"accountID"`
	Code        string      `json:"code"` // Unique chart code, e.g. "1010"
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	Currency    Currency    `json:"currency"`
	IsActive    bool        `json:"isActive"`
	AuditFields
}
