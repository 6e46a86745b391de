package models

// Account is a row of accounts.
type Account struct {
	AccountID   string `db:"account_id"`
	Code        string `db:"code"`
	Name        string `db:"name"`
	AccountType string `db:"account_type"`
	Currency    string `db:"currency"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}
