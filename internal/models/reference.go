package models

import "github.com/shopspring/decimal"

// Partner is a row of partners.
type Partner struct {
	PartnerID      string          `db:"partner_id"`
	Name           string          `db:"name"`
	Email          string          `db:"email"`
	ProfitSharePct decimal.Decimal `db:"profit_share_pct"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}

// Employee is a row of employees.
type Employee struct {
	EmployeeID  string `db:"employee_id"`
	Name        string `db:"name"`
	Designation string `db:"designation"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}
