package domain

// Employee can be referenced from journal lines, e.g. for payroll.
type Employee struct {
	EmployeeID  string `json:"employeeID"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}
