package models

// UploadRecord is one processed payroll file as listed by the server.
// Created server-side; the client only reads it.
type UploadRecord struct {
	ID                   int64   `json:"id"`
	Filename             string  `json:"filename"`
	UploadDate           string  `json:"upload_date"`
	TotalEmployees       int     `json:"total_employees"`
	TotalAmountProcessed float64 `json:"total_amount_processed"`
	Status               string  `json:"status"`
}

// SalaryBreakdown is the fixed set of computed salary figures for one
// employee. The derivation happens server-side; the client treats the
// numbers as opaque.
type SalaryBreakdown struct {
	BasicPay        float64 `json:"basic_pay"`
	HRA             float64 `json:"hra"`
	VariablePay     float64 `json:"variable_pay"`
	Allowances      float64 `json:"allowances"`
	Gross           float64 `json:"gross"`
	ProvidentFund   float64 `json:"provident_fund"`
	IncomeTax       float64 `json:"income_tax"`
	TotalDeductions float64 `json:"total_deductions"`
	NetSalary       float64 `json:"net_salary"`
	TakeHomePay     float64 `json:"take_home_pay"`
}

// EmployeeRecord is a single employee row belonging to one upload.
type EmployeeRecord struct {
	ID          int64           `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Department  string          `json:"department"`
	Designation string          `json:"designation"`
	Salary      SalaryBreakdown `json:"salary"`
}

// UploadResult is the processed-record summary returned by a successful
// upload, plus any non-fatal warnings the server attached.
type UploadResult struct {
	Record   UploadRecord
	Message  string
	Warnings []string
}

// DashboardStats aggregates totals shown on the dashboard.
type DashboardStats struct {
	TotalUploads      int     `json:"total_uploads"`
	TotalEmployees    int     `json:"total_employees"`
	TotalDisbursement float64 `json:"total_disbursement"`
}
