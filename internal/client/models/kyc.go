package models

// KYCSubmission is the four-section KYC form posted to /api/kyc/submit.
// Field names follow the form payload the backend expects.
type KYCSubmission struct {
	Personal KYCPersonal `json:"personal"`
	Address  KYCAddress  `json:"address"`
	Income   KYCIncome   `json:"income"`
	Bank     KYCBank     `json:"bank"`
}

type KYCPersonal struct {
	FullName         string `json:"fullName"`
	DateOfBirth      string `json:"dateOfBirth"`
	IDNumber         string `json:"idNumber"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	EmploymentStatus string `json:"employmentStatus"`
	EmployerName     string `json:"employerName"`
}

type KYCAddress struct {
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	Province      string `json:"province"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country"`
}

type KYCIncome struct {
	MonthlyIncome  string `json:"monthlyIncome"`
	IncomeSource   string `json:"incomeSource"`
	EmploymentType string `json:"employmentType"`
}

type KYCBank struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountType   string `json:"accountType"`
	BranchCode    string `json:"branchCode"`
}
