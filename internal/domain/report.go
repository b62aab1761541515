package domain

// Report is the container handed to output formatters. Exactly one result
// field is set per CLI invocation; formatters render whichever is present.
type Report struct {
	Title          string                `json:"title"`
	IRR            *IRRResult            `json:"irr,omitempty"`
	Mortgage       *MortgageResult       `json:"mortgage,omitempty"`
	VALoan         *VALoanResult         `json:"va_loan,omitempty"`
	Salary         *SalaryResults        `json:"salary,omitempty"`
	Paycheck       *PaycheckResult       `json:"paycheck,omitempty"`
	EstateTax      *EstateTaxResults     `json:"estate_tax,omitempty"`
	SocialSecurity *SocialSecurityResult `json:"social_security,omitempty"`
}
