package output

import (
	"fmt"
	"strings"

	"github.com/fincalc/fincalc/internal/domain"
)

// ConsoleFormatter renders a human-readable plain-text report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	b := &strings.Builder{}
	title := report.Title
	if title == "" {
		title = "FINANCIAL CALCULATOR REPORT"
	}
	fmt.Fprintln(b, strings.ToUpper(title))
	fmt.Fprintln(b, strings.Repeat("=", len(title)))
	fmt.Fprintln(b)

	switch {
	case report.IRR != nil:
		writeIRR(b, report.IRR)
	case report.Mortgage != nil:
		writeMortgage(b, report.Mortgage)
	case report.VALoan != nil:
		writeVALoan(b, report.VALoan)
	case report.Salary != nil:
		writeSalary(b, report.Salary, report.Paycheck)
	case report.EstateTax != nil:
		writeEstateTax(b, report.EstateTax)
	case report.SocialSecurity != nil:
		writeSocialSecurity(b, report.SocialSecurity)
	default:
		fmt.Fprintln(b, "(empty report)")
	}

	return []byte(b.String()), nil
}

func writeIRR(b *strings.Builder, r *domain.IRRResult) {
	fmt.Fprintf(b, "IRR:              %s\n", FormatOptionalPercent(r.IRR))
	fmt.Fprintf(b, "MIRR:             %s\n", FormatOptionalPercent(r.MIRR))
	fmt.Fprintf(b, "NPV:              %s\n", FormatCurrency(r.NPV))
	fmt.Fprintf(b, "NPV at 0%%:        %s\n", FormatCurrency(r.NPVAtZero))
	fmt.Fprintf(b, "Total Investment: %s\n", FormatCurrency(r.TotalInvestment))
	fmt.Fprintf(b, "Total Returns:    %s\n", FormatCurrency(r.TotalReturns))
	fmt.Fprintf(b, "Profit/Loss:      %s\n", FormatCurrency(r.ProfitLoss))
	if r.PaybackPeriod != nil {
		fmt.Fprintf(b, "Payback Period:   %s\n", r.PaybackPeriod.StringFixed(2))
	} else {
		fmt.Fprintf(b, "Payback Period:   Never\n")
	}
	fmt.Fprintln(b)
	fmt.Fprintln(b, "PERIOD       AMOUNT        CUMULATIVE    PRESENT VALUE")
	for _, row := range r.Schedule {
		fmt.Fprintf(b, "%-6d %13s %15s %15s\n",
			row.Period, FormatCurrency(row.Amount), FormatCurrency(row.Cumulative), FormatCurrency(row.PresentValue))
	}
}

func writeMortgage(b *strings.Builder, r *domain.MortgageResult) {
	s := r.Summary
	fmt.Fprintf(b, "Monthly Payment: %s\n", FormatCurrency(s.MonthlyPayment))
	fmt.Fprintf(b, "Total Paid:      %s\n", FormatCurrency(s.TotalPaid))
	fmt.Fprintf(b, "Total Interest:  %s\n", FormatCurrency(s.TotalInterest))
	fmt.Fprintf(b, "Payoff Date:     %s\n", s.PayoffDate.Format("Jan 2006"))
	if s.MonthsSaved > 0 || s.InterestSaved.IsPositive() {
		fmt.Fprintf(b, "Months Saved:    %d\n", s.MonthsSaved)
		fmt.Fprintf(b, "Interest Saved:  %s\n", FormatCurrency(s.InterestSaved))
	}
	fmt.Fprintln(b)
	writeScheduleMilestones(b, r.Schedule)
}

// writeScheduleMilestones prints each year-end row plus the final row,
// keeping the console report readable for 30-year schedules.
func writeScheduleMilestones(b *strings.Builder, schedule []domain.AmortizationRow) {
	if len(schedule) == 0 {
		return
	}
	fmt.Fprintln(b, "MONTH    DATE        PAYMENT      PRINCIPAL     INTEREST      BALANCE")
	for i, row := range schedule {
		if row.Month%12 != 0 && i != len(schedule)-1 {
			continue
		}
		fmt.Fprintf(b, "%-6d %-9s %12s %13s %12s %13s\n",
			row.Month, row.Date.Format("Jan 2006"),
			FormatCurrency(row.Payment), FormatCurrency(row.Principal.Add(row.Extra)),
			FormatCurrency(row.Interest), FormatCurrency(row.Balance))
	}
}

func writeVALoan(b *strings.Builder, r *domain.VALoanResult) {
	fmt.Fprintf(b, "Base Loan:        %s\n", FormatCurrency(r.BaseLoanAmount))
	fmt.Fprintf(b, "Funding Fee Rate: %s\n", FormatPercent(r.FundingFeeRate))
	fmt.Fprintf(b, "Funding Fee:      %s\n", FormatCurrency(r.FundingFee))
	fmt.Fprintf(b, "Total Loan:       %s\n", FormatCurrency(r.TotalLoanAmount))
	fmt.Fprintln(b)
	writeMortgage(b, &r.Mortgage)
}

func writeSalary(b *strings.Builder, r *domain.SalaryResults, paycheck *domain.PaycheckResult) {
	fmt.Fprintln(b, "PERIOD           UNADJUSTED        ADJUSTED")
	rows := []struct {
		name string
		pay  domain.PayAmount
	}{
		{"Hourly", r.Hourly},
		{"Daily", r.Daily},
		{"Weekly", r.Weekly},
		{"Bi-Weekly", r.BiWeekly},
		{"Semi-Monthly", r.SemiMonthly},
		{"Monthly", r.Monthly},
		{"Quarterly", r.Quarterly},
		{"Annual", r.Annual},
	}
	for _, row := range rows {
		fmt.Fprintf(b, "%-12s %14s %15s\n", row.name,
			FormatCurrency(row.pay.Unadjusted), FormatCurrency(row.pay.Adjusted))
	}
	if paycheck != nil {
		fmt.Fprintln(b)
		fmt.Fprintln(b, "TAKE-HOME PAY")
		fmt.Fprintln(b, "-------------")
		fmt.Fprintf(b, "Gross:          %s\n", FormatCurrency(paycheck.Gross))
		fmt.Fprintf(b, "Federal Tax:    %s\n", FormatCurrency(paycheck.FederalTax))
		fmt.Fprintf(b, "FICA Tax:       %s\n", FormatCurrency(paycheck.FICATax))
		fmt.Fprintf(b, "State Tax:      %s\n", FormatCurrency(paycheck.StateTax))
		fmt.Fprintf(b, "Net (annual):   %s\n", FormatCurrency(paycheck.NetAnnual))
		fmt.Fprintf(b, "Net per check:  %s\n", FormatCurrency(paycheck.NetPerPeriod))
		fmt.Fprintf(b, "Effective Rate: %s\n", FormatPercent(paycheck.EffectiveRate))
	}
}

func writeEstateTax(b *strings.Builder, r *domain.EstateTaxResults) {
	fmt.Fprintf(b, "Gross Estate:      %s\n", FormatCurrency(r.GrossEstate))
	fmt.Fprintf(b, "Total Deductions:  %s\n", FormatCurrency(r.TotalDeductions))
	fmt.Fprintf(b, "Net Estate:        %s\n", FormatCurrency(r.NetEstate))
	fmt.Fprintln(b)
	fmt.Fprintf(b, "Federal Exemption: %s\n", FormatCurrency(r.FederalExemption))
	fmt.Fprintf(b, "Federal Taxable:   %s\n", FormatCurrency(r.FederalTaxable))
	fmt.Fprintf(b, "Federal Tax:       %s\n", FormatCurrency(r.FederalTax))
	fmt.Fprintln(b)
	if r.StateExemption.IsPositive() {
		fmt.Fprintf(b, "State Exemption:   %s\n", FormatCurrency(r.StateExemption))
		fmt.Fprintf(b, "State Taxable:     %s\n", FormatCurrency(r.StateTaxable))
		fmt.Fprintf(b, "State Tax:         %s\n", FormatCurrency(r.StateTax))
		fmt.Fprintln(b)
	}
	fmt.Fprintf(b, "Total Tax:         %s\n", FormatCurrency(r.TotalTax))
	fmt.Fprintf(b, "Effective Rate:    %s\n", FormatPercent(r.EffectiveRate))
	fmt.Fprintf(b, "Net to Heirs:      %s\n", FormatCurrency(r.NetToHeirs))
}

func writeSocialSecurity(b *strings.Builder, r *domain.SocialSecurityResult) {
	fmt.Fprintln(b, "CLAIM AGE   % OF FRA    MONTHLY      TOTAL (NOMINAL)   PRESENT VALUE")
	for _, a := range r.Analyses {
		marker := " "
		if a.ClaimAge == r.IdealAge {
			marker = "*"
		}
		fmt.Fprintf(b, "%s %-8d %9s %11s %17s %15s\n", marker, a.ClaimAge,
			FormatPercent(a.BenefitPercent), FormatCurrency(a.MonthlyBenefit),
			FormatCurrency(a.TotalByLifeExpectancy), FormatCurrency(a.PresentValue))
	}
	fmt.Fprintln(b)
	fmt.Fprintf(b, "Ideal claim age (max present value): %d\n", r.IdealAge)
	fmt.Fprintln(b)
	fmt.Fprintln(b, "BREAK-EVEN AGES")
	for _, be := range r.BreakEven {
		fmt.Fprintf(b, "  claim at %d vs %d: %s\n", be.EarlyAge, be.LateAge, FormatAge(be.Age))
	}
}
