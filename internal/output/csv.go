package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/fincalc/fincalc/internal/domain"
)

// CSVFormatter writes the tabular portion of the report: amortization
// rows, cash-flow schedules, claim-age analyses, or pay-period tables.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	var err error
	switch {
	case report.IRR != nil:
		err = writeIRRCSV(w, report.IRR)
	case report.Mortgage != nil:
		err = writeScheduleCSV(w, report.Mortgage.Schedule)
	case report.VALoan != nil:
		err = writeScheduleCSV(w, report.VALoan.Mortgage.Schedule)
	case report.Salary != nil:
		err = writeSalaryCSV(w, report.Salary)
	case report.EstateTax != nil:
		err = writeEstateCSV(w, report.EstateTax)
	case report.SocialSecurity != nil:
		err = writeSocialSecurityCSV(w, report.SocialSecurity)
	}
	if err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeIRRCSV(w *csv.Writer, r *domain.IRRResult) error {
	if err := w.Write([]string{"Period", "Label", "Amount", "Cumulative", "PresentValue", "CumulativePV"}); err != nil {
		return err
	}
	for _, row := range r.Schedule {
		record := []string{
			strconv.Itoa(row.Period),
			row.Label,
			row.Amount.StringFixed(2),
			row.Cumulative.StringFixed(2),
			row.PresentValue.StringFixed(2),
			row.CumulativePV.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeScheduleCSV(w *csv.Writer, schedule []domain.AmortizationRow) error {
	header := []string{"Month", "Date", "Payment", "Principal", "Interest", "Extra", "Balance", "CumulativePrincipal", "CumulativeInterest"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range schedule {
		record := []string{
			strconv.Itoa(row.Month),
			row.Date.Format("2006-01-02"),
			row.Payment.StringFixed(2),
			row.Principal.StringFixed(2),
			row.Interest.StringFixed(2),
			row.Extra.StringFixed(2),
			row.Balance.StringFixed(2),
			row.CumulativePrincipal.StringFixed(2),
			row.CumulativeInterest.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeSalaryCSV(w *csv.Writer, r *domain.SalaryResults) error {
	if err := w.Write([]string{"Period", "Unadjusted", "Adjusted"}); err != nil {
		return err
	}
	rows := []struct {
		name string
		pay  domain.PayAmount
	}{
		{"hourly", r.Hourly},
		{"daily", r.Daily},
		{"weekly", r.Weekly},
		{"biweekly", r.BiWeekly},
		{"semimonthly", r.SemiMonthly},
		{"monthly", r.Monthly},
		{"quarterly", r.Quarterly},
		{"annual", r.Annual},
	}
	for _, row := range rows {
		if err := w.Write([]string{row.name, row.pay.Unadjusted.StringFixed(2), row.pay.Adjusted.StringFixed(2)}); err != nil {
			return err
		}
	}
	return nil
}

func writeEstateCSV(w *csv.Writer, r *domain.EstateTaxResults) error {
	if err := w.Write([]string{"Field", "Amount"}); err != nil {
		return err
	}
	rows := [][2]string{
		{"GrossEstate", r.GrossEstate.StringFixed(2)},
		{"TotalDeductions", r.TotalDeductions.StringFixed(2)},
		{"NetEstate", r.NetEstate.StringFixed(2)},
		{"FederalExemption", r.FederalExemption.StringFixed(2)},
		{"FederalTaxable", r.FederalTaxable.StringFixed(2)},
		{"FederalTax", r.FederalTax.StringFixed(2)},
		{"StateExemption", r.StateExemption.StringFixed(2)},
		{"StateTaxable", r.StateTaxable.StringFixed(2)},
		{"StateTax", r.StateTax.StringFixed(2)},
		{"TotalTax", r.TotalTax.StringFixed(2)},
		{"NetToHeirs", r.NetToHeirs.StringFixed(2)},
	}
	for _, row := range rows {
		if err := w.Write(row[:]); err != nil {
			return err
		}
	}
	return nil
}

func writeSocialSecurityCSV(w *csv.Writer, r *domain.SocialSecurityResult) error {
	header := []string{"ClaimAge", "BenefitPercent", "MonthlyBenefit", "TotalByLifeExpectancy", "PresentValue", "FutureValue"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, a := range r.Analyses {
		record := []string{
			strconv.Itoa(a.ClaimAge),
			a.BenefitPercent.StringFixed(3),
			a.MonthlyBenefit.StringFixed(2),
			a.TotalByLifeExpectancy.StringFixed(2),
			a.PresentValue.StringFixed(2),
			a.FutureValue.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}
