package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/fincalc/fincalc/internal/amort"
	"github.com/fincalc/fincalc/internal/config"
	"github.com/fincalc/fincalc/internal/domain"
	"github.com/fincalc/fincalc/internal/estatetax"
	"github.com/fincalc/fincalc/internal/irr"
	"github.com/fincalc/fincalc/internal/output"
	"github.com/fincalc/fincalc/internal/salary"
	"github.com/fincalc/fincalc/internal/socialsecurity"
	"github.com/fincalc/fincalc/internal/valoan"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements irr.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "fincalc",
	Short: "Financial calculator suite",
	Long:  "IRR/MIRR, mortgage, VA loan, salary, estate tax, and Social Security calculators",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "fincalc %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// render looks up the requested formatter and writes the report to
// stdout.
func render(cmd *cobra.Command, report *domain.Report) {
	format, _ := cmd.Flags().GetString("format")
	f := output.GetFormatterByName(format)
	if f == nil {
		log.Fatalf("unsupported format %q (available: %v)", format, output.FormatterNames())
	}
	data, err := f.Format(report)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(data))
}

func irrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "irr [input-file]",
		Short: "Internal rate of return analysis for a cash-flow series",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			input, err := config.NewInputParser().LoadIRRInput(args[0])
			if err != nil {
				log.Fatal(err)
			}
			engine := irr.NewEngine()
			if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
				engine.SetLogger(simpleCLILogger{})
			}
			render(cmd, &domain.Report{Title: "IRR Analysis", IRR: engine.Analyze(input)})
		},
	}
}

func mortgageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mortgage [input-file]",
		Short: "Mortgage amortization schedule",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			input, err := config.NewInputParser().LoadMortgageInput(args[0])
			if err != nil {
				log.Fatal(err)
			}
			render(cmd, &domain.Report{Title: "Mortgage", Mortgage: amort.Calculate(input)})
		},
	}
}

func valoanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "valoan [input-file]",
		Short: "VA loan with funding fee",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			input, err := config.NewInputParser().LoadVALoanInput(args[0])
			if err != nil {
				log.Fatal(err)
			}
			render(cmd, &domain.Report{Title: "VA Loan", VALoan: valoan.Calculate(input)})
		},
	}
}

func salaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "salary [input-file]",
		Short: "Salary conversion and take-home pay",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			input, err := config.NewInputParser().LoadSalaryInput(args[0])
			if err != nil {
				log.Fatal(err)
			}
			report := &domain.Report{Title: "Salary", Salary: salary.Convert(&input.Conversion)}
			if input.Paycheck != nil {
				report.Paycheck = salary.Paycheck(input.Paycheck)
			}
			render(cmd, report)
		},
	}
}

func estateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "estate [input-file]",
		Short: "Federal and state estate tax",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			input, err := config.NewInputParser().LoadEstateTaxInput(args[0])
			if err != nil {
				log.Fatal(err)
			}
			render(cmd, &domain.Report{Title: "Estate Tax", EstateTax: estatetax.Calculate(input)})
		},
	}
}

func socialSecurityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "social-security [input-file]",
		Short: "Social Security claim-age comparison",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			input, err := config.NewInputParser().LoadSocialSecurityInput(args[0])
			if err != nil {
				log.Fatal(err)
			}
			render(cmd, &domain.Report{Title: "Social Security", SocialSecurity: socialsecurity.Analyze(input)})
		},
	}
}

func main() {
	rootCmd.PersistentFlags().String("format", "console", "Output format (console, json, csv)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable solver iteration tracing")

	rootCmd.AddCommand(
		versionCmd(),
		irrCmd(),
		mortgageCmd(),
		valoanCmd(),
		salaryCmd(),
		estateCmd(),
		socialSecurityCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
