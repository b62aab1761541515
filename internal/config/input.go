package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/fincalc/fincalc/internal/amort"
	"github.com/fincalc/fincalc/internal/domain"
	"github.com/fincalc/fincalc/internal/estatetax"
	"github.com/fincalc/fincalc/internal/irr"
	"github.com/fincalc/fincalc/internal/salary"
	"github.com/fincalc/fincalc/internal/socialsecurity"
	"github.com/fincalc/fincalc/internal/valoan"
	"gopkg.in/yaml.v3"
)

// InputParser loads and validates calculator input records from YAML
// files. Validation problems are folded into a single error so a record
// never reaches a calculator while problems exist.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

func (ip *InputParser) load(filename string, out any) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

func problemsToError(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("input validation failed: %s", strings.Join(problems, "; "))
}

// LoadIRRInput loads and validates an IRR calculator input file.
func (ip *InputParser) LoadIRRInput(filename string) (*domain.IRRInput, error) {
	var input domain.IRRInput
	if err := ip.load(filename, &input); err != nil {
		return nil, err
	}
	if err := problemsToError(irr.ValidateInputs(&input)); err != nil {
		return nil, err
	}
	return &input, nil
}

// LoadMortgageInput loads and validates a mortgage calculator input file.
func (ip *InputParser) LoadMortgageInput(filename string) (*domain.MortgageInput, error) {
	var input domain.MortgageInput
	if err := ip.load(filename, &input); err != nil {
		return nil, err
	}
	if err := problemsToError(amort.ValidateInputs(&input)); err != nil {
		return nil, err
	}
	return &input, nil
}

// LoadVALoanInput loads and validates a VA loan calculator input file.
func (ip *InputParser) LoadVALoanInput(filename string) (*domain.VALoanInput, error) {
	var input domain.VALoanInput
	if err := ip.load(filename, &input); err != nil {
		return nil, err
	}
	if err := problemsToError(valoan.ValidateInputs(&input)); err != nil {
		return nil, err
	}
	return &input, nil
}

// SalaryFile is the on-disk shape of a salary calculator input: the
// conversion record plus an optional paycheck section.
type SalaryFile struct {
	Conversion domain.SalaryInput    `yaml:"conversion"`
	Paycheck   *domain.PaycheckInput `yaml:"paycheck"`
}

// LoadSalaryInput loads and validates a salary calculator input file.
func (ip *InputParser) LoadSalaryInput(filename string) (*SalaryFile, error) {
	var input SalaryFile
	if err := ip.load(filename, &input); err != nil {
		return nil, err
	}
	problems := salary.ValidateInputs(&input.Conversion)
	if input.Paycheck != nil {
		problems = append(problems, salary.ValidatePaycheckInputs(input.Paycheck)...)
	}
	if err := problemsToError(problems); err != nil {
		return nil, err
	}
	return &input, nil
}

// LoadEstateTaxInput loads and validates an estate tax input file.
func (ip *InputParser) LoadEstateTaxInput(filename string) (*domain.EstateTaxInput, error) {
	var input domain.EstateTaxInput
	if err := ip.load(filename, &input); err != nil {
		return nil, err
	}
	if err := problemsToError(estatetax.ValidateInputs(&input)); err != nil {
		return nil, err
	}
	return &input, nil
}

// LoadSocialSecurityInput loads and validates a Social Security input
// file.
func (ip *InputParser) LoadSocialSecurityInput(filename string) (*domain.SocialSecurityInput, error) {
	var input domain.SocialSecurityInput
	if err := ip.load(filename, &input); err != nil {
		return nil, err
	}
	if err := problemsToError(socialsecurity.ValidateInputs(&input)); err != nil {
		return nil, err
	}
	return &input, nil
}
