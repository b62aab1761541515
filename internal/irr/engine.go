package irr

import (
	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Logger allows the CLI to capture iteration traces from the solver.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Engine runs the IRR/MIRR analysis. The zero value is usable; a Logger
// is optional.
type Engine struct {
	logger Logger
}

// NewEngine creates a new analysis engine.
func NewEngine() *Engine {
	return &Engine{}
}

// SetLogger attaches a logger for solver iteration traces.
func (e *Engine) SetLogger(l Logger) {
	e.logger = l
}

func (e *Engine) debugf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Debugf(format, args...)
	}
}

const maxIterations = 100

var (
	npvTolerance = decimal.NewFromFloat(1e-7)
	two          = decimal.NewFromInt(2)
	hundred      = decimal.NewFromInt(100)

	defaultLowerBound = decimal.NewFromFloat(-0.99)
	defaultUpperBound = decimal.NewFromInt(10)
	widenedLowerBound = decimal.NewFromFloat(-0.999)
	widenedUpperBound = decimal.NewFromInt(100)
	maxUpperBound     = decimal.NewFromInt(1_000_000)
)

type solverMode int

const (
	modeNewton solverMode = iota
	modeBisection
)

// IRR finds the rate (as a percent) at which the cash flows' NPV is zero.
// It returns nil when no sign change exists, which is the expected outcome
// for all-inflow or all-outflow series rather than an error.
//
// Newton-Raphson converges quadratically for well-behaved series but can
// diverge when the flows have multiple sign changes, so the solver drops
// to bisection permanently the first time Newton produces a negligible
// derivative or a step outside the bracket. Non-convergence after the
// iteration cap returns the last estimate.
func (e *Engine) IRR(flows []domain.CashFlow) *decimal.Decimal {
	sorted := sortByPeriod(flows)
	if !hasSignChange(sorted) {
		return nil
	}
	lastPeriod := sorted[len(sorted)-1].Period
	if lastPeriod == 0 {
		// Every flow lands in period 0; NPV does not depend on the rate.
		return nil
	}

	investment, returns := totals(sorted)
	rate := returns.Sub(investment).Div(investment).Div(decimal.NewFromInt(int64(lastPeriod)))
	if rate.LessThanOrEqual(defaultLowerBound) || rate.GreaterThanOrEqual(defaultUpperBound) {
		rate = decimal.NewFromFloat(0.1)
	}
	e.debugf("irr: initial guess %s", rate.String())

	mode := modeNewton
	var lo, hi, fLo decimal.Decimal

	for i := 0; i < maxIterations; i++ {
		f := NPV(sorted, rate)
		if f.Abs().LessThan(npvTolerance) {
			e.debugf("irr: converged after %d iterations", i)
			break
		}

		if mode == modeNewton {
			stepped := false
			deriv := npvDerivative(sorted, rate)
			if deriv.Abs().GreaterThanOrEqual(npvTolerance) {
				next := rate.Sub(f.Div(deriv))
				if next.GreaterThan(defaultLowerBound) && next.LessThan(defaultUpperBound) {
					rate = next
					stepped = true
				}
			}
			if stepped {
				continue
			}

			// One-way transition: bisection is slower but cannot diverge.
			mode = modeBisection
			var ok bool
			lo, hi, fLo, ok = e.bracket(sorted)
			if !ok {
				e.debugf("irr: no bracket found, returning last Newton estimate")
				break
			}
			e.debugf("irr: falling back to bisection on [%s, %s]", lo.String(), hi.String())
		}

		mid := lo.Add(hi).Div(two)
		fMid := NPV(sorted, mid)
		rate = mid
		if fMid.Abs().LessThan(npvTolerance) {
			break
		}
		if fMid.Sign() == fLo.Sign() {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}

	pct := rate.Mul(hundred)
	return &pct
}

// bracket establishes bounds with opposite-sign NPVs for bisection. The
// default bounds are widened on the side whose |NPV| is smaller, then the
// upper bound grows exponentially until the bracket holds or the cap is
// hit.
func (e *Engine) bracket(flows []domain.CashFlow) (lo, hi, fLo decimal.Decimal, ok bool) {
	lo, hi = defaultLowerBound, defaultUpperBound
	fLo = NPV(flows, lo)
	fHi := NPV(flows, hi)
	if fLo.Sign()*fHi.Sign() < 0 {
		return lo, hi, fLo, true
	}

	if fLo.Abs().LessThan(fHi.Abs()) {
		lo = widenedLowerBound
		fLo = NPV(flows, lo)
	} else {
		hi = widenedUpperBound
		fHi = NPV(flows, hi)
	}
	if fLo.Sign()*fHi.Sign() < 0 {
		return lo, hi, fLo, true
	}

	for hi.LessThan(maxUpperBound) {
		hi = hi.Mul(decimal.NewFromInt(10))
		fHi = NPV(flows, hi)
		if fLo.Sign()*fHi.Sign() < 0 {
			return lo, hi, fLo, true
		}
	}
	return lo, hi, fLo, false
}
