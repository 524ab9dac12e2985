package risk

import "fmt"

type Violation struct {
	Code string
	Msg  string
}

// Decision is the outcome of checking a sized position against a Policy.
// It never alters the Result it was computed from.
type Decision struct {
	Allowed    bool
	Violations []Violation

	PlannedRR float64
	RiskPct   float64
	Leverage  float64
}

func (d *Decision) add(code, msg string) {
	d.Violations = append(d.Violations, Violation{Code: code, Msg: msg})
	d.Allowed = false
}

func Evaluate(p Policy, in Inputs, r Result) Decision {
	d := Decision{Allowed: true}

	if tp := r.TakeProfit; tp != nil {
		d.PlannedRR = RR(in.EntryPrice, in.StopPrice, tp.Price)
		if tp.Price <= 0 {
			d.add("TP_NOT_POSITIVE",
				fmt.Sprintf("take-profit %.8g is not a positive price", tp.Price))
		}
	}
	if p.MinRR > 0 && r.TakeProfit != nil && d.PlannedRR < p.MinRR {
		d.add("RR_TOO_LOW",
			fmt.Sprintf("RR %.2f below minimum %.2f", d.PlannedRR, p.MinRR))
	}

	if p.MaxPositionValue > 0 && r.PositionValue > p.MaxPositionValue {
		d.add("POSITION_TOO_LARGE",
			fmt.Sprintf("position value %.2f exceeds max %.2f", r.PositionValue, p.MaxPositionValue))
	}

	if p.AccountBalance > 0 {
		d.RiskPct = RiskPct(in.MaxLoss, p.AccountBalance)
		d.Leverage = Leverage(r.PositionValue, p.AccountBalance)

		if p.MaxRiskPct > 0 && d.RiskPct > p.MaxRiskPct {
			d.add("RISK_TOO_HIGH",
				fmt.Sprintf("planned risk %.2f%% exceeds max %.2f%%",
					100*d.RiskPct, 100*p.MaxRiskPct))
		}
		if p.MaxLeverage > 0 && d.Leverage > p.MaxLeverage {
			d.add("LEVERAGE_TOO_HIGH",
				fmt.Sprintf("required leverage %.2fx exceeds max %.2fx", d.Leverage, p.MaxLeverage))
		}
	}

	return d
}
