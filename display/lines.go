package display

import (
	"fmt"

	"github.com/ergung/position-calculator/risk"
)

// Lines is the short result block: position size, contracts in contract
// mode, then the target and the gap summary when a target was requested.
func (o Options) Lines(r risk.Result) []string {
	lines := []string{
		fmt.Sprintf("Position Size: %s %s", o.Money(r.PositionValue), o.QuoteCurrency),
	}
	if r.Mode == risk.ContractMode {
		lines = append(lines, fmt.Sprintf("Contracts: %s", o.Quantity(r.Quantity)))
	}

	if tp := r.TakeProfit; tp != nil {
		lines = append(lines,
			fmt.Sprintf("TP (%sR): %s (+%s %s)",
				Plain(tp.RewardMultiple), o.Price(tp.Price), o.Money(tp.ProjectedProfit), o.QuoteCurrency),
			fmt.Sprintf("Math: Risk Gap %s → Reward Gap %s",
				o.Price(tp.RiskDistance), o.Price(tp.RewardDistance)),
		)
	}
	return lines
}
