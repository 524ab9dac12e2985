package calc

import (
	"github.com/ergung/position-calculator/journal"
)

// View is the JSON shape of a Report.
type View struct {
	Ref           string          `json:"ref"`
	Mode          string          `json:"mode"`
	Side          string          `json:"side"`
	Quantity      float64         `json:"quantity"`
	PositionValue float64         `json:"position_value"`
	PriceDistance float64         `json:"price_distance"`
	TakeProfit    *TakeProfitView `json:"take_profit,omitempty"`
	Lines         []string        `json:"lines"`
	Row           string          `json:"row"`
	Warnings      []string        `json:"warnings,omitempty"`
}

type TakeProfitView struct {
	Price           float64 `json:"price"`
	RewardMultiple  float64 `json:"reward_multiple"`
	ProjectedProfit float64 `json:"projected_profit"`
	RiskDistance    float64 `json:"risk_distance"`
	RewardDistance  float64 `json:"reward_distance"`
}

// View renders the report with the given export options.
func (r *Report) View(o journal.Options) View {
	v := View{
		Ref:           r.Ref,
		Mode:          r.Result.Mode.String(),
		Side:          r.Result.Side(),
		Quantity:      r.Result.Quantity,
		PositionValue: r.Result.PositionValue,
		PriceDistance: r.Result.PriceDistance,
		Lines:         o.Display.Lines(r.Result),
		Row:           journal.FormatRow(r.Entry, o),
	}
	if tp := r.Result.TakeProfit; tp != nil {
		v.TakeProfit = &TakeProfitView{
			Price:           tp.Price,
			RewardMultiple:  tp.RewardMultiple,
			ProjectedProfit: tp.ProjectedProfit,
			RiskDistance:    tp.RiskDistance,
			RewardDistance:  tp.RewardDistance,
		}
	}
	for _, vi := range r.Decision.Violations {
		v.Warnings = append(v.Warnings, vi.Msg)
	}
	return v
}
