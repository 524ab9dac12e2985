package display

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ergung/position-calculator/risk"
)

// Table renders the full calculation, including any policy warnings in d,
// to w.
func (o Options) Table(w io.Writer, in risk.Inputs, r risk.Result, d risk.Decision) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("%s position (%s mode)", r.Side(), r.Mode))
	t.SetStyle(table.StyleRounded)

	qtyLabel := "Units"
	if r.Mode == risk.ContractMode {
		qtyLabel = "Contracts"
	}

	t.AppendRows([]table.Row{
		{"Entry", Plain(in.EntryPrice)},
		{"Stop loss", Plain(in.StopPrice)},
		{"Stop distance", o.Price(r.PriceDistance)},
		{"Max loss", fmt.Sprintf("%s %s", Plain(in.MaxLoss), o.QuoteCurrency)},
	})
	if r.Mode == risk.ContractMode {
		t.AppendRow(table.Row{"Contract size", Plain(in.ContractSize)})
	}
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Position value", fmt.Sprintf("%s %s", o.Money(r.PositionValue), o.QuoteCurrency)},
		{qtyLabel, o.Quantity(r.Quantity)},
	})

	if tp := r.TakeProfit; tp != nil {
		t.AppendSeparator()
		t.AppendRows([]table.Row{
			{fmt.Sprintf("Take profit (%sR)", Plain(tp.RewardMultiple)), o.Price(tp.Price)},
			{"Projected profit", fmt.Sprintf("%s %s", o.Money(tp.ProjectedProfit), o.QuoteCurrency)},
			{"Risk → reward gap", fmt.Sprintf("%s → %s", o.Price(tp.RiskDistance), o.Price(tp.RewardDistance))},
		})
	}

	if d.Leverage > 0 {
		t.AppendRow(table.Row{"Leverage", fmt.Sprintf("%.2fx", d.Leverage)})
	}
	if len(d.Violations) > 0 {
		t.AppendSeparator()
		for _, v := range d.Violations {
			t.AppendRow(table.Row{"⚠ " + v.Code, v.Msg})
		}
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 18, Align: text.AlignLeft},
		{Number: 2, WidthMin: 20, Align: text.AlignRight},
	})
	t.Render()
}
