// Package journal exports calculations as rows a trader pastes into, or
// imports from, a trading spreadsheet.
package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/ergung/position-calculator/display"
	"github.com/ergung/position-calculator/risk"
)

// Entry is one sized trade plan, flattened for export.
type Entry struct {
	Ref           string
	Date          time.Time
	Side          string
	Mode          risk.Mode
	Entry         float64
	Stop          float64
	TakeProfit    float64
	HasTarget     bool
	RewardR       float64
	Risk          float64
	PositionValue float64
	Quantity      float64
}

func NewEntry(ref string, date time.Time, in risk.Inputs, r risk.Result) Entry {
	e := Entry{
		Ref:           ref,
		Date:          date,
		Side:          r.Side(),
		Mode:          r.Mode,
		Entry:         in.EntryPrice,
		Stop:          in.StopPrice,
		Risk:          in.MaxLoss,
		PositionValue: r.PositionValue,
		Quantity:      r.Quantity,
	}
	if tp := r.TakeProfit; tp != nil {
		e.HasTarget = true
		e.TakeProfit = tp.Price
		e.RewardR = tp.RewardMultiple
	}
	return e
}

type Format string

const (
	FormatTSV  Format = "tsv"
	FormatPipe Format = "pipe"
	FormatCSV  Format = "csv"
)

// ParseFormat accepts "tsv", "pipe" or "csv", case-insensitively. The empty
// string means tsv.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatTSV, nil
	case FormatTSV, FormatPipe, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want tsv, pipe or csv)", s)
	}
}

type Options struct {
	Format     Format
	DateLayout string
	Display    display.Options
}

func DefaultOptions() Options {
	return Options{
		Format:     FormatTSV,
		DateLayout: "2006-01-02",
		Display:    display.DefaultOptions(),
	}
}

const empty = "-"

// Header names the columns Fields produces.
func Header() []string {
	return []string{"date", "side", "entry", "stop", "take_profit", "risk", "position_value", "quantity"}
}

// Fields renders e in Header order. Missing values (no target, quantity in
// unit mode) are "-".
func Fields(e Entry, o Options) []string {
	tp := empty
	if e.HasTarget {
		tp = o.Display.Price(e.TakeProfit)
	}
	qty := empty
	if e.Mode == risk.ContractMode {
		qty = o.Display.Quantity(e.Quantity)
	}
	return []string{
		e.Date.Format(o.DateLayout),
		e.Side,
		display.Plain(e.Entry),
		display.Plain(e.Stop),
		tp,
		display.Plain(e.Risk),
		o.Display.Money(e.PositionValue),
		qty,
	}
}
