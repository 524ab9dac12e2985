// Package form parses the calculator's text fields into risk.Inputs.
package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ergung/position-calculator/risk"
)

// Values holds the raw text a user typed.
type Values struct {
	Entry        string
	Stop         string
	MaxLoss      string
	ContractSize string
	Reward       string

	// UseContract enables contract mode; ContractSize is ignored without it.
	UseContract bool
}

// ParseError reports a field whose text is not a finite number.
type ParseError struct {
	Field string
	Input string
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("%s is required", label(e.Field))
	}
	return fmt.Sprintf("%s: %q is not a number", label(e.Field), e.Input)
}

func label(field string) string {
	switch field {
	case "entry":
		return "entry price"
	case "stop":
		return "stop-loss price"
	case "max_loss":
		return "max loss"
	case "contract_size":
		return "contract size"
	default:
		return field
	}
}

// Parse converts v into calculator inputs. Required fields must parse as
// finite numbers; range checks are left to risk.Calculate. An empty or
// unparsable reward means no target was requested.
func (v Values) Parse() (risk.Inputs, error) {
	var (
		in  risk.Inputs
		err error
	)

	if in.EntryPrice, err = number("entry", v.Entry); err != nil {
		return risk.Inputs{}, err
	}
	if in.StopPrice, err = number("stop", v.Stop); err != nil {
		return risk.Inputs{}, err
	}
	if in.MaxLoss, err = number("max_loss", v.MaxLoss); err != nil {
		return risk.Inputs{}, err
	}
	if v.UseContract {
		if in.ContractSize, err = number("contract_size", v.ContractSize); err != nil {
			return risk.Inputs{}, err
		}
		// Zero would otherwise read as unit mode.
		if in.ContractSize <= 0 {
			return risk.Inputs{}, &risk.ValidationError{
				Field: "contract_size",
				Value: in.ContractSize,
				Msg:   "contract size must be a positive number",
			}
		}
	}
	if r, err := number("reward", v.Reward); err == nil {
		in.RewardMultiple = r
	}

	return in, nil
}

func number(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &ParseError{Field: field}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &ParseError{Field: field, Input: s}
	}
	return f, nil
}
