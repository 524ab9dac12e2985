package risk

import "math"

// Mode selects how Quantity is expressed.
type Mode int

const (
	// UnitMode sizes the position in units of the traded asset.
	UnitMode Mode = iota
	// ContractMode sizes the position in contracts of ContractSize units each.
	ContractMode
)

func (m Mode) String() string {
	switch m {
	case ContractMode:
		return "contract"
	default:
		return "unit"
	}
}

type Inputs struct {
	EntryPrice float64
	StopPrice  float64
	MaxLoss    float64 // loss in quote currency if the stop is hit

	// ContractSize switches to contract mode when non-zero.
	ContractSize float64
	// RewardMultiple requests a take-profit target when > 0.
	RewardMultiple float64
}

type TakeProfit struct {
	Price           float64
	RewardMultiple  float64
	ProjectedProfit float64
	RiskDistance    float64
	RewardDistance  float64
}

type Result struct {
	Mode          Mode
	IsLong        bool
	Quantity      float64
	PositionValue float64
	PriceDistance float64

	// TakeProfit is nil when no reward multiple was requested.
	TakeProfit *TakeProfit
}

// Side returns "LONG" or "SHORT".
func (r Result) Side() string {
	if r.IsLong {
		return "LONG"
	}
	return "SHORT"
}

// Validate checks the inputs without computing anything. Calculate calls it
// first; it is exported so callers can reject a form before submitting it.
func (in Inputs) Validate() error {
	if !positive(in.EntryPrice) {
		return invalid("entry", in.EntryPrice, "entry price must be a positive number")
	}
	if !positive(in.StopPrice) {
		return invalid("stop", in.StopPrice, "stop-loss price must be a positive number")
	}
	if !positive(in.MaxLoss) {
		return invalid("max_loss", in.MaxLoss, "max loss must be a positive number")
	}
	if in.ContractSize != 0 && !positive(in.ContractSize) {
		return invalid("contract_size", in.ContractSize, "contract size must be a positive number")
	}
	if math.IsInf(in.RewardMultiple, 0) {
		return invalid("reward", in.RewardMultiple, "reward multiple must be finite")
	}
	return nil
}

// Calculate sizes a position so that hitting the stop loses exactly
// in.MaxLoss. It has no side effects and returns either a complete Result or
// a *ValidationError.
func Calculate(in Inputs) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	distance := Normalize(math.Abs(in.EntryPrice - in.StopPrice))
	if distance == 0 || distance < minRelativeDistance*math.Max(in.EntryPrice, in.StopPrice) {
		return Result{}, invalid("stop", in.StopPrice, "entry and stop cannot be the same")
	}

	res := Result{
		IsLong:        in.EntryPrice > in.StopPrice,
		PriceDistance: distance,
	}

	if in.ContractSize != 0 {
		res.Mode = ContractMode
		perContract := Normalize(distance * in.ContractSize)
		if perContract == 0 {
			return Result{}, invalid("contract_size", in.ContractSize, "contract size is too small for this stop distance")
		}
		res.Quantity = in.MaxLoss / perContract
		res.PositionValue = res.Quantity * in.ContractSize * in.EntryPrice
	} else {
		res.Mode = UnitMode
		res.PositionValue = (in.MaxLoss * in.EntryPrice) / distance
		res.Quantity = res.PositionValue / in.EntryPrice
	}

	if !finite(res.Quantity) || !finite(res.PositionValue) {
		return Result{}, invalid("max_loss", in.MaxLoss, "inputs produce a position size that is out of range")
	}

	if in.RewardMultiple > 0 {
		tp, err := takeProfit(in, distance, res.IsLong)
		if err != nil {
			return Result{}, err
		}
		res.TakeProfit = tp
	}

	return res, nil
}

func takeProfit(in Inputs, distance float64, long bool) (*TakeProfit, error) {
	rewardDistance := Normalize(distance * in.RewardMultiple)
	price := in.EntryPrice - rewardDistance
	if long {
		price = in.EntryPrice + rewardDistance
	}
	profit := in.MaxLoss * in.RewardMultiple

	if !finite(rewardDistance) || !finite(price) || !finite(profit) {
		return nil, invalid("reward", in.RewardMultiple, "reward multiple produces a target that is out of range")
	}

	return &TakeProfit{
		Price:           Normalize(price),
		RewardMultiple:  in.RewardMultiple,
		ProjectedProfit: profit,
		RiskDistance:    distance,
		RewardDistance:  rewardDistance,
	}, nil
}
