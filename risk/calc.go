package risk

import "math"

// LossAtStop returns the loss, in quote currency, realised if price moves
// from entry to stop with the position described by r.
func LossAtStop(in Inputs, r Result) float64 {
	units := r.Quantity
	if r.Mode == ContractMode {
		units *= in.ContractSize
	}
	return units * r.PriceDistance
}

// RR is the reward-to-risk ratio of a planned trade.
func RR(entry, stop, takeProfit float64) float64 {
	risk := math.Abs(entry - stop)
	reward := math.Abs(takeProfit - entry)
	if risk == 0 {
		return 0
	}
	return reward / risk
}

// RiskPct is the share of equity lost if the stop is hit.
func RiskPct(maxLoss, equity float64) float64 {
	if equity <= 0 {
		return math.Inf(1)
	}
	return maxLoss / equity
}

// Leverage is the position value carried per unit of equity.
func Leverage(positionValue, equity float64) float64 {
	if equity <= 0 {
		return math.Inf(1)
	}
	return positionValue / equity
}
