package risk

// Policy holds advisory guard rails. A zero field disables its check.
type Policy struct {
	MinRR            float64 `json:"min_rr" yaml:"min_rr"`                         // 1.5
	MaxPositionValue float64 `json:"max_position_value" yaml:"max_position_value"` // quote currency

	// Account-relative checks; skipped when AccountBalance is 0.
	AccountBalance float64 `json:"account_balance" yaml:"account_balance"`
	MaxRiskPct     float64 `json:"max_risk_pct" yaml:"max_risk_pct"` // 0.01
	MaxLeverage    float64 `json:"max_leverage" yaml:"max_leverage"` // 20
}

// Enabled reports whether any check is configured.
func (p Policy) Enabled() bool {
	return p.MinRR > 0 || p.MaxPositionValue > 0 || (p.AccountBalance > 0 && (p.MaxRiskPct > 0 || p.MaxLeverage > 0))
}
