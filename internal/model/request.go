package model

type ProjectionRequest struct {
	TenantID   string               `json:"tenant_id"`
	Prediction string               `json:"prediction,omitempty"`
	Target     *Prediction          `json:"target,omitempty"`
	Parameters SimulationParameters `json:"parameters"`
}

// Prediction is a named target price for a future year.
type Prediction struct {
	Name        string  `json:"name" yaml:"name" csv:"Name"`
	Year        int     `json:"year" yaml:"year" csv:"Year"`
	TargetPrice float64 `json:"target_price" yaml:"target_price" csv:"Amount-Per-Bitcoin"`
}
