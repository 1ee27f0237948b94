package models

// Requests for analysis HTTP endpoints. Defined in domain for consistency and reuse.
// Zero values for Lags and Window mean "use the configured default";
// the use cases fill them in from config.

type UnitRootRequest struct {
	SymbolAURL string `json:"symbol_a_url" validate:"required,url"`
	SymbolBURL string `json:"symbol_b_url" validate:"required,url"`
	Lags       int    `json:"lags" validate:"omitempty,gte=0,lte=50"`
}

type PairsRequest struct {
	SymbolAURL string `json:"symbol_a_url" validate:"required,url"`
	SymbolBURL string `json:"symbol_b_url" validate:"required,url"`
	Window     int    `json:"window" validate:"omitempty,gte=2,lte=5000"`
}
