package dto

// GateCheckResponse reports whether a wallet passes a community's token gate.
type GateCheckResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}
