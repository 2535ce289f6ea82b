package model

// RegisterProductRequest is the payload for product registration. Band
// ordering is intentionally not validated.
type RegisterProductRequest struct {
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Manufacturer     string  `json:"manufacturer"`
	MinTemperature   float64 `json:"min_temperature"`
	MaxTemperature   float64 `json:"max_temperature"`
	LogisticsPartner string  `json:"logistics_partner"`
}

// FundEscrowRequest creates a shipment against a registered product.
// EscrowAmount is accepted as-is, sign and magnitude included.
type FundEscrowRequest struct {
	ProductID    string  `json:"product_id"`
	Consumer     string  `json:"consumer"`
	EscrowAmount float64 `json:"escrow_amount"`
}

// AddEventRequest is a field report against a shipment.
type AddEventRequest struct {
	Location    string    `json:"location"`
	Temperature float64   `json:"temperature"`
	EventType   EventType `json:"event_type"`
	Reporter    string    `json:"reporter"`
}

// VerifyPasswordRequest asks whether a secret authorizes an action.
type VerifyPasswordRequest struct {
	Password string `json:"password"`
	Action   string `json:"action"`
}

// VerifyPasswordResponse is always returned with HTTP 200.
type VerifyPasswordResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}
