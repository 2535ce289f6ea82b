// Package model defines domain types used by the service.
package model

import "time"

// EventType classifies a shipment event reported from the field.
type EventType string

const (
	EventPickup   EventType = "pickup"
	EventTransit  EventType = "transit"
	EventDelivery EventType = "delivery"
)

// ShipmentStatus is the single active lifecycle state of a shipment.
type ShipmentStatus string

const (
	StatusPending     ShipmentStatus = "pending"
	StatusInTransit   ShipmentStatus = "in_transit"
	StatusCompromised ShipmentStatus = "compromised"
	StatusDelivered   ShipmentStatus = "delivered"
	StatusConfirmed   ShipmentStatus = "confirmed"
)

// UserRole identifies which side of the supply chain a user acts on.
type UserRole string

const (
	RoleManufacturer UserRole = "manufacturer"
	RoleLogistics    UserRole = "logistics"
	RoleConsumer     UserRole = "consumer"
)

// Product is a registered temperature-sensitive product. Immutable after
// registration; shipments carry their own snapshot copy.
type Product struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Manufacturer     string    `json:"manufacturer"`
	MinTemperature   float64   `json:"min_temperature"`
	MaxTemperature   float64   `json:"max_temperature"`
	LogisticsPartner string    `json:"logistics_partner"`
	RegisteredAt     time.Time `json:"registered_at"`
}

// ShipmentEvent is one appended field report. IsTemperatureValid is fixed at
// append time and never recomputed.
type ShipmentEvent struct {
	ID                  string    `json:"id"`
	Timestamp           time.Time `json:"timestamp"`
	Location            string    `json:"location"`
	Temperature         float64   `json:"temperature"`
	VerifiedTemperature float64   `json:"verified_temperature"`
	Reporter            string    `json:"reporter"`
	EventType           EventType `json:"event_type"`
	IsTemperatureValid  bool      `json:"is_temperature_valid"`
}

// Shipment is an escrow-funded movement of one product. Product is a
// snapshot taken at funding time; later product changes do not propagate.
type Shipment struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	Product          Product         `json:"product"`
	Manufacturer     string          `json:"manufacturer"`
	LogisticsPartner string          `json:"logistics_partner"`
	Consumer         string          `json:"consumer"`
	Status           ShipmentStatus  `json:"status"`
	EscrowAmount     float64         `json:"escrow_amount"`
	EscrowReleased   bool            `json:"escrow_released"`
	Events           []ShipmentEvent `json:"events"`
	CreatedAt        time.Time       `json:"created_at"`
	DeliveredAt      *time.Time      `json:"delivered_at"`
	ConfirmedAt      *time.Time      `json:"confirmed_at"`
}

// User is a supply chain participant.
type User struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Role    UserRole `json:"role"`
	Address string   `json:"address"`
}

// WeatherReading is a verified temperature observation for a location.
type WeatherReading struct {
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Conditions  string    `json:"conditions"`
	Timestamp   time.Time `json:"timestamp"`
	Location    string    `json:"location"`
}
