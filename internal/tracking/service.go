// Package tracking holds the shipment lifecycle engine and the operations
// that drive it: product registration, escrow funding, event submission,
// and delivery confirmation.
package tracking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/verichain/coldchain/internal/model"
	"github.com/verichain/coldchain/internal/obs"
	"github.com/verichain/coldchain/internal/store"
)

// Verifier obtains an independently verified temperature reading for a
// location. The call is network-bound and may block or fail.
type Verifier interface {
	Verify(ctx context.Context, location string, reported float64) (model.WeatherReading, error)
}

// Service orchestrates the store, the verifier, and the lifecycle rules.
type Service struct {
	store    *store.Store
	verifier Verifier
	now      func() time.Time
}

func NewService(st *store.Store, v Verifier) *Service {
	return &Service{store: st, verifier: v, now: time.Now}
}

// RegisterProduct creates a product with a generated id and the current
// timestamp. It always succeeds; band ordering is not validated.
func (s *Service) RegisterProduct(req model.RegisterProductRequest) model.Product {
	p := model.Product{
		ID:               "prod-" + uuid.NewString(),
		Name:             req.Name,
		Description:      req.Description,
		Manufacturer:     req.Manufacturer,
		MinTemperature:   req.MinTemperature,
		MaxTemperature:   req.MaxTemperature,
		LogisticsPartner: req.LogisticsPartner,
		RegisteredAt:     s.now(),
	}
	s.store.PutProduct(p)
	obs.Logger.Info("product_registered", "product_id", p.ID, "manufacturer", p.Manufacturer)
	return p
}

// FundEscrow creates a Pending shipment against a registered product,
// snapshotting the product onto the shipment.
func (s *Service) FundEscrow(req model.FundEscrowRequest) (model.Shipment, error) {
	p, ok := s.store.GetProduct(req.ProductID)
	if !ok {
		return model.Shipment{}, NewError(CodeNotFound, "Product not found")
	}
	sh := model.Shipment{
		ID:               "ship-" + uuid.NewString(),
		ProductID:        req.ProductID,
		Product:          p,
		Manufacturer:     p.Manufacturer,
		LogisticsPartner: p.LogisticsPartner,
		Consumer:         req.Consumer,
		Status:           model.StatusPending,
		EscrowAmount:     req.EscrowAmount,
		EscrowReleased:   false,
		Events:           []model.ShipmentEvent{},
		CreatedAt:        s.now(),
	}
	s.store.PutShipment(sh)
	obs.Logger.Info("escrow_funded", "shipment_id", sh.ID, "product_id", sh.ProductID, "escrow_amount", sh.EscrowAmount)
	return sh, nil
}

// AddEvent verifies the reported temperature, appends the event, and
// advances the shipment status. The verifier is called between the store
// fetch and the write-back, never while a store lock is held; two
// concurrent calls against the same shipment race with last-write-wins.
// On verification failure the shipment is left untouched.
func (s *Service) AddEvent(ctx context.Context, shipmentID string, req model.AddEventRequest) (model.Shipment, error) {
	sh, ok := s.store.GetShipment(shipmentID)
	if !ok {
		return model.Shipment{}, NewError(CodeNotFound, "Shipment not found")
	}

	reading, err := s.verifier.Verify(ctx, req.Location, req.Temperature)
	if err != nil {
		obs.Logger.Error("weather_verification_failed", "shipment_id", shipmentID, "location", req.Location, "error", err.Error())
		return model.Shipment{}, WrapError(CodeVerificationFailed, "Weather verification failed", err)
	}

	ev := model.ShipmentEvent{
		ID:                  "event-" + uuid.NewString(),
		Timestamp:           s.now(),
		Location:            req.Location,
		Temperature:         req.Temperature,
		VerifiedTemperature: reading.Temperature,
		Reporter:            req.Reporter,
		EventType:           req.EventType,
		IsTemperatureValid:  temperatureInBand(sh.Product, reading.Temperature),
	}

	prev := sh.Status
	sh = applyEvent(sh, ev, s.now())
	s.store.UpdateShipment(sh)
	if sh.Status != prev {
		obs.ShipmentTransitionsTotal.WithLabelValues(string(sh.Status)).Inc()
	}
	obs.Logger.Info("shipment_event_added",
		"shipment_id", sh.ID,
		"event_id", ev.ID,
		"event_type", string(ev.EventType),
		"verified_temperature", ev.VerifiedTemperature,
		"temperature_valid", ev.IsTemperatureValid,
		"status", string(sh.Status),
	)
	return sh, nil
}

// ConfirmDelivery releases escrow for a Delivered shipment. Confirming any
// other status (a second confirmation included) is rejected, preserving the
// released-exactly-once invariant.
func (s *Service) ConfirmDelivery(shipmentID string) (model.Shipment, error) {
	sh, ok := s.store.GetShipment(shipmentID)
	if !ok {
		return model.Shipment{}, NewError(CodeNotFound, "Shipment not found")
	}
	if sh.Status != model.StatusDelivered {
		return model.Shipment{}, NewError(CodeInvalidStateTransition, "Shipment must be delivered before confirmation")
	}
	sh.EscrowReleased = true
	sh.Status = model.StatusConfirmed
	t := s.now()
	sh.ConfirmedAt = &t
	s.store.UpdateShipment(sh)
	obs.ShipmentTransitionsTotal.WithLabelValues(string(sh.Status)).Inc()
	obs.Logger.Info("delivery_confirmed", "shipment_id", sh.ID, "escrow_amount", sh.EscrowAmount)
	return sh, nil
}
