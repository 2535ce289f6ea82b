package tracking

import (
	"time"

	"github.com/verichain/coldchain/internal/model"
)

// applyEvent appends the event to the shipment and advances its status.
// Rules are evaluated in fixed precedence, first match wins:
//
//  1. invalid temperature, not already Compromised -> Compromised
//  2. delivery event, not Compromised             -> Delivered
//  3. currently Pending                           -> InTransit
//  4. otherwise                                   -> unchanged
//
// A temperature breach preempts delivery: a shipment delivered with a
// breached reading is marked Compromised, not Delivered. Compromised is
// sticky under rule 1 and only excluded from the Delivered branch.
func applyEvent(sh model.Shipment, ev model.ShipmentEvent, now time.Time) model.Shipment {
	sh.Events = append(sh.Events, ev)

	switch {
	case !ev.IsTemperatureValid && sh.Status != model.StatusCompromised:
		sh.Status = model.StatusCompromised
	case ev.EventType == model.EventDelivery && sh.Status != model.StatusCompromised:
		sh.Status = model.StatusDelivered
		if sh.DeliveredAt == nil {
			t := now
			sh.DeliveredAt = &t
		}
	case sh.Status == model.StatusPending:
		sh.Status = model.StatusInTransit
	}
	return sh
}

// temperatureInBand checks the verified reading against the product
// snapshot's inclusive cold-chain band.
func temperatureInBand(p model.Product, verified float64) bool {
	return verified >= p.MinTemperature && verified <= p.MaxTemperature
}
