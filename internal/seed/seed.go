// Package seed populates the store with demo users, a product, and a
// pending shipment so the API is explorable from a cold start.
package seed

import (
	"time"

	"github.com/verichain/coldchain/internal/model"
	"github.com/verichain/coldchain/internal/obs"
	"github.com/verichain/coldchain/internal/store"
)

// Populate inserts the demo fixtures. It is safe to call once at boot.
func Populate(st *store.Store) {
	now := time.Now()

	manufacturer := model.User{
		ID:      "manu-001",
		Name:    "TechCorp Manufacturing",
		Role:    model.RoleManufacturer,
		Address: "0x1234...abcd",
	}
	logistics := model.User{
		ID:      "logi-001",
		Name:    "FastTrack Logistics",
		Role:    model.RoleLogistics,
		Address: "0x5678...efgh",
	}
	consumer := model.User{
		ID:      "cons-001",
		Name:    "Global Retail Chain",
		Role:    model.RoleConsumer,
		Address: "0x9012...ijkl",
	}
	st.PutUser(manufacturer)
	st.PutUser(logistics)
	st.PutUser(consumer)

	product := model.Product{
		ID:               "prod-001",
		Name:             "Temperature-Sensitive Medication",
		Description:      "Critical pharmaceutical requiring cold chain maintenance",
		Manufacturer:     manufacturer.ID,
		MinTemperature:   2.0,
		MaxTemperature:   8.0,
		LogisticsPartner: logistics.ID,
		RegisteredAt:     now,
	}
	st.PutProduct(product)

	st.PutShipment(model.Shipment{
		ID:               "ship-001",
		ProductID:        product.ID,
		Product:          product,
		Manufacturer:     manufacturer.ID,
		LogisticsPartner: logistics.ID,
		Consumer:         consumer.ID,
		Status:           model.StatusPending,
		EscrowAmount:     50000.0,
		EscrowReleased:   false,
		Events:           []model.ShipmentEvent{},
		CreatedAt:        now,
	})

	obs.Logger.Info("seed_data_populated", "users", 3, "products", 1, "shipments", 1)
}
