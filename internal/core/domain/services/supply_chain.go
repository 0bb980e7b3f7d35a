package services

import (
	"floristsim/internal/core/domain/model/participant"
)

// SupplyChainConfig names every business participant of the chain.
type SupplyChainConfig struct {
	GardenerName       string
	GrowerName         string
	WholesalerName     string
	FlowerArrangerName string
	DeliveryPersonName string
	FloristName        string
}

// DefaultSupplyChainConfig returns the cast of the reference scenario.
func DefaultSupplyChainConfig() SupplyChainConfig {
	return SupplyChainConfig{
		GardenerName:       "Garett",
		GrowerName:         "Gray",
		WholesalerName:     "Watson",
		FlowerArrangerName: "Flora",
		DeliveryPersonName: "Dylan",
		FloristName:        "Fred",
	}
}

// SupplyChain owns one instance of each business participant for the duration
// of an order. The wiring never changes after NewSupplyChain returns.
type SupplyChain struct {
	gardener       *participant.Gardener
	grower         *participant.Grower
	wholesaler     *participant.Wholesaler
	arranger       *participant.FlowerArranger
	deliveryPerson *participant.DeliveryPerson
	florist        *participant.Florist
}

// NewSupplyChain builds the participants leaf-first and wires them together.
// The first construction error is returned unchanged.
//
// Example:
//
//	chain, err := services.NewSupplyChain(services.DefaultSupplyChainConfig(), narrator)
//	if err != nil {
//	    return err
//	}
//	chris.OrderFlowers(ctx, chain.Florist(), robin, []string{"Roses"})
func NewSupplyChain(cfg SupplyChainConfig, narrator participant.Narrator) (*SupplyChain, error) {
	gardener, err := participant.NewGardener(cfg.GardenerName, narrator)
	if err != nil {
		return nil, err
	}

	grower, err := participant.NewGrower(cfg.GrowerName, gardener, narrator)
	if err != nil {
		return nil, err
	}

	wholesaler, err := participant.NewWholesaler(cfg.WholesalerName, grower, narrator)
	if err != nil {
		return nil, err
	}

	arranger, err := participant.NewFlowerArranger(cfg.FlowerArrangerName, narrator)
	if err != nil {
		return nil, err
	}

	deliveryPerson, err := participant.NewDeliveryPerson(cfg.DeliveryPersonName, narrator)
	if err != nil {
		return nil, err
	}

	florist, err := participant.NewFlorist(cfg.FloristName, wholesaler, arranger, deliveryPerson, narrator)
	if err != nil {
		return nil, err
	}

	return &SupplyChain{
		gardener:       gardener,
		grower:         grower,
		wholesaler:     wholesaler,
		arranger:       arranger,
		deliveryPerson: deliveryPerson,
		florist:        florist,
	}, nil
}

// Florist returns the entry point of the chain.
func (c *SupplyChain) Florist() *participant.Florist {
	return c.florist
}

// Wholesaler returns the chain's wholesaler.
func (c *SupplyChain) Wholesaler() *participant.Wholesaler {
	return c.wholesaler
}

// Grower returns the chain's grower.
func (c *SupplyChain) Grower() *participant.Grower {
	return c.grower
}

// Gardener returns the chain's gardener.
func (c *SupplyChain) Gardener() *participant.Gardener {
	return c.gardener
}

// FlowerArranger returns the chain's flower arranger.
func (c *SupplyChain) FlowerArranger() *participant.FlowerArranger {
	return c.arranger
}

// DeliveryPerson returns the chain's delivery person.
func (c *SupplyChain) DeliveryPerson() *participant.DeliveryPerson {
	return c.deliveryPerson
}
