package cmd

import (
	"io"
	"log/slog"

	"floristsim/internal/adapters/out/console"
	"floristsim/internal/core/application/usecases/commands"
	"floristsim/internal/core/domain/model/kernel"
	"floristsim/internal/core/domain/services"
)

// ReferenceOrder is the single order the simulation runs.
type ReferenceOrder struct {
	Orderer   string
	Recipient string
	Flowers   []string
}

// DefaultReferenceOrder returns Chris ordering roses, violets and gladiolus for Robin.
func DefaultReferenceOrder() ReferenceOrder {
	return ReferenceOrder{
		Orderer:   "Chris",
		Recipient: "Robin",
		Flowers:   []string{"Roses", "Violets", "Gladiolus"},
	}
}

// Command builds the PlaceOrderCommand for this order under a fresh order ID.
func (o ReferenceOrder) Command() (commands.PlaceOrderCommand, error) {
	return commands.NewPlaceOrderCommand(kernel.NewUUID(), o.Orderer, o.Recipient, o.Flowers)
}

// CompositionRoot owns the process-wide wiring: one console Narrator and one
// supply chain built from the default participant names. Handlers created
// from it share both.
type CompositionRoot struct {
	narrator *console.Narrator
	chain    *services.SupplyChain
	logger   *slog.Logger
}

// NewCompositionRoot wires the reference supply chain with narration written to out.
func NewCompositionRoot(_ Config, out io.Writer, logger *slog.Logger) (CompositionRoot, error) {
	narrator := console.NewNarrator(out, logger)

	chain, err := services.NewSupplyChain(services.DefaultSupplyChainConfig(), narrator)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		narrator: narrator,
		chain:    chain,
		logger:   logger,
	}, nil
}

// SupplyChain returns the wired chain.
func (c *CompositionRoot) SupplyChain() *services.SupplyChain {
	return c.chain
}

// CreatePlaceOrderCommandHandler returns a handler bound to the chain's
// Florist and the root's Narrator and logger.
func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.chain.Florist(), c.narrator, c.logger)
}
