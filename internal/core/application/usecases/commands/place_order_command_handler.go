package commands

import (
	"context"
	"errors"
	"log/slog"

	"floristsim/internal/core/domain/model/participant"
	"floristsim/internal/pkg/logctx"
)

// PlaceOrderCommandHandler runs one order through the supply chain.
// The florist and narrator are bound at construction; orderer and recipient
// are created per command from the names it carries.
type PlaceOrderCommandHandler struct {
	florist  *participant.Florist
	narrator participant.Narrator
	logger   *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// A nil logger falls back to slog.Default().
func NewPlaceOrderCommandHandler(
	florist *participant.Florist,
	narrator participant.Narrator,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return PlaceOrderCommandHandler{
		florist:  florist,
		narrator: narrator,
		logger:   logger.With("component", "place_order_handler"),
	}
}

// Handle validates cmd and runs the order synchronously. When Handle returns
// nil the recipient has accepted the bouquet.
//
// The order ID, orderer and recipient are attached to ctx with logctx before
// the order starts, so every narration record of this order carries them.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := errors.Join(cmd.Validate(), h.florist.Validate()); err != nil {
		return err
	}

	orderer, err := participant.NewPerson(cmd.Orderer(), h.narrator)
	if err != nil {
		return err
	}

	recipient, err := participant.NewPerson(cmd.Recipient(), h.narrator)
	if err != nil {
		return err
	}

	ctx = logctx.WithAttrs(ctx,
		slog.String("order_id", cmd.OrderID().String()),
		slog.String("orderer", orderer.Name()),
		slog.String("recipient", recipient.Name()),
	)
	logger := h.logger.With(logctx.Args(ctx)...)
	logger.InfoContext(ctx, "Order placed", "florist", h.florist.Name(), "flowers", cmd.Flowers())

	orderer.OrderFlowers(ctx, h.florist, recipient, cmd.Flowers())

	logger.InfoContext(ctx, "Order delivered")
	return nil
}
