package commands

import (
	"errors"
	"slices"
	"strings"

	"floristsim/internal/core/domain/model/kernel"
	"floristsim/internal/pkg/errs"
	"floristsim/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrdererIsRequired   = errs.NewValueIsRequiredError("orderer")
	ErrRecipientIsRequired = errs.NewValueIsRequiredError("recipient")
)

// PlaceOrderCommand asks the florist to source, arrange and deliver flowers
// ordered by one person for another.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), "Chris", "Robin",
//	    []string{"Roses", "Violets", "Gladiolus"})
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(chain.Florist(), narrator, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order failed: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	orderer   string
	recipient string
	flowers   []string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the order ID and both names. The flower list
// is taken as is: any strings, duplicates, or no flowers at all.
func NewPlaceOrderCommand(orderID kernel.UUID, orderer, recipient string, flowers []string) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		flowers: slices.Clone(flowers),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderer(orderer),
		cmd.setRecipient(recipient),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier used to correlate log records of this order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Orderer returns the name of the person placing the order.
func (c PlaceOrderCommand) Orderer() string {
	return c.orderer
}

// Recipient returns the name of the person receiving the flowers.
func (c PlaceOrderCommand) Recipient() string {
	return c.recipient
}

// Flowers returns the requested flower types. The command keeps its own copy
// taken at construction; the result is clipped so appends by the caller never
// reach it, and it must not be modified in place.
func (c PlaceOrderCommand) Flowers() []string {
	return slices.Clip(c.flowers)
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setOrderer(orderer string) error {
	if strings.TrimSpace(orderer) == "" {
		return ErrOrdererIsRequired
	}

	c.orderer = orderer
	return nil
}

func (c *PlaceOrderCommand) setRecipient(recipient string) error {
	if strings.TrimSpace(recipient) == "" {
		return ErrRecipientIsRequired
	}

	c.recipient = recipient
	return nil
}
