package participant

import (
	"context"
	"errors"

	"floristsim/internal/core/domain/model/bouquet"
	"floristsim/internal/pkg/guard"
)

// ErrDeliveryPersonIsNotConstructed is returned when a DeliveryPerson was not created via NewDeliveryPerson.
var ErrDeliveryPersonIsNotConstructed = errors.New("DeliveryPerson must be created via NewDeliveryPerson constructor")

// DeliveryPerson hands finished bouquets to recipients.
type DeliveryPerson struct {
	member

	guard guard.ConstructorGuard
}

// NewDeliveryPerson creates a DeliveryPerson with the given name and narrator.
func NewDeliveryPerson(name string, narrator Narrator) (*DeliveryPerson, error) {
	d := &DeliveryPerson{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setName(name),
		d.setNarrator(narrator),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the DeliveryPerson was built by NewDeliveryPerson.
func (d *DeliveryPerson) Validate() error {
	if d == nil {
		return ErrDeliveryPersonIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryPersonIsNotConstructed)
}

// Deliver gives b to recipient without touching it.
func (d *DeliveryPerson) Deliver(ctx context.Context, recipient *Person, b *bouquet.Bouquet) {
	mustBeValid(d, recipient, b)

	d.narrate(ctx, "Delivery Person %s delivers flowers %s.", d.name, recipient.Name())
	recipient.AcceptFlowers(ctx, b)
}
