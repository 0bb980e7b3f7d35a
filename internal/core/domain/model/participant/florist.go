package participant

import (
	"context"
	"errors"

	"floristsim/internal/pkg/guard"
)

// ErrFloristIsNotConstructed is returned when a Florist was not created via NewFlorist.
var ErrFloristIsNotConstructed = errors.New("Florist must be created via NewFlorist constructor")

// Florist orchestrates one order: source from the Wholesaler, have the
// FlowerArranger arrange the bouquet, then hand it to the DeliveryPerson.
type Florist struct {
	member
	wholesaler     *Wholesaler
	arranger       *FlowerArranger
	deliveryPerson *DeliveryPerson

	guard guard.ConstructorGuard
}

// NewFlorist creates a Florist bound to its three collaborators for its whole lifetime.
func NewFlorist(
	name string,
	wholesaler *Wholesaler,
	arranger *FlowerArranger,
	deliveryPerson *DeliveryPerson,
	narrator Narrator,
) (*Florist, error) {
	f := &Florist{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		f.setName(name),
		f.setWholesaler(wholesaler),
		f.setArranger(arranger),
		f.setDeliveryPerson(deliveryPerson),
		f.setNarrator(narrator),
	); err != nil {
		return nil, err
	}

	return f, nil
}

// Validate ensures the Florist was built by NewFlorist.
func (f *Florist) Validate() error {
	if f == nil {
		return ErrFloristIsNotConstructed
	}
	return f.guard.Validate(ErrFloristIsNotConstructed)
}

// Wholesaler returns the wholesaler the florist sources from.
func (f *Florist) Wholesaler() *Wholesaler {
	return f.wholesaler
}

// FlowerArranger returns the arranger the florist hands bouquets to.
func (f *Florist) FlowerArranger() *FlowerArranger {
	return f.arranger
}

// DeliveryPerson returns the delivery person the florist hands arranged bouquets to.
func (f *Florist) DeliveryPerson() *DeliveryPerson {
	return f.deliveryPerson
}

// AcceptOrder fulfils an order for recipient. The three steps run strictly
// in sequence and each one returns before the next begins:
//  1. source a bouquet of flowers through the Wholesaler
//  2. have the FlowerArranger arrange it
//  3. hand it to the DeliveryPerson, who delivers it to recipient
//
// The florist narrates each hand-off through its Narrator with ctx. When
// AcceptOrder returns, recipient has accepted the bouquet.
//
// Panics when the florist or recipient was not built by its constructor.
func (f *Florist) AcceptOrder(ctx context.Context, recipient *Person, flowers []string) {
	mustBeValid(f, recipient)

	f.narrate(ctx, "Florist %s forwards request to Wholesaler %s.", f.name, f.wholesaler.Name())
	b := f.wholesaler.AcceptOrder(ctx, flowers)
	f.narrate(ctx, "Wholesaler %s returns flowers to Florist %s.", f.wholesaler.Name(), f.name)

	f.narrate(ctx, "Florist %s request flowers arrangement from Flower Arranger %s.", f.name, f.arranger.Name())
	f.arranger.ArrangeFlowers(ctx, b)
	f.narrate(ctx, "Flower Arranger %s returns arranged flowers to Florist %s.", f.arranger.Name(), f.name)

	f.narrate(ctx, "Florist %s forwards flowers to Delivery Person %s.", f.name, f.deliveryPerson.Name())
	f.deliveryPerson.Deliver(ctx, recipient, b)
}

func (f *Florist) setWholesaler(wholesaler *Wholesaler) error {
	if err := requireCollaborator("wholesaler", wholesaler == nil, wholesaler); err != nil {
		return err
	}
	f.wholesaler = wholesaler
	return nil
}

func (f *Florist) setArranger(arranger *FlowerArranger) error {
	if err := requireCollaborator("arranger", arranger == nil, arranger); err != nil {
		return err
	}
	f.arranger = arranger
	return nil
}

func (f *Florist) setDeliveryPerson(deliveryPerson *DeliveryPerson) error {
	if err := requireCollaborator("delivery person", deliveryPerson == nil, deliveryPerson); err != nil {
		return err
	}
	f.deliveryPerson = deliveryPerson
	return nil
}
