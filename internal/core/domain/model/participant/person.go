package participant

import (
	"context"
	"errors"

	"floristsim/internal/core/domain/model/bouquet"
	"floristsim/internal/pkg/guard"
)

// ErrPersonIsNotConstructed is returned when a Person was not created via NewPerson.
var ErrPersonIsNotConstructed = errors.New("Person must be created via NewPerson constructor")

// Person orders flowers for someone else and receives flowers ordered for them.
// Whether a Person acts as orderer or recipient depends only on the operation
// invoked; no role is stored.
type Person struct {
	member

	guard guard.ConstructorGuard
}

// NewPerson creates a Person with the given name and narrator.
func NewPerson(name string, narrator Narrator) (*Person, error) {
	p := &Person{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setName(name),
		p.setNarrator(narrator),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Person was built by NewPerson.
func (p *Person) Validate() error {
	if p == nil {
		return ErrPersonIsNotConstructed
	}
	return p.guard.Validate(ErrPersonIsNotConstructed)
}

// OrderFlowers places an order with florist on behalf of recipient. The
// flower list is forwarded as given.
func (p *Person) OrderFlowers(ctx context.Context, florist *Florist, recipient *Person, flowers []string) {
	mustBeValid(p, florist, recipient)

	p.narrate(ctx, "%s orders flowers to %s from Florist %s: %s",
		p.name, recipient.Name(), florist.Name(), bouquet.FormatFlowers(flowers))
	florist.AcceptOrder(ctx, recipient, flowers)
}

// AcceptFlowers is the last step of an order: the recipient reads the bouquet.
func (p *Person) AcceptFlowers(ctx context.Context, b *bouquet.Bouquet) {
	mustBeValid(p, b)

	p.narrate(ctx, "%s accepts the flowers: %s", p.name, bouquet.FormatFlowers(b.Flowers()))
}
