package participant

import (
	"context"
	"errors"

	"floristsim/internal/core/domain/model/bouquet"
	"floristsim/internal/pkg/guard"
)

// ErrWholesalerIsNotConstructed is returned when a Wholesaler was not created via NewWholesaler.
var ErrWholesalerIsNotConstructed = errors.New("Wholesaler must be created via NewWholesaler constructor")

// Wholesaler forwards florist orders to its Grower.
type Wholesaler struct {
	member
	grower *Grower

	guard guard.ConstructorGuard
}

// NewWholesaler creates a Wholesaler bound to grower for its whole lifetime.
func NewWholesaler(name string, grower *Grower, narrator Narrator) (*Wholesaler, error) {
	w := &Wholesaler{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		w.setName(name),
		w.setGrower(grower),
		w.setNarrator(narrator),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// Validate ensures the Wholesaler was built by NewWholesaler.
func (w *Wholesaler) Validate() error {
	if w == nil {
		return ErrWholesalerIsNotConstructed
	}
	return w.guard.Validate(ErrWholesalerIsNotConstructed)
}

// Grower returns the grower this wholesaler delegates to.
func (w *Wholesaler) Grower() *Grower {
	return w.grower
}

// AcceptOrder passes flowers to the Grower unchanged and returns its Bouquet as is.
func (w *Wholesaler) AcceptOrder(ctx context.Context, flowers []string) *bouquet.Bouquet {
	mustBeValid(w)

	w.narrate(ctx, "Wholesaler %s forwards the request to Grower %s.", w.name, w.grower.Name())
	b := w.grower.PrepareOrder(ctx, flowers)
	w.narrate(ctx, "Grower %s returns flowers to Wholesaler %s.", w.grower.Name(), w.name)

	return b
}

func (w *Wholesaler) setGrower(grower *Grower) error {
	if err := requireCollaborator("grower", grower == nil, grower); err != nil {
		return err
	}
	w.grower = grower
	return nil
}
