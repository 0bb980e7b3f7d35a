package participant

import (
	"context"
	"errors"

	"floristsim/internal/core/domain/model/bouquet"
	"floristsim/internal/pkg/guard"
)

// ErrFlowerArrangerIsNotConstructed is returned when a FlowerArranger was not created via NewFlowerArranger.
var ErrFlowerArrangerIsNotConstructed = errors.New("FlowerArranger must be created via NewFlowerArranger constructor")

// FlowerArranger arranges bouquets in place.
type FlowerArranger struct {
	member

	guard guard.ConstructorGuard
}

// NewFlowerArranger creates a FlowerArranger with the given name and narrator.
func NewFlowerArranger(name string, narrator Narrator) (*FlowerArranger, error) {
	a := &FlowerArranger{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		a.setName(name),
		a.setNarrator(narrator),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the FlowerArranger was built by NewFlowerArranger.
func (a *FlowerArranger) Validate() error {
	if a == nil {
		return ErrFlowerArrangerIsNotConstructed
	}
	return a.guard.Validate(ErrFlowerArrangerIsNotConstructed)
}

// ArrangeFlowers marks b as arranged. The caller keeps its reference to the
// now arranged bouquet.
func (a *FlowerArranger) ArrangeFlowers(ctx context.Context, b *bouquet.Bouquet) {
	mustBeValid(a, b)

	a.narrate(ctx, "Flower Arranger %s arranges flowers.", a.name)
	b.Arrange()
}
