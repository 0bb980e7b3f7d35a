package participant

import (
	"context"
	"errors"

	"floristsim/internal/core/domain/model/bouquet"
	"floristsim/internal/pkg/guard"
)

// ErrGardenerIsNotConstructed is returned when a Gardener was not created via NewGardener.
var ErrGardenerIsNotConstructed = errors.New("Gardener must be created via NewGardener constructor")

// Gardener is the leaf of the sourcing chain: it gathers the requested flowers
// into a new, unarranged Bouquet.
type Gardener struct {
	member

	guard guard.ConstructorGuard
}

// NewGardener creates a Gardener with the given name and narrator.
func NewGardener(name string, narrator Narrator) (*Gardener, error) {
	g := &Gardener{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		g.setName(name),
		g.setNarrator(narrator),
	); err != nil {
		return nil, err
	}

	return g, nil
}

// Validate ensures the Gardener was built by NewGardener.
func (g *Gardener) Validate() error {
	if g == nil {
		return ErrGardenerIsNotConstructed
	}
	return g.guard.Validate(ErrGardenerIsNotConstructed)
}

// PrepareBouquet returns a new unarranged Bouquet containing exactly flowers,
// in the given order and with duplicates kept.
//
// Panics with ErrGardenerIsNotConstructed when the Gardener was not built by
// NewGardener.
func (g *Gardener) PrepareBouquet(ctx context.Context, flowers []string) *bouquet.Bouquet {
	mustBeValid(g)

	g.narrate(ctx, "Gardener %s prepares flowers.", g.name)
	return bouquet.NewBouquet(flowers)
}
