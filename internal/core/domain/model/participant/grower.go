package participant

import (
	"context"
	"errors"

	"floristsim/internal/core/domain/model/bouquet"
	"floristsim/internal/pkg/guard"
)

// ErrGrowerIsNotConstructed is returned when a Grower was not created via NewGrower.
var ErrGrowerIsNotConstructed = errors.New("Grower must be created via NewGrower constructor")

// Grower forwards flower requests to its Gardener.
type Grower struct {
	member
	gardener *Gardener

	guard guard.ConstructorGuard
}

// NewGrower creates a Grower bound to gardener for its whole lifetime.
func NewGrower(name string, gardener *Gardener, narrator Narrator) (*Grower, error) {
	g := &Grower{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		g.setName(name),
		g.setGardener(gardener),
		g.setNarrator(narrator),
	); err != nil {
		return nil, err
	}

	return g, nil
}

// Validate ensures the Grower was built by NewGrower.
func (g *Grower) Validate() error {
	if g == nil {
		return ErrGrowerIsNotConstructed
	}
	return g.guard.Validate(ErrGrowerIsNotConstructed)
}

// Gardener returns the gardener this grower delegates to.
func (g *Grower) Gardener() *Gardener {
	return g.gardener
}

// PrepareOrder passes flowers to the Gardener unchanged and returns its Bouquet as is.
func (g *Grower) PrepareOrder(ctx context.Context, flowers []string) *bouquet.Bouquet {
	mustBeValid(g)

	g.narrate(ctx, "Grower %s forwards the request to Gardener %s.", g.name, g.gardener.Name())
	b := g.gardener.PrepareBouquet(ctx, flowers)
	g.narrate(ctx, "Gardener %s returns flowers to Grower %s.", g.gardener.Name(), g.name)

	return b
}

func (g *Grower) setGardener(gardener *Gardener) error {
	if err := requireCollaborator("gardener", gardener == nil, gardener); err != nil {
		return err
	}
	g.gardener = gardener
	return nil
}
