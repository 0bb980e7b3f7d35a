package bouquet

import (
	"errors"
	"slices"
	"strings"

	"floristsim/internal/pkg/guard"
)

// ErrBouquetIsNotConstructed is returned by Validate for a Bouquet that was not
// created via NewBouquet.
var ErrBouquetIsNotConstructed = errors.New("Bouquet must be created via NewBouquet constructor")

// Bouquet is an ordered collection of flower type names plus its arrangement status.
// The Gardener creates it, it travels back up the chain unchanged, the
// FlowerArranger arranges it, and the recipient reads it.
//
// Invariants:
//   - the flower sequence keeps the length and order it was created with
//   - a new bouquet is Prepared; it becomes Arranged only through Arrange
//   - Arranged is never reset
//
// A Bouquet is handed from participant to participant by pointer and is never
// accessed by two participants at the same time.
//
// Example:
//
//	b := bouquet.NewBouquet([]string{"Roses", "Violets"})
//	b.Arrange()
//	fmt.Println(bouquet.FormatFlowers(b.Flowers())) // Roses, Violets.
type Bouquet struct {
	flowers []string
	status  Status

	guard guard.ConstructorGuard
}

// NewBouquet creates an unarranged bouquet holding exactly the given flower types.
// Any string is accepted as a flower type and the list may be empty. The slice
// is copied so later changes by the caller do not leak into the bouquet.
func NewBouquet(flowers []string) *Bouquet {
	return &Bouquet{
		flowers: cloneFlowers(flowers),
		status:  Prepared,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the bouquet was built by NewBouquet.
func (b *Bouquet) Validate() error {
	if b == nil {
		return ErrBouquetIsNotConstructed
	}
	return b.guard.Validate(ErrBouquetIsNotConstructed)
}

// Flowers returns a copy of the flower types in their original order.
func (b *Bouquet) Flowers() []string {
	return cloneFlowers(b.flowers)
}

// Len returns the number of flowers in the bouquet.
func (b *Bouquet) Len() int {
	return len(b.flowers)
}

// Status returns the current arrangement status.
func (b *Bouquet) Status() Status {
	return b.status
}

// IsArranged reports whether Arrange has been called at least once.
func (b *Bouquet) IsArranged() bool {
	return b.status == Arranged
}

// Arrange marks the bouquet as arranged. Calling it again has no further effect.
// The flower sequence is never touched.
//
// Panics with ErrBouquetIsNotConstructed when called on a bouquet that was
// not built by NewBouquet.
func (b *Bouquet) Arrange() {
	if err := b.Validate(); err != nil {
		panic(err)
	}

	next, err := b.status.Arrange()
	if err != nil {
		panic(err)
	}
	b.status = next
}

// FormatFlowers renders flower types the way participants narrate them:
// "Roses, Violets, Gladiolus." for a non-empty list and "" for an empty one.
func FormatFlowers(flowers []string) string {
	if len(flowers) == 0 {
		return ""
	}
	return strings.Join(flowers, ", ") + "."
}

func cloneFlowers(flowers []string) []string {
	if flowers == nil {
		return []string{}
	}
	return slices.Clone(flowers)
}
