package bouquet

import (
	"fmt"

	"floristsim/internal/pkg/errs"
)

// Status is the arrangement state of a bouquet.
// It is a value object with a single forward transition.
//
// State transitions:
//
//	Prepared ──> Arranged ──┐
//	                ^       │
//	                └───────┘
//	       (arranging again is a no-op)
//
// There is no transition back to Prepared and no delivered state: handing a
// bouquet to the recipient does not change it.
type Status int

const (
	// Unknown marks an uninitialized Status.
	Unknown Status = iota

	// Prepared is the state of a freshly gathered, unarranged bouquet.
	Prepared

	// Arranged is final; a bouquet never returns to Prepared.
	Arranged
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Prepared: "Prepared",
		Arranged: "Arranged",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Prepared, Arranged.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - ValueIsInvalidError if the status is invalid
func (s Status) Validate() error {
	if s != Prepared && s != Arranged {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Arrange returns the status that follows an arrangement step.
//
// Transitions:
//   - Prepared -> Arranged
//   - Arranged -> Arranged (idempotent)
//
// Returns:
//   - Arranged and nil for a valid status
//   - Unknown and a ValueIsInvalidError for Unknown or out-of-range values
//
// Example:
//
//	next, err := bouquet.Prepared.Arrange()
//	// next == bouquet.Arranged, err == nil
func (s Status) Arrange() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}

	return Arranged, nil
}
