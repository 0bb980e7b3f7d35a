package participant

import (
	"context"
	"fmt"
	"strings"

	"floristsim/internal/pkg/errs"
)

var (
	// ErrNameIsRequired is returned when a participant is created with a blank name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrNarratorIsRequired is returned when a participant is created without a Narrator.
	ErrNarratorIsRequired = errs.NewValueIsRequiredError("narrator")
)

// Narrator receives one human-readable line per delegation step, in call order.
//
// ctx is the context the order was started with. Implementations may read
// request-scoped values from it, such as log attributes, but must not block
// on it: narration never fails an order.
type Narrator interface {
	Narrate(ctx context.Context, line string)
}

// member holds the identity shared by every participant.
type member struct {
	name     string
	narrator Narrator
}

// Name returns the participant's name.
func (m *member) Name() string {
	return m.name
}

func (m *member) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}

func (m *member) setNarrator(narrator Narrator) error {
	if narrator == nil {
		return ErrNarratorIsRequired
	}
	m.narrator = narrator
	return nil
}

func (m *member) narrate(ctx context.Context, format string, args ...any) {
	m.narrator.Narrate(ctx, fmt.Sprintf(format, args...))
}

// validator is implemented by every constructed collaborator.
type validator interface {
	Validate() error
}

// requireCollaborator converts a missing or unconstructed dependency into a
// construction error for param.
func requireCollaborator(param string, isNil bool, v validator) error {
	if isNil {
		return errs.NewValueIsRequiredError(param)
	}
	if err := v.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return nil
}

// mustBeValid panics when a participant or collaborator breaks its construction contract.
func mustBeValid(vs ...validator) {
	for _, v := range vs {
		if err := v.Validate(); err != nil {
			panic(err)
		}
	}
}
