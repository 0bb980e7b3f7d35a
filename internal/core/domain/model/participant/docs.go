// Package participant provides the named roles of the florist supply chain.
//
// The chain is fixed at construction time:
//
//	Person ──> Florist ──> Wholesaler ──> Grower ──> Gardener
//	              │
//	              ├──> FlowerArranger
//	              └──> DeliveryPerson ──> Person (recipient)
//
// Each participant narrates its step through a Narrator and then delegates
// synchronously to the next one, passing the caller's context along so every
// narration line of one order shares it. A Bouquet created by the Gardener flows back
// up to the Florist, is arranged, and is handed to the recipient.
//
// Key rules:
//   - Every participant has a non-empty name and a Narrator
//   - Dependencies are bound once by the constructor and never change
//   - Flower type lists are passed through verbatim (no filtering or dedup)
//   - Using a participant that was not built by its constructor, or passing an
//     unconstructed collaborator to an operation, is a programming error and panics
package participant
