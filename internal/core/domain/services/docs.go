// Package services provides domain services that operate across participants.
//
// SupplyChain wires the fixed, acyclic participant graph
// (Gardener ← Grower ← Wholesaler; Florist ← {Wholesaler, FlowerArranger, DeliveryPerson})
// once, so callers only need names and a narrator.
package services
