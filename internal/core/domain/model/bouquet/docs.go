// Package bouquet provides the Bouquet aggregate that travels through the florist
// supply chain.
//
// A Bouquet is created by a gardener from the requested flower types, is
// arranged by a flower arranger and is finally read by the recipient. Its
// flower sequence never changes after creation; arranging only flips the
// Status from Prepared to Arranged and can never be undone.
//
//	Prepared ──> Arranged ─┐
//	                ^      │
//	                └──────┘
//	       (arranging again is a no-op)
package bouquet
