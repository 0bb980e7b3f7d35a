// Package kernel contains the shared value objects of the florist domain.
//
// UUID identifies a single placed order so that log records emitted while the
// order travels through the supply chain can be correlated.
package kernel
