// Package commands contains the use cases that drive the florist supply chain.
// Every command follows the same pattern: a guarded command value built by its
// constructor, and a handler that validates it and runs the participants.
package commands
