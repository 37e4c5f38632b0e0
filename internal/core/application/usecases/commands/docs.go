// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: a validating constructor, a guard
// checked by the handler, and one repository call per record touched.
//
// Create commands validate their payload before an id is allocated, so a rejected
// payload never consumes an id. Update commands overwrite records without checking
// payload content. Every handler reports a missing record as errs.ObjectNotFoundError.
package commands
