// Package kernel provides core domain primitives shared by every supply-chain aggregate.
//
// The package includes:
//   - ID: the 64-bit identifier of a record, unique only within its own entity type
//   - Clock: the source of "now" for timestamps written by commands
//   - NormalizeTime: the canonical form of timestamps stored in records
//
// Identifiers are minted by the store's per-type allocator; nothing in this package
// creates them.
package kernel
