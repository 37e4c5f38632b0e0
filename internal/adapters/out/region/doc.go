// Package region implements ports.Region on top of a block store.
//
// A BlockStore persists fixed-size blocks keyed by (tag, block index) together with
// the byte size of each region. BlockRegion translates byte-addressed reads and writes
// into whole-block reads and a single transactional PutBlocks call per write, so a
// write spanning several blocks is applied entirely or not at all.
//
// Provider caches one BlockRegion per tag. Concrete stores live in the memregion,
// sqliteregion and pgregion subpackages.
package region
