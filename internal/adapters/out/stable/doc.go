// Package stable lays entity stores out over durable regions.
//
// Every entity type owns two regions: "<entity>/counter" holds the id allocator and
// "<entity>/records" holds a RecordMap of fixed-size slots, one slot per id:
//
//	offset id*SlotSize
//	+-------+---------+--------------+-------------------------------+
//	| state | 3 bytes | length (u32) | payload, MaxRecordSize bytes  |
//	+-------+---------+--------------+-------------------------------+
//	  0       1..3      4..7           8..
//
// A slot is written with a single WriteAt call, so a reader never sees half a record.
// Repository puts the counter and the map behind one mutex and turns misses into
// errs.ObjectNotFoundError. Open binds the ten regions once and returns Repositories.
package stable
