package stable

import "errors"

// MaxRecordSize bounds the encoded size of one record.
const MaxRecordSize = 1024

// ErrRecordTooLarge is the cause attached when an encoding exceeds MaxRecordSize.
var ErrRecordTooLarge = errors.New("record exceeds the maximum encoded size")

// Codec converts one entity type to and from its stored bytes.
// Decode errors are reported by RecordMap as corruption of the slot.
type Codec[T any] interface {
	Encode(entity T) ([]byte, error)
	Decode(data []byte) (T, error)
}
