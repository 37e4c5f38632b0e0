package kernel

import "strconv"

// ID identifies a record within one entity type's namespace.
// Products and orders may both have an ID 0; ids never collide within a type.
type ID uint64

// ParseID parses the decimal form produced by ID.String.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return ID(v), nil
}

// Uint64 returns the raw identifier value.
func (id ID) Uint64() uint64 {
	return uint64(id)
}

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
