package stable

import (
	"context"
	"encoding/binary"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"
)

const (
	headerSize = 8
	// SlotSize is the stride between consecutive records in a records region.
	SlotSize = headerSize + MaxRecordSize
)

const (
	slotEmpty    byte = 0
	slotOccupied byte = 1
)

// RecordMap maps ids to records of one entity type in fixed-size slots.
// It is not safe for concurrent use; Repository serialises it.
type RecordMap[T any] struct {
	entity string
	region ports.Region
	codec  Codec[T]
}

func NewRecordMap[T any](entity string, region ports.Region, codec Codec[T]) *RecordMap[T] {
	return &RecordMap[T]{
		entity: entity,
		region: region,
		codec:  codec,
	}
}

// Get returns the record under id. ok is false for an empty slot and for an id
// beyond the last addressable slot, which can never have been written.
func (m *RecordMap[T]) Get(ctx context.Context, id kernel.ID) (entity T, ok bool, err error) {
	if !addressable(id) {
		return entity, false, nil
	}
	slot, err := m.readSlot(ctx, id)
	if err != nil {
		return entity, false, err
	}
	return m.decodeSlot(id, slot)
}

// Insert writes entity under id, replacing whatever was there.
// An encoding larger than MaxRecordSize is refused and the slot is left as it was.
func (m *RecordMap[T]) Insert(ctx context.Context, id kernel.ID, entity T) error {
	payload, err := m.encode(id, entity)
	if err != nil {
		return err
	}

	off, err := slotOffset(id)
	if err != nil {
		return err
	}

	slot := make([]byte, SlotSize)
	slot[0] = slotOccupied
	binary.BigEndian.PutUint32(slot[4:headerSize], uint32(len(payload)))
	copy(slot[headerSize:], payload)

	if err := m.region.WriteAt(ctx, slot, off); err != nil {
		return fmt.Errorf("insert %s %d: %w", m.entity, id, err)
	}
	return nil
}

// Fits reports whether entity could be inserted under id, without writing anything.
func (m *RecordMap[T]) Fits(id kernel.ID, entity T) error {
	if _, err := m.encode(id, entity); err != nil {
		return err
	}
	_, err := slotOffset(id)
	return err
}

func (m *RecordMap[T]) encode(id kernel.ID, entity T) ([]byte, error) {
	payload, err := m.codec.Encode(entity)
	if err != nil {
		return nil, fmt.Errorf("encode %s %d: %w", m.entity, id, err)
	}
	if len(payload) > MaxRecordSize {
		return nil, errs.NewValueIsOutOfRangeErrorWithCause(
			m.entity+" record size", len(payload), 0, MaxRecordSize, ErrRecordTooLarge)
	}
	return payload, nil
}

// Remove clears the slot under id and returns what it held. ok is false if it was empty.
// A corrupted slot is reported and not cleared.
func (m *RecordMap[T]) Remove(ctx context.Context, id kernel.ID) (entity T, ok bool, err error) {
	entity, ok, err = m.Get(ctx, id)
	if err != nil || !ok {
		return entity, ok, err
	}

	off, err := slotOffset(id)
	if err != nil {
		return entity, false, err
	}
	if err := m.region.WriteAt(ctx, make([]byte, SlotSize), off); err != nil {
		return entity, false, fmt.Errorf("remove %s %d: %w", m.entity, id, err)
	}
	return entity, true, nil
}

// Range calls fn for every occupied slot in ascending id order until fn returns false.
// A corrupted slot is passed to fn with a non-nil error and iteration continues.
func (m *RecordMap[T]) Range(ctx context.Context, fn func(id kernel.ID, entity T, err error) bool) error {
	size, err := m.region.Size(ctx)
	if err != nil {
		return err
	}

	slots := (size + SlotSize - 1) / SlotSize
	for i := range slots {
		id := kernel.ID(i)
		slot, err := m.readSlot(ctx, id)
		if err != nil {
			return err
		}
		entity, ok, err := m.decodeSlot(id, slot)
		if !ok && err == nil {
			continue
		}
		if !fn(id, entity, err) {
			return nil
		}
	}
	return nil
}

// Len counts occupied slots, corrupted ones included.
func (m *RecordMap[T]) Len(ctx context.Context) (int, error) {
	n := 0
	err := m.Range(ctx, func(kernel.ID, T, error) bool {
		n++
		return true
	})
	return n, err
}

func (m *RecordMap[T]) readSlot(ctx context.Context, id kernel.ID) ([]byte, error) {
	off, err := slotOffset(id)
	if err != nil {
		return nil, err
	}
	slot := make([]byte, SlotSize)
	if err := m.region.ReadAt(ctx, slot, off); err != nil {
		return nil, fmt.Errorf("read %s %d: %w", m.entity, id, err)
	}
	return slot, nil
}

func (m *RecordMap[T]) decodeSlot(id kernel.ID, slot []byte) (entity T, ok bool, err error) {
	switch slot[0] {
	case slotEmpty:
		return entity, false, nil
	case slotOccupied:
	default:
		return entity, false, errs.NewRecordIsCorruptedErrorWithCause(m.entity, id.Uint64(),
			fmt.Errorf("unknown slot state %d", slot[0]))
	}

	n := binary.BigEndian.Uint32(slot[4:headerSize])
	if n > MaxRecordSize {
		return entity, false, errs.NewRecordIsCorruptedErrorWithCause(m.entity, id.Uint64(),
			fmt.Errorf("payload length %d exceeds %d", n, MaxRecordSize))
	}

	entity, err = m.codec.Decode(slot[headerSize : headerSize+n])
	if err != nil {
		return entity, false, errs.NewRecordIsCorruptedErrorWithCause(m.entity, id.Uint64(), err)
	}
	return entity, true, nil
}

const maxSlots = (1<<63 - 1) / SlotSize

func addressable(id kernel.ID) bool {
	return uint64(id) < maxSlots
}

// slotOffset refuses ids whose slot would not be addressable with an int64 offset.
func slotOffset(id kernel.ID) (int64, error) {
	if !addressable(id) {
		return 0, errs.NewValueIsOutOfRangeError("id", uint64(id), 0, uint64(maxSlots-1))
	}
	return int64(id) * SlotSize, nil
}
