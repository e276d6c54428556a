package probably

// CheckCapacity validates capacity for a Filter bit array.
func CheckCapacity(capacity uint64) error {
	if capacity == 0 {
		return ErrZeroCapacity
	}
	if CapacitySafeCast(capacity) == 0 {
		return ErrCapacityOverflow
	}
	return nil
}

// CapacitySafeCast returns capacity as a platform uint, or 0 if it is not safe
// to downcast.
func CapacitySafeCast(capacity uint64) uint {
	if capacity == 0 || capacity > uint64(^uint(0)) {
		return 0
	}
	return uint(capacity)
}

// BitsetBytes returns ceil(capacity/8).
func BitsetBytes(capacity uint64) uint64 {
	return capacity/8 + min(capacity%8, 1)
}
