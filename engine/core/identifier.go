package core

import "fmt"

/**
 * @brief A fixed-capacity pool of numeric identifiers. Acquire hands out the
 * lowest free id and records its owner; Release returns the id to the pool.
 */
type IdentifierPool struct {
	owners []interface{}
}

func NewIdentifierPool(capacity uint32) *IdentifierPool {
	return &IdentifierPool{
		owners: make([]interface{}, capacity),
	}
}

func (pool *IdentifierPool) Acquire(owner interface{}) (uint32, error) {
	if owner == nil {
		return 0, fmt.Errorf("func Acquire requires a non-nil owner")
	}
	length := uint32(len(pool.owners))
	for i := uint32(0); i < length; i++ {
		// Existing free spot. Take it.
		if pool.owners[i] == nil {
			pool.owners[i] = owner
			return i, nil
		}
	}
	return 0, fmt.Errorf("identifier pool exhausted (capacity=%d)", length)
}

func (pool *IdentifierPool) Release(id uint32) error {
	if id >= uint32(len(pool.owners)) {
		return fmt.Errorf("func Release - id '%d' out of range (max=%d). Nothing was done", id, len(pool.owners))
	}

	// Just zero out the entry, making it available for use.
	pool.owners[id] = nil
	return nil
}
