package slotset

import "errors"

// Sentinel errors for slotset operations.
var (
	// ErrOutOfRange indicates an accessor was called with an index at or
	// beyond the container's high-water mark.
	ErrOutOfRange = errors.New("slotset: index out of range")

	// ErrEmptySlot indicates an accessor addressed a slot below the
	// high-water mark that currently holds no element.
	ErrEmptySlot = errors.New("slotset: slot is empty")

	// ErrAlreadyEmpty indicates Remove was called on a slot that is already
	// empty; the caller has violated the container's invariants.
	ErrAlreadyEmpty = errors.New("slotset: slot already empty")
)
