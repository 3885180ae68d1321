package gaparray

import (
	"github.com/cockroachdb/errors"
)

/*****************************************************************************
 * SENTINEL ERRORS
 *****************************************************************************/

// ErrIndexOutOfRange is returned when an index or a range falls outside the
// GapArray. The call that returns it leaves the GapArray untouched.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrEmpty is returned by aggregate queries, such as Min and Max, on an empty
// GapArray.
var ErrEmpty = errors.New("gap array is empty")

// ErrUnsupported is returned by operations a value does not support, such as
// structural edits through a Cursor.
var ErrUnsupported = errors.New("unsupported operation")

// ErrNoCurrent is returned by Cursor.Set when the cursor has not visited an
// element yet.
var ErrNoCurrent = errors.New("cursor has no current element")

// ErrNegativeCapacity is returned when asking for a negative capacity.
var ErrNegativeCapacity = errors.New("capacity cannot be negative")

// ErrCapacityExceeded is the panic value when a GapArray would need to grow
// beyond the largest buffer it can address.
var ErrCapacityExceeded = errors.New("gap array capacity exceeded")

func indexError(i, length int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d with length %d", i, length)
}

func rangeError(from, to, length int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "range [%d, %d) with length %d", from, to, length)
}
