package quantity

import "errors"

// Error kinds reported by parsing, factories, and arithmetic. All failures
// wrap one of these sentinels, so callers match with errors.Is rather than
// message strings.
var (
	// ErrInvalidFormat indicates input text that is not an unsigned decimal
	// number followed by an optional letter suffix.
	ErrInvalidFormat = errors.New("invalid quantity format")
	// ErrInvalidUnit indicates a unit suffix not present in the type's unit table.
	ErrInvalidUnit = errors.New("invalid unit suffix")
	// ErrNegative indicates a canonical value (or constructor argument) below zero.
	ErrNegative = errors.New("quantity cannot be negative")
	// ErrNotFinite indicates a NaN or infinite canonical value.
	ErrNotFinite = errors.New("quantity must be finite")
	// ErrFractionalUnit indicates a value that is not a whole number of the
	// canonical unit (millicores for CPU, bytes for memory).
	ErrFractionalUnit = errors.New("quantity must be a whole number of its base unit")
	// ErrInvalidFactor indicates a non-finite scale factor.
	ErrInvalidFactor = errors.New("scale factor must be finite")
)
